package emo

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
	"time"
)

// HashInput carries the current-state fields covered by the determinism
// hash. Tags and LinkedEMOIDs may arrive in any order.
type HashInput struct {
	EMOID        string
	EMOVersion   int
	WorldID      string
	Branch       string
	Content      string
	Tags         []string
	LinkedEMOIDs []string
	UpdatedAt    time.Time
}

// DeterminismHash computes the replay-validation hash of an EMO's current
// state. Two replays of the same event sequence must produce identical
// hashes, so every input is normalized: tags and linked ids are sorted and
// the timestamp collapses to epoch seconds.
func DeterminismHash(in HashInput) string {
	tags := append([]string(nil), in.Tags...)
	sort.Strings(tags)
	linked := append([]string(nil), in.LinkedEMOIDs...)
	sort.Strings(linked)

	components := []string{
		in.EMOID,
		strconv.Itoa(in.EMOVersion),
		in.WorldID,
		in.Branch,
		in.Content,
		strings.Join(tags, ","),
		strings.Join(linked, ","),
		strconv.FormatInt(in.UpdatedAt.Unix(), 10),
	}

	sum := sha256.Sum256([]byte(strings.Join(components, ":")))
	return hex.EncodeToString(sum[:])
}

// ContentHash is the SHA-256 of the raw UTF-8 content, stored in history
// rows. Deleted versions record the hash of the empty string.
func ContentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
