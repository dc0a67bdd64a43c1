package projector

import (
	"fmt"

	"github.com/mnemonic-nexus/mnx/pkg/canonical"
)

// StateHash hashes a snapshot with the canonical JSON encoding, so two
// replays of the same event sequence produce byte-identical hashes.
func StateHash(snapshot map[string]interface{}) (string, error) {
	hash, err := canonical.Hash(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to hash snapshot: %w", err)
	}
	return hash, nil
}
