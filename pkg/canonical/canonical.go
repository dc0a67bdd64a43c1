// Package canonical implements the canonical JSON encoding used for payload
// hashing and state hashes: UTF-8, keys sorted lexicographically at every
// depth, no insignificant whitespace, and floats rounded to a fixed decimal
// precision so hashes do not drift across platforms.
package canonical

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// FloatPrecision is the number of decimal places floats are rounded to
// before encoding.
const FloatPrecision = 10

// Marshal returns the canonical JSON encoding of v. v may be any value
// that encoding/json can marshal; maps are emitted with sorted keys and
// numeric values are normalized.
func Marshal(v interface{}) ([]byte, error) {
	// Round-trip through encoding/json first so struct tags, json.Marshaler
	// implementations, and nil handling behave exactly as the standard
	// library defines them. Numbers are preserved as json.Number to avoid
	// float64 coercion of large integers.
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("canonical: pre-encoding failed: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var decoded interface{}
	if err := dec.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("canonical: re-decoding failed: %w", err)
	}

	var buf bytes.Buffer
	if err := encode(&buf, decoded); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Hash returns the lowercase hex SHA-256 of the canonical encoding of v.
func Hash(v interface{}) (string, error) {
	data, err := Marshal(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// HashBytes returns the lowercase hex SHA-256 of raw bytes. Used for EMO
// content hashes, which are defined over the raw UTF-8 content.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func encode(buf *bytes.Buffer, v interface{}) error {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case string:
		return encodeString(buf, val)
	case json.Number:
		return encodeNumber(buf, val)
	case []interface{}:
		buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encode(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := encode(buf, val[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("canonical: unsupported type %T", v)
	}
	return nil
}

// encodeString emits a JSON string via the standard encoder so escaping
// rules match encoding/json exactly.
func encodeString(buf *bytes.Buffer, s string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}

// encodeNumber emits integers verbatim and rounds fractional values to
// FloatPrecision decimal places, trimming trailing zeros so the same
// semantic value always yields the same bytes.
func encodeNumber(buf *bytes.Buffer, n json.Number) error {
	s := n.String()
	if !isFractional(s) {
		buf.WriteString(s)
		return nil
	}

	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("canonical: invalid number %q: %w", s, err)
	}
	shift := math.Pow10(FloatPrecision)
	rounded := math.Round(f*shift) / shift

	formatted := strconv.FormatFloat(rounded, 'f', -1, 64)
	buf.WriteString(formatted)
	return nil
}

// isFractional reports whether the literal carries a fraction or exponent.
func isFractional(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', 'e', 'E':
			return true
		}
	}
	return false
}
