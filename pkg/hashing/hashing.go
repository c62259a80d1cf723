// Package hashing computes the canonical JSON form of values and the sha256
// digests the ledger stores for log details, results and payloads.
//
// Canonical JSON means UTF-8 output with object keys sorted, no insignificant
// whitespace and no HTML escaping, so the same document hashes identically no
// matter which field order or indentation it was produced with.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/bytedance/sonic"
)

//nolint: gochecknoglobals
var canonical = sonic.Config{
	SortMapKeys: true,
	EscapeHTML:  false,
	UseNumber:   true,
}.Froze()

// Canonical returns the canonical JSON encoding of v. Struct values are first
// flattened into generic maps so their keys are sorted as well.
func Canonical(v any) ([]byte, error) {
	raw, err := canonical.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("could not marshal value: %w", err)
	}

	return CanonicalizeJSON(raw)
}

// CanonicalizeJSON re-encodes an arbitrary JSON document in canonical form.
func CanonicalizeJSON(raw []byte) ([]byte, error) {
	var generic any
	if err := canonical.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("could not parse json: %w", err)
	}

	out, err := canonical.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("could not marshal canonical json: %w", err)
	}

	return out, nil
}

// SHA256Hex returns the lowercase hex sha256 digest of data.
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}

// HashJSON returns SHA256Hex(Canonical(v)).
func HashJSON(v any) (string, error) {
	b, err := Canonical(v)
	if err != nil {
		return "", err
	}

	return SHA256Hex(b), nil
}

// HashJSONString hashes a stored JSON document after canonicalizing it.
func HashJSONString(doc string) (string, error) {
	b, err := CanonicalizeJSON([]byte(doc))
	if err != nil {
		return "", err
	}

	return SHA256Hex(b), nil
}
