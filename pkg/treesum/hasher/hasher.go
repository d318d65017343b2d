// Package hasher computes content digests for files. Digests are
// 256-bit and rendered as lowercase hex, so every algorithm produces
// the same 64-character digest shape regardless of which one is active.
package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/zeebo/blake3"
)

// HexLength is the length of an encoded digest string.
const HexLength = 64

// Algorithm identifies a supported digest algorithm.
type Algorithm string

// Supported algorithms.
const (
	SHA256 Algorithm = "sha256"
	BLAKE3 Algorithm = "blake3"
)

// DefaultAlgorithm is used when no algorithm is configured.
const DefaultAlgorithm = SHA256

// ErrUnknownAlgorithm is returned when an algorithm name is not recognized.
var ErrUnknownAlgorithm = fmt.Errorf("unknown digest algorithm")

// ParseAlgorithm parses a case-insensitive algorithm name.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(s) {
	case "sha256", "sha-256":
		return SHA256, nil
	case "blake3", "blake3-256":
		return BLAKE3, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// String returns the canonical algorithm name.
func (a Algorithm) String() string {
	return string(a)
}

// newHash returns a fresh hash state for the algorithm.
func (a Algorithm) newHash() hash.Hash {
	switch a {
	case BLAKE3:
		return blake3.New()
	default:
		return sha256.New()
	}
}

// Hasher computes file digests with a fixed algorithm. The zero value
// is not usable; construct with New.
type Hasher struct {
	algo Algorithm
}

// New returns a Hasher using the given algorithm.
func New(algo Algorithm) *Hasher {
	if algo == "" {
		algo = DefaultAlgorithm
	}
	return &Hasher{algo: algo}
}

// Algorithm reports the algorithm this Hasher uses.
func (h *Hasher) Algorithm() Algorithm {
	return h.algo
}

// Sum reads the file at path as an opaque byte stream and returns its
// digest as lowercase hex. The file handle is released before Sum
// returns. Any open or read failure is returned unwrapped enough for
// callers to inspect the underlying *fs.PathError.
func (h *Hasher) Sum(path string) (string, error) {
	digest, _, err := h.sum(path)
	return digest, err
}

// sum also reports the number of bytes hashed so callers can account
// for exactly the content that went into the digest.
func (h *Hasher) sum(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("hash: %w", err)
	}
	defer f.Close()

	hs := h.algo.newHash()
	n, err := io.Copy(hs, f)
	if err != nil {
		return "", 0, fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(hs.Sum(nil)), n, nil
}
