//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package digest defines the boundary to the SHA-256 compression
// engine that consumes padded messages. The padding package does not
// depend on it.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// Size is the size of a digest in bytes.
const Size = sha256.Size

// Digester computes the digest of a byte sequence.
type Digester interface {
	Digest(data []byte) ([Size]byte, error)
}

// SHA256 is a Digester backed by the standard SHA-256 implementation.
// It applies its own message padding, so it expects the original
// message rather than padded blocks.
type SHA256 struct{}

// Digest implements Digester.
func (SHA256) Digest(data []byte) ([Size]byte, error) {
	return sha256.Sum256(data), nil
}

// Sum returns the SHA-256 digest of data.
func Sum(data []byte) [Size]byte {
	return sha256.Sum256(data)
}

// HashReader computes the SHA-256 digest of everything read from r.
func HashReader(r io.Reader) ([Size]byte, error) {
	result, err := hashReader(r)
	if err != nil {
		return result, fmt.Errorf("digest: reading input: %w", err)
	}
	return result, nil
}

func hashReader(r io.Reader) ([Size]byte, error) {
	var result [Size]byte

	hasher := sha256.New()
	if _, err := io.Copy(hasher, r); err != nil {
		return result, err
	}
	copy(result[:], hasher.Sum(nil))
	return result, nil
}

// HashFile computes the SHA-256 digest of the file at path. The file
// is streamed so memory use does not depend on its size.
func HashFile(path string) ([Size]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return [Size]byte{}, fmt.Errorf("digest: opening %s: %w", path, err)
	}
	defer file.Close()

	result, err := hashReader(file)
	if err != nil {
		return result, fmt.Errorf("digest: hashing %s: %w", path, err)
	}
	return result, nil
}

// Format returns the lowercase hex encoding of d.
func Format(d [Size]byte) string {
	return hex.EncodeToString(d[:])
}

// Parse parses a hex-encoded digest.
func Parse(s string) ([Size]byte, error) {
	var result [Size]byte
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return result, fmt.Errorf("digest: parsing %q: %w", s, err)
	}
	if len(decoded) != Size {
		return result, fmt.Errorf("digest: %q is %d bytes, want %d",
			s, len(decoded), Size)
	}
	copy(result[:], decoded)
	return result, nil
}
