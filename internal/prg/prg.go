//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package prg provides a deterministic pseudo-random byte stream for
// reproducible test inputs. It is not suitable for key material.
package prg

import (
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// Reader produces the ChaCha20 keystream of a seed.
type Reader struct {
	cipher *chacha20.Cipher
}

// New creates a reader whose output is fully determined by seed.
func New(seed []byte) *Reader {
	key := sha256.Sum256(seed)
	var nonce [chacha20.NonceSize]byte

	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		panic(err)
	}
	return &Reader{
		cipher: c,
	}
}

// Read fills p with keystream bytes. It never fails.
func (r *Reader) Read(p []byte) (int, error) {
	clear(p)
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// Bytes returns the next n keystream bytes.
func (r *Reader) Bytes(n int) []byte {
	buf := make([]byte, n)
	r.Read(buf)
	return buf
}

// Intn returns a value in [0, n). It panics if n <= 0.
func (r *Reader) Intn(n int) int {
	if n <= 0 {
		panic("prg: invalid argument to Intn")
	}
	var buf [8]byte
	r.Read(buf[:])
	return int(binary.BigEndian.Uint64(buf[:]) % uint64(n))
}
