//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package padding implements the SHA-256 message preprocessing step of
// FIPS 180-4 §5.1.1. It computes the padding suffix that extends a
// message to a multiple of the 64-byte block size: a single 0x80
// marker byte, zero filler bytes, and the original message length in
// bits as a 64-bit big-endian integer.
//
// The package does not compute digests. Its output is meant to be fed
// into a block-oriented compression routine:
//
//	padded, err := padding.Pad([]byte("abc"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	blocks, err := padding.Blocks(padded)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, block := range blocks {
//		state = compress(state, block)
//	}
//
// All functions are pure and safe for concurrent use. Message lengths
// whose bit length does not fit in 64 bits are rejected with
// ErrOverflow instead of being truncated.
package padding
