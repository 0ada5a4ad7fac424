//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package padding

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// BlockSize is the SHA-256 block size in bytes.
	BlockSize = 64

	// LengthSize is the size of the trailing bit-length field in bytes.
	LengthSize = 8

	// Marker is the byte that starts the padding: a single 1 bit
	// followed by seven 0 bits.
	Marker = 0x80

	// MinSize is the smallest possible padding: the marker and the
	// length field.
	MinSize = 1 + LengthSize

	// MaxLength is the largest message length in bytes whose bit
	// length fits in the 64-bit length field.
	MaxLength = 1<<61 - 1

	blockBits  = BlockSize * 8
	targetBits = blockBits - LengthSize*8
)

// ErrOverflow is returned for messages whose bit length does not fit
// in 64 bits.
var ErrOverflow = errors.New("padding: message bit length overflows 64 bits")

// FillerLen returns the number of zero filler bytes between the marker
// and the length field for a message of length bytes.
func FillerLen(length uint64) (int, error) {
	if length > MaxLength {
		return 0, fmt.Errorf("%w: length %d bytes", ErrOverflow, length)
	}
	bitLength := length * 8

	// The marker byte counts towards the bits before the filler.
	used := (bitLength%blockBits + 8) % blockBits

	// Add the modulus before reducing so the difference stays
	// non-negative when used is past the length field position.
	fillerBits := (targetBits + blockBits - used) % blockBits

	return int(fillerBits / 8), nil
}

// PaddingLen returns the total padding size in bytes for a message of
// length bytes.
func PaddingLen(length uint64) (int, error) {
	filler, err := FillerLen(length)
	if err != nil {
		return 0, err
	}
	return 1 + filler + LengthSize, nil
}

// PaddedLen returns the size of the padded message for a message of
// length bytes.
func PaddedLen(length uint64) (uint64, error) {
	n, err := PaddingLen(length)
	if err != nil {
		return 0, err
	}
	return length + uint64(n), nil
}

// AppendPadding appends the padding for a message of length bytes to
// dst and returns the extended slice. The message itself is not
// needed, only its length.
func AppendPadding(dst []byte, length uint64) ([]byte, error) {
	filler, err := FillerLen(length)
	if err != nil {
		return dst, err
	}
	dst = append(dst, Marker)
	for i := 0; i < filler; i++ {
		dst = append(dst, 0)
	}
	return binary.BigEndian.AppendUint64(dst, length*8), nil
}

// Padding returns the padding suffix for data.
func Padding(data []byte) ([]byte, error) {
	n, err := PaddingLen(uint64(len(data)))
	if err != nil {
		return nil, err
	}
	return AppendPadding(make([]byte, 0, n), uint64(len(data)))
}

// Pad returns a new slice holding data followed by its padding. The
// result length is a multiple of BlockSize.
func Pad(data []byte) ([]byte, error) {
	n, err := PaddingLen(uint64(len(data)))
	if err != nil {
		return nil, err
	}
	result := make([]byte, 0, len(data)+n)
	result = append(result, data...)

	return AppendPadding(result, uint64(len(data)))
}
