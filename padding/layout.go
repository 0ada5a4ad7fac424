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

var (
	// ErrNotAligned is returned for padded messages whose size is not
	// a positive multiple of BlockSize.
	ErrNotAligned = errors.New("padding: message is not block aligned")

	// ErrBadLength is returned when the trailing length field does not
	// describe the padded message.
	ErrBadLength = errors.New("padding: invalid length field")

	// ErrBadMarker is returned when the marker byte is missing.
	ErrBadMarker = errors.New("padding: missing marker byte")

	// ErrBadFiller is returned when the filler contains non-zero bytes.
	ErrBadFiller = errors.New("padding: non-zero filler byte")
)

// Layout describes the padding of one message.
type Layout struct {
	// Length is the message length in bytes.
	Length uint64

	// BitLength is the value of the length field.
	BitLength uint64

	// Filler is the number of zero bytes between the marker and the
	// length field.
	Filler int

	// Total is the padded message size in bytes.
	Total uint64
}

// LayoutOf returns the padding layout for a message of length bytes.
func LayoutOf(length uint64) (Layout, error) {
	filler, err := FillerLen(length)
	if err != nil {
		return Layout{}, err
	}
	return Layout{
		Length:    length,
		BitLength: length * 8,
		Filler:    filler,
		Total:     length + uint64(1+filler+LengthSize),
	}, nil
}

// Size returns the size of the padding suffix in bytes.
func (l Layout) Size() int {
	return 1 + l.Filler + LengthSize
}

// MarkerOffset returns the offset of the marker byte in the padded
// message.
func (l Layout) MarkerOffset() uint64 {
	return l.Length
}

// LengthOffset returns the offset of the length field in the padded
// message.
func (l Layout) LengthOffset() uint64 {
	return l.Total - LengthSize
}

// NumBlocks returns the number of blocks in the padded message.
func (l Layout) NumBlocks() uint64 {
	return l.Total / BlockSize
}

func (l Layout) String() string {
	return fmt.Sprintf("len=%d bits=%d filler=%d total=%d",
		l.Length, l.BitLength, l.Filler, l.Total)
}

// Inspect verifies that padded is a correctly padded message and
// returns its layout.
func Inspect(padded []byte) (Layout, error) {
	if len(padded) == 0 || len(padded)%BlockSize != 0 {
		return Layout{}, fmt.Errorf("%w: %d bytes", ErrNotAligned, len(padded))
	}
	bitLength := binary.BigEndian.Uint64(padded[len(padded)-LengthSize:])
	if bitLength%8 != 0 {
		return Layout{}, fmt.Errorf("%w: %d bits is not a whole number of bytes",
			ErrBadLength, bitLength)
	}
	layout, err := LayoutOf(bitLength / 8)
	if err != nil {
		return Layout{}, err
	}
	if layout.Total != uint64(len(padded)) {
		return Layout{}, fmt.Errorf("%w: %d bits needs %d padded bytes, got %d",
			ErrBadLength, bitLength, layout.Total, len(padded))
	}
	if padded[layout.MarkerOffset()] != Marker {
		return Layout{}, fmt.Errorf("%w: offset %d has 0x%02x",
			ErrBadMarker, layout.MarkerOffset(), padded[layout.MarkerOffset()])
	}
	for i := layout.MarkerOffset() + 1; i < layout.LengthOffset(); i++ {
		if padded[i] != 0 {
			return Layout{}, fmt.Errorf("%w: offset %d has 0x%02x",
				ErrBadFiller, i, padded[i])
		}
	}

	return layout, nil
}

// Unpad verifies padded and returns the original message. The result
// shares storage with padded.
func Unpad(padded []byte) ([]byte, error) {
	layout, err := Inspect(padded)
	if err != nil {
		return nil, err
	}
	return padded[:layout.Length:layout.Length], nil
}

// Blocks splits an aligned message into BlockSize byte blocks. The
// blocks share storage with padded.
func Blocks(padded []byte) ([][]byte, error) {
	if len(padded)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrNotAligned, len(padded))
	}
	result := make([][]byte, 0, len(padded)/BlockSize)
	for len(padded) > 0 {
		result = append(result, padded[:BlockSize:BlockSize])
		padded = padded[BlockSize:]
	}
	return result, nil
}
