//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package padding

// Bits converts data into a bit slice in the order SHA-256 consumes
// message bits: most significant bit of the first byte first.
func Bits(data []byte) []bool {
	bits := make([]bool, len(data)*8)
	for idx, b := range data {
		for bit := 0; bit < 8; bit++ {
			if b&(0x80>>uint(bit)) != 0 {
				bits[idx*8+bit] = true
			}
		}
	}

	return bits
}

// FromBits packs an MSB-first bit slice back into bytes. A partial
// final byte is filled with zero bits.
func FromBits(bits []bool) []byte {
	result := make([]byte, (len(bits)+7)/8)
	for idx, bit := range bits {
		if bit {
			result[idx/8] |= 0x80 >> uint(idx%8)
		}
	}

	return result
}

// PadBits pads a message given as an MSB-first bit slice. Unlike Pad,
// the message length need not be a multiple of 8 bits: a single 1 bit
// is appended, followed by zero bits up to 448 mod 512, followed by the
// 64-bit message length. For byte-aligned messages the result equals
// Bits of the Pad result.
func PadBits(message []bool) []bool {
	length := uint64(len(message))
	used := (length + 1) % blockBits
	zeros := (targetBits + blockBits - used) % blockBits

	padded := make([]bool, 0, length+1+zeros+LengthSize*8)
	padded = append(padded, message...)
	padded = append(padded, true)
	for i := uint64(0); i < zeros; i++ {
		padded = append(padded, false)
	}
	for bit := LengthSize*8 - 1; bit >= 0; bit-- {
		padded = append(padded, length&(1<<uint(bit)) != 0)
	}

	return padded
}
