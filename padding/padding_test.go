//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package padding

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/markkurossi/shapad/internal/prg"
)

var vectors = []struct {
	name   string
	length int
	filler int
	total  int
}{
	{"empty", 0, 55, 64},
	{"abc", 3, 52, 64},
	{"one block exact", 55, 0, 64},
	{"marker fits, length does not", 56, 63, 128},
	{"second block", 57, 62, 128},
	{"block minus one", 63, 56, 128},
	{"one block", 64, 55, 128},
	{"two blocks exact", 119, 0, 128},
	{"two blocks overflow", 120, 63, 192},
}

func TestVectors(t *testing.T) {
	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			data := bytes.Repeat([]byte{'a'}, v.length)
			pad, err := Padding(data)
			if err != nil {
				t.Fatalf("Padding: %v", err)
			}
			if len(pad) != 1+v.filler+LengthSize {
				t.Fatalf("padding length %d, expected %d",
					len(pad), 1+v.filler+LengthSize)
			}
			want := []byte{Marker}
			want = append(want, make([]byte, v.filler)...)
			want = binary.BigEndian.AppendUint64(want, uint64(v.length)*8)
			if diff := cmp.Diff(want, pad); diff != "" {
				t.Fatalf("padding mismatch (-want +got):\n%s", diff)
			}

			padded, err := Pad(data)
			if err != nil {
				t.Fatalf("Pad: %v", err)
			}
			if len(padded) != v.total {
				t.Fatalf("padded length %d, expected %d", len(padded), v.total)
			}
		})
	}
}

func TestFIPSABC(t *testing.T) {
	padded, err := Pad([]byte("abc"))
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}
	want := "61626380" + strings.Repeat("00", 52) + "0000000000000018"
	if got := hex.EncodeToString(padded); got != want {
		t.Fatalf("Pad(abc):\ngot  %s\nwant %s", got, want)
	}
}

func TestEmptyLengthField(t *testing.T) {
	pad, err := Padding(nil)
	if err != nil {
		t.Fatalf("Padding: %v", err)
	}
	if len(pad) != 64 {
		t.Fatalf("padding length %d, expected 64", len(pad))
	}
	if !bytes.Equal(pad[56:], make([]byte, 8)) {
		t.Fatalf("length field %x, expected zeros", pad[56:])
	}
}

func checkPadded(t *testing.T, data, padded []byte) {
	t.Helper()

	if len(padded)%BlockSize != 0 {
		t.Fatalf("len %d: padded length %d not block aligned",
			len(data), len(padded))
	}
	if len(padded) < len(data)+MinSize {
		t.Fatalf("len %d: padded length %d too short", len(data), len(padded))
	}
	if !bytes.Equal(padded[:len(data)], data) {
		t.Fatalf("len %d: message prefix modified", len(data))
	}
	if padded[len(data)] != Marker {
		t.Fatalf("len %d: marker 0x%02x", len(data), padded[len(data)])
	}
	bits := binary.BigEndian.Uint64(padded[len(padded)-LengthSize:])
	if bits != uint64(len(data))*8 {
		t.Fatalf("len %d: length field %d, expected %d",
			len(data), bits, len(data)*8)
	}
	filler := padded[len(data)+1 : len(padded)-LengthSize]
	for i, b := range filler {
		if b != 0 {
			t.Fatalf("len %d: filler byte %d is 0x%02x", len(data), i, b)
		}
	}
	if (len(data)*8+8+len(filler)*8)%512 != 448 {
		t.Fatalf("len %d: %d filler bytes do not reach 448 mod 512",
			len(data), len(filler))
	}
}

func TestProperties(t *testing.T) {
	r := prg.New([]byte("padding properties"))
	for length := 0; length <= 300; length++ {
		data := r.Bytes(length)
		padded, err := Pad(data)
		if err != nil {
			t.Fatalf("Pad(%d): %v", length, err)
		}
		checkPadded(t, data, padded)

		pad, err := Padding(data)
		if err != nil {
			t.Fatalf("Padding(%d): %v", length, err)
		}
		if len(pad) < MinSize {
			t.Fatalf("len %d: padding length %d", length, len(pad))
		}
		if !bytes.Equal(padded[length:], pad) {
			t.Fatalf("len %d: Pad and Padding disagree", length)
		}
	}
}

func TestRandomLengths(t *testing.T) {
	r := prg.New([]byte("random lengths"))
	for i := 0; i < 50; i++ {
		data := r.Bytes(r.Intn(4096))
		padded, err := Pad(data)
		if err != nil {
			t.Fatalf("Pad(%d): %v", len(data), err)
		}
		checkPadded(t, data, padded)
	}
}

func TestDeterministic(t *testing.T) {
	data := prg.New([]byte("determinism")).Bytes(777)
	a, err := Padding(data)
	if err != nil {
		t.Fatalf("Padding: %v", err)
	}
	b, err := Padding(append([]byte(nil), data...))
	if err != nil {
		t.Fatalf("Padding: %v", err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("padding not deterministic (-first +second):\n%s", diff)
	}
}

func TestPadDoesNotAlias(t *testing.T) {
	data := make([]byte, 10, 128)
	copy(data, "0123456789")
	padded, err := Pad(data)
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}
	padded[0] = 'x'
	if data[0] != '0' {
		t.Fatalf("Pad result shares storage with the input")
	}
	if !bytes.Equal(data[:cap(data)][10:], make([]byte, cap(data)-10)) {
		t.Fatalf("Pad wrote into the input's spare capacity")
	}
}

func TestAppendPadding(t *testing.T) {
	prefix := []byte("prefix")
	got, err := AppendPadding(append([]byte(nil), prefix...), 3)
	if err != nil {
		t.Fatalf("AppendPadding: %v", err)
	}
	pad, err := Padding([]byte("abc"))
	if err != nil {
		t.Fatalf("Padding: %v", err)
	}
	if diff := cmp.Diff(append(prefix, pad...), got); diff != "" {
		t.Fatalf("AppendPadding mismatch (-want +got):\n%s", diff)
	}
}

func TestLengthHelpers(t *testing.T) {
	for _, v := range vectors {
		filler, err := FillerLen(uint64(v.length))
		if err != nil {
			t.Fatalf("FillerLen(%d): %v", v.length, err)
		}
		if filler != v.filler {
			t.Errorf("FillerLen(%d) = %d, expected %d", v.length, filler, v.filler)
		}
		n, err := PaddingLen(uint64(v.length))
		if err != nil {
			t.Fatalf("PaddingLen(%d): %v", v.length, err)
		}
		if n != v.total-v.length {
			t.Errorf("PaddingLen(%d) = %d, expected %d",
				v.length, n, v.total-v.length)
		}
		total, err := PaddedLen(uint64(v.length))
		if err != nil {
			t.Fatalf("PaddedLen(%d): %v", v.length, err)
		}
		if total != uint64(v.total) {
			t.Errorf("PaddedLen(%d) = %d, expected %d", v.length, total, v.total)
		}
	}
}

func TestOverflow(t *testing.T) {
	filler, err := FillerLen(MaxLength)
	if err != nil {
		t.Fatalf("FillerLen(MaxLength): %v", err)
	}
	if filler != 56 {
		t.Fatalf("FillerLen(MaxLength) = %d, expected 56", filler)
	}
	total, err := PaddedLen(MaxLength)
	if err != nil {
		t.Fatalf("PaddedLen(MaxLength): %v", err)
	}
	if total != 1<<61+64 {
		t.Fatalf("PaddedLen(MaxLength) = %d", total)
	}

	pad, err := AppendPadding(nil, MaxLength)
	if err != nil {
		t.Fatalf("AppendPadding(MaxLength): %v", err)
	}
	if bits := binary.BigEndian.Uint64(pad[len(pad)-LengthSize:]); bits != 1<<64-8 {
		t.Fatalf("length field %x", bits)
	}

	for _, length := range []uint64{MaxLength + 1, 1 << 62, 1<<64 - 1} {
		if _, err := FillerLen(length); !errors.Is(err, ErrOverflow) {
			t.Errorf("FillerLen(%d) = %v, expected ErrOverflow", length, err)
		}
		if _, err := PaddingLen(length); !errors.Is(err, ErrOverflow) {
			t.Errorf("PaddingLen(%d) = %v, expected ErrOverflow", length, err)
		}
		if _, err := PaddedLen(length); !errors.Is(err, ErrOverflow) {
			t.Errorf("PaddedLen(%d) = %v, expected ErrOverflow", length, err)
		}
		dst := []byte("keep")
		got, err := AppendPadding(dst, length)
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("AppendPadding(%d) = %v, expected ErrOverflow", length, err)
		}
		if !bytes.Equal(got, []byte("keep")) {
			t.Errorf("AppendPadding(%d) modified dst on error", length)
		}
		if _, err := LayoutOf(length); !errors.Is(err, ErrOverflow) {
			t.Errorf("LayoutOf(%d) = %v, expected ErrOverflow", length, err)
		}
	}
}

func TestConcurrent(t *testing.T) {
	inputs := make([][]byte, 16)
	want := make([][]byte, len(inputs))
	r := prg.New([]byte("concurrent"))
	for i := range inputs {
		inputs[i] = r.Bytes(i * 13)
		padded, err := Pad(inputs[i])
		if err != nil {
			t.Fatalf("Pad: %v", err)
		}
		want[i] = padded
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(inputs)*8)
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, input := range inputs {
				padded, err := Pad(input)
				if err != nil {
					errs <- err
					return
				}
				if !bytes.Equal(padded, want[i]) {
					errs <- errors.New("concurrent Pad result differs")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}
