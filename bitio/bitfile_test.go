package bitio

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBitRoundTrip(t *testing.T) {
	for _, count := range []uint{0, 1, 7, 8, 9, 16, 17} {
		count := count
		t.Run("", func(t *testing.T) {
			var buf bytes.Buffer
			bw, err := WrapWriter(&buf)
			if err != nil {
				t.Fatal(err)
			}
			pattern := make([]byte, count)
			for i := range pattern {
				pattern[i] = byte(i % 2)
			}
			for _, bit := range pattern {
				if err := bw.PutBit(bit); err != nil {
					t.Fatal(err)
				}
			}
			if err := bw.Close(); err != nil {
				t.Fatal(err)
			}

			br, err := WrapReader(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatal(err)
			}
			got := make([]byte, count)
			for i := range got {
				bit, err := br.GetBit()
				if err != nil {
					t.Fatal(err)
				}
				got[i] = bit
			}
			if diff := cmp.Diff(pattern, got); diff != "" {
				t.Errorf("bit mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPutBitsThenByteAlign(t *testing.T) {
	// Write a pattern that does not end on a byte boundary, then verify
	// ByteAlign both returns the padded final byte and discards any
	// further partial-byte state.
	var buf bytes.Buffer
	bw, err := WrapWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	bits := []byte{1, 0, 1, 1, 0, 0, 0, 1, 1}
	for _, b := range bits {
		if err := bw.PutBit(b); err != nil {
			t.Fatal(err)
		}
	}
	last, err := bw.ByteAlign()
	if err != nil {
		t.Fatal(err)
	}
	if last != 0x80 {
		t.Errorf("ByteAlign() = %#x, want 0x80", last)
	}
	if err := bw.Close(); err != nil {
		t.Fatal(err)
	}

	want := []byte{0xB1, 0x80}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got % x, want % x", buf.Bytes(), want)
	}
}

func TestGetBitsPutBits(t *testing.T) {
	for _, count := range []uint{0, 1, 4, 8, 12, 17} {
		var buf bytes.Buffer
		bw, _ := WrapWriter(&buf)
		src := make([]byte, (count+7)/8)
		for i := range src {
			src[i] = 0xA5
		}
		if err := bw.PutBits(src, count); err != nil {
			t.Fatal(err)
		}
		if err := bw.Close(); err != nil {
			t.Fatal(err)
		}

		br, _ := WrapReader(bytes.NewReader(buf.Bytes()))
		got, err := br.GetBits(count)
		if err != nil {
			t.Fatal(err)
		}
		// Compare only the valid high-order bits of the final byte.
		full := count / 8
		if !bytes.Equal(got[:full], src[:full]) {
			t.Errorf("count=%d: whole bytes mismatch: got % x want % x", count, got[:full], src[:full])
		}
		if rem := count % 8; rem > 0 {
			mask := byte(0xFF << (8 - rem))
			if got[full]&mask != src[full]&mask {
				t.Errorf("count=%d: tail bits mismatch: got %08b want %08b", count, got[full], src[full]&mask)
			}
		}
	}
}

func TestBitsNumRoundTrip(t *testing.T) {
	cases := []struct {
		value uint64
		count uint
	}{
		{0, 1}, {1, 1}, {0x34, 8}, {0x1234, 16}, {0xFFF, 12}, {0xF, 4}, {0, 0},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		bw, _ := WrapWriter(&buf)
		if err := bw.PutBitsNum(c.value, c.count, 4); err != nil {
			t.Fatal(err)
		}
		if err := bw.Close(); err != nil {
			t.Fatal(err)
		}

		br, _ := WrapReader(bytes.NewReader(buf.Bytes()))
		got, err := br.GetBitsNum(c.count, 4)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.value {
			t.Errorf("count=%d: got %#x, want %#x", c.count, got, c.value)
		}
	}
}

func TestPutBitsNum16LittleEndianWire(t *testing.T) {
	var buf bytes.Buffer
	bw, _ := WrapWriter(&buf)
	if err := bw.PutBitsNum(0x1234, 16, 2); err != nil {
		t.Fatal(err)
	}
	if err := bw.Close(); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x34, 0x12}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got % x, want % x", buf.Bytes(), want)
	}
}

func TestEmptyRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	bw, _ := WrapWriter(&buf)
	if err := bw.Close(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected 0 bytes, got %d", buf.Len())
	}
}

func TestCloseNilHandle(t *testing.T) {
	var bf *BitFile
	if err := bf.Close(); err != ErrEndOfFile {
		t.Errorf("got %v, want ErrEndOfFile", err)
	}
}
