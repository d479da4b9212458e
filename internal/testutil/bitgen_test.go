package testutil

import (
	"bytes"
	"testing"
)

func TestDecodeBitGen(t *testing.T) {
	vectors := []struct {
		input string
		want  []byte
	}{
		{"1 0 1 1 0 0 0 1 1", []byte{0xB1, 0x80}},
		{"H4:f H4:0", []byte{0xF0}},
		{"X:deadbeef", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"01*4", []byte{0x55}},
		{"D8:65 # comment to end of line\nD8:66", []byte{0x41, 0x42}},
	}
	for _, v := range vectors {
		got, err := DecodeBitGen(v.input)
		if err != nil {
			t.Fatalf("DecodeBitGen(%q): %v", v.input, err)
		}
		if !bytes.Equal(got, v.want) {
			t.Errorf("DecodeBitGen(%q) = % x, want % x", v.input, got, v.want)
		}
	}
}

func TestDecodeBitGenInvalid(t *testing.T) {
	if _, err := DecodeBitGen("2"); err == nil {
		t.Error("expected error for invalid token")
	}
	if _, err := DecodeBitGen("H65:0"); err == nil {
		t.Error("expected error for oversized bit-width")
	}
}
