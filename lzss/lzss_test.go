package lzss

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/dsnet/lzssh/internal/testutil"
)

func roundTrip(t *testing.T, input []byte) {
	t.Helper()
	var compressed bytes.Buffer
	if err := EncodeLZSS(bytes.NewReader(input), &compressed); err != nil {
		t.Fatalf("encode: %v", err)
	}

	var output bytes.Buffer
	if err := DecodeLZSS(bytes.NewReader(compressed.Bytes()), &output); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if diff := cmp.Diff(input, output.Bytes(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyInput(t *testing.T) {
	roundTrip(t, nil)
}

func TestSingleByte(t *testing.T) {
	input := []byte{0x41}
	var compressed bytes.Buffer
	if err := EncodeLZSS(bytes.NewReader(input), &compressed); err != nil {
		t.Fatal(err)
	}
	want := []byte{0xA0, 0x80} // flag=1 (UNCODED) + 0x41 (01000001), zero-padded
	if diff := cmp.Diff(want, compressed.Bytes()); diff != "" {
		t.Errorf("compressed token stream mismatch (-want +got):\n%s", diff)
	}

	var output bytes.Buffer
	if err := DecodeLZSS(bytes.NewReader(compressed.Bytes()), &output); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(input, output.Bytes()); diff != "" {
		t.Errorf("decode mismatch (-want +got):\n%s", diff)
	}
}

func TestLongRun(t *testing.T) {
	roundTrip(t, bytes.Repeat([]byte{0x00}, 100))
}

func TestRunsLongerThanMaxCoded(t *testing.T) {
	roundTrip(t, bytes.Repeat([]byte("ab"), MaxCoded*5))
}

func TestAlternating(t *testing.T) {
	data := make([]byte, 500)
	for i := range data {
		data[i] = byte(i % 2)
	}
	roundTrip(t, data)
}

func TestTailShorterThanMaxCoded(t *testing.T) {
	data := append(bytes.Repeat([]byte("hello world "), 50), []byte("tail")...)
	roundTrip(t, data)
}

func TestRandomBinary(t *testing.T) {
	// testutil.Rand keeps this fixture reproducible across Go versions,
	// unlike math/rand's algorithm, which the standard library does not
	// guarantee to keep fixed.
	r := testutil.NewRand(1)
	for _, size := range []int{1, 17, 4096, 1 << 20} {
		roundTrip(t, r.Bytes(size))
	}
}

func TestAllZero(t *testing.T) {
	roundTrip(t, make([]byte, 1<<16))
}
