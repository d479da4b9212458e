package testutil

import (
	"bytes"
	"encoding/hex"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/dsnet/lzssh/bitio"
)

var (
	reBin = regexp.MustCompile("^[01]{1,64}$")
	reDec = regexp.MustCompile("^D[0-9]+:[0-9]+$")
	reHex = regexp.MustCompile("^H[0-9]+:[0-9a-fA-F]{1,16}$")
	reRaw = regexp.MustCompile("^X:[0-9a-fA-F]+$")
	reQnt = regexp.MustCompile("[*][0-9]+$")
)

// DecodeBitGen decodes a BitGen formatted string into a byte slice, packed
// MSB-first the same way bitio.BitFile packs it. BitGen lets a bit-stream be
// scripted as a series of whitespace-separated tokens, which is far easier
// for a human to author and review than a raw hex dump. '#' starts a
// comment that runs to the end of the line.
//
// A token matching "[01]{1,64}" is a bit-string (e.g. 11010), written
// left-to-right (so the left-most bit is the first one packed).
//
// A token matching "D[0-9]+:[0-9]+" or "H[0-9]+:[0-9a-fA-F]{1,16}" is a
// decimal or hexadecimal value. The first number is the bit-width (0..64),
// the second is the value, written most-significant-bit first.
//
// A token matching "X:[0-9a-fA-F]+" is literal bytes in hex. If the
// stream is not byte-aligned when it appears, the stream is first padded
// with zero bits to the next byte boundary.
//
// Any token may be suffixed with "*N" to repeat it N times.
//
// If the resulting stream does not end on a byte boundary, it is padded
// with zero bits.
//
// Example:
//	1 00 H4:f        # flag bit, 2-bit tag, 4-bit value
//	X:deadbeef        # four literal bytes
//	01*3              # "01" repeated three times
func DecodeBitGen(str string) ([]byte, error) {
	var toks []string
	for _, s := range strings.Split(str, "\n") {
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		for _, t := range strings.Fields(s) {
			toks = append(toks, t)
		}
	}

	var buf bytes.Buffer
	bw, err := bitio.WrapWriter(&buf)
	if err != nil {
		return nil, err
	}

	for _, t := range toks {
		rep := 1
		if reQnt.MatchString(t) {
			i := strings.LastIndexByte(t, '*')
			tt, tn := t[:i], t[i+1:]
			n, err := strconv.Atoi(tn)
			if err != nil {
				return nil, errors.New("testutil: invalid quantified token: " + t)
			}
			t, rep = tt, n
		}

		switch {
		case reBin.MatchString(t):
			for i := 0; i < rep; i++ {
				for _, b := range t {
					if err := bw.PutBit(byte(b - '0')); err != nil {
						return nil, err
					}
				}
			}
		case reDec.MatchString(t) || reHex.MatchString(t):
			i := strings.IndexByte(t, ':')
			tb, tn, tv := t[0], t[1:i], t[i+1:]

			base := 10
			if tb == 'H' {
				base = 16
			}
			n, err1 := strconv.Atoi(tn)
			v, err2 := strconv.ParseUint(tv, base, 64)
			if err1 != nil || err2 != nil || n > 64 {
				return nil, errors.New("testutil: invalid numeric token: " + t)
			}
			if n < 64 && v&((1<<uint(n))-1) != v {
				return nil, errors.New("testutil: integer overflow on token: " + t)
			}
			for i := 0; i < rep; i++ {
				for b := n - 1; b >= 0; b-- {
					bit := byte((v >> uint(b)) & 1)
					if err := bw.PutBit(bit); err != nil {
						return nil, err
					}
				}
			}
		case reRaw.MatchString(t):
			tx := t[2:]
			raw, err := hex.DecodeString(tx)
			if err != nil {
				return nil, errors.New("testutil: invalid raw bytes token: " + t)
			}
			raw = bytes.Repeat(raw, rep)
			if _, err := bw.ByteAlign(); err != nil {
				return nil, err
			}
			for _, c := range raw {
				if err := bw.PutChar(c); err != nil {
					return nil, err
				}
			}
		default:
			return nil, errors.New("testutil: invalid token: " + t)
		}
	}

	if err := bw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
