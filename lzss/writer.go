package lzss

import (
	"io"

	"github.com/dsnet/lzssh/bitio"
)

// EncodeLZSS compresses all of input into output using the brute-force
// reference Matcher. Files are expected to be opened in binary mode;
// nil readers or writers are rejected with ErrNoEntity.
func EncodeLZSS(input io.Reader, output io.Writer) error {
	return EncodeLZSSWith(input, output, NewBruteForceMatcher())
}

// EncodeLZSSWith is EncodeLZSS with a caller-supplied Matcher, the
// pluggable point described by the Match Finder contract: a hash-chain,
// suffix-automaton, or externally accelerated finder can be substituted
// here without any change to the state machine below.
func EncodeLZSSWith(input io.Reader, output io.Writer, m Matcher) (err error) {
	defer errRecover(&err)

	if input == nil || output == nil {
		return ErrNoEntity
	}

	bw, err := bitio.WrapWriter(output)
	if err != nil {
		return err
	}

	win := NewWindow()
	if err := m.Initialize(win); err != nil {
		return err
	}

	// Prime the lookahead with up to MaxCoded bytes.
	length, eof := fillLookahead(input, win, 0, MaxCoded)
	if length == 0 {
		return bw.Close()
	}

	for length > 0 {
		offset, matchLen := m.FindMatch(win.WindowHead(), win.UncodedHead())
		if matchLen > length {
			matchLen = length
		}

		if matchLen <= MaxUncoded {
			matchLen = 1
			if err := bw.PutBit(flagUncoded); err != nil {
				return err
			}
			if err := bw.PutChar(win.LookaheadByte(win.UncodedHead())); err != nil {
				return err
			}
		} else {
			if err := bw.PutBit(flagEncoded); err != nil {
				return err
			}
			if err := bw.PutBitsNum(uint64(offset), OffsetBits, 4); err != nil {
				return err
			}
			if err := bw.PutBitsNum(uint64(matchLen-minEncLen), LengthBits, 4); err != nil {
				return err
			}
		}

		var i uint
		for ; i < matchLen; i++ {
			if eof {
				// No more input: keep draining the lookahead so the
				// window mutation stays in lock-step with the matcher's
				// index, but shrink the logical remaining length.
				replace(win, m)
				length--
				continue
			}
			b, rerr := readByte(input)
			if rerr == io.EOF {
				eof = true
				replace(win, m)
				length--
				continue
			}
			if rerr != nil {
				return rerr
			}
			replaceWith(win, m, b)
		}
	}

	return bw.Close()
}

// fillLookahead reads up to want bytes into win's lookahead buffer
// starting at index start, returning how many were read and whether
// input is already exhausted.
func fillLookahead(r io.Reader, win *Window, start, want uint) (length uint, eof bool) {
	for length < want {
		b, err := readByte(r)
		if err == io.EOF {
			return length, true
		}
		win.uncodedLookahead[(start+length)%MaxCoded] = b
		length++
	}
	return length, false
}

func readByte(r io.Reader) (byte, error) {
	var buf [1]byte
	n, err := r.Read(buf[:])
	if n == 1 {
		return buf[0], nil
	}
	if err == nil {
		err = io.EOF
	}
	return 0, err
}

// replace moves the byte currently at uncodedHead into the window (via
// the matcher's ReplaceChar hook so an index-maintaining finder stays in
// sync), without introducing a new input byte.
func replace(win *Window, m Matcher) {
	old := win.LookaheadByte(win.UncodedHead())
	m.ReplaceChar(win.WindowHead(), old)
	win.SetWindowByte(win.WindowHead(), old)
	win.windowHead = (win.windowHead + 1) % WindowSize
	win.uncodedHead = (win.uncodedHead + 1) % MaxCoded
}

// replaceWith is replace but also stages a freshly read input byte into
// the vacated lookahead slot.
func replaceWith(win *Window, m Matcher, next byte) {
	old := win.LookaheadByte(win.UncodedHead())
	m.ReplaceChar(win.WindowHead(), old)
	win.SetWindowByte(win.WindowHead(), old)
	win.uncodedLookahead[win.UncodedHead()] = next
	win.windowHead = (win.windowHead + 1) % WindowSize
	win.uncodedHead = (win.uncodedHead + 1) % MaxCoded
}
