package lzss

import (
	"io"

	"github.com/dsnet/lzssh/bitio"
)

// DecodeLZSS decompresses all of input into output. A final partial byte
// of zero-padding in input is tolerated: the loop simply terminates once
// a flag-bit read hits EOF, which is the normal (not erroneous) way this
// loop ends.
func DecodeLZSS(input io.Reader, output io.Writer) (err error) {
	defer errRecover(&err)

	if input == nil || output == nil {
		return ErrNoEntity
	}

	br, err := bitio.WrapReader(input)
	if err != nil {
		return err
	}

	win := NewWindow()
	nextChar := uint(0)

	for {
		flag, ferr := br.GetBit()
		if ferr != nil {
			return nil // EOF on a flag bit is the normal loop exit
		}

		if flag == flagUncoded {
			c, cerr := br.GetChar()
			if cerr != nil {
				return nil
			}
			if _, werr := output.Write([]byte{c}); werr != nil {
				return werr
			}
			win.SetWindowByte(nextChar, c)
			nextChar = (nextChar + 1) % WindowSize
			continue
		}

		offset, oerr := br.GetBitsNum(OffsetBits, 4)
		if oerr != nil {
			return nil
		}
		rawLen, lerr := br.GetBitsNum(LengthBits, 4)
		if lerr != nil {
			return nil
		}
		length := uint(rawLen) + minEncLen

		staged := make([]byte, length)
		for i := uint(0); i < length; i++ {
			staged[i] = win.WindowByte(uint(offset) + i)
		}
		if _, werr := output.Write(staged); werr != nil {
			return werr
		}
		for i := uint(0); i < length; i++ {
			win.SetWindowByte(nextChar+i, staged[i])
		}
		nextChar = (nextChar + length) % WindowSize
	}
}
