package bitio

import (
	"io"
	"os"
)

// File is the byte-granular handle a BitFile packs bits onto. *os.File
// satisfies it directly; Wrap accepts anything else that does too.
type File interface {
	io.Reader
	io.Writer
	io.Closer
}

// file is kept as the unexported spelling used throughout this file.
type file = File

// readWriter adapts a separate io.Reader and io.Writer into a File with
// a no-op Close, for callers that only have one side of a stream (e.g.
// os.Stdin paired with os.Stdout).
type readWriter struct {
	r io.Reader
	w io.Writer
}

func (rw *readWriter) Read(p []byte) (int, error) {
	if rw.r == nil {
		return 0, io.EOF
	}
	return rw.r.Read(p)
}

func (rw *readWriter) Write(p []byte) (int, error) {
	if rw.w == nil {
		return 0, io.ErrClosedPipe
	}
	return rw.w.Write(p)
}

func (rw *readWriter) Close() error { return nil }

// WrapReader binds a read-only source to a new BitFile in Read mode.
func WrapReader(r io.Reader) (*BitFile, error) {
	if r == nil {
		return nil, ErrNoEntity
	}
	return Wrap(&readWriter{r: r}, Read)
}

// WrapWriter binds a write-only sink to a new BitFile in Write mode.
func WrapWriter(w io.Writer) (*BitFile, error) {
	if w == nil {
		return nil, ErrNoEntity
	}
	return Wrap(&readWriter{w: w}, Write)
}

// BitFile is a buffered, MSB-first bit stream atop a byte-granular file.
//
// bitBuffer and bitCount behave differently depending on mode: while
// writing, bitBuffer accumulates bits left-shifted into place and
// bitCount counts how many valid bits it holds (0..7) before the next
// flush; while reading, bitBuffer holds the most recently fetched whole
// byte and bitCount is how many of its high-order bits remain
// unconsumed. A BitFile must be released through exactly one of Close or
// ToFile.
type BitFile struct {
	f         file
	mode      Mode
	bitBuffer byte
	bitCount  uint
	num       numTransfer
}

// Open creates or opens name according to mode and returns a handle
// wrapping it.
func Open(name string, mode Mode) (*BitFile, error) {
	var flag int
	var perm os.FileMode = 0666
	switch mode {
	case Read:
		flag = os.O_RDONLY
	case Write:
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case Append:
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	default:
		return nil, Error("invalid mode")
	}
	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		return nil, ErrFileOpen
	}
	return Wrap(f, mode)
}

// Wrap binds an already-open file handle to a new BitFile.
func Wrap(f file, mode Mode) (*BitFile, error) {
	if f == nil {
		return nil, ErrNoEntity
	}
	return &BitFile{f: f, mode: mode, num: bindNumTransfer()}, nil
}

// Close flushes any residual bits (write/append modes only) and closes
// the underlying file.
func (bf *BitFile) Close() (err error) {
	defer errRecover(&err)
	if bf == nil || bf.f == nil {
		return ErrEndOfFile
	}
	if bf.mode != Read {
		if err := bf.FlushOutput(false); err != nil {
			return err
		}
	}
	err = bf.f.Close()
	bf.f = nil
	return err
}

// ToFile flushes any residual bits (write/append modes only) and
// surrenders the underlying file handle without closing it.
func (bf *BitFile) ToFile() (file, error) {
	if bf == nil || bf.f == nil {
		return nil, ErrEndOfFile
	}
	if bf.mode != Read {
		if err := bf.FlushOutput(false); err != nil {
			return nil, err
		}
	}
	f := bf.f
	bf.f = nil
	return f, nil
}

// ByteAlign returns the current bitBuffer and resets the buffer. While
// writing with bits pending, it flushes them exactly like Close (padding
// with zeros) and returns that padded byte instead; while reading it
// discards the remaining unconsumed bits of the current byte.
func (bf *BitFile) ByteAlign() (byte, error) {
	if bf == nil || bf.f == nil {
		return 0, ErrEndOfFile
	}
	b := bf.bitBuffer
	if bf.mode != Read {
		if bf.bitCount > 0 {
			b = bf.bitBuffer << (8 - bf.bitCount)
			if _, err := bf.f.Write([]byte{b}); err != nil {
				return 0, ErrEndOfFile
			}
		}
	}
	bf.bitBuffer, bf.bitCount = 0, 0
	return b, nil
}

// FlushOutput left-shifts any pending bits into place and emits one
// final byte. If onesFill is true the spare low-order bits are set to 1
// instead of 0. Write/append modes only.
func (bf *BitFile) FlushOutput(onesFill bool) error {
	if bf == nil || bf.f == nil {
		return ErrEndOfFile
	}
	if bf.bitCount == 0 {
		return nil
	}
	b := bf.bitBuffer << (8 - bf.bitCount)
	if onesFill {
		b |= 0xFF >> bf.bitCount
	}
	if _, err := bf.f.Write([]byte{b}); err != nil {
		return ErrEndOfFile
	}
	bf.bitBuffer, bf.bitCount = 0, 0
	return nil
}

func (bf *BitFile) readByte() (byte, error) {
	var buf [1]byte
	n, err := bf.f.Read(buf[:])
	if n == 1 {
		return buf[0], nil
	}
	_ = err
	return 0, ErrEndOfFile
}

// GetBit reads one bit, MSB-first, refilling from the file whenever the
// buffer is empty.
func (bf *BitFile) GetBit() (byte, error) {
	if bf == nil || bf.f == nil {
		return 0, ErrEndOfFile
	}
	if bf.bitCount == 0 {
		b, err := bf.readByte()
		if err != nil {
			return 0, err
		}
		bf.bitBuffer = b
		bf.bitCount = 8
	}
	bf.bitCount--
	return (bf.bitBuffer >> bf.bitCount) & 0x01, nil
}

// PutBit writes one bit, MSB-first, emitting a byte once eight bits have
// accumulated.
func (bf *BitFile) PutBit(bit byte) error {
	if bf == nil || bf.f == nil {
		return ErrEndOfFile
	}
	bf.bitBuffer = (bf.bitBuffer << 1) | (bit & 0x01)
	bf.bitCount++
	if bf.bitCount == 8 {
		if _, err := bf.f.Write([]byte{bf.bitBuffer}); err != nil {
			return ErrEndOfFile
		}
		bf.bitBuffer, bf.bitCount = 0, 0
	}
	return nil
}

// GetChar reads one byte. When the buffer is empty this is a plain byte
// read; otherwise the result is assembled from the high 8-bitCount bits
// of a freshly read byte concatenated with the low bitCount bits still
// held in the buffer. bitCount is unchanged by the call.
func (bf *BitFile) GetChar() (byte, error) {
	if bf == nil || bf.f == nil {
		return 0, ErrEndOfFile
	}
	fresh, err := bf.readByte()
	if err != nil {
		return 0, err
	}
	if bf.bitCount == 0 {
		return fresh, nil
	}
	result := (fresh >> bf.bitCount) | (bf.bitBuffer << (8 - bf.bitCount))
	bf.bitBuffer = fresh
	return result, nil
}

// PutChar writes one byte, preserving the symmetric partially filled
// buffer semantics of GetChar.
func (bf *BitFile) PutChar(c byte) error {
	if bf == nil || bf.f == nil {
		return ErrEndOfFile
	}
	if bf.bitCount == 0 {
		_, err := bf.f.Write([]byte{c})
		if err != nil {
			return ErrEndOfFile
		}
		return nil
	}
	out := (c >> bf.bitCount) | (bf.bitBuffer << (8 - bf.bitCount))
	if _, err := bf.f.Write([]byte{out}); err != nil {
		return ErrEndOfFile
	}
	bf.bitBuffer = c
	return nil
}

// GetBits reads count bits MSB-first into a byte array. Whole bytes are
// read through GetChar; any tail bits are read one at a time and
// left-shifted into the high-order positions of the final byte.
func (bf *BitFile) GetBits(count uint) ([]byte, error) {
	nbytes := (count + 7) / 8
	out := make([]byte, nbytes)
	full, rem := count/8, count%8
	for i := uint(0); i < full; i++ {
		c, err := bf.GetChar()
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	if rem > 0 {
		var b byte
		for i := uint(0); i < rem; i++ {
			bit, err := bf.GetBit()
			if err != nil {
				return nil, err
			}
			b = (b << 1) | bit
		}
		out[full] = b << (8 - rem)
	}
	return out, nil
}

// PutBits writes count bits MSB-first from bits. Whole bytes are written
// through PutChar; any tail bits (the high-order bits of the final
// source byte) are written one at a time.
func (bf *BitFile) PutBits(bits []byte, count uint) error {
	full, rem := count/8, count%8
	for i := uint(0); i < full; i++ {
		if err := bf.PutChar(bits[i]); err != nil {
			return err
		}
	}
	if rem > 0 {
		b := bits[full]
		for i := uint(0); i < rem; i++ {
			if err := bf.PutBit((b >> 7) & 0x01); err != nil {
				return err
			}
			b <<= 1
		}
	}
	return nil
}

// GetBitsNum reads count bits (count <= size*8) into a machine integer,
// reproducing the same value regardless of host byte order.
func (bf *BitFile) GetBitsNum(count, size uint) (uint64, error) {
	if bf == nil || bf.f == nil {
		return 0, ErrEndOfFile
	}
	return bf.num.getBitsNum(bf, count, size)
}

// PutBitsNum writes the low count bits of value (count <= size*8),
// reproducing the same wire bytes regardless of host byte order.
func (bf *BitFile) PutBitsNum(value uint64, count, size uint) error {
	if bf == nil || bf.f == nil {
		return ErrEndOfFile
	}
	return bf.num.putBitsNum(bf, value, count, size)
}
