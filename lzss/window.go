package lzss

// Window holds the LZSS sliding dictionary and lookahead buffer. It is
// owned by the encoder or decoder for the duration of one codec
// operation and handed to a Matcher as a borrowed reference, rather than
// living as process-wide global state the way the source's
// slidingWindow/uncodedLookahead arrays do.
type Window struct {
	slidingWindow    [WindowSize]byte
	uncodedLookahead [MaxCoded]byte
	windowHead       uint
	uncodedHead      uint
}

// NewWindow returns a Window pre-filled with spaces, so that any offset
// into slidingWindow is valid even before real input has been seen.
func NewWindow() *Window {
	w := new(Window)
	w.Reset()
	return w
}

// Reset re-initializes the window to its start-of-stream state.
func (w *Window) Reset() {
	for i := range w.slidingWindow {
		w.slidingWindow[i] = spacePadByte
	}
	for i := range w.uncodedLookahead {
		w.uncodedLookahead[i] = 0
	}
	w.windowHead = 0
	w.uncodedHead = 0
}

// WindowHead is the index of the oldest byte in the dictionary, i.e. the
// position about to be overwritten by the next incoming byte.
func (w *Window) WindowHead() uint { return w.windowHead }

// UncodedHead is the index of the next byte to be coded.
func (w *Window) UncodedHead() uint { return w.uncodedHead }

// WindowByte returns slidingWindow[i mod WindowSize].
func (w *Window) WindowByte(i uint) byte { return w.slidingWindow[i%WindowSize] }

// LookaheadByte returns uncodedLookahead[i mod MaxCoded].
func (w *Window) LookaheadByte(i uint) byte { return w.uncodedLookahead[i%MaxCoded] }

// SetWindowByte mutates the dictionary directly; used by the decoder,
// which has no matcher index to keep synchronized.
func (w *Window) SetWindowByte(i uint, b byte) { w.slidingWindow[i%WindowSize] = b }
