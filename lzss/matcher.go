package lzss

// Matcher is the pluggable match-finder contract consumed by the
// encoder. The core defines only this interface and a brute-force
// reference implementation; a hash-chain, suffix-tree, or
// externally-accelerated finder can be substituted without touching the
// encoder's state machine.
type Matcher interface {
	// Initialize prepares any auxiliary index over w. w is a borrowed
	// reference: Initialize must not retain it beyond the lifetime of
	// the encode operation that owns it.
	Initialize(w *Window) error

	// FindMatch returns the longest run of bytes starting anywhere in
	// the sliding window (read cyclically) that is a prefix of the
	// lookahead buffer starting at uncodedHead (also read cyclically).
	// length is 0 if no usable match exists and is never greater than
	// MaxCoded. Ties may be broken arbitrarily.
	FindMatch(windowHead, uncodedHead uint) (offset, length uint)

	// ReplaceChar notifies the matcher that w's byte at index has been
	// overwritten with replacement, so any auxiliary index can be kept
	// in sync with the mutation.
	ReplaceChar(index uint, replacement byte) error
}

// BruteForceMatcher is the reference Matcher: it keeps no auxiliary
// index and instead scans every candidate starting offset in the window
// on every call, comparing forward against the lookahead.
type BruteForceMatcher struct {
	w *Window
}

// NewBruteForceMatcher returns a Matcher with no setup cost and no
// index to maintain.
func NewBruteForceMatcher() *BruteForceMatcher {
	return &BruteForceMatcher{}
}

func (m *BruteForceMatcher) Initialize(w *Window) error {
	m.w = w
	return nil
}

func (m *BruteForceMatcher) FindMatch(windowHead, uncodedHead uint) (offset, length uint) {
	w := m.w
	var bestOffset, bestLength uint
	for start := uint(0); start < WindowSize; start++ {
		var l uint
		for l < MaxCoded && w.WindowByte(start+l) == w.LookaheadByte(uncodedHead+l) {
			l++
		}
		if l > bestLength {
			bestLength = l
			bestOffset = start
		}
	}
	return bestOffset, bestLength
}

func (m *BruteForceMatcher) ReplaceChar(index uint, replacement byte) error {
	return nil // no auxiliary index to maintain
}
