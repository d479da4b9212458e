// Package huffman builds a minimum-redundancy prefix code from symbol
// frequencies: a frequency-ordered priority queue repeatedly merges its
// two smallest entries into a binary tree, and a depth-first walk of the
// finished tree emits one codeword per leaf.
//
// The resulting code is not canonical, and is not required to be — its
// exact bit pattern depends on merge order, which this package leaves
// unspecified beyond "non-decreasing by frequency, ties broken by
// insertion order". Any prefix code with the correct per-symbol bit
// lengths is an equally valid implementation of this algorithm.
package huffman

import "runtime"

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "huffman: " + string(e) }

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
