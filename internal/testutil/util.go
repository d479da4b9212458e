// Package testutil is a collection of testing helper methods shared across
// this module's package tests.
package testutil

// MustDecodeBitGen decodes a BitGen formatted string or panics.
func MustDecodeBitGen(s string) []byte {
	b, err := DecodeBitGen(s)
	if err != nil {
		panic(err)
	}
	return b
}
