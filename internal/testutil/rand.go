package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Rand is a deterministic pseudo-random generator whose output is stable
// across Go versions, unlike math/rand's algorithm, which the standard
// library does not guarantee to keep fixed.
type Rand struct {
	block cipher.Block
	ctr   [aes.BlockSize]byte
}

// NewRand returns a generator seeded by seed.
func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	block, _ := aes.NewCipher(key[:])
	return &Rand{block: block}
}

func (r *Rand) next() [aes.BlockSize]byte {
	var out [aes.BlockSize]byte
	r.block.Encrypt(out[:], r.ctr[:])
	for i := len(r.ctr) - 1; i >= 0; i-- {
		r.ctr[i]++
		if r.ctr[i] != 0 {
			break
		}
	}
	return out
}

// Intn returns a pseudo-random int in [0, n).
func (r *Rand) Intn(n int) int {
	out := r.next()
	var x int64
	for i := 0; i < 8; i++ {
		x |= int64(out[i]) << (8 * uint(i))
	}
	if x < 0 {
		x = -x
	}
	r2 := x % int64(n)
	if r2 < 0 {
		r2 = -r2 // only when x was math.MinInt64, which negation leaves negative
	}
	return int(r2)
}

// Bytes returns n pseudo-random bytes.
func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, 0, n)
	for len(b) < n {
		out := r.next()
		b = append(b, out[:]...)
	}
	return b[:n]
}

// Perm returns a pseudo-random permutation of [0, n).
func (r *Rand) Perm(n int) []int {
	m := make([]int, n)
	for i := 0; i < n; i++ {
		j := r.Intn(i + 1)
		m[i] = m[j]
		m[j] = i
	}
	return m
}
