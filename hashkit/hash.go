// Package hashkit supplies ready-made hash, equality, and storage-identity
// functions for chainmap configurations.
package hashkit

import (
	"bytes"
	"encoding/binary"
	"math/bits"
	"unsafe"

	"golang.org/x/crypto/sha3"
)

///////////////////////////////////////////////////////////////////////////////
// djb2 — Default String Hashing
///////////////////////////////////////////////////////////////////////////////

// djb2 seed; each byte folds in as hash*33 + c.
const djb2Seed = 5381

// String hashes a string with djb2. Deterministic, cheap, and good enough
// for non-adversarial keys; pair it with Equal[string].
//
//go:inline
func String(s string) uint64 {
	h := uint64(djb2Seed)
	for i := 0; i < len(s); i++ {
		h = (h << 5) + h + uint64(s[i])
	}
	return h
}

// Bytes hashes a byte slice with djb2; pair it with EqualBytes.
//
//go:inline
func Bytes(b []byte) uint64 {
	h := uint64(djb2Seed)
	for _, c := range b {
		h = (h << 5) + h + uint64(c)
	}
	return h
}

///////////////////////////////////////////////////////////////////////////////
// xxh-Style Mixing — Integer Keys & Alloc-Free String Path
///////////////////////////////////////////////////////////////////////////////

const (
	prime64_1 = 0x9E3779B185EBCA87
	prime64_2 = 0xC2B2AE3D27D4EB4F
)

// avalanche is the xxh finalizer: shift-xor cascade through both primes so
// every input bit disturbs every output bit.
//
//go:inline
func avalanche(h uint64) uint64 {
	h ^= h >> 33
	h *= prime64_2
	h ^= h >> 29
	h *= prime64_1
	h ^= h >> 32
	return h
}

// Uint64 hashes an integer key. Raw integers cluster under modulo bucket
// selection, so they get the full avalanche rather than identity.
//
//go:inline
func Uint64(x uint64) uint64 { return avalanche(x * prime64_1) }

// Int hashes a signed integer key; pair it with Equal[int].
//
//go:inline
func Int(x int) uint64 { return Uint64(uint64(x)) }

// StringXX hashes a string with an xxh-style word mix, reading the backing
// array in place. Stronger bucket spread than djb2 at similar cost on
// word-sized chunks.
//
//go:inline
func StringXX(s string) uint64 {
	n := len(s)
	h := uint64(n) * prime64_1
	p := unsafe.Pointer(unsafe.StringData(s))

	for rem := n; rem >= 8; rem -= 8 {
		v := *(*uint64)(p)
		p = unsafe.Add(p, 8)
		h ^= bits.RotateLeft64(v*prime64_2, 31)
		h = bits.RotateLeft64(h, 27) * prime64_1
	}
	if tail := n & 7; tail != 0 {
		var t uint64
		for i := 0; i < tail; i++ {
			t |= uint64(*(*byte)(unsafe.Add(p, i))) << (8 * i)
		}
		h ^= bits.RotateLeft64(t*prime64_2, 11)
		h = bits.RotateLeft64(h, 7) * prime64_1
	}
	return avalanche(h)
}

///////////////////////////////////////////////////////////////////////////////
// SHA3 — Flood-Resistant Option
///////////////////////////////////////////////////////////////////////////////

// StringSHA3 hashes a string through SHA3-256 and folds the first eight
// digest bytes into the result. Use it when keys arrive from untrusted
// input and bucket flooding matters; it allocates and costs far more than
// the mixers above.
func StringSHA3(s string) uint64 {
	d := sha3.Sum256([]byte(s))
	return binary.LittleEndian.Uint64(d[:8])
}

///////////////////////////////////////////////////////////////////////////////
// Equality & Storage Identity
///////////////////////////////////////////////////////////////////////////////

// Equal returns the == equality function for any comparable key type.
func Equal[T comparable]() func(a, b T) bool {
	return func(a, b T) bool { return a == b }
}

// EqualBytes is content equality for byte-slice keys.
func EqualBytes(a, b []byte) bool { return bytes.Equal(a, b) }

// SameString reports whether two strings share the same backing array.
// ⚠️ This is storage identity, not content equality: two equal strings from
// separate allocations report false. Intended for chainmap Config.SameKey.
//
//go:inline
func SameString(a, b string) bool {
	return len(a) == len(b) && unsafe.StringData(a) == unsafe.StringData(b)
}
