package dictionary

import (
	"fmt"
	"unicode/utf16"
)

// hash maps key to a bucket index in [0, buckets).
//
// The accumulator is a wrapping int32 fed with UTF-16 code units, so the
// placement matches a 32-bit signed `h = 31*h + c` on any host.
func hash(key string, buckets int) int {
	var h int32
	for _, r := range key {
		if r >= 0x10000 {
			hi, lo := utf16.EncodeRune(r)
			h = 31*h + int32(hi)
			h = 31*h + int32(lo)
			continue
		}
		h = 31*h + int32(r)
	}

	// Widen before negating: -math.MinInt32 does not fit in an int32.
	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return int(abs % int64(buckets))
}

// NextPrime returns the smallest prime strictly greater than n.
// It panics when no such prime fits in an int.
func NextPrime(n int) int {
	candidate := n + 1
	if candidate < n {
		panic(fmt.Sprintf("no prime above %d fits in an int", n))
	}
	if candidate < 2 {
		candidate = 2
	}
	for !IsPrime(candidate) {
		candidate++
		if candidate < 0 {
			panic(fmt.Sprintf("no prime above %d fits in an int", n))
		}
	}
	return candidate
}

// IsPrime reports whether n is prime using trial division up to sqrt(n).
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d <= n/d; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}
