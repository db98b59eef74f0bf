// Package testutil builds the byte sequences the dump tests feed through
// sources.
package testutil

// Run is a repeated byte.
type Run struct {
	B byte
	N int
}

// Repeat concatenates runs into one slice.
//
//	testutil.Repeat(testutil.Run{B: 0, N: 64}, testutil.Run{B: 1, N: 16})
func Repeat(runs ...Run) []byte {
	n := 0
	for _, r := range runs {
		n += r.N
	}
	out := make([]byte, 0, n)
	for _, r := range runs {
		for i := 0; i < r.N; i++ {
			out = append(out, r.B)
		}
	}
	return out
}

// Ascending returns n bytes counting up from start, wrapping at 256.
func Ascending(start byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = start + byte(i)
	}
	return out
}

// Iter wraps a slice as a pull iterator.
func Iter(b []byte) func() (byte, bool) {
	i := 0
	return func() (byte, bool) {
		if i >= len(b) {
			return 0, false
		}
		v := b[i]
		i++
		return v, true
	}
}
