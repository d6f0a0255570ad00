package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
// Reused elements keep their previous contents.
func EnsureLen[T any](buf []T, n int) []T {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]T, n)
}

// Widen copies float32 samples into dst as float64 and returns dst resized to len(src).
func Widen(dst []float64, src []float32) []float64 {
	dst = EnsureLen(dst, len(src))
	for i, v := range src {
		dst[i] = float64(v)
	}
	return dst
}
