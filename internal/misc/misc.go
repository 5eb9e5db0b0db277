package misc

import "golang.org/x/exp/constraints"

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// StringLimit clips s to at most n bytes, replacing the tail with "..."
// when anything was cut. Meant for keeping log lines readable.
func StringLimit(s string, n int) string {
	if n < 0 {
		return ""
	}
	if n <= 3 {
		return s[:Min(n, len(s))]
	}
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}

// BytesLimit is StringLimit for byte slices. The result never shares a
// backing array with bs when clipping happened, so bs stays intact.
func BytesLimit(bs []byte, n int) []byte {
	if n < 0 {
		return nil
	}
	if n <= 3 {
		return bs[:Min(n, len(bs))]
	}
	if len(bs) > n {
		clipped := append([]byte(nil), bs[:n-3]...)
		return append(clipped, "..."...)
	}
	return bs
}
