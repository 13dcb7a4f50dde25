//go:build !linux && arm64

package hwy

// HasSVE returns false where the vector length cannot be queried.
func HasSVE() bool {
	return false
}

func sveVectorBytes() int {
	return 0
}
