//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures run the portable kernels with a nominal
	// 16-byte vector.
	setLevel(DispatchScalar, 16)
	applyWidthOverride()
}

// HasSVE returns false outside arm64.
func HasSVE() bool {
	return false
}
