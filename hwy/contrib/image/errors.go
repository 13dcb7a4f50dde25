package image

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrShapeMismatch reports a pixel buffer whose length is not
	// width*height*3.
	ErrShapeMismatch = errors.New("image: buffer length does not match width*height*3")

	// ErrLanes reports a lane count the chosen strategy cannot work with.
	ErrLanes = errors.New("image: lane count too small")

	// ErrUnknownStrategy reports a strategy name or value that is not one
	// of scalar, planar or interleaved.
	ErrUnknownStrategy = errors.New("image: unknown strategy")
)

// ShapeError describes a rejected buffer. It matches ErrShapeMismatch
// with errors.Is.
type ShapeError struct {
	Width, Height int
	Len           int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("image: %d-byte buffer does not hold %dx%d RGB pixels", e.Len, e.Width, e.Height)
}

// Is reports whether target is ErrShapeMismatch.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// CheckShape returns a *ShapeError unless n == width*height*3.
func CheckShape(n, width, height int) error {
	if width < 0 || height < 0 ||
		(width > 0 && height > math.MaxInt/3/width) ||
		width*height*3 != n {
		return &ShapeError{Width: width, Height: height, Len: n}
	}
	return nil
}
