package image

// RGB is an 8-bit image with interleaved R, G, B samples, stored
// row-major without padding: pixel (x, y) starts at Pix[3*(y*Width+x)].
type RGB struct {
	Pix    []uint8
	Width  int
	Height int
}

// NewRGB allocates a black width x height image. Non-positive
// dimensions give an empty image.
func NewRGB(width, height int) *RGB {
	if width <= 0 || height <= 0 {
		return &RGB{}
	}
	return &RGB{
		Pix:    make([]uint8, width*height*3),
		Width:  width,
		Height: height,
	}
}

// Validate reports whether len(Pix) matches the dimensions.
func (img *RGB) Validate() error {
	return CheckShape(len(img.Pix), img.Width, img.Height)
}

// At returns the pixel at (x, y), or black outside the image.
func (img *RGB) At(x, y int) (r, g, b uint8) {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return 0, 0, 0
	}
	i := 3 * (y*img.Width + x)
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2]
}

// Set sets the pixel at (x, y). Coordinates outside the image are ignored.
func (img *RGB) Set(x, y int, r, g, b uint8) {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return
	}
	i := 3 * (y*img.Width + x)
	img.Pix[i], img.Pix[i+1], img.Pix[i+2] = r, g, b
}

// Clone creates a deep copy of the image.
func (img *RGB) Clone() *RGB {
	clone := &RGB{Width: img.Width, Height: img.Height}
	if img.Pix != nil {
		clone.Pix = make([]uint8, len(img.Pix))
		copy(clone.Pix, img.Pix)
	}
	return clone
}
