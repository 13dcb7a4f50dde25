// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	hwyimage "github.com/ajroetker/go-chanscale/hwy/contrib/image"
)

var errUnknownFormat = errors.New("unknown output format")

// loadRGB decodes the image at path into 8-bit RGB, dropping alpha.
func loadRGB(path string) (*hwyimage.RGB, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	src, format, err := image.Decode(bufio.NewReader(file))
	if err != nil {
		return nil, "", fmt.Errorf("decoding %s: %w", path, err)
	}
	return toRGB(src), format, nil
}

func toRGB(src image.Image) *hwyimage.RGB {
	b := src.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)

	img := hwyimage.NewRGB(b.Dx(), b.Dy())
	for i := range img.Width * img.Height {
		copy(img.Pix[3*i:3*i+3], nrgba.Pix[4*i:4*i+3])
	}
	return img
}

func fromRGB(img *hwyimage.RGB) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for i := range img.Width * img.Height {
		copy(dst.Pix[4*i:4*i+3], img.Pix[3*i:3*i+3])
		dst.Pix[4*i+3] = 0xff
	}
	return dst
}

// encoderFor picks the encoder from the extension of path.
func encoderFor(path string, quality int) (func(io.Writer, image.Image) error, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".jpg", ".jpeg":
		return func(w io.Writer, m image.Image) error {
			return jpeg.Encode(w, m, &jpeg.Options{Quality: quality})
		}, nil
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, m image.Image) error {
			return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("%w %q", errUnknownFormat, ext)
	}
}

// saveRGB encodes img to path.
func saveRGB(path string, img *hwyimage.RGB, quality int) (err error) {
	encode, err := encoderFor(path, quality)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	w := bufio.NewWriter(file)
	if err := encode(w, fromRGB(img)); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return w.Flush()
}
