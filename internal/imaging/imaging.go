// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package imaging wraps image decoding for the formats pdf-master accepts.
// Importing it registers the JPEG, PNG, WebP, and BMP decoders.
package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Probe checks that the file at path decodes as a supported image. It reads
// only the header.
func Probe(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, _, err := image.DecodeConfig(f); err != nil {
		return fmt.Errorf("decoding image header: %w", err)
	}
	return nil
}

// Load decodes the image at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// Flatten composites img onto a white background when it carries an alpha
// channel. PDF page images cannot hold per-pixel transparency, so partially
// transparent pixels are blended and fully transparent ones become white.
// Opaque images are returned unchanged.
func Flatten(img image.Image) image.Image {
	if op, ok := img.(interface{ Opaque() bool }); ok && op.Opaque() {
		return img
	}

	bounds := img.Bounds()
	flat := image.NewRGBA(bounds)
	draw.Draw(flat, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flat, bounds, img, bounds.Min, draw.Over)
	return flat
}
