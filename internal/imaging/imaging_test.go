// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package imaging

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeImage(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".png":
		err = png.Encode(f, img)
	case ".jpg":
		err = jpeg.Encode(f, img, nil)
	default:
		t.Fatalf("unsupported test extension: %s", path)
	}
	if err != nil {
		t.Fatal(err)
	}
}

func TestProbe(t *testing.T) {
	dir := t.TempDir()

	writeImage(t, filepath.Join(dir, "ok.png"), image.NewRGBA(image.Rect(0, 0, 2, 2)))
	writeImage(t, filepath.Join(dir, "ok.jpg"), image.NewRGBA(image.Rect(0, 0, 2, 2)))
	if err := os.WriteFile(filepath.Join(dir, "bad.png"), []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Probe(filepath.Join(dir, "ok.png")); err != nil {
		t.Errorf("valid png: %v", err)
	}
	if err := Probe(filepath.Join(dir, "ok.jpg")); err != nil {
		t.Errorf("valid jpeg: %v", err)
	}
	if err := Probe(filepath.Join(dir, "bad.png")); err == nil {
		t.Error("expected error for garbage file")
	}
	if err := Probe(filepath.Join(dir, "absent.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "ok.png"), image.NewRGBA(image.Rect(0, 0, 8, 6)))

	img, err := Load(filepath.Join(dir, "ok.png"))
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds(); got.Dx() != 8 || got.Dy() != 6 {
		t.Errorf("bounds = %v, want 8x6", got)
	}
}

func TestFlatten_TransparentPixelsBecomeWhite(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.NRGBA{R: 255, A: 255})
	src.Set(1, 0, color.NRGBA{A: 0}) // fully transparent

	flat := Flatten(src)

	r, g, b, a := flat.At(1, 0).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("transparent pixel = %v %v %v %v, want opaque white", r, g, b, a)
	}
	r, _, _, _ = flat.At(0, 0).RGBA()
	if r != 0xffff {
		t.Errorf("opaque red pixel lost its red channel: %v", r)
	}
}

func TestFlatten_OpaqueImageUnchanged(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.Set(x, y, color.RGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}

	if got := Flatten(src); got != image.Image(src) {
		t.Error("opaque image should be returned as-is")
	}
}
