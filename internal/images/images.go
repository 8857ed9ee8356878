// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package images implements the image-to-PDF driver: one page per surviving
// image, sized at a fixed output resolution.
package images

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/pdiddy/pdf-master/internal/imaging"
	"github.com/pdiddy/pdf-master/pkg/types"
)

// outputDPI maps pixel dimensions to page dimensions; gofpdf works in
// points (72 per inch).
const outputDPI = 100.0

const jpegQuality = 92

// page holds one image re-encoded and measured for embedding.
type page struct {
	data   []byte
	wd, ht float64 // points
}

// preparePage loads, flattens, and re-encodes one image. Flattening merges
// any alpha channel onto white first; JPEG carries no transparency.
func preparePage(path string) (page, error) {
	img, err := imaging.Load(path)
	if err != nil {
		return page{}, err
	}
	img = imaging.Flatten(img)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return page{}, fmt.Errorf("re-encoding image: %w", err)
	}

	b := img.Bounds()
	return page{
		data: buf.Bytes(),
		wd:   float64(b.Dx()) * 72.0 / outputDPI,
		ht:   float64(b.Dy()) * 72.0 / outputDPI,
	}, nil
}

// Convert builds a single multi-page PDF from the named images under root,
// first surviving image first. Images that fail to load are reported to w
// and skipped; with zero survivors nothing is written. A failed save removes
// the partial output.
func Convert(root string, files []string, output string, w io.Writer) (types.Summary, error) {
	var pages []page
	failed := 0

	for _, f := range files {
		p, err := preparePage(filepath.Join(root, f))
		if err != nil {
			fmt.Fprintf(w, "failed %s: %v\n", f, err)
			failed++
			continue
		}
		pages = append(pages, p)
		fmt.Fprintf(w, "processed: %s\n", f)
	}

	sum := types.Summary{Succeeded: len(files) - failed, Failed: failed}

	if len(pages) == 0 {
		fmt.Fprintln(w, "warning: no valid images to convert, nothing written")
		return sum, nil
	}

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pages[0].wd, Ht: pages[0].ht},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)

	opts := gofpdf.ImageOptions{ImageType: "JPEG"}
	for i, p := range pages {
		doc.AddPageFormat("P", gofpdf.SizeType{Wd: p.wd, Ht: p.ht})
		name := fmt.Sprintf("page-%d", i)
		doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(p.data))
		doc.ImageOptions(name, 0, 0, p.wd, p.ht, false, opts, 0, "")
	}

	outPath := filepath.Join(root, output)
	if err := doc.OutputFileAndClose(outPath); err != nil {
		os.Remove(outPath)
		return sum, fmt.Errorf("writing %s: %w", output, err)
	}

	fmt.Fprintf(w, "\ncreated: %s\n", output)
	fmt.Fprintf(w, "%d images converted\n", len(pages))
	fmt.Fprintf(w, "%d succeeded, %d failed\n", sum.Succeeded, sum.Failed)
	return sum, nil
}
