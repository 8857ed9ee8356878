// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared domain types for pdf-master: input file
// categories with their accepted extension sets, and driver run summaries.
package types

import "strings"

// CategoryKind selects the structural check the validator applies to a file.
type CategoryKind int

const (
	// KindPDF files are parsed by the PDF library before acceptance.
	KindPDF CategoryKind = iota
	// KindImage files are decoded by the image library before acceptance.
	KindImage
	// KindOffice files are accepted on extension alone; no local parser exists.
	KindOffice
)

// Category describes one class of convertible input file.
type Category struct {
	// Kind selects the structural check applied during validation.
	Kind CategoryKind

	// Label is the human-readable name used in prompts and error messages
	// (e.g. "Word").
	Label string

	// Extensions is the accepted suffix set, lowercase with leading dot.
	Extensions []string

	// DefaultOutput is the output filename offered when the user enters none.
	DefaultOutput string
}

// Accepts reports whether name carries one of the category's extensions,
// compared case-insensitively.
func (c Category) Accepts(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range c.Extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

var (
	// PDF is the category for merge inputs.
	PDF = Category{Kind: KindPDF, Label: "PDF", Extensions: []string{".pdf"}, DefaultOutput: "merged.pdf"}

	// Image is the category for image-to-PDF inputs.
	Image = Category{Kind: KindImage, Label: "image", Extensions: []string{".jpg", ".jpeg", ".png", ".webp", ".bmp"}, DefaultOutput: "images.pdf"}

	// Word, Excel, and PowerPoint are the office-document categories. Each
	// carries its own extension set and default output name; the office
	// driver is generic over them.
	Word       = Category{Kind: KindOffice, Label: "Word", Extensions: []string{".docx", ".doc"}, DefaultOutput: "word_merged.pdf"}
	Excel      = Category{Kind: KindOffice, Label: "Excel", Extensions: []string{".xlsx", ".xls"}, DefaultOutput: "excel_merged.pdf"}
	PowerPoint = Category{Kind: KindOffice, Label: "PowerPoint", Extensions: []string{".pptx", ".ppt"}, DefaultOutput: "powerpoint_merged.pdf"}
)

// Summary holds the outcome of one driver run, counted over the original
// input list. It is printed once and discarded.
type Summary struct {
	Succeeded int
	Failed    int
}

// Total returns the number of inputs processed.
func (s Summary) Total() int {
	return s.Succeeded + s.Failed
}

// HasFailures reports whether any input failed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}
