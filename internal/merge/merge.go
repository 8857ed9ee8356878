// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge implements the PDF merge driver and the page accumulator
// shared with the office driver.
package merge

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/pdf-master/pkg/types"
)

// Accumulator collects readable PDFs in append order and writes them as one
// merged document. Appending verifies the file parses; unreadable files are
// rejected without affecting pages already accepted. An Accumulator is
// written at most once and holds no open handles between calls.
type Accumulator struct {
	conf  *model.Configuration
	paths []string
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{conf: model.NewDefaultConfiguration()}
}

// Append adds the PDF at path to the merge order after verifying it parses.
func (a *Accumulator) Append(path string) error {
	if err := api.ValidateFile(path, a.conf); err != nil {
		return fmt.Errorf("unreadable PDF: %w", err)
	}
	a.paths = append(a.paths, path)
	return nil
}

// Len returns the number of accepted files.
func (a *Accumulator) Len() int {
	return len(a.paths)
}

// WriteFile merges the accepted files into outPath. A failed write removes
// whatever was partially produced so no broken output is left behind.
func (a *Accumulator) WriteFile(outPath string) error {
	if err := api.MergeCreateFile(a.paths, outPath, false, a.conf); err != nil {
		os.Remove(outPath)
		return err
	}
	return nil
}

// Files merges the named PDFs under root into output, in list order. Files
// that fail to append are reported to w and skipped; the summary counts over
// the original list. A failed final write is returned as an error and claims
// no success. With zero readable inputs nothing is written.
func Files(root string, files []string, output string, w io.Writer) (types.Summary, error) {
	acc := NewAccumulator()
	failed := 0

	for _, f := range files {
		if err := acc.Append(filepath.Join(root, f)); err != nil {
			fmt.Fprintf(w, "failed %s: %v\n", f, err)
			failed++
			continue
		}
		fmt.Fprintf(w, "added: %s\n", f)
	}

	sum := types.Summary{Succeeded: len(files) - failed, Failed: failed}

	if acc.Len() == 0 {
		fmt.Fprintln(w, "warning: no readable PDFs to merge, nothing written")
		return sum, nil
	}

	if err := acc.WriteFile(filepath.Join(root, output)); err != nil {
		return sum, fmt.Errorf("writing %s: %w", output, err)
	}

	fmt.Fprintf(w, "\ncreated: %s\n", output)
	fmt.Fprintf(w, "%d succeeded, %d failed\n", sum.Succeeded, sum.Failed)
	return sum, nil
}
