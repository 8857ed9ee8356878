// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package office implements the office-to-PDF driver. One Converter serves
// the Word, Excel, and PowerPoint categories; each input file goes through a
// headless office-suite subprocess into a private temp directory, and the
// per-file PDFs are merged into the final output.
package office

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pdf-master/internal/merge"
	"github.com/pdiddy/pdf-master/pkg/types"
)

// executor abstracts subprocess execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec. Converter output
// is discarded; the subprocess has nothing to say on success.
type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osExecutor) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}

var defaultExec executor = osExecutor{}

// Converter invokes an external office-suite binary in headless batch mode.
type Converter struct {
	bin  string
	exec executor
}

// NewConverter returns a Converter for the given binary, verifying it exists
// on PATH first.
func NewConverter(bin string) (*Converter, error) {
	return newConverter(bin, defaultExec)
}

func newConverter(bin string, e executor) (*Converter, error) {
	if _, err := e.LookPath(bin); err != nil {
		return nil, fmt.Errorf("office converter %q not found on PATH: %w", bin, err)
	}
	return &Converter{bin: bin, exec: e}, nil
}

// convertOne runs the converter for a single input file and returns the path
// of the PDF it produced in outDir. A zero exit with no output file is still
// a failure; some converters report success for documents they cannot read.
func (c *Converter) convertOne(inputPath, outDir string) (string, error) {
	err := c.exec.Run(c.bin, "--headless", "--convert-to", "pdf", "--outdir", outDir, inputPath)
	if err != nil {
		return "", fmt.Errorf("conversion failed: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ".pdf"
	produced := filepath.Join(outDir, base)
	if _, err := os.Stat(produced); err != nil {
		return "", fmt.Errorf("conversion failed: converter produced no output")
	}
	return produced, nil
}

// Convert converts the named cat files under root and merges the results
// into output, in input order. Per-file subprocess failures are reported to
// w, counted, and skipped. The temp directory holding the intermediate PDFs
// is removed on every exit path. With zero produced PDFs nothing is written.
func (c *Converter) Convert(root string, cat types.Category, files []string, output string, w io.Writer) (types.Summary, error) {
	tmpDir, err := os.MkdirTemp("", "pdf-master-office-")
	if err != nil {
		return types.Summary{Failed: len(files)}, fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	acc := merge.NewAccumulator()
	failed := 0

	for _, f := range files {
		produced, err := c.convertOne(filepath.Join(root, f), tmpDir)
		if err == nil {
			err = acc.Append(produced)
		}
		if err != nil {
			fmt.Fprintf(w, "failed %s: %v\n", f, err)
			failed++
			continue
		}
		fmt.Fprintf(w, "converted: %s\n", f)
	}

	sum := types.Summary{Succeeded: len(files) - failed, Failed: failed}

	if acc.Len() == 0 {
		fmt.Fprintf(w, "warning: no %s files converted, nothing written\n", cat.Label)
		return sum, nil
	}

	if err := acc.WriteFile(filepath.Join(root, output)); err != nil {
		return sum, fmt.Errorf("writing %s: %w", output, err)
	}

	fmt.Fprintf(w, "\ncreated: %s\n", output)
	fmt.Fprintf(w, "%d succeeded, %d failed\n", sum.Succeeded, sum.Failed)
	return sum, nil
}
