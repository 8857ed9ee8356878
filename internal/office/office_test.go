// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package office

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/pdiddy/pdf-master/pkg/types"
)

// fakeExecutor simulates the office-suite binary. Run writes a real PDF
// into the requested outdir unless the input is listed in fail or silent.
type fakeExecutor struct {
	bins    map[string]bool
	fail    map[string]bool // input base name -> non-zero exit
	silent  map[string]bool // input base name -> zero exit, no output
	pdf     []byte
	outDirs []string
}

func (f *fakeExecutor) LookPath(file string) (string, error) {
	if f.bins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (f *fakeExecutor) Run(name string, args ...string) error {
	// Expected shape: --headless --convert-to pdf --outdir <dir> <input>
	if len(args) != 6 || args[0] != "--headless" || args[1] != "--convert-to" || args[2] != "pdf" || args[3] != "--outdir" {
		return errors.New("unexpected arguments: " + strings.Join(args, " "))
	}
	outDir, input := args[4], args[5]
	f.outDirs = append(f.outDirs, outDir)

	base := filepath.Base(input)
	if f.fail[base] {
		return errors.New("exit status 1")
	}
	if f.silent[base] {
		return nil
	}
	produced := strings.TrimSuffix(base, filepath.Ext(base)) + ".pdf"
	return os.WriteFile(filepath.Join(outDir, produced), f.pdf, 0o644)
}

// onePagePDF returns the bytes of a minimal valid PDF.
func onePagePDF(t *testing.T) []byte {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Arial", "", 12)
	doc.Cell(40, 10, "converted")
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("office doc"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNewConverter_BinaryMissing(t *testing.T) {
	_, err := newConverter("soffice", &fakeExecutor{})
	if err == nil {
		t.Fatal("expected error when binary is absent")
	}
	if !strings.Contains(err.Error(), "soffice") {
		t.Errorf("error should name the binary: %v", err)
	}
}

func TestConvert_PartialFailure(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.docx", "b.docx", "c.docx"} {
		touch(t, filepath.Join(root, name))
	}

	exec := &fakeExecutor{
		bins: map[string]bool{"soffice": true},
		fail: map[string]bool{"b.docx": true},
		pdf:  onePagePDF(t),
	}
	conv, err := newConverter("soffice", exec)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	sum, err := conv.Convert(root, types.Word, []string{"a.docx", "b.docx", "c.docx"}, "word_merged.pdf", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sum.Succeeded != 2 || sum.Failed != 1 {
		t.Errorf("summary = %+v, want 2/1", sum)
	}
	outPath := filepath.Join(root, "word_merged.pdf")
	if n, err := api.PageCountFile(outPath); err != nil || n != 2 {
		t.Errorf("merged page count = %d (%v), want 2", n, err)
	}
	if !strings.Contains(out.String(), "2 succeeded, 1 failed") {
		t.Errorf("missing summary line in %q", out.String())
	}

	// The private temp directory must be gone after the run.
	for _, dir := range exec.outDirs {
		if _, err := os.Stat(dir); !os.IsNotExist(err) {
			t.Errorf("temp directory %s still exists", dir)
		}
	}
}

func TestConvert_SilentConverterFailure(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.xlsx"))

	exec := &fakeExecutor{
		bins:   map[string]bool{"soffice": true},
		silent: map[string]bool{"a.xlsx": true},
	}
	conv, err := newConverter("soffice", exec)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	sum, err := conv.Convert(root, types.Excel, []string{"a.xlsx"}, "excel_merged.pdf", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sum.Failed != 1 {
		t.Errorf("zero-exit with no output should count as failure, got %+v", sum)
	}
	if !strings.Contains(out.String(), "produced no output") {
		t.Errorf("missing silent-failure reason in %q", out.String())
	}
}

func TestConvert_AllFailWritesNothing(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.pptx"))
	touch(t, filepath.Join(root, "b.pptx"))

	exec := &fakeExecutor{
		bins: map[string]bool{"soffice": true},
		fail: map[string]bool{"a.pptx": true, "b.pptx": true},
	}
	conv, err := newConverter("soffice", exec)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	sum, err := conv.Convert(root, types.PowerPoint, []string{"a.pptx", "b.pptx"}, "powerpoint_merged.pdf", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sum.Succeeded != 0 || sum.Failed != 2 {
		t.Errorf("summary = %+v, want 0/2", sum)
	}
	if _, err := os.Stat(filepath.Join(root, "powerpoint_merged.pdf")); !os.IsNotExist(err) {
		t.Error("no output should exist when nothing converted")
	}
	if !strings.Contains(out.String(), "warning") {
		t.Errorf("missing warning in %q", out.String())
	}
}
