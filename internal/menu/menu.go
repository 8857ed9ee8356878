// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package menu implements the interactive shell: the main menu, the
// Create-PDF submenu, and the per-feature flows that wire the collector,
// validator, and drivers together. Every operation returns to the menu loop
// no matter how it went; errors are printed, never propagated.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pdf-master/internal/blog"
	"github.com/pdiddy/pdf-master/internal/images"
	"github.com/pdiddy/pdf-master/internal/merge"
	"github.com/pdiddy/pdf-master/internal/office"
	"github.com/pdiddy/pdf-master/internal/prompt"
	"github.com/pdiddy/pdf-master/internal/validate"
	"github.com/pdiddy/pdf-master/pkg/types"
)

const blogDefaultOutput = "blog_post.pdf"

// Menu drives the interactive session.
type Menu struct {
	in        *bufio.Reader
	out       io.Writer
	root      string // working directory all reads and writes resolve against
	blog      *blog.Driver
	officeBin string
}

// New returns a menu reading choices from in and printing to out. All file
// operations are confined to root.
func New(in io.Reader, out io.Writer, root string, blogDriver *blog.Driver, officeBin string) *Menu {
	return &Menu{
		in:        bufio.NewReader(in),
		out:       out,
		root:      root,
		blog:      blogDriver,
		officeBin: officeBin,
	}
}

// Run loops on the main menu until the user exits or input ends.
func (m *Menu) Run() {
	for {
		m.clear()
		fmt.Fprintln(m.out, "=== PDF Master ===")
		fmt.Fprintln(m.out, "1. Merge PDF Files")
		fmt.Fprintln(m.out, "2. Blog to PDF Converter")
		fmt.Fprintln(m.out, "3. Create PDF")
		fmt.Fprintln(m.out, "4. Exit")

		choice, ok := m.choose("\nChoose an option (1-4): ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			m.mergePDFs()
		case "2":
			m.blogToPDF()
		case "3":
			if !m.createPDF() {
				return
			}
		case "4":
			fmt.Fprintln(m.out, "\nExiting...")
			return
		default:
			fmt.Fprintln(m.out, "\nwarning: invalid choice")
		}

		if !m.pause() {
			return
		}
	}
}

// createPDF runs the submenu loop. It returns false only when input ended,
// so the caller can stop its own loop too.
func (m *Menu) createPDF() bool {
	for {
		m.clear()
		fmt.Fprintln(m.out, "=== Create PDF ===")
		fmt.Fprintln(m.out, "1. Image to PDF")
		fmt.Fprintln(m.out, "2. Word to PDF")
		fmt.Fprintln(m.out, "3. Excel to PDF")
		fmt.Fprintln(m.out, "4. PowerPoint to PDF")
		fmt.Fprintln(m.out, "5. Return to Main Menu")

		choice, ok := m.choose("\nChoose an option (1-5): ")
		if !ok {
			return false
		}

		switch choice {
		case "1":
			m.imagesToPDF()
		case "2":
			m.officeToPDF(types.Word)
		case "3":
			m.officeToPDF(types.Excel)
		case "4":
			m.officeToPDF(types.PowerPoint)
		case "5":
			return true
		default:
			fmt.Fprintln(m.out, "\nwarning: invalid choice")
		}

		if !m.pause() {
			return false
		}
	}
}

func (m *Menu) mergePDFs() {
	m.clear()
	fmt.Fprintln(m.out, "=== PDF Merger ===")
	fmt.Fprintln(m.out, "\nEnter PDF filenames from the current directory (type 'q' to finish):")

	files := m.collectFiles(types.PDF)
	if len(files) == 0 {
		fmt.Fprintln(m.out, "\nwarning: no valid PDF files selected, returning to menu")
		return
	}

	output := prompt.OutputName(m.in, m.out, types.PDF.DefaultOutput)
	if _, err := merge.Files(m.root, files, output, m.out); err != nil {
		fmt.Fprintf(m.out, "\ncritical error: %v\n", err)
	}
}

func (m *Menu) blogToPDF() {
	m.clear()
	fmt.Fprintln(m.out, "=== Blog to PDF Converter ===")
	fmt.Fprintln(m.out, "\nEnter blog post URL (type 'q' to return):")

	url := blog.CollectURL(m.in, m.out)
	if url == "" {
		fmt.Fprintln(m.out, "\nwarning: no URL entered, returning to menu")
		return
	}

	output := prompt.OutputName(m.in, m.out, blogDefaultOutput)
	if err := m.blog.Convert(m.root, url, output, m.out); err != nil {
		fmt.Fprintf(m.out, "\nconversion failed: %v\n", err)
	}
}

func (m *Menu) imagesToPDF() {
	m.clear()
	fmt.Fprintln(m.out, "=== Image to PDF Converter ===")
	fmt.Fprintln(m.out, "\nEnter image filenames (type 'q' to finish):")

	files := m.collectFiles(types.Image)
	if len(files) == 0 {
		fmt.Fprintln(m.out, "\nwarning: no valid image files selected, returning to menu")
		return
	}

	output := prompt.OutputName(m.in, m.out, types.Image.DefaultOutput)
	if _, err := images.Convert(m.root, files, output, m.out); err != nil {
		fmt.Fprintf(m.out, "\ncritical error: %v\n", err)
	}
}

func (m *Menu) officeToPDF(cat types.Category) {
	m.clear()
	fmt.Fprintf(m.out, "=== %s to PDF Converter ===\n", cat.Label)

	conv, err := office.NewConverter(m.officeBin)
	if err != nil {
		fmt.Fprintf(m.out, "\nerror: %v\n", err)
		return
	}

	fmt.Fprintf(m.out, "\nEnter %s filenames (type 'q' to finish):\n", cat.Label)
	files := m.collectFiles(cat)
	if len(files) == 0 {
		fmt.Fprintf(m.out, "\nwarning: no valid %s files selected, returning to menu\n", cat.Label)
		return
	}

	output := prompt.OutputName(m.in, m.out, cat.DefaultOutput)
	if _, err := conv.Convert(m.root, cat, files, output, m.out); err != nil {
		fmt.Fprintf(m.out, "\ncritical error: %v\n", err)
	}
}

func (m *Menu) collectFiles(cat types.Category) []string {
	return prompt.Collect(m.in, m.out, func(name string) error {
		return validate.File(m.root, name, cat)
	})
}

// choose prints the prompt and reads one trimmed line. ok is false at end
// of input.
func (m *Menu) choose(label string) (choice string, ok bool) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// pause waits for Enter before redrawing a menu. ok is false at end of input.
func (m *Menu) pause() bool {
	fmt.Fprint(m.out, "\nPress Enter to continue...")
	_, err := m.in.ReadString('\n')
	return err == nil
}

// clear emits an ANSI clear-and-home sequence before each screen.
func (m *Menu) clear() {
	fmt.Fprint(m.out, "\033[2J\033[H")
}
