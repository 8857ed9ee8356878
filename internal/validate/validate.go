// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate checks user-supplied filenames before a driver touches
// them: bare name only, file exists under the working root, extension in the
// category's accepted set, and (for PDFs and images) structurally readable
// by the wrapped library.
package validate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/pdf-master/internal/imaging"
	"github.com/pdiddy/pdf-master/pkg/types"
)

// Failure classes, distinguishable with errors.Is. The collector prints them
// and re-prompts; nothing else inspects their message text.
var (
	ErrPathNotAllowed       = errors.New("filename must not contain a path")
	ErrNotFound             = errors.New("file not found")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrCorrupt              = errors.New("file is not readable")
)

var pdfConf = model.NewDefaultConfiguration()

// File validates name as a member of cat, resolving it against root. It
// returns nil when the file is acceptable and has no side effects.
//
// Checks run in order: path, existence, extension, structure. The order is
// observable — a missing file with a bad extension reports ErrNotFound.
func File(root, name string, cat types.Category) error {
	if name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrPathNotAllowed, name)
	}

	path := filepath.Join(root, name)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	if !cat.Accepts(name) {
		return fmt.Errorf("%w: not a supported %s file: %q", ErrUnsupportedExtension, cat.Label, name)
	}

	switch cat.Kind {
	case types.KindPDF:
		if err := api.ValidateFile(path, pdfConf); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrCorrupt, name, err)
		}
	case types.KindImage:
		if err := imaging.Probe(path); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrCorrupt, name, err)
		}
	case types.KindOffice:
		// Extension-only; there is no local office parser.
	}

	return nil
}
