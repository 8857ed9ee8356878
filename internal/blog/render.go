// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package blog

import (
	"strings"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
)

// WkhtmltopdfRenderer renders HTML through the wkhtmltopdf binary, UTF-8
// encoded and quiet. The binary is resolved at render time, so construction
// never fails even when wkhtmltopdf is not installed.
type WkhtmltopdfRenderer struct{}

func (WkhtmltopdfRenderer) Render(html, outPath string) error {
	gen, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return err
	}
	gen.Quiet.Set(true)

	page := wkhtmltopdf.NewPageReader(strings.NewReader(html))
	page.Encoding.Set("utf-8")
	gen.AddPage(page)

	if err := gen.Create(); err != nil {
		return err
	}
	return gen.WriteFile(outPath)
}
