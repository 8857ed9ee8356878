// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package blog implements the blog-to-PDF driver: fetch the article with a
// bounded timeout, extract the readable content, style it, and render it to
// a PDF. URL acquisition and the likelihood heuristic live here too.
package blog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	readability "github.com/go-shiori/go-readability"

	"github.com/pdiddy/pdf-master/internal/httputil"
)

// Renderer turns an HTML document into a PDF file.
type Renderer interface {
	Render(html, outPath string) error
}

// Driver converts one blog post URL into a styled PDF.
type Driver struct {
	Client    *http.Client // carries the fetch timeout
	UserAgent string
	Renderer  Renderer
}

// Convert fetches rawurl, extracts the readable article, and renders it to
// output under root. Any stage failure removes a partially written output
// file and returns the error; on success the article title is reported to w.
func (d *Driver) Convert(root, rawurl, output string, w io.Writer) error {
	outPath := filepath.Join(root, output)

	err := d.convert(rawurl, outPath, w)
	if err != nil {
		os.Remove(outPath)
	}
	return err
}

func (d *Driver) convert(rawurl, outPath string, w io.Writer) error {
	fmt.Fprintln(w, "downloading content...")
	body, err := httputil.Get(context.Background(), d.Client, rawurl, d.UserAgent)
	if err != nil {
		return fmt.Errorf("fetching article: %w", err)
	}

	fmt.Fprintln(w, "processing content...")
	pageURL, err := url.Parse(rawurl)
	if err != nil {
		return fmt.Errorf("parsing URL: %w", err)
	}
	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		return fmt.Errorf("extracting article content: %w", err)
	}

	fmt.Fprintln(w, "generating PDF...")
	if err := d.Renderer.Render(Styled(article.Content), outPath); err != nil {
		return fmt.Errorf("rendering PDF: %w", err)
	}

	fmt.Fprintf(w, "\ncreated: %s\n", filepath.Base(outPath))
	fmt.Fprintf(w, "article title: %s\n", article.Title)
	return nil
}
