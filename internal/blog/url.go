// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package blog

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/asaskevich/govalidator"

	"github.com/pdiddy/pdf-master/internal/prompt"
)

// indicators is the blog-likelihood substring list, matched against host and
// path. Advisory policy, not a contract; extend freely.
var indicators = []string{
	"/blog/", "/post/", "/article/",
	"medium.com", "wordpress.com", "blogspot",
}

// LooksLikeBlog reports whether rawurl resembles a blog post. A false result
// never blocks conversion; the caller asks the user to confirm instead.
func LooksLikeBlog(rawurl string) bool {
	u, err := url.Parse(rawurl)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Host)
	path := strings.ToLower(u.Path)
	for _, ind := range indicators {
		if strings.Contains(host, ind) || strings.Contains(path, ind) {
			return true
		}
	}
	return false
}

// CollectURL prompts for a blog post URL until one is accepted or the user
// quits (empty result). Syntactically invalid URLs re-prompt; well-formed
// URLs that fail the blog heuristic go through only with confirmation.
func CollectURL(in *bufio.Reader, out io.Writer) string {
	for {
		fmt.Fprint(out, "> ")
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return ""
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if prompt.IsQuit(line) {
			return ""
		}

		if !govalidator.IsURL(line) {
			fmt.Fprintln(out, "error: invalid URL format")
			continue
		}

		if !LooksLikeBlog(line) {
			fmt.Fprintln(out, "warning: this doesn't appear to be a blog post URL")
			if !prompt.Confirm(in, out, "Continue anyway?") {
				continue
			}
		}

		return line
	}
}
