// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package blog

// styleBlock is prepended to the extracted article body before rendering.
// Print-friendly defaults: readable body font, images constrained to the
// page width, shaded code blocks, muted link color.
const styleBlock = `<style>
    body { font-family: Arial, sans-serif; line-height: 1.6; margin: 2cm; }
    img { max-width: 100%; height: auto; }
    pre { background: #f4f4f4; padding: 10px; overflow: auto; }
    code { font-family: Monaco, Consolas, monospace; }
    h1, h2, h3 { color: #2c3e50; }
    a { color: #3498db; text-decoration: none; }
</style>
`

// Styled wraps the article body HTML with the fixed CSS prelude.
func Styled(body string) string {
	return styleBlock + "\n" + body
}
