package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
)

const htmlShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Spec Extraction Report</title>
<style>
body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; }
pre { background: #f6f6f6; padding: 1rem; overflow-x: auto; }
footer { color: #888; font-size: 0.8rem; margin-top: 2rem; }
</style>
</head>
<body>
%s
<footer>generated by specbuilder %s</footer>
</body>
</html>
`

// HTMLReport composes the preview and coverage reports into a markdown
// document and converts it to a standalone HTML page.
func HTMLReport(preview, coverage, version string) (string, error) {
	var md strings.Builder
	md.WriteString("# Spec Extraction Report\n\n")
	md.WriteString("## Preview\n\n")
	writeFenced(&md, preview)
	md.WriteString("\n## Coverage\n\n")
	writeFenced(&md, coverage)

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md.String()), &buf); err != nil {
		return "", err
	}

	return fmt.Sprintf(htmlShell, buf.String(), version), nil
}

// writeFenced wraps preformatted report text in a fenced code block so the
// column alignment survives markdown conversion.
func writeFenced(md *strings.Builder, text string) {
	md.WriteString("```\n")
	md.WriteString(text)
	if !strings.HasSuffix(text, "\n") {
		md.WriteString("\n")
	}
	md.WriteString("```\n")
}
