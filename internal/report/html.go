package report

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var htmlRenderer = goldmark.New(goldmark.WithExtensions(extension.Table))

const htmlHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>body{font-family:sans-serif;max-width:48em;margin:2em auto}table{border-collapse:collapse}td,th{border:1px solid #ccc;padding:.25em .75em}</style>
</head>
<body>
`

// WriteHTML writes the markdown report as a standalone HTML page.
func WriteHTML(w io.Writer, r Report) error {
	var body bytes.Buffer
	if err := htmlRenderer.Convert([]byte(Markdown(r)), &body); err != nil {
		return fmt.Errorf("converting report to html: %w", err)
	}
	if _, err := fmt.Fprintf(w, htmlHead, html.EscapeString(r.title())); err != nil {
		return err
	}
	if _, err := body.WriteTo(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}
