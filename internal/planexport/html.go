package planexport

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/myrjola/liftplan/internal/i18n"
	"github.com/myrjola/liftplan/internal/program"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
<main>
{{.Body}}</main>
</body>
</html>
`))

// WriteHTML writes plan as a standalone HTML page. The body is the Markdown document of [WriteMarkdown]
// converted with goldmark.
func WriteHTML(w io.Writer, plan program.Plan, lang i18n.Language) error {
	var md bytes.Buffer
	if err := WriteMarkdown(&md, plan, lang); err != nil {
		return err
	}

	var body bytes.Buffer
	if err := markdown.Convert(md.Bytes(), &body); err != nil {
		return fmt.Errorf("convert markdown: %w", err)
	}

	data := struct {
		Lang  i18n.Language
		Title string
		Body  template.HTML
	}{
		Lang:  lang,
		Title: plan.Name,
		Body:  template.HTML(body.String()), //nolint:gosec // goldmark escapes raw HTML by default
	}
	if err := page.Execute(w, data); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	return nil
}

// MarkdownToHTML converts a Markdown fragment, such as an exercise description, to HTML.
func MarkdownToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
