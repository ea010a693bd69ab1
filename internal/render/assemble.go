package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates
var templatesFS embed.FS

// Assembler turns a Document into the finished HTML artifact. All
// markup lives in the embedded template set; view models are escaped
// by the template engine at this single point.
type Assembler struct {
	tpl *template.Template
	css template.CSS
}

func NewAssembler() (*Assembler, error) {
	tpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("render: parse templates: %w", err)
	}
	css, err := templatesFS.ReadFile("templates/style.css")
	if err != nil {
		return nil, fmt.Errorf("render: read stylesheet: %w", err)
	}
	return &Assembler{tpl: tpl, css: template.CSS(css)}, nil
}

// Render executes the document skeleton with the stylesheet inlined,
// so the saved HTML is self-contained.
func (a *Assembler) Render(doc *Document) (string, error) {
	data := struct {
		*Document
		CSS template.CSS
	}{doc, a.css}

	var buf bytes.Buffer
	if err := a.tpl.ExecuteTemplate(&buf, "cv.html", data); err != nil {
		return "", fmt.Errorf("render: execute template: %w", err)
	}
	return buf.String(), nil
}
