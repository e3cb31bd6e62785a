package render

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"fireReport/internal/domain"
	"fireReport/internal/report"
	"fireReport/pkg/e"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Renderer struct {
	t *template.Template
}

// PreviewData feeds the preview page.
type PreviewData struct {
	Report     report.Report
	Validation domain.ValidationResult
}

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, e.Wrap("render.NewRenderer", err)
	}
	return &Renderer{t: t}, nil
}

// Render executes the template into a buffer first so a failing template
// never leaves a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, name string, data any) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, name, data); err != nil {
		return e.Wrap("render.Render "+name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(buf.Bytes())
	return err
}
