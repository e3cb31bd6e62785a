package report

import (
	"io"

	"fireReport/internal/domain"
)

// Generate renders doc as a PDF into w. It does not validate doc.
func Generate(doc domain.Document, w io.Writer) error {
	r := NewRenderer()
	r.RenderReport(Compose(doc))
	return r.Output(w)
}
