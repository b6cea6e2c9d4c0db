// Package export renders a scene snapshot to PDF. The snapshot is one-way:
// it cannot be loaded back into a session.
package export

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"ShapeBoard/internal/shape"
)

// pxPerMM downscales screen pixels to page millimeters so an 800x600
// scene fits an A4 portrait page.
const pxPerMM = 4.0

// Write renders the shapes onto a single A4 page in insertion order, so
// overlap on the page matches overlap on screen.
func Write(w io.Writer, shapes []shape.Shape) error {
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()

	surface := &pdfSurface{doc: p}
	for _, s := range shapes {
		s.Render(surface)
	}

	return p.Output(w)
}

type pdfSurface struct {
	doc *gofpdf.Fpdf
}

var _ shape.Surface = (*pdfSurface)(nil)

func (ps *pdfSurface) FillCircle(x, y, r int, c shape.Color) {
	ps.doc.SetFillColor(int(c.R), int(c.G), int(c.B))
	ps.doc.Circle(mm(x), mm(y), mm(r), "F")
}

func (ps *pdfSurface) FillRect(x, y, w, h int, c shape.Color) {
	ps.doc.SetFillColor(int(c.R), int(c.G), int(c.B))
	ps.doc.Rect(mm(x), mm(y), mm(w), mm(h), "F")
}

func mm(px int) float64 {
	return float64(px) / pxPerMM
}
