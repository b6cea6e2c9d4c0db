package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"ShapeBoard/internal/shape"
)

var backgroundColor = color.White

// canvasSurface collects one Fyne canvas object per fill call. Shape
// coordinates map straight to widget coordinates; anything outside the
// widget clips silently.
type canvasSurface struct {
	objects []fyne.CanvasObject
}

var _ shape.Surface = (*canvasSurface)(nil)

func (cs *canvasSurface) FillCircle(x, y, r int, c shape.Color) {
	disc := canvas.NewCircle(toNRGBA(c))
	disc.Move(fyne.NewPos(float32(x-r), float32(y-r)))
	disc.Resize(fyne.NewSize(float32(2*r), float32(2*r)))
	cs.objects = append(cs.objects, disc)
}

func (cs *canvasSurface) FillRect(x, y, w, h int, c shape.Color) {
	box := canvas.NewRectangle(toNRGBA(c))
	box.Move(fyne.NewPos(float32(x), float32(y)))
	box.Resize(fyne.NewSize(float32(w), float32(h)))
	cs.objects = append(cs.objects, box)
}

func toNRGBA(c shape.Color) color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
