package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"ShapeBoard/internal/scene"
	"ShapeBoard/internal/shape"
)

// KindRandom is the board-level mode that picks a fresh random kind for
// every click. It is not a factory kind.
const KindRandom shape.Kind = "random"

// Board is the clickable canvas. A primary-button click creates a shape
// of the selected kind at the click position and appends it to the store.
type Board struct {
	widget.BaseWidget
	store    *scene.Store
	factory  *shape.Factory
	kind     shape.Kind
	readOnly bool
	status   *widget.Label
}

var _ fyne.Widget = (*Board)(nil)
var _ desktop.Mouseable = (*Board)(nil)

func NewBoard(store *scene.Store, factory *shape.Factory) *Board {
	b := &Board{
		store:   store,
		factory: factory,
		kind:    KindRandom,
		status:  widget.NewLabel("Click to create shapes"),
	}
	b.ExtendBaseWidget(b)
	return b
}

// SetKind selects the kind used for subsequently created shapes.
func (b *Board) SetKind(k shape.Kind) {
	b.kind = k
}

// SetReadOnly makes clicks no-ops. Viewer boards mirror a remote scene
// and never create shapes of their own.
func (b *Board) SetReadOnly(ro bool) {
	b.readOnly = ro
}

func (b *Board) StatusBar() fyne.CanvasObject { return b.status }

// SetStatus updates the status label from any goroutine.
func (b *Board) SetStatus(text string) {
	fyne.Do(func() {
		b.status.SetText(text)
	})
}

func (b *Board) MouseDown(e *desktop.MouseEvent) {
	if b.readOnly || e.Button != desktop.MouseButtonPrimary {
		return
	}

	kind := b.kind
	if kind == KindRandom {
		kind = b.factory.RandomKind()
	}

	s, err := b.factory.Create(kind, int(e.Position.X), int(e.Position.Y))
	if err != nil {
		log.Printf("[UI] create shape: %v", err)
		return
	}
	b.store.Append(s)
	b.status.SetText(fmt.Sprintf("%d shapes", b.store.Len()))
	b.Refresh()
}

func (b *Board) MouseUp(*desktop.MouseEvent) {}

func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b}
	r.background = canvas.NewRectangle(backgroundColor)
	return r
}

type boardRenderer struct {
	board      *Board
	background *canvas.Rectangle
}

// Objects rebuilds the canvas-object list from the store on every call,
// background first, then one object per shape in insertion order so later
// shapes paint on top of earlier ones.
func (r *boardRenderer) Objects() []fyne.CanvasObject {
	surface := &canvasSurface{}
	r.board.store.ForEach(func(s shape.Shape) {
		s.Render(surface)
	})
	return append([]fyne.CanvasObject{r.background}, surface.objects...)
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Destroy() {}
