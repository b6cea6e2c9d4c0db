package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"ShapeBoard/internal/export"
	"ShapeBoard/internal/scene"
	"ShapeBoard/internal/shape"
)

// NewToolbar builds the top bar: shape-kind selection (the only
// configuration the board has) plus a PDF snapshot action.
func NewToolbar(win fyne.Window, board *Board, store *scene.Store) fyne.CanvasObject {
	kindSelect := widget.NewSelect([]string{"Random", "Circle", "Rectangle"}, func(choice string) {
		switch choice {
		case "Circle":
			board.SetKind(shape.KindCircle)
		case "Rectangle":
			board.SetKind(shape.KindRectangle)
		default:
			board.SetKind(KindRandom)
		}
	})
	kindSelect.SetSelected("Random")

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			savePDF(win, board, store)
		}),
	)

	return container.NewHBox(
		widget.NewLabel("Shape:"),
		kindSelect,
		widget.NewSeparator(),
		actions,
		layout.NewSpacer(),
	)
}

func savePDF(win fyne.Window, board *Board, store *scene.Store) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return // cancelled
		}
		defer func() {
			if cerr := writer.Close(); cerr != nil {
				log.Printf("[UI] close export file: %v", cerr)
			}
		}()

		shapes := store.Shapes()
		if err := export.Write(writer, shapes); err != nil {
			log.Printf("[UI] export pdf: %v", err)
			dialog.ShowError(err, win)
			return
		}
		board.SetStatus(fmt.Sprintf("Exported %d shapes", len(shapes)))
	}, win)
	d.SetFileName("shapes.pdf")
	d.Show()
}
