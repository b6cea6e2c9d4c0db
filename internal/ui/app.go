package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"ShapeBoard/internal/scene"
)

// RunApp builds the window around the board and runs the event loop.
// It returns when the window is closed. A non-empty shareLink is shown
// in the status bar so a host can hand it to viewers.
func RunApp(shareLink string, board *Board, store *scene.Store) {
	myApp := app.New()
	myWindow := myApp.NewWindow("ShapeBoard")
	myWindow.Resize(fyne.NewSize(800, 600))

	toolbar := NewToolbar(myWindow, board, store)
	content := container.NewBorder(toolbar, board.StatusBar(), nil, nil, board)
	myWindow.SetContent(content)

	if shareLink != "" {
		board.status.SetText("Sharing at " + shareLink)
	}

	myWindow.ShowAndRun()
}
