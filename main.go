package main

import (
	"log"
	"os"
	"strings"

	"fyne.io/fyne/v2"

	"ShapeBoard/internal/scene"
	"ShapeBoard/internal/shape"
	"ShapeBoard/internal/share"
	"ShapeBoard/internal/ui"
)

const Port = 8899

func main() {
	args := os.Args
	switch {
	case len(args) > 1 && strings.HasPrefix(args[1], share.Scheme):
		runViewer(args[1])
	case len(args) > 1 && args[1] == "-join":
		link, err := share.Discover()
		if err != nil {
			log.Fatalf("Discovery failed: %v", err)
		}
		runViewer(link)
	case len(args) > 1 && args[1] == "-share":
		runHost()
	default:
		runLocal()
	}
}

// runLocal is the plain demo: one window, clicks create shapes.
func runLocal() {
	store := scene.NewStore()
	board := ui.NewBoard(store, shape.NewFactory(nil))
	ui.RunApp("", board, store)
}

// runHost is runLocal plus a websocket feed of the scene for LAN viewers.
func runHost() {
	log.Println("Starting as HOST")
	store := scene.NewStore()
	board := ui.NewBoard(store, shape.NewFactory(nil))

	host := share.NewHost(store, Port)
	store.OnAppend = host.ShapeCreated
	go func() {
		if err := host.ListenAndServe(); err != nil {
			log.Fatalf("Share server failed: %v", err)
		}
	}()

	mdnsServer, err := share.Advertise(Port)
	if err != nil {
		log.Printf("mDNS advertise failed: %v", err)
	} else {
		defer mdnsServer.Shutdown()
	}

	ui.RunApp(share.Link(Port), board, store)
}

// runViewer mirrors a remote scene read-only.
func runViewer(link string) {
	log.Println("Starting as VIEWER")
	store := scene.NewStore()
	board := ui.NewBoard(store, shape.NewFactory(nil))
	board.SetReadOnly(true)

	go share.Join(link, store, func(shape.Shape) {
		fyne.Do(board.Refresh)
	}, board.SetStatus)

	ui.RunApp("", board, store)
}
