package share

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"ShapeBoard/internal/scene"
	"ShapeBoard/internal/shape"
)

// Join dials the host behind a shapeboard:// link and mirrors its scene
// into the local store. onShape fires after each appended shape so the
// caller can refresh its view; onStatus reports connection state changes.
// Join blocks until the connection drops; there is no retry.
func Join(link string, store *scene.Store, onShape func(shape.Shape), onStatus func(string)) error {
	addr := strings.TrimPrefix(link, Scheme)
	addr = strings.TrimSuffix(addr, "/")
	time.Sleep(500 * time.Millisecond) // Give the UI time to launch

	u := url.URL{Scheme: "ws", Host: addr, Path: "/ws"}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		onStatus(fmt.Sprintf("Connection failed: %v", err))
		return err
	}
	defer conn.Close()

	onStatus("Viewing " + addr)
	log.Printf("[SHARE] connected to host at %s", addr)

	// The replay and the live stream can overlap around connect time,
	// so shapes are deduplicated by ID.
	seen := make(map[string]bool)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			onStatus(fmt.Sprintf("Disconnected from host: %v", err))
			return err
		}

		s, err := Decode(data)
		if err != nil {
			log.Printf("[SHARE] bad message from host: %v", err)
			continue
		}
		if seen[s.ID()] {
			continue
		}
		seen[s.ID()] = true

		store.Append(s)
		if onShape != nil {
			onShape(s)
		}
	}
}
