package share

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"ShapeBoard/internal/scene"
	"ShapeBoard/internal/shape"
)

// Scheme prefixes share links handed to viewers.
const Scheme = "shapeboard://"

// Hub tracks active viewer connections. All websocket writes go through
// the hub mutex; gorilla conns do not allow concurrent writers.
type Hub struct {
	conns map[*websocket.Conn]bool
	mu    sync.Mutex
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]bool)}
}

// Broadcast sends data to every connected viewer. Connections that fail
// to accept the write are dropped.
func (h *Hub) Broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("[SHARE] send to %s: %v", conn.RemoteAddr(), err)
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

// register replays the given frames to conn and then adds it to the set,
// in one critical section so no broadcast lands between replay and add.
func (h *Hub) register(conn *websocket.Conn, replay [][]byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, frame := range replay {
		if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			return err
		}
	}
	h.conns[conn] = true
	log.Printf("[SHARE] viewer connected from %s", conn.RemoteAddr())
	return nil
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[conn] {
		delete(h.conns, conn)
		log.Printf("[SHARE] viewer disconnected: %s", conn.RemoteAddr())
	}
}

// Host serves the scene to viewers.
type Host struct {
	store    *scene.Store
	hub      *Hub
	port     int
	upgrader websocket.Upgrader
}

func NewHost(store *scene.Store, port int) *Host {
	return &Host{
		store: store,
		hub:   NewHub(),
		port:  port,
		// Viewers come from anywhere on the LAN.
		upgrader: websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
	}
}

// ShapeCreated broadcasts a freshly appended shape to all viewers.
// Wire it to the store's OnAppend hook.
func (h *Host) ShapeCreated(s shape.Shape) {
	data, err := Encode(s)
	if err != nil {
		log.Printf("[SHARE] encode shape: %v", err)
		return
	}
	h.hub.Broadcast(data)
}

// ListenAndServe accepts viewer websocket connections until the process
// exits. Run it on its own goroutine.
func (h *Host) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.handleWS)
	addr := fmt.Sprintf(":%d", h.port)
	log.Printf("[SHARE] host listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}

func (h *Host) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[SHARE] upgrade from %s: %v", r.RemoteAddr, err)
		return
	}

	// Replay everything created so far, then stream new shapes.
	var replay [][]byte
	for _, s := range h.store.Shapes() {
		data, err := Encode(s)
		if err != nil {
			log.Printf("[SHARE] encode shape: %v", err)
			continue
		}
		replay = append(replay, data)
	}
	if err := h.hub.register(conn, replay); err != nil {
		log.Printf("[SHARE] replay to %s: %v", conn.RemoteAddr(), err)
		conn.Close()
		return
	}

	go h.drain(conn)
}

// drain reads until the viewer goes away. Viewers send nothing of
// interest; the read loop only detects the close.
func (h *Host) drain(conn *websocket.Conn) {
	defer conn.Close()
	defer h.hub.remove(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Link builds the share link a host hands to viewers.
func Link(port int) string {
	return fmt.Sprintf("%s%s:%d", Scheme, outgoingIP(), port)
}

// outgoingIP finds the preferred local address to advertise.
func outgoingIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return localIPFallback()
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}

// localIPFallback is used on networks without internet access.
func localIPFallback() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "127.0.0.1"
	}
	for _, address := range addrs {
		if ipnet, ok := address.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil {
				return ipnet.IP.String()
			}
		}
	}
	log.Println("[SHARE] no suitable local IP found, link generation may fail")
	return "127.0.0.1"
}
