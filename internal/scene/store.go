package scene

import (
	"sync"

	"ShapeBoard/internal/shape"
)

// Store is the ordered, append-only collection of every shape created
// during a session. Insertion order is paint order: later shapes are
// painted on top of earlier ones. There is no removal.
//
// The UI goroutine is the only writer, but the share host reads the
// store from its own goroutine, so access is guarded.
type Store struct {
	mu     sync.RWMutex
	shapes []shape.Shape

	// OnAppend, if set, is called after each append with the new shape.
	// Set by main to bridge shapes into the share transport.
	OnAppend func(shape.Shape)
}

func NewStore() *Store {
	return &Store{shapes: make([]shape.Shape, 0)}
}

// Append adds s to the end of the sequence and fires OnAppend.
func (st *Store) Append(s shape.Shape) {
	st.mu.Lock()
	st.shapes = append(st.shapes, s)
	hook := st.OnAppend
	st.mu.Unlock()

	if hook != nil {
		hook(s)
	}
}

// ForEach applies fn to every shape in insertion order.
func (st *Store) ForEach(fn func(shape.Shape)) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	for _, s := range st.shapes {
		fn(s)
	}
}

// Shapes returns a copy of the sequence in insertion order.
func (st *Store) Shapes() []shape.Shape {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]shape.Shape, len(st.shapes))
	copy(out, st.shapes)
	return out
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.shapes)
}
