package shape

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownKind is returned when the factory is asked for a shape kind
// outside its known variants. It is the only error condition in the system.
var ErrUnknownKind = errors.New("unknown shape kind")

// Factory builds shapes with randomized size and color. It holds no state
// beyond its random source.
type Factory struct {
	rng *rand.Rand
}

// NewFactory creates a factory drawing from rng. Pass nil for a
// time-seeded source; tests pass a fixed seed for determinism.
func NewFactory(rng *rand.Rand) *Factory {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Factory{rng: rng}
}

// Create builds a shape of the given kind anchored at (x, y). Size and
// color are drawn uniformly from their ranges at construction time.
// Coordinates are not validated against any screen bounds.
func (f *Factory) Create(kind Kind, x, y int) (Shape, error) {
	switch kind {
	case KindCircle:
		return &Circle{
			ShapeID: uuid.NewString(),
			X:       x,
			Y:       y,
			Radius:  f.between(MinRadius, MaxRadius),
			Fill:    f.color(),
		}, nil
	case KindRectangle:
		return &Rectangle{
			ShapeID: uuid.NewString(),
			X:       x,
			Y:       y,
			Width:   f.between(MinSide, MaxSide),
			Height:  f.between(MinSide, MaxSide),
			Fill:    f.color(),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// RandomKind picks one of the known kinds with equal probability.
func (f *Factory) RandomKind() Kind {
	if f.rng.Intn(2) == 0 {
		return KindCircle
	}
	return KindRectangle
}

// between returns a uniform int in [lo, hi].
func (f *Factory) between(lo, hi int) int {
	return lo + f.rng.Intn(hi-lo+1)
}

func (f *Factory) color() Color {
	return Color{
		R: uint8(f.rng.Intn(256)),
		G: uint8(f.rng.Intn(256)),
		B: uint8(f.rng.Intn(256)),
	}
}
