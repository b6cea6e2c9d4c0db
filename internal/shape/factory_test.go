package shape

import (
	"errors"
	"math/rand"
	"testing"
)

func testFactory(seed int64) *Factory {
	return NewFactory(rand.New(rand.NewSource(seed)))
}

func TestCreateCircle(t *testing.T) {
	f := testFactory(1)
	coords := [][2]int{{0, 0}, {10, 10}, {-5, 900}, {1 << 20, -3}}

	for i := 0; i < 200; i++ {
		x, y := coords[i%len(coords)][0], coords[i%len(coords)][1]
		s, err := f.Create(KindCircle, x, y)
		if err != nil {
			t.Fatalf("Create(circle, %d, %d) error: %v", x, y, err)
		}
		c, ok := s.(*Circle)
		if !ok {
			t.Fatalf("Create(circle) returned %T, want *Circle", s)
		}
		if c.X != x || c.Y != y {
			t.Errorf("position = (%d,%d), want (%d,%d)", c.X, c.Y, x, y)
		}
		if c.Radius < MinRadius || c.Radius > MaxRadius {
			t.Errorf("radius = %d, want within [%d,%d]", c.Radius, MinRadius, MaxRadius)
		}
		if c.ShapeID == "" {
			t.Error("shape ID is empty")
		}
	}
}

func TestCreateRectangle(t *testing.T) {
	f := testFactory(2)

	for i := 0; i < 200; i++ {
		s, err := f.Create(KindRectangle, 50, 60)
		if err != nil {
			t.Fatalf("Create(rectangle) error: %v", err)
		}
		r, ok := s.(*Rectangle)
		if !ok {
			t.Fatalf("Create(rectangle) returned %T, want *Rectangle", s)
		}
		if r.X != 50 || r.Y != 60 {
			t.Errorf("position = (%d,%d), want (50,60)", r.X, r.Y)
		}
		if r.Width < MinSide || r.Width > MaxSide {
			t.Errorf("width = %d, want within [%d,%d]", r.Width, MinSide, MaxSide)
		}
		if r.Height < MinSide || r.Height > MaxSide {
			t.Errorf("height = %d, want within [%d,%d]", r.Height, MinSide, MaxSide)
		}
	}
}

func TestCreateUnknownKind(t *testing.T) {
	f := testFactory(3)
	s, err := f.Create(Kind("triangle"), 0, 0)
	if s != nil {
		t.Errorf("Create(unknown) returned %+v, want nil", s)
	}
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Create(unknown) error = %v, want ErrUnknownKind", err)
	}
}

// Size and color draws must be uniform over the full inclusive range;
// with a fixed seed and enough draws both endpoints show up.
func TestCircleRadiusCoversRange(t *testing.T) {
	f := testFactory(4)
	seen := make(map[int]bool)
	for i := 0; i < 5000; i++ {
		s, err := f.Create(KindCircle, 0, 0)
		if err != nil {
			t.Fatal(err)
		}
		seen[s.(*Circle).Radius] = true
	}
	if !seen[MinRadius] || !seen[MaxRadius] {
		t.Errorf("radius endpoints not drawn: min=%v max=%v", seen[MinRadius], seen[MaxRadius])
	}
}

func TestRandomKind(t *testing.T) {
	f := testFactory(5)
	got := make(map[Kind]int)
	for i := 0; i < 100; i++ {
		k := f.RandomKind()
		if k != KindCircle && k != KindRectangle {
			t.Fatalf("RandomKind() = %q, want circle or rectangle", k)
		}
		got[k]++
	}
	if got[KindCircle] == 0 || got[KindRectangle] == 0 {
		t.Errorf("RandomKind never returned one variant: %v", got)
	}
}

// A fixed seed produces the same sequence of shapes.
func TestSeededDeterminism(t *testing.T) {
	a, b := testFactory(42), testFactory(42)
	for i := 0; i < 20; i++ {
		sa, err := a.Create(KindRectangle, i, i)
		if err != nil {
			t.Fatal(err)
		}
		sb, err := b.Create(KindRectangle, i, i)
		if err != nil {
			t.Fatal(err)
		}
		ra, rb := sa.(*Rectangle), sb.(*Rectangle)
		if ra.Width != rb.Width || ra.Height != rb.Height || ra.Fill != rb.Fill {
			t.Fatalf("draw %d diverged: %+v vs %+v", i, ra, rb)
		}
	}
}
