package shape

import "testing"

// recordSurface captures fill calls for assertions.
type recordSurface struct {
	calls []fillCall
}

type fillCall struct {
	op         string
	x, y, a, b int
	color      Color
}

func (rs *recordSurface) FillCircle(x, y, r int, c Color) {
	rs.calls = append(rs.calls, fillCall{op: "circle", x: x, y: y, a: r, color: c})
}

func (rs *recordSurface) FillRect(x, y, w, h int, c Color) {
	rs.calls = append(rs.calls, fillCall{op: "rect", x: x, y: y, a: w, b: h, color: c})
}

func TestCircleRender(t *testing.T) {
	c := &Circle{ShapeID: "c1", X: 40, Y: 30, Radius: 12, Fill: Color{R: 200, G: 10, B: 55}}

	if c.Kind() != KindCircle {
		t.Errorf("Kind() = %q, want %q", c.Kind(), KindCircle)
	}
	if x, y := c.At(); x != 40 || y != 30 {
		t.Errorf("At() = (%d,%d), want (40,30)", x, y)
	}

	s := &recordSurface{}
	c.Render(s)
	if len(s.calls) != 1 {
		t.Fatalf("Render made %d calls, want 1", len(s.calls))
	}
	want := fillCall{op: "circle", x: 40, y: 30, a: 12, color: Color{R: 200, G: 10, B: 55}}
	if s.calls[0] != want {
		t.Errorf("Render call = %+v, want %+v", s.calls[0], want)
	}
}

func TestRectangleRender(t *testing.T) {
	r := &Rectangle{ShapeID: "r1", X: 5, Y: 7, Width: 60, Height: 25, Fill: Color{B: 255}}

	if r.Kind() != KindRectangle {
		t.Errorf("Kind() = %q, want %q", r.Kind(), KindRectangle)
	}
	if x, y := r.At(); x != 5 || y != 7 {
		t.Errorf("At() = (%d,%d), want (5,7)", x, y)
	}

	s := &recordSurface{}
	r.Render(s)
	if len(s.calls) != 1 {
		t.Fatalf("Render made %d calls, want 1", len(s.calls))
	}
	want := fillCall{op: "rect", x: 5, y: 7, a: 60, b: 25, color: Color{B: 255}}
	if s.calls[0] != want {
		t.Errorf("Render call = %+v, want %+v", s.calls[0], want)
	}
}

// Rendering must not mutate the shape: two renders produce identical calls.
func TestRenderIdempotent(t *testing.T) {
	shapes := []Shape{
		&Circle{ShapeID: "c", X: 1, Y: 2, Radius: 10, Fill: Color{R: 1}},
		&Rectangle{ShapeID: "r", X: 3, Y: 4, Width: 20, Height: 30, Fill: Color{G: 2}},
	}
	for _, s := range shapes {
		first := &recordSurface{}
		second := &recordSurface{}
		s.Render(first)
		s.Render(second)
		if len(first.calls) != 1 || len(second.calls) != 1 {
			t.Fatalf("%s: render call counts = %d, %d; want 1, 1",
				s.Kind(), len(first.calls), len(second.calls))
		}
		if first.calls[0] != second.calls[0] {
			t.Errorf("%s: repeated render differs: %+v vs %+v",
				s.Kind(), first.calls[0], second.calls[0])
		}
	}
}
