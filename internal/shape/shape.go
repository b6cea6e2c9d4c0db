package shape

// Kind discriminates the shape variants the factory knows how to build.
type Kind string

const (
	KindCircle    Kind = "circle"
	KindRectangle Kind = "rectangle"
)

// Attribute ranges for randomly drawn sizes, bounds inclusive.
const (
	MinRadius = 10
	MaxRadius = 50
	MinSide   = 20
	MaxSide   = 100
)

// Color is an RGB triple, each channel in [0,255].
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Surface is the drawing target a Shape paints itself onto. Coordinates
// outside the surface are expected to clip silently.
type Surface interface {
	FillCircle(x, y, r int, c Color)
	FillRect(x, y, w, h int, c Color)
}

// Shape is a drawable primitive. Attributes are fixed at construction
// and never change; Render has no effect on the shape itself.
type Shape interface {
	ID() string
	Kind() Kind
	At() (x, y int)
	Render(s Surface)
}

// Circle is a filled disc centered at (X, Y).
type Circle struct {
	ShapeID string
	X, Y    int
	Radius  int
	Fill    Color
}

func (c *Circle) ID() string     { return c.ShapeID }
func (c *Circle) Kind() Kind     { return KindCircle }
func (c *Circle) At() (int, int) { return c.X, c.Y }

func (c *Circle) Render(s Surface) {
	s.FillCircle(c.X, c.Y, c.Radius, c.Fill)
}

// Rectangle is a filled axis-aligned box with top-left corner at (X, Y).
type Rectangle struct {
	ShapeID       string
	X, Y          int
	Width, Height int
	Fill          Color
}

func (r *Rectangle) ID() string     { return r.ShapeID }
func (r *Rectangle) Kind() Kind     { return KindRectangle }
func (r *Rectangle) At() (int, int) { return r.X, r.Y }

func (r *Rectangle) Render(s Surface) {
	s.FillRect(r.X, r.Y, r.Width, r.Height, r.Fill)
}
