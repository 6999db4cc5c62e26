package stroke

import (
	"math"
	"testing"
)

func identity(p Point) Point { return p }

func TestExpand_SimpleLine(t *testing.T) {
	style := Style{Width: 2.0, Cap: CapButt, Join: JoinMiter, MiterLimit: 4.0}
	input := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}

	var out [][]Point
	Expand(input, false, style, identity, identity, &out)

	if len(out) != 1 {
		t.Fatalf("expected 1 polygon, got %d", len(out))
	}
	if len(out[0]) < 4 {
		t.Fatalf("expected at least 4 points, got %d", len(out[0]))
	}
}

func TestExpand_ClosedSquare(t *testing.T) {
	style := Style{Width: 2.0, Cap: CapButt, Join: JoinBevel, MiterLimit: 4.0}
	input := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

	var out [][]Point
	Expand(input, true, style, identity, identity, &out)

	// A closed subpath produces two rings (outer and inner boundary).
	if len(out) != 2 {
		t.Fatalf("expected 2 polygons for a closed subpath, got %d", len(out))
	}
	for _, ring := range out {
		if len(ring) < 4 {
			t.Errorf("ring too short: %d points", len(ring))
		}
	}
}

func TestExpand_RoundCapAndJoin(t *testing.T) {
	style := Style{Width: 4.0, Cap: CapRound, Join: JoinRound, MiterLimit: 4.0}
	input := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}

	var out [][]Point
	Expand(input, false, style, identity, identity, &out)

	if len(out) != 1 || len(out[0]) < 6 {
		t.Fatalf("round join/cap should sample several arc points, got %v", out)
	}
}

func TestExpand_SquareCap(t *testing.T) {
	style := Style{Width: 4.0, Cap: CapSquare, Join: JoinMiter, MiterLimit: 4.0}
	input := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}

	var out [][]Point
	Expand(input, false, style, identity, identity, &out)

	if len(out) != 1 {
		t.Fatalf("expected 1 polygon, got %d", len(out))
	}
	// The cap should extend the polygon's bounding box beyond the line's
	// endpoints by half the width.
	maxX := math.Inf(-1)
	for _, p := range out[0] {
		if p.X > maxX {
			maxX = p.X
		}
	}
	if maxX < 10+2-1e-9 {
		t.Errorf("square cap did not extend past endpoint: maxX=%v", maxX)
	}
}

func TestExpand_MiterFallsBackToBevel(t *testing.T) {
	style := Style{Width: 2.0, Cap: CapButt, Join: JoinMiter, MiterLimit: 1.0}
	// A sharp turn (close to reversing direction) exceeds a miter limit of 1.
	input := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0.1, Y: 1}}

	var out [][]Point
	Expand(input, false, style, identity, identity, &out)
	if len(out) != 1 || len(out[0]) == 0 {
		t.Fatalf("expected non-empty polygon, got %v", out)
	}
}

func TestExpand_DegenerateInputs(t *testing.T) {
	style := DefaultStyle()

	var out [][]Point
	Expand(nil, false, style, identity, identity, &out)
	if len(out) != 0 {
		t.Error("nil input should produce no polygons")
	}

	Expand([]Point{{X: 1, Y: 1}}, false, style, identity, identity, &out)
	if len(out) != 0 {
		t.Error("single-point input should produce no polygons")
	}

	Expand([]Point{{X: 1, Y: 1}, {X: 1, Y: 1}}, false, style, identity, identity, &out)
	if len(out) != 0 {
		t.Error("zero-length input should produce no polygons")
	}

	zeroWidth := style
	zeroWidth.Width = 0
	Expand([]Point{{X: 0, Y: 0}, {X: 10, Y: 0}}, false, zeroWidth, identity, identity, &out)
	if len(out) != 0 {
		t.Error("zero-width stroke should produce no polygons")
	}
}

func TestExpand_UserSpaceTransform(t *testing.T) {
	// A transform that halves x when mapping device->user doubles it back
	// when mapping user->device; a user-space width of 2 should therefore
	// expand to 4 device units in x.
	toUser := func(p Point) Point { return Point{p.X / 2, p.Y} }
	toDevice := func(p Point) Point { return Point{p.X * 2, p.Y} }

	style := Style{Width: 2.0, Cap: CapButt, Join: JoinBevel, MiterLimit: 4.0}
	input := []Point{{X: 0, Y: 0}, {X: 0, Y: 10}} // vertical line in device space

	var out [][]Point
	Expand(input, false, style, toUser, toDevice, &out)

	if len(out) != 1 {
		t.Fatalf("expected 1 polygon, got %d", len(out))
	}
	maxX := math.Inf(-1)
	for _, p := range out[0] {
		if p.X > maxX {
			maxX = p.X
		}
	}
	if math.Abs(maxX-2.0) > 1e-9 {
		t.Errorf("expected offset of 2 device units (1 user unit * 2), got %v", maxX)
	}
}

func TestPointOps(t *testing.T) {
	p := Point{X: 3, Y: 4}
	if got := p.length(); math.Abs(got-5) > 1e-9 {
		t.Errorf("length = %v, want 5", got)
	}
	n := p.normalize()
	if math.Abs(n.length()-1) > 1e-9 {
		t.Errorf("normalize length = %v, want 1", n.length())
	}
	if Point{}.normalize() != (Point{}) {
		t.Error("normalize of zero vector should be zero")
	}
	if got := perp(Point{X: 1, Y: 0}); got != (Point{X: 0, Y: 1}) {
		t.Errorf("perp(1,0) = %v, want (0,1)", got)
	}
}

func BenchmarkExpand_ComplexPath(b *testing.B) {
	style := Style{Width: 2.0, Cap: CapRound, Join: JoinRound, MiterLimit: 4.0}
	input := []Point{{X: 0, Y: 0}}
	for i := 1; i <= 100; i++ {
		input = append(input, Point{X: float64(i * 10), Y: float64((i % 2) * 10)})
	}

	var out [][]Point
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out = out[:0]
		Expand(input, false, style, identity, identity, &out)
	}
}
