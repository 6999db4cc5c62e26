// Package path implements cubic Bézier tessellation for the rasterizer's
// device-space path model: recursive subdivision to a flatness and angular
// tolerance, with parameter cuts at axis extrema and the curvature
// inflection taken first so each recursed span is already monotone.
package path

import "math"

// Point is a minimal 2D point, duplicated here (rather than imported from
// the root package) to keep this package free of a dependency on it.
type Point struct {
	X, Y float64
}

func (p Point) sub(q Point) Point   { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}
func (p Point) dot(q Point) float64   { return p.X*q.X + p.Y*q.Y }
func (p Point) cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }
func (p Point) lenSq() float64        { return p.X*p.X + p.Y*p.Y }

// FillAngularLimit disables the angle gate (flatness-only), used when
// tessellating fill geometry.
const FillAngularLimit = -1.0

// flatnessTolerance is the squared chord distance bound (1/8)^2.
const flatnessTolerance = 0.125 * 0.125

// maxRecursionDepth caps recursive halving so a numerically degenerate
// curve cannot recurse forever.
const maxRecursionDepth = 20

// StrokeAngularLimit derives the angular tolerance used when flattening
// stroke outlines from the line width: narrower strokes can tolerate a
// coarser angular bound per flattened step.
func StrokeAngularLimit(width float64) float64 {
	r := 0.125 / math.Max(width/2, 0.125)
	return (r-2)*r*2 + 1
}

// FlattenCubic appends a piecewise-linear approximation of the cubic
// (p0, c1, c2, p1) to out, not including p0 (the caller already has it as
// the current point) but including p1. angularLimit is a cosine bound;
// FillAngularLimit disables it.
func FlattenCubic(p0, c1, c2, p1 Point, angularLimit float64, out *[]Point) {
	cuts := monotoneCuts(p0, c1, c2, p1)
	t0 := 0.0
	cuts = append(cuts, 1.0)
	for _, t1 := range cuts {
		if t1 <= t0 {
			continue
		}
		a, b, c, d := subsegment(p0, c1, c2, p1, t0, t1)
		recurseFlatten(a, b, c, d, angularLimit, 0, out)
		t0 = t1
	}
}

// monotoneCuts returns the sorted, interior (0,1) parameter values at which
// the cubic's derivative has an axis-aligned extremum or the curve has an
// inflection, so each resulting span can be flattened independently.
func monotoneCuts(p0, c1, c2, p1 Point) []float64 {
	d0 := c1.sub(p0)
	d1 := c2.sub(c1)
	d2 := p1.sub(c2)

	var cuts []float64
	addRoots := func(a, b, c float64) {
		for _, t := range solveQuadratic(a, b, c) {
			if t > 1e-9 && t < 1-1e-9 {
				cuts = append(cuts, t)
			}
		}
	}
	addRoots(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)
	addRoots(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)

	a := d0
	b := d1.sub(d0)
	c := d2.sub(d1).sub(d1.sub(d0))
	roots := solveQuadratic(b.cross(c), a.cross(c), a.cross(b))
	for _, t := range roots {
		if t > 1e-9 && t < 1-1e-9 {
			cuts = append(cuts, t)
		}
	}

	sortFloats(cuts)
	return cuts
}

// split returns the two halves of cubic (p0,c1,c2,p1) produced by a de
// Casteljau split at parameter t.
func split(p0, c1, c2, p1 Point, t float64) (left [4]Point, right [4]Point) {
	p01 := p0.lerp(c1, t)
	p12 := c1.lerp(c2, t)
	p23 := c2.lerp(p1, t)
	p012 := p01.lerp(p12, t)
	p123 := p12.lerp(p23, t)
	mid := p012.lerp(p123, t)
	return [4]Point{p0, p01, p012, mid}, [4]Point{mid, p123, p23, p1}
}

// subsegment extracts the portion of cubic (p0,c1,c2,p1) over [t0,t1] via
// two de Casteljau splits.
func subsegment(p0, c1, c2, p1 Point, t0, t1 float64) (Point, Point, Point, Point) {
	_, tail := split(p0, c1, c2, p1, t0)
	if t1 >= 1 {
		return tail[0], tail[1], tail[2], tail[3]
	}
	s1 := (t1 - t0) / (1 - t0)
	head, _ := split(tail[0], tail[1], tail[2], tail[3], s1)
	return head[0], head[1], head[2], head[3]
}

// recurseFlatten is the core tessellation step: recursively bisect at
// t=0.5 until both control points lie within flatnessTolerance of the
// chord and the turn angle satisfies angularLimit, or the recursion cap is
// hit, then emit the terminal endpoint.
func recurseFlatten(p0, c1, c2, p1 Point, angularLimit float64, depth int, out *[]Point) {
	if depth >= maxRecursionDepth || isFlatEnough(p0, c1, c2, p1, angularLimit) {
		*out = append(*out, p1)
		return
	}
	left, right := split(p0, c1, c2, p1, 0.5)
	recurseFlatten(left[0], left[1], left[2], left[3], angularLimit, depth+1, out)
	recurseFlatten(right[0], right[1], right[2], right[3], angularLimit, depth+1, out)
}

func isFlatEnough(p0, c1, c2, p1 Point, angularLimit float64) bool {
	if chordDistSq(p0, p1, c1) > flatnessTolerance || chordDistSq(p0, p1, c2) > flatnessTolerance {
		return false
	}
	if angularLimit <= -1 {
		return true
	}
	e1 := c1.sub(p0)
	if e1.lenSq() < 1e-12 {
		e1 = c2.sub(p0)
	}
	e2 := p1.sub(c2)
	if e2.lenSq() < 1e-12 {
		e2 = p1.sub(c1)
	}
	if e1.lenSq() < 1e-12 || e2.lenSq() < 1e-12 {
		return true
	}
	cosAngle := e1.dot(e2) / math.Sqrt(e1.lenSq()*e2.lenSq())
	return cosAngle >= angularLimit
}

// chordDistSq returns the squared perpendicular distance from p to the
// chord a-b (or to a, if a and b coincide).
func chordDistSq(a, b, p Point) float64 {
	ab := b.sub(a)
	lenSq := ab.lenSq()
	if lenSq < 1e-12 {
		d := p.sub(a)
		return d.lenSq()
	}
	cross := ab.cross(p.sub(a))
	return cross * cross / lenSq
}

func sortFloats(f []float64) {
	for i := 1; i < len(f); i++ {
		for j := i; j > 0 && f[j-1] > f[j]; j-- {
			f[j-1], f[j] = f[j], f[j-1]
		}
	}
}

// solveQuadratic solves a*t^2 + b*t + c = 0, returning real roots.
func solveQuadratic(a, b, c float64) []float64 {
	if math.Abs(a) < 1e-12 {
		if math.Abs(b) < 1e-12 {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}
