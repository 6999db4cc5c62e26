package stroke

import "math"

// Point is a minimal 2D point, duplicated here (rather than imported from
// the root package) to keep this package free of a dependency on it.
type Point struct {
	X, Y float64
}

func (p Point) sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) add(v Point) Point     { return Point{p.X + v.X, p.Y + v.Y} }
func (p Point) scale(s float64) Point { return Point{p.X * s, p.Y * s} }
func (p Point) dot(q Point) float64   { return p.X*q.X + p.Y*q.Y }
func (p Point) cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }
func (p Point) length() float64       { return math.Sqrt(p.X*p.X + p.Y*p.Y) }
func (p Point) normalize() Point {
	l := p.length()
	if l < 1e-12 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// perp rotates v by +90 degrees (to its left).
func perp(v Point) Point { return Point{-v.Y, v.X} }

// Cap selects the shape used to close an open subpath's ends.
type Cap int

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Join selects the shape used at interior vertices of a stroked subpath.
type Join int

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// Style carries the subset of stroke state the expander needs. Width is a
// user-space length; it is applied before the caller's toDevice transform so
// a non-uniform transform stretches the stroke outline the same way it
// would stretch any other user-space shape.
type Style struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
}

// DefaultStyle returns the canvas default: a 1-unit butt-capped, miter-joined
// stroke with the default miter limit of 10.
func DefaultStyle() Style {
	return Style{Width: 1.0, Cap: CapButt, Join: JoinMiter, MiterLimit: 10.0}
}

// circleAlpha is the Bezier-to-circle fit constant (4/3 * (sqrt(2)-1)); used
// when sampling round joins/caps as arcs of a fixed angular step rather than
// as cubic curves, since by this stage the path is already a polyline.
const circleAlpha = 0.55228475

// maxArcStep is the largest angular step, in radians, used when sampling a
// round join or cap; smaller radii or angles use fewer, coarser steps.
const maxArcStep = math.Pi / 8

// Expand converts one flattened subpath, given as device-space points, into
// one or more closed device-space polygons approximating its stroked
// outline. toUser and toDevice round-trip points through the current
// transform so offset distances are computed in user space.
//
// Open subpaths produce a single polygon: the left offset walked forward,
// the end cap, the right offset walked backward, and the start cap. Closed
// subpaths produce two polygons, the left and right offsets each closed on
// themselves, so the stroked ring has a hole in its interior under the
// nonzero fill rule.
func Expand(devicePoints []Point, closed bool, style Style, toUser, toDevice func(Point) Point, out *[][]Point) {
	if style.Width <= 0 || len(devicePoints) < 2 {
		return
	}
	pts := toUserSpace(devicePoints, toUser)
	pts = dedupe(pts, closed)
	if len(pts) < 2 {
		return
	}
	half := style.Width / 2

	if closed {
		left := offsetLoop(pts, half, style.Join, style.MiterLimit)
		right := offsetLoop(reversePoints(pts), half, style.Join, style.MiterLimit)
		*out = append(*out, toDeviceSpace(left, toDevice), toDeviceSpace(right, toDevice))
		return
	}

	var poly []Point
	left := offsetOpen(pts, half, style.Join, style.MiterLimit)
	poly = append(poly, left...)
	poly = appendCap(poly, pts[len(pts)-1], tangentAt(pts, len(pts)-1, false), half, style.Cap)
	right := offsetOpen(reversePoints(pts), half, style.Join, style.MiterLimit)
	poly = append(poly, right...)
	poly = appendCap(poly, pts[0], tangentAt(pts, 0, true), half, style.Cap)
	*out = append(*out, toDeviceSpace(poly, toDevice))
}

func toUserSpace(pts []Point, toUser func(Point) Point) []Point {
	r := make([]Point, len(pts))
	for i, p := range pts {
		r[i] = toUser(p)
	}
	return r
}

func toDeviceSpace(pts []Point, toDevice func(Point) Point) []Point {
	r := make([]Point, len(pts))
	for i, p := range pts {
		r[i] = toDevice(p)
	}
	return r
}

// dedupe removes consecutive (and, if closed, wraparound) coincident points,
// which would otherwise produce a zero-length tangent.
func dedupe(pts []Point, closed bool) []Point {
	out := pts[:0:0]
	out = append(out, pts[0])
	for _, p := range pts[1:] {
		if p.sub(out[len(out)-1]).length() > 1e-9 {
			out = append(out, p)
		}
	}
	if closed && len(out) > 1 && out[0].sub(out[len(out)-1]).length() < 1e-9 {
		out = out[:len(out)-1]
	}
	return out
}

func reversePoints(pts []Point) []Point {
	r := make([]Point, len(pts))
	for i, p := range pts {
		r[len(pts)-1-i] = p
	}
	return r
}

// tangentAt returns the unit tangent of the subpath at its first or last
// point, pointing outward (away from the subpath) when atStart is true.
func tangentAt(pts []Point, i int, atStart bool) Point {
	if atStart {
		return pts[0].sub(pts[1]).normalize()
	}
	return pts[i].sub(pts[i-1]).normalize()
}

// offsetOpen returns the left-offset (perp-positive) polyline for an open
// subpath, with joins inserted at interior vertices.
func offsetOpen(pts []Point, half float64, join Join, miterLimit float64) []Point {
	var out []Point
	dIn := pts[1].sub(pts[0]).normalize()
	out = append(out, pts[0].add(perp(dIn).scale(half)))
	for i := 1; i < len(pts)-1; i++ {
		dOut := pts[i+1].sub(pts[i]).normalize()
		out = appendJoin(out, pts[i], dIn, dOut, half, join, miterLimit)
		dIn = dOut
	}
	out = append(out, pts[len(pts)-1].add(perp(dIn).scale(half)))
	return out
}

// offsetLoop is offsetOpen generalized to a closed ring: the join at index 0
// wraps around to the last segment.
func offsetLoop(pts []Point, half float64, join Join, miterLimit float64) []Point {
	n := len(pts)
	var out []Point
	dIn := pts[0].sub(pts[n-1]).normalize()
	for i := 0; i < n; i++ {
		dOut := pts[(i+1)%n].sub(pts[i]).normalize()
		out = appendJoin(out, pts[i], dIn, dOut, half, join, miterLimit)
		dIn = dOut
	}
	return out
}

// appendJoin appends the offset vertex (or vertices) at p where the subpath
// turns from direction dIn to dOut, using the style's join shape on the
// outer (convex) side of the turn and a single offset point on the inner
// side (where the two offset segments naturally overlap under the nonzero
// fill rule).
func appendJoin(out []Point, p, dIn, dOut Point, half float64, join Join, miterLimit float64) []Point {
	nIn := perp(dIn).scale(half)
	nOut := perp(dOut).scale(half)
	turn := dIn.cross(dOut)

	pIn := p.add(nIn)
	pOut := p.add(nOut)

	if math.Abs(turn) < 1e-9 || dIn.dot(dOut) > 1-1e-9 {
		return append(out, pIn)
	}

	if turn < 0 {
		// Concave (inner) side of this offset: just connect through p.
		return append(out, pIn, pOut)
	}

	switch join {
	case JoinBevel:
		return append(out, pIn, pOut)
	case JoinRound:
		return appendArc(out, p, pIn, pOut, half)
	default: // JoinMiter
		if mp, ok := miterPoint(p, dIn, dOut, nIn, nOut, half, miterLimit); ok {
			return append(out, pIn, mp, pOut)
		}
		return append(out, pIn, pOut)
	}
}

// miterPoint computes the intersection of the two offset edges at a convex
// join, rejecting it (false) if the miter length would exceed miterLimit
// half-widths, per the usual canvas miter-limit contract.
func miterPoint(p, dIn, dOut, nIn, nOut Point, half, miterLimit float64) (Point, bool) {
	a := p.add(nIn)
	c := p.add(nOut)
	denom := dIn.cross(dOut)
	if math.Abs(denom) < 1e-12 {
		return Point{}, false
	}
	t := (c.sub(a)).cross(dOut) / denom
	mp := a.add(dIn.scale(t))
	miterLen := mp.sub(p).length()
	if miterLen > miterLimit*half {
		return Point{}, false
	}
	return mp, true
}

// appendArc samples a circular arc of radius half centered at p from pFrom
// to pTo (both already on the circle), stepping CCW by no more than
// maxArcStep radians per segment.
func appendArc(out []Point, p, pFrom, pTo Point, half float64) []Point {
	a0 := math.Atan2(pFrom.Y-p.Y, pFrom.X-p.X)
	a1 := math.Atan2(pTo.Y-p.Y, pTo.X-p.X)
	da := a1 - a0
	for da <= 0 {
		da += 2 * math.Pi
	}
	for da > 2*math.Pi {
		da -= 2 * math.Pi
	}
	steps := int(math.Ceil(da / maxArcStep))
	if steps < 1 {
		steps = 1
	}
	out = append(out, pFrom)
	for i := 1; i < steps; i++ {
		a := a0 + da*float64(i)/float64(steps)
		out = append(out, Point{p.X + half*math.Cos(a), p.Y + half*math.Sin(a)})
	}
	return append(out, pTo)
}

// appendCap appends the geometry closing an open subpath's end at p, whose
// outward tangent is tan, connecting the left-offset and right-offset
// polylines already accumulated in out.
func appendCap(out []Point, p, tan Point, half float64, cap Cap) []Point {
	n := perp(tan).scale(half)
	switch cap {
	case CapSquare:
		ext := tan.scale(half)
		return append(out, p.add(n).add(ext), p.add(n.scale(-1)).add(ext))
	case CapRound:
		return appendArc(out, p, p.add(n), p.add(n.scale(-1)), half)
	default: // CapButt
		return append(out, p.add(n.scale(-1)))
	}
}
