package gg

import (
	"math"

	ibld "github.com/gogpu/canvas/internal/blend"
	ipath "github.com/gogpu/canvas/internal/path"
	iraster "github.com/gogpu/canvas/internal/raster"
	istroke "github.com/gogpu/canvas/internal/stroke"
)

func ptToIPath(p Point) ipath.Point      { return ipath.Point{X: p.X, Y: p.Y} }
func ptToIRaster(p Point) iraster.Point  { return iraster.Point{X: p.X, Y: p.Y} }
func ptToIStroke(p Point) istroke.Point  { return istroke.Point{X: p.X, Y: p.Y} }
func iStrokeToPt(p istroke.Point) Point  { return Point{X: p.X, Y: p.Y} }
func irasterFromGG(pts []Point) []iraster.Point {
	out := make([]iraster.Point, len(pts))
	for i, p := range pts {
		out[i] = ptToIRaster(p)
	}
	return out
}
func istrokeFromGG(pts []Point) []istroke.Point {
	out := make([]istroke.Point, len(pts))
	for i, p := range pts {
		out[i] = ptToIStroke(p)
	}
	return out
}
func ggFromIStroke(pts []istroke.Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = iStrokeToPt(p)
	}
	return out
}

// flattenSubpaths converts device-space path elements (points are already
// transformed at MoveTo/LineTo/.../time) into polylines, one per subpath.
// Quadratics are degree-elevated to cubics before tessellation so only one
// flattening routine is needed.
func flattenSubpaths(elements []PathElement, angularLimit float64) (polys [][]Point, closed []bool) {
	var current []Point
	var start, cur Point
	have := false
	isClosed := false

	flush := func() {
		if len(current) >= 2 {
			polys = append(polys, current)
			closed = append(closed, isClosed)
		}
		current = nil
		isClosed = false
	}
	ensureStarted := func() {
		if !have {
			current = []Point{cur}
			start = cur
			have = true
		}
	}
	appendCubic := func(c1, c2, p1 Point) {
		ensureStarted()
		var pts []ipath.Point
		ipath.FlattenCubic(ptToIPath(cur), ptToIPath(c1), ptToIPath(c2), ptToIPath(p1), angularLimit, &pts)
		for _, p := range pts {
			current = append(current, Point{X: p.X, Y: p.Y})
		}
		cur = p1
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			current = []Point{e.Point}
			start = e.Point
			cur = e.Point
			have = true
		case LineTo:
			ensureStarted()
			current = append(current, e.Point)
			cur = e.Point
		case QuadTo:
			ensureStarted()
			c1 := cur.Add(e.Control.Sub(cur).Mul(2.0 / 3.0))
			c2 := e.Point.Add(e.Control.Sub(e.Point).Mul(2.0 / 3.0))
			appendCubic(c1, c2, e.Point)
		case CubicTo:
			ensureStarted()
			appendCubic(e.Control1, e.Control2, e.Point)
		case Close:
			if have && len(current) > 0 {
				current = append(current, start)
				isClosed = true
			}
			cur = start
		}
	}
	flush()
	return polys, closed
}

// clampAbs folds a nonzero-winding accumulator into [0,1]: canvas_ity and
// most rasterizers treat any nonzero winding as fully covered, clamped for
// the fractional coverage contributed by antialiased edges.
func clampAbs(sum float64) float64 {
	a := math.Abs(sum)
	if a > 1 {
		return 1
	}
	return a
}

// foldEvenOdd folds a winding accumulator using the even-odd rule: coverage
// is a triangle wave of period 2 in the winding sum, so odd bands are fully
// covered and even bands are uncovered, with antialiased edges interpolating
// linearly between them.
func foldEvenOdd(sum float64) float64 {
	m := math.Mod(math.Abs(sum), 2)
	if m > 1 {
		return 2 - m
	}
	return m
}

// polygonRuns rasterizes a set of closed device-space polygons into a single
// sorted, coalesced run list giving their combined winding coverage.
func polygonRuns(polys [][]Point, width, height int) []iraster.Run {
	var all []iraster.Run
	for _, poly := range polys {
		all = append(all, iraster.LinesToRuns(irasterFromGG(poly), width, height)...)
	}
	iraster.SortRuns(all)
	return iraster.CoalesceRuns(all)
}

// walkRuns groups a coalesced run list by row and walks each row left to
// right, accumulating the signed winding sum and invoking emit for every
// maximal span where fold(sum) is constant and positive. This generalizes
// internal/raster.Walk (which only supports nonzero winding) to also support
// the even-odd fill rule via a caller-supplied fold function.
func walkRuns(runs []iraster.Run, width, height int, fold func(float64) float64, emit func(y, x0, x1 int, coverage float64)) {
	byRow := make(map[uint16][]iraster.Run)
	for _, r := range runs {
		byRow[r.Y] = append(byRow[r.Y], r)
	}
	for y := 0; y < height; y++ {
		row := byRow[uint16(y)]
		if len(row) == 0 {
			continue
		}
		i := 0
		x := 0
		sum := 0.0
		for x < width {
			next := width
			if i < len(row) && int(row[i].X) > x && int(row[i].X) < next {
				next = int(row[i].X)
			}
			for i < len(row) && int(row[i].X) == x {
				sum += row[i].Delta
				i++
			}
			coverage := fold(sum)
			if coverage > 0 {
				emit(y, x, next, coverage)
			}
			x = next
		}
	}
}

// compositePolygons rasterizes polys with the given fill rule and composites
// them onto c.pixmap using paint, honoring the active clip stack and alpha
// mask. colorAt is called in user space at the center of every covered
// pixel; fill and stroke recover user-space coordinates differently (stroke
// widths are already baked into device-space offsets), so it is supplied by
// the caller rather than hard-coded to paint.ColorAt.
func (c *Context) compositePolygons(polys [][]Point, rule FillRule, colorAt func(x, y float64) RGBA, globalAlpha float64) {
	if len(polys) == 0 {
		return
	}
	runs := polygonRuns(polys, c.width, c.height)
	fold := clampAbs
	if rule == FillRuleEvenOdd {
		fold = foldEvenOdd
	}
	walkRuns(runs, c.width, c.height, fold, func(y, x0, x1 int, coverage float64) {
		for x := x0; x < x1; x++ {
			alpha := coverage * globalAlpha
			if c.clipStack != nil {
				alpha *= float64(c.clipStack.Coverage(float64(x)+0.5, float64(y)+0.5)) / 255.0
			}
			if c.mask != nil {
				alpha *= float64(c.mask.At(x, y)) / 255.0
			}
			if alpha <= 0 {
				continue
			}
			col := colorAt(float64(x)+0.5, float64(y)+0.5)
			col.A *= alpha
			if col.A <= 0 {
				continue
			}
			c.blendPixel(x, y, col)
		}
	})
}

// blendPixel composites a straight-alpha source color onto the pixel at
// (x, y) using the active compositing operator. CompositeSourceOver, the
// default, goes through Pixmap's own source-over blend; every other
// operator is routed through internal/blend, which works in premultiplied
// byte components per Porter-Duff convention.
func (c *Context) blendPixel(x, y int, src RGBA) {
	if c.compositeOp == CompositeSourceOver {
		c.pixmap.FillSpanBlend(x, x+1, y, src)
		return
	}
	dst := c.pixmap.GetPixel(x, y)
	ps := src.Premultiply()
	pd := dst.Premultiply()
	blendFn := ibld.GetBlendFunc(c.compositeOp)
	r, g, b, a := blendFn(
		toByte(ps.R), toByte(ps.G), toByte(ps.B), toByte(ps.A),
		toByte(pd.R), toByte(pd.G), toByte(pd.B), toByte(pd.A),
	)
	result := RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}.Unpremultiply()
	c.pixmap.SetPixel(x, y, result)
}

func toByte(v float64) byte {
	i := int(v*255 + 0.5)
	if i < 0 {
		return 0
	}
	if i > 255 {
		return 255
	}
	return byte(i)
}

// userColorAt returns a color sampler that recovers user-space coordinates
// from device-space pixel centers via the inverse transform before sampling
// paint, since brushes (gradients in particular) are defined in user space
// while the path geometry being rasterized is already in device space.
func (c *Context) userColorAt(paint *Paint) func(x, y float64) RGBA {
	return func(x, y float64) RGBA {
		up := c.transform.InversePoint(Pt(x, y))
		return paint.ColorAt(up.X, up.Y)
	}
}

// doFill rasterizes the current path using the active fill rule and
// composites it with the current paint.
func (c *Context) doFill() error {
	polys, _ := flattenSubpaths(c.path.Elements(), ipath.FillAngularLimit)
	if len(polys) == 0 {
		return nil
	}
	c.renderShadow(polys, c.paint.FillRule)
	c.compositePolygons(polys, c.paint.FillRule, c.userColorAt(c.paint), c.globalAlpha)
	return nil
}

// doStroke flattens the current path, expands it into its stroked outline
// (applying dashing first if active), and composites the result using the
// nonzero fill rule, as stroke outlines are constructed so overlapping
// segments never cancel.
func (c *Context) doStroke() error {
	style := c.paint.GetStroke()
	width := style.Width
	if width <= 0 {
		return nil
	}
	angular := ipath.StrokeAngularLimit(width * c.transform.Forward.ScaleFactor())
	subpaths, closedFlags := flattenSubpaths(c.path.Elements(), angular)

	toUser := func(p istroke.Point) istroke.Point {
		return ptToIStroke(c.transform.InversePoint(iStrokeToPt(p)))
	}
	toDevice := func(p istroke.Point) istroke.Point {
		return ptToIStroke(c.transform.Point(iStrokeToPt(p)))
	}

	sStyle := istroke.Style{
		Width:      width,
		Cap:        istroke.Cap(style.Cap),
		Join:       istroke.Join(style.Join),
		MiterLimit: style.MiterLimit,
	}

	var outline [][]Point
	for i, sp := range subpaths {
		devicePts := istrokeFromGG(sp)
		segments := [][]istroke.Point{devicePts}
		if style.Dash != nil && style.Dash.IsDashed() {
			segments = nil
			istroke.Dash(devicePts, closedFlags[i], style.Dash.Array, style.Dash.Offset, toUser, toDevice, &segments)
		}
		for _, seg := range segments {
			var polys [][]istroke.Point
			segClosed := closedFlags[i] && (style.Dash == nil || !style.Dash.IsDashed())
			istroke.Expand(seg, segClosed, sStyle, toUser, toDevice, &polys)
			for _, poly := range polys {
				outline = append(outline, ggFromIStroke(poly))
			}
		}
	}
	if len(outline) == 0 {
		return nil
	}
	c.renderShadow(outline, FillRuleNonZero)
	c.compositePolygons(outline, FillRuleNonZero, c.userColorAt(c.paint), c.globalAlpha)
	return nil
}
