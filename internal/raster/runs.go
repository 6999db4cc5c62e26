// Package raster rasterizes filled polygons into horizontal coverage runs
// and provides the two-stream merge used to combine a shape's coverage with
// a clip mask's visibility while compositing.
package raster

import "sort"

// Run is one horizontal analytic-coverage contribution: at row Y, starting
// at column X, Delta adds to the running coverage sum for every pixel from
// X onward until another run on the same row changes it again. Accumulating
// Delta left-to-right across a sorted row yields each pixel's signed
// coverage, the same prefix-sum trick a scanline polygon fill uses to avoid
// storing a coverage value per pixel up front.
type Run struct {
	X, Y  uint16
	Delta float64
}

// Point is a minimal 2D point, duplicated here (rather than imported from
// the root package) to keep this package free of a dependency on it.
type Point struct {
	X, Y float64
}

// SortRuns orders runs by row, then column, then places larger-magnitude
// deltas first within a (row, column) group — matching the order
// ci_run_compare imposes so that equal-(y,x) runs combine predictably
// regardless of insertion order.
func SortRuns(runs []Run) {
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].Y != runs[j].Y {
			return runs[i].Y < runs[j].Y
		}
		if runs[i].X != runs[j].X {
			return runs[i].X < runs[j].X
		}
		return absf(runs[i].Delta) > absf(runs[j].Delta)
	})
}

// CoalesceRuns merges consecutive same-(row, column) entries in a
// SortRuns-ordered slice into one, and drops runs whose merged delta is
// negligible, keeping the run list compact before it's walked.
func CoalesceRuns(runs []Run) []Run {
	if len(runs) == 0 {
		return runs
	}
	out := runs[:1]
	for _, r := range runs[1:] {
		last := &out[len(out)-1]
		if r.Y == last.Y && r.X == last.X {
			last.Delta += r.Delta
			continue
		}
		out = append(out, r)
	}
	filtered := out[:0]
	for _, r := range out {
		if absf(r.Delta) > 1e-9 {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// LinesToRuns converts a closed polygon (already flattened to line
// segments, in device space) into a sorted, coalesced run list giving its
// analytic nonzero-winding coverage, clipped to [0,width)x[0,height).
//
// Each edge contributes a run at its topmost affected row boundary per
// scanline it crosses; edges are first clipped against the four raster
// bounds with Sutherland-Hodgman so a shape extending off-canvas doesn't
// need unbounded run coordinates.
func LinesToRuns(polygon []Point, width, height int) []Run {
	clipped := clipToBounds(polygon, width, height)
	if len(clipped) < 2 {
		return nil
	}
	var runs []Run
	n := len(clipped)
	for i := 0; i < n; i++ {
		p0 := clipped[i]
		p1 := clipped[(i+1)%n]
		addEdgeRuns(p0, p1, height, &runs)
	}
	SortRuns(runs)
	return CoalesceRuns(runs)
}

// addEdgeRuns adds the coverage contribution of a single directed edge,
// stepping one scanline at a time and distributing fractional pixel
// coverage at the edge's row-boundary crossing. A downward edge (p0.Y <
// p1.Y) adds winding; an upward edge subtracts it, giving the usual
// nonzero-winding signed-area accumulation.
func addEdgeRuns(p0, p1 Point, height int, runs *[]Run) {
	if p0.Y == p1.Y {
		return
	}
	sign := 1.0
	if p1.Y < p0.Y {
		p0, p1 = p1, p0
		sign = -1.0
	}
	y0 := clampRow(p0.Y, height)
	y1 := clampRow(p1.Y, height)
	if y0 >= y1 {
		return
	}
	dxdy := (p1.X - p0.X) / (p1.Y - p0.Y)
	for y := y0; y < y1; y++ {
		rowTop := float64(y)
		rowBot := float64(y + 1)
		top := rowTop
		if p0.Y > top {
			top = p0.Y
		}
		bot := rowBot
		if p1.Y < bot {
			bot = p1.Y
		}
		if bot <= top {
			continue
		}
		xMid := p0.X + dxdy*((top+bot)/2-p0.Y)
		col := int(xMid)
		if col < 0 {
			col = 0
		}
		frac := bot - top
		*runs = append(*runs, Run{X: uint16(col), Y: uint16(y), Delta: sign * frac})
	}
}

func clampRow(y float64, height int) int {
	iy := int(y)
	if iy < 0 {
		return 0
	}
	if iy > height {
		return height
	}
	return iy
}

// clipToBounds clips a polygon against the rectangle [0,width]x[0,height]
// using Sutherland-Hodgman against each of the four half-planes in turn.
func clipToBounds(polygon []Point, width, height int) []Point {
	poly := polygon
	poly = clipEdge(poly, func(p Point) bool { return p.X >= 0 }, func(a, b Point) Point { return intersectX(a, b, 0) })
	poly = clipEdge(poly, func(p Point) bool { return p.X <= float64(width) }, func(a, b Point) Point { return intersectX(a, b, float64(width)) })
	poly = clipEdge(poly, func(p Point) bool { return p.Y >= 0 }, func(a, b Point) Point { return intersectY(a, b, 0) })
	poly = clipEdge(poly, func(p Point) bool { return p.Y <= float64(height) }, func(a, b Point) Point { return intersectY(a, b, float64(height)) })
	return poly
}

func clipEdge(poly []Point, inside func(Point) bool, intersect func(a, b Point) Point) []Point {
	if len(poly) == 0 {
		return poly
	}
	var out []Point
	n := len(poly)
	for i := 0; i < n; i++ {
		cur := poly[i]
		prev := poly[(i+n-1)%n]
		curIn := inside(cur)
		prevIn := inside(prev)
		if curIn {
			if !prevIn {
				out = append(out, intersect(prev, cur))
			}
			out = append(out, cur)
		} else if prevIn {
			out = append(out, intersect(prev, cur))
		}
	}
	return out
}

func intersectX(a, b Point, x float64) Point {
	t := (x - a.X) / (b.X - a.X)
	return Point{X: x, Y: a.Y + (b.Y-a.Y)*t}
}

func intersectY(a, b Point, y float64) Point {
	t := (y - a.Y) / (b.Y - a.Y)
	return Point{X: a.X + (b.X-a.X)*t, Y: y}
}

// Walk merges two sorted, coalesced run streams — a shape's coverage runs
// and a clip mask's visibility runs — in (row, column) order, invoking emit
// once per maximal span where both the running coverage and running
// visibility are constant. pathRuns and clipRuns must each be sorted as
// SortRuns/CoalesceRuns leaves them; a nil clipRuns is treated as full
// visibility everywhere.
func Walk(pathRuns, clipRuns []Run, width, height int, emit func(y, x0, x1 int, coverage, visibility float64)) {
	byRow := func(runs []Run) map[uint16][]Run {
		m := make(map[uint16][]Run)
		for _, r := range runs {
			m[r.Y] = append(m[r.Y], r)
		}
		return m
	}
	pathRows := byRow(pathRuns)
	hasClip := clipRuns != nil
	clipRows := byRow(clipRuns)

	for y := 0; y < height; y++ {
		walkRow(uint16(y), pathRows[uint16(y)], clipRows[uint16(y)], hasClip, width, emit)
	}
}

func walkRow(y uint16, pathRow, clipRow []Run, hasClip bool, width int, emit func(y, x0, x1 int, coverage, visibility float64)) {
	i, j := 0, 0
	x := 0
	pathSum, clipSum := 0.0, 0.0
	for x < width {
		next := width
		if i < len(pathRow) && int(pathRow[i].X) > x && int(pathRow[i].X) < next {
			next = int(pathRow[i].X)
		}
		if j < len(clipRow) && int(clipRow[j].X) > x && int(clipRow[j].X) < next {
			next = int(clipRow[j].X)
		}
		for i < len(pathRow) && int(pathRow[i].X) == x {
			pathSum += pathRow[i].Delta
			i++
		}
		for j < len(clipRow) && int(clipRow[j].X) == x {
			clipSum += clipRow[j].Delta
			j++
		}
		coverage := absf(pathSum)
		if coverage > 1 {
			coverage = 1
		}
		visibility := 1.0
		if hasClip {
			visibility = absf(clipSum)
			if visibility > 1 {
				visibility = 1
			}
		}
		if coverage > 0 && visibility > 0 {
			emit(int(y), x, next, coverage, visibility)
		}
		x = next
	}
}
