package gg

import "testing"

func TestFillSolidRectangle(t *testing.T) {
	dc := NewContext(20, 20)
	dc.SetRGBA(1, 0, 0, 1)
	dc.DrawRectangle(5, 5, 10, 10)
	dc.Fill()

	inside := dc.pixmap.GetPixel(10, 10)
	if inside.R < 0.99 || inside.A < 0.99 {
		t.Errorf("expected opaque red inside fill, got %+v", inside)
	}
	outside := dc.pixmap.GetPixel(1, 1)
	if outside.A != 0 {
		t.Errorf("expected transparent outside fill, got %+v", outside)
	}
}

func TestFillEvenOddVsNonZero(t *testing.T) {
	// Two overlapping squares drawn as one path: nonzero fills the overlap,
	// even-odd leaves a hole in it.
	build := func(dc *Context) {
		dc.NewSubPath()
		dc.DrawRectangle(0, 0, 10, 10)
		dc.NewSubPath()
		dc.DrawRectangle(2, 2, 6, 6)
	}

	nz := NewContext(10, 10)
	nz.SetRGBA(1, 1, 1, 1)
	build(nz)
	nz.SetFillRule(FillRuleNonZero)
	nz.Fill()
	if c := nz.pixmap.GetPixel(5, 5); c.A < 0.99 {
		t.Errorf("nonzero rule should fill the overlap, got %+v", c)
	}

	eo := NewContext(10, 10)
	eo.SetRGBA(1, 1, 1, 1)
	build(eo)
	eo.SetFillRule(FillRuleEvenOdd)
	eo.Fill()
	if c := eo.pixmap.GetPixel(5, 5); c.A > 0.01 {
		t.Errorf("even-odd rule should punch a hole in the overlap, got %+v", c)
	}
}

func TestStrokeProducesOutline(t *testing.T) {
	dc := NewContext(20, 20)
	dc.SetRGBA(0, 0, 1, 1)
	dc.SetLineWidth(4)
	dc.DrawRectangle(5, 5, 10, 10)
	dc.Stroke()

	edge := dc.pixmap.GetPixel(5, 10)
	if edge.A < 0.5 {
		t.Errorf("expected stroke coverage on the rectangle edge, got %+v", edge)
	}
	center := dc.pixmap.GetPixel(10, 10)
	if center.A > 0.01 {
		t.Errorf("expected no fill in a stroke-only draw, got %+v", center)
	}
}

func TestGlobalAlphaScalesCoverage(t *testing.T) {
	dc := NewContext(10, 10)
	dc.SetRGBA(1, 0, 0, 1)
	dc.SetGlobalAlpha(0.5)
	dc.DrawRectangle(0, 0, 10, 10)
	dc.Fill()

	c := dc.pixmap.GetPixel(5, 5)
	if c.A < 0.45 || c.A > 0.55 {
		t.Errorf("expected ~0.5 alpha from globalAlpha, got %v", c.A)
	}
}

func TestCompositeOperationDestinationOut(t *testing.T) {
	dc := NewContext(10, 10)
	dc.SetRGBA(1, 0, 0, 1)
	dc.DrawRectangle(0, 0, 10, 10)
	dc.Fill()

	dc.SetGlobalCompositeOperation(CompositeDestinationOut)
	dc.SetRGBA(0, 0, 0, 1)
	dc.DrawRectangle(2, 2, 4, 4)
	dc.Fill()

	erased := dc.pixmap.GetPixel(4, 4)
	if erased.A > 0.01 {
		t.Errorf("destination-out should erase the destination, got %+v", erased)
	}
	untouched := dc.pixmap.GetPixel(1, 1)
	if untouched.A < 0.99 {
		t.Errorf("destination-out should leave pixels outside the new shape alone, got %+v", untouched)
	}
}

// TestCompositeOperationCopy checks the "copy" operator within the shape's
// own rasterized coverage. Canvas's copy operator is specified to also clear
// every pixel the new shape does NOT cover, which would require sweeping the
// whole canvas rather than only the incoming path's coverage; this renderer
// only composites pixels under that coverage (see DESIGN.md), so this test
// covers the part of "copy" it actually implements: full replacement, not
// blending, under the shape.
func TestCompositeOperationCopy(t *testing.T) {
	dc := NewContext(10, 10)
	dc.SetRGBA(1, 0, 0, 1)
	dc.DrawRectangle(0, 0, 10, 10)
	dc.Fill()

	dc.SetGlobalCompositeOperation(CompositeCopy)
	dc.SetRGBA(0, 1, 0.5, 1)
	dc.DrawRectangle(2, 2, 3, 3)
	dc.Fill()

	inNewShape := dc.pixmap.GetPixel(3, 3)
	if inNewShape.G < 0.99 || inNewShape.R > 0.01 {
		t.Errorf("copy should replace, not blend, pixels under the new shape, got %+v", inNewShape)
	}
}

func TestIsPointInPath(t *testing.T) {
	dc := NewContext(20, 20)
	dc.DrawRectangle(5, 5, 10, 10)

	if !dc.IsPointInPath(10, 10, FillRuleNonZero) {
		t.Error("expected (10,10) to be inside the rectangle")
	}
	if dc.IsPointInPath(1, 1, FillRuleNonZero) {
		t.Error("expected (1,1) to be outside the rectangle")
	}
}

func TestArcToRoundsCorner(t *testing.T) {
	dc := NewContext(40, 40)
	dc.MoveTo(5, 5)
	dc.ArcTo(20, 5, 20, 20, 5)
	dc.LineTo(20, 30)

	elems := dc.path.Elements()
	if len(elems) < 3 {
		t.Fatalf("expected ArcTo to add intermediate path elements, got %d", len(elems))
	}
}
