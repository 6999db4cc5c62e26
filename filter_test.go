package gg

import "testing"

func TestGrayscaleRemovesSaturation(t *testing.T) {
	dc := NewContext(4, 4)
	dc.ClearWithColor(RGBA{R: 1, G: 0, B: 0, A: 1})
	dc.Grayscale()

	c := dc.pixmap.GetPixel(1, 1)
	if c.R != c.G || c.G != c.B {
		t.Errorf("expected a neutral gray pixel, got %+v", c)
	}
}

func TestInvertColorsRoundTrips(t *testing.T) {
	dc := NewContext(4, 4)
	dc.ClearWithColor(RGBA{R: 0.2, G: 0.4, B: 0.6, A: 1})
	dc.InvertColors()
	dc.InvertColors()

	c := dc.pixmap.GetPixel(1, 1)
	if approxDiff(c.R, 0.2) > 0.02 || approxDiff(c.G, 0.4) > 0.02 || approxDiff(c.B, 0.6) > 0.02 {
		t.Errorf("expected color restored after double invert, got %+v", c)
	}
}

func TestBlurSpreadsAHardEdge(t *testing.T) {
	dc := NewContext(20, 20)
	dc.Clear()
	dc.SetRGBA(1, 1, 1, 1)
	dc.DrawRectangle(10, 0, 10, 20)
	dc.Fill()

	before := dc.pixmap.GetPixel(9, 10).A
	dc.Blur(3)
	after := dc.pixmap.GetPixel(9, 10).A

	if before != 0 {
		t.Fatalf("setup assumption failed: expected 0 alpha left of the hard edge, got %v", before)
	}
	if after <= 0 {
		t.Errorf("expected blur to spread coverage across the edge, got alpha %v", after)
	}
}

func approxDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
