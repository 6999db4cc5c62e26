package gg

import (
	"math"

	icolor "github.com/gogpu/canvas/internal/color"
	ifilter "github.com/gogpu/canvas/internal/filter"
)

// SetShadowColor sets the color used for the drop shadow cast by fills and
// strokes. A fully transparent color (the default) disables shadow
// rendering entirely.
func (c *Context) SetShadowColor(col RGBA) {
	c.shadowColor = col
}

// ShadowColor returns the current shadow color.
func (c *Context) ShadowColor() RGBA {
	return c.shadowColor
}

// SetShadowOffset sets the shadow's device-space offset in pixels.
func (c *Context) SetShadowOffset(x, y float64) {
	c.shadowOffsetX = x
	c.shadowOffsetY = y
}

// ShadowOffset returns the current shadow offset.
func (c *Context) ShadowOffset() (x, y float64) {
	return c.shadowOffsetX, c.shadowOffsetY
}

// SetShadowBlur sets the shadow's Gaussian blur radius in pixels. Zero
// disables blurring, producing a hard-edged offset copy of the shape.
func (c *Context) SetShadowBlur(radius float64) {
	c.shadowBlur = radius
}

// ShadowBlur returns the current shadow blur radius.
func (c *Context) ShadowBlur() float64 {
	return c.shadowBlur
}

// renderShadow draws the drop shadow for a set of device-space polygons
// beneath the shape that is about to be composited normally, matching the
// canvas shadow model: the shadow is a blurred, offset, recolored copy of
// the shape's own alpha, subject to the same clip and mask as the shape.
func (c *Context) renderShadow(polys [][]Point, rule FillRule) {
	if c.shadowColor.A <= 0 {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polys {
		for _, p := range poly {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if minX > maxX || minY > maxY {
		return
	}

	src := ifilter.NewBuffer(c.width, c.height)
	if src == nil {
		return
	}

	colorAt := c.userColorAt(c.paint)
	runs := polygonRuns(polys, c.width, c.height)
	fold := clampAbs
	if rule == FillRuleEvenOdd {
		fold = foldEvenOdd
	}
	walkRuns(runs, c.width, c.height, fold, func(y, x0, x1 int, coverage float64) {
		for x := x0; x < x1; x++ {
			alpha := coverage * c.globalAlpha
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
			a := col.A * alpha
			_ = src.SetRGBA(x, y,
				uint8(clamp255(col.R*255)),
				uint8(clamp255(col.G*255)),
				uint8(clamp255(col.B*255)),
				uint8(clamp255(a*255)))
		}
	})

	f := ifilter.NewDropShadowFilter(c.shadowOffsetX, c.shadowOffsetY, c.shadowBlur, icolor.ColorF32{
		R: float32(c.shadowColor.R),
		G: float32(c.shadowColor.G),
		B: float32(c.shadowColor.B),
		A: float32(c.shadowColor.A),
	})
	dst := c.pixmapToImageBuf(c.pixmap)
	f.Apply(src, dst, ifilter.Rect{
		MinX: float32(minX), MinY: float32(minY),
		MaxX: float32(maxX), MaxY: float32(maxY),
	})
}
