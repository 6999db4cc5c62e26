package gg

import (
	icolor "github.com/gogpu/canvas/internal/color"
	ifilter "github.com/gogpu/canvas/internal/filter"
)

// ColorMatrix is a 4x5 row-major color transformation matrix, the same shape
// CSS uses for its feColorMatrix-based filters: each output channel is a
// weighted sum of the four input channels plus a constant bias.
type ColorMatrix = ifilter.ColorMatrixFilter

// ApplyColorMatrix transforms every pixel currently in the canvas through m,
// in straight-alpha space.
func (c *Context) ApplyColorMatrix(m [20]float32) {
	c.runColorMatrix(ifilter.NewColorMatrixFilter(m))
}

// Grayscale desaturates the canvas entirely, using Rec. 709 luminance
// weights.
func (c *Context) Grayscale() {
	c.runColorMatrix(ifilter.NewGrayscaleFilter())
}

// Sepia applies a sepia tone to the canvas.
func (c *Context) Sepia() {
	c.runColorMatrix(ifilter.NewSepiaFilter())
}

// InvertColors inverts every pixel's RGB channels, leaving alpha untouched.
func (c *Context) InvertColors() {
	c.runColorMatrix(ifilter.NewInvertFilter())
}

// AdjustBrightness scales every pixel's RGB channels by factor (1.0 is a
// no-op, 0.0 is black).
func (c *Context) AdjustBrightness(factor float64) {
	c.runColorMatrix(ifilter.NewBrightnessFilter(float32(factor)))
}

// AdjustContrast scales every pixel's RGB channels about the midpoint by
// factor (1.0 is a no-op).
func (c *Context) AdjustContrast(factor float64) {
	c.runColorMatrix(ifilter.NewContrastFilter(float32(factor)))
}

// AdjustSaturation blends every pixel toward (factor < 1) or away from
// (factor > 1) its own luminance.
func (c *Context) AdjustSaturation(factor float64) {
	c.runColorMatrix(ifilter.NewSaturationFilter(float32(factor)))
}

// RotateHue rotates every pixel's hue by the given number of degrees.
func (c *Context) RotateHue(degrees float64) {
	c.runColorMatrix(ifilter.NewHueRotateFilter(float32(degrees)))
}

// Tint blends the canvas toward col, weighted by col's own alpha.
func (c *Context) Tint(col RGBA) {
	c.runColorMatrix(ifilter.NewColorTintFilter(icolor.ColorF32{
		R: float32(col.R), G: float32(col.G), B: float32(col.B), A: float32(col.A),
	}))
}

func (c *Context) runColorMatrix(f *ifilter.ColorMatrixFilter) {
	src := c.pixmapToImageBuf(c.pixmap)
	dst := ifilter.NewBuffer(c.width, c.height)
	if dst == nil {
		return
	}
	bounds := ifilter.Rect{MinX: 0, MinY: 0, MaxX: float32(c.width), MaxY: float32(c.height)}
	f.Apply(src, dst, bounds)
	copy(c.pixmap.Data(), dst.Data())
}

// Blur applies a separable Gaussian blur of the given pixel radius to the
// entire canvas, in place.
func (c *Context) Blur(radius float64) {
	c.BlurXY(radius, radius)
}

// BlurXY applies an anisotropic separable Gaussian blur to the entire
// canvas, in place.
func (c *Context) BlurXY(radiusX, radiusY float64) {
	if radiusX <= 0 && radiusY <= 0 {
		return
	}
	f := ifilter.NewBlurFilterXY(radiusX, radiusY)
	src := c.pixmapToImageBuf(c.pixmap)
	dst := ifilter.NewBuffer(c.width, c.height)
	if dst == nil {
		return
	}
	bounds := ifilter.Rect{MinX: 0, MinY: 0, MaxX: float32(c.width), MaxY: float32(c.height)}
	f.Apply(src, dst, bounds)
	copy(c.pixmap.Data(), dst.Data())
}
