package filter

import (
	"github.com/gogpu/canvas/internal/color"
	"github.com/gogpu/canvas/internal/image"
)

// Test helper functions shared across filter tests.

var (
	testRed   = color.ColorF32{R: 1, A: 1}
	testWhite = color.ColorF32{R: 1, G: 1, B: 1, A: 1}
	testBlack = color.ColorF32{A: 1}
)

// createTestBuffer creates a straight-alpha RGBA8 buffer filled with the given color.
func createTestBuffer(w, h int, c color.ColorF32) *image.ImageBuf {
	buf := NewBuffer(w, h)
	r := uint8(clamp255f(float64(c.R) * 255))
	g := uint8(clamp255f(float64(c.G) * 255))
	b := uint8(clamp255f(float64(c.B) * 255))
	a := uint8(clamp255f(float64(c.A) * 255))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf.SetRGBA(x, y, r, g, b, a)
		}
	}
	return buf
}

// colorAt reads a pixel back as a straight-alpha ColorF32 in [0, 1].
func colorAt(buf *image.ImageBuf, x, y int) color.ColorF32 {
	r, g, b, a := buf.GetRGBA(x, y)
	return color.ColorF32{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// colorApproxEqual compares two colors with tolerance.
func colorApproxEqual(a, b color.ColorF32, tolerance float64) bool {
	return absf(float64(a.R-b.R)) < tolerance &&
		absf(float64(a.G-b.G)) < tolerance &&
		absf(float64(a.B-b.B)) < tolerance &&
		absf(float64(a.A-b.A)) < tolerance
}

// absf returns the absolute value of a float64.
func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// absf32 returns the absolute value of a float32.
func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// formatFloat formats a float for benchmark names.
func formatFloat(f float64) string {
	if f == float64(int(f)) {
		return formatInt(int(f))
	}
	intPart := int(f)
	fracPart := int((f - float64(intPart)) * 100)
	if fracPart < 0 {
		fracPart = -fracPart
	}
	return formatInt(intPart) + "." + formatInt(fracPart)
}

// formatInt formats an integer without using fmt.
func formatInt(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var digits []byte
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	if neg {
		digits = append([]byte{'-'}, digits...)
	}
	return string(digits)
}
