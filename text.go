package gg

import (
	"os"

	"golang.org/x/text/unicode/norm"

	itext "github.com/gogpu/canvas/internal/text"
)

// Face is a font loaded at a specific pixel size, providing glyph advances,
// kerning, and outlines to DrawString and MeasureString.
type Face = itext.Face

// TextAlign controls how DrawText positions text horizontally relative to
// the given x coordinate.
type TextAlign int

// Horizontal text alignment modes.
const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TextBaseline controls how DrawText positions text vertically relative to
// the given y coordinate.
type TextBaseline int

// Vertical text baseline modes.
const (
	BaselineAlphabetic TextBaseline = iota
	BaselineTop
	BaselineMiddle
	BaselineBottom
)

// NewFace parses font data (TrueType or OpenType/CFF) and returns a Face
// rendering at the given pixel size, for use with WithFont or SetFontFace.
func NewFace(data []byte, points float64) (*Face, error) {
	return itext.NewFace(data, points)
}

// LoadFontFace loads a TrueType or OpenType font from path and makes it the
// current font, rendered at the given pixel size.
func (c *Context) LoadFontFace(path string, points float64) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	return c.LoadFontFaceBytes(data, points)
}

// LoadFontFaceBytes loads a TrueType or OpenType font from in-memory data
// and makes it the current font, rendered at the given pixel size.
func (c *Context) LoadFontFaceBytes(data []byte, points float64) error {
	face, err := itext.NewFace(data, points)
	if err != nil {
		return err
	}
	c.face = face
	return nil
}

// SetFontFace sets the current font face directly, letting callers share one
// parsed Face across multiple contexts.
func (c *Context) SetFontFace(face *Face) {
	c.face = face
}

// FontFace returns the current font face, or nil if none has been set.
func (c *Context) FontFace() *Face {
	return c.face
}

// SetTextAlign sets the horizontal alignment used by DrawText.
func (c *Context) SetTextAlign(align TextAlign) {
	c.textAlign = align
}

// SetTextBaseline sets the vertical baseline used by DrawText.
func (c *Context) SetTextBaseline(baseline TextBaseline) {
	c.textBaseline = baseline
}

// MeasureString returns the rendered width and line height of s in the
// current font, in user-space pixels. Returns (0, 0) if no font is set.
func (c *Context) MeasureString(s string) (w, h float64) {
	if c.face == nil {
		return 0, 0
	}
	_, _, height := c.face.Metrics()
	width := measureWidth(c.face, norm.NFC.String(s))
	return width, height
}

func measureWidth(face *Face, s string) float64 {
	width := 0.0
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			width += face.Kern(prev, r)
		}
		if adv, ok := face.Advance(r); ok {
			width += adv
		}
		prev = r
	}
	return width
}

// DrawString draws s with its left edge at x and its alphabetic baseline at
// y, filled with the current paint. It is a no-op if no font is set.
func (c *Context) DrawString(s string, x, y float64) {
	c.DrawStringAnchored(s, x, y, 0, 0)
}

// DrawStringAnchored draws s anchored relative to (x, y): ax and ay are
// fractions of the string's bounding box subtracted from x and y, so (0, 0)
// left/top-aligns like DrawString, (0.5, 0.5) centers, and (1, 1) places the
// string's bottom-right corner at (x, y).
func (c *Context) DrawStringAnchored(s string, x, y, ax, ay float64) {
	if c.face == nil || s == "" {
		return
	}
	s = norm.NFC.String(s)
	w, h := c.MeasureString(s)
	ascent, _, _ := c.face.Metrics()
	originX := x - ax*w
	originY := y - ay*h + ascent

	path := buildTextPath(c.face, s, originX, originY, c.transform)
	saved := c.path
	c.path = path
	_ = c.doFill()
	c.path = saved
}

// DrawText draws s at (x, y) honoring the current SetTextAlign/
// SetTextBaseline settings, matching the HTML Canvas fillText contract.
func (c *Context) DrawText(s string, x, y float64) {
	if c.face == nil {
		return
	}
	w, h := c.MeasureString(s)
	ax, ay := 0.0, 0.0
	switch c.textAlign {
	case AlignCenter:
		ax = 0.5
	case AlignRight:
		ax = 1.0
	}
	switch c.textBaseline {
	case BaselineTop:
		ay = 0.0
	case BaselineMiddle:
		ay = 0.5
	case BaselineBottom:
		ay = 1.0
	default: // BaselineAlphabetic
		ascent, _, _ := c.face.Metrics()
		ay = ascent / h
	}
	c.DrawStringAnchored(s, x, y, ax, ay)
}

// buildTextPath lays out s starting at (penX, baselineY) in user space,
// appending each glyph's outline (flipped from the font's Y-up convention to
// the rasterizer's Y-down device space) as a closed subpath, transformed
// into device space the same way Context.MoveTo/LineTo transform points.
func buildTextPath(face *Face, s string, penX, baselineY float64, transform Transform) *Path {
	p := NewPath()
	pen := penX
	prev := rune(-1)
	var segs []itext.Segment
	for _, r := range s {
		if prev >= 0 {
			pen += face.Kern(prev, r)
		}
		segs = segs[:0]
		segs, err := face.AppendOutline(segs, r)
		if err == nil {
			appendGlyphPath(p, segs, pen, baselineY, transform)
		}
		if adv, ok := face.Advance(r); ok {
			pen += adv
		}
		prev = r
	}
	return p
}

func appendGlyphPath(p *Path, segs []itext.Segment, penX, baselineY float64, transform Transform) {
	glyphPoint := func(gp itext.Point) Point {
		return transform.Point(Pt(penX+gp.X, baselineY-gp.Y))
	}
	for _, seg := range segs {
		switch seg.Op {
		case itext.SegMoveTo:
			pt := glyphPoint(seg.Args[0])
			p.MoveTo(pt.X, pt.Y)
		case itext.SegLineTo:
			pt := glyphPoint(seg.Args[0])
			p.LineTo(pt.X, pt.Y)
		case itext.SegQuadTo:
			cp := glyphPoint(seg.Args[0])
			pt := glyphPoint(seg.Args[1])
			p.QuadraticTo(cp.X, cp.Y, pt.X, pt.Y)
		case itext.SegCubeTo:
			c1 := glyphPoint(seg.Args[0])
			c2 := glyphPoint(seg.Args[1])
			pt := glyphPoint(seg.Args[2])
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		}
	}
	p.Close()
}
