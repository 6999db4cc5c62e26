// Package text wraps golang.org/x/image/font/sfnt to provide exactly the
// glyph data a rasterizer needs — advance widths, pair kerning, and glyph
// outlines as vector path segments — without pulling in a text-shaping
// engine. Complex script shaping, ligatures, and bidi are out of scope: one
// rune maps to one glyph, looked up directly by its Unicode code point.
package text

import (
	"errors"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/canvas/internal/cache"
)

// outlineCacheLimit bounds the per-Face glyph outline cache. Outlines are
// immutable once loaded at a given size, so a modest LRU avoids re-walking
// sfnt's glyf/CFF table for runes a caller measures and draws repeatedly
// (e.g. re-rendering the same label every frame).
const outlineCacheLimit = 256

// ErrGlyphNotFound is returned by AppendOutline and Advance when the face
// has no glyph for the requested rune.
var ErrGlyphNotFound = errors.New("text: glyph not found")

// SegmentOp identifies a glyph outline command, mirrored from sfnt.SegmentOp
// rather than re-exported so this package's callers don't need to import
// x/image/font/sfnt themselves.
type SegmentOp int

// Outline segment operators, one point (MoveTo/LineTo) or two/three points
// (QuadTo/CubeTo) at a time in Segment.Args.
const (
	SegMoveTo SegmentOp = iota
	SegLineTo
	SegQuadTo
	SegCubeTo
)

// Point is a glyph-space coordinate in pixels at the Face's configured size,
// origin at the glyph's left sidebearing on the baseline, Y increasing
// upward (the font convention, opposite of the rasterizer's device space).
type Point struct {
	X, Y float64
}

// Segment is one command of a glyph's outline.
type Segment struct {
	Op   SegmentOp
	Args [3]Point
}

// Face binds a parsed font to a pixel size, scaling every query (advance,
// kerning, outline) to that size.
type Face struct {
	font    *sfnt.Font
	size    float64
	ppem    fixed.Int26_6
	hint    font.Hinting
	buf     sfnt.Buffer
	outlines *cache.Cache[rune, []Segment]
}

// NewFace parses font data (TrueType or OpenType/CFF) and returns a Face
// rendering at the given pixel size.
func NewFace(data []byte, size float64) (*Face, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	return &Face{
		font:     f,
		size:     size,
		ppem:     fixed.Int26_6(size * 64),
		hint:     font.HintingNone,
		outlines: cache.New[rune, []Segment](outlineCacheLimit),
	}, nil
}

// Size returns the pixel size this Face was created with.
func (f *Face) Size() float64 { return f.size }

func (f *Face) glyphIndex(r rune) (sfnt.GlyphIndex, bool) {
	gi, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil || gi == 0 {
		return 0, false
	}
	return gi, true
}

// Advance returns the horizontal advance of the glyph for r, in pixels.
func (f *Face) Advance(r rune) (float64, bool) {
	gi, ok := f.glyphIndex(r)
	if !ok {
		return 0, false
	}
	adv, err := f.font.GlyphAdvance(&f.buf, gi, f.ppem, f.hint)
	if err != nil {
		return 0, false
	}
	return fixedToFloat(adv), true
}

// Kern returns the kerning adjustment, in pixels, to add between the glyphs
// for r0 and r1 when r1 immediately follows r0. Returns 0 if the face has no
// kerning data for the pair, which is the common case for most fonts.
func (f *Face) Kern(r0, r1 rune) float64 {
	gi0, ok0 := f.glyphIndex(r0)
	gi1, ok1 := f.glyphIndex(r1)
	if !ok0 || !ok1 {
		return 0
	}
	k, err := f.font.Kern(&f.buf, gi0, gi1, f.ppem, f.hint)
	if err != nil {
		return 0
	}
	return fixedToFloat(k)
}

// AppendOutline appends the outline of the glyph for r, as a sequence of
// Segments scaled to the Face's size, to dst and returns the extended slice.
// Outlines are cached per rune, since the same glyph is commonly drawn many
// times (repeated labels, animation frames) at a fixed Face size.
func (f *Face) AppendOutline(dst []Segment, r rune) ([]Segment, error) {
	if cached, ok := f.outlines.Get(r); ok {
		return append(dst, cached...), nil
	}

	gi, ok := f.glyphIndex(r)
	if !ok {
		return dst, ErrGlyphNotFound
	}
	segs, err := f.font.LoadGlyph(&f.buf, gi, f.ppem, nil)
	if err != nil {
		return dst, err
	}
	outline := make([]Segment, 0, len(segs))
	for _, s := range segs {
		seg := Segment{}
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			seg.Op = SegMoveTo
		case sfnt.SegmentOpLineTo:
			seg.Op = SegLineTo
		case sfnt.SegmentOpQuadTo:
			seg.Op = SegQuadTo
		case sfnt.SegmentOpCubeTo:
			seg.Op = SegCubeTo
		}
		for i, a := range s.Args {
			seg.Args[i] = Point{X: fixedToFloat(a.X), Y: fixedToFloat(a.Y)}
		}
		outline = append(outline, seg)
	}
	f.outlines.Set(r, outline)
	return append(dst, outline...), nil
}

// Metrics returns the face's ascent, descent, and recommended line height in
// pixels, all positive.
func (f *Face) Metrics() (ascent, descent, height float64) {
	m, err := f.font.Metrics(&f.buf, f.ppem, f.hint)
	if err != nil {
		return f.size * 0.8, f.size * 0.2, f.size * 1.2
	}
	return fixedToFloat(m.Ascent), fixedToFloat(m.Descent), fixedToFloat(m.Height)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
