package gg

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Paint represents the styling information for drawing.
type Paint struct {
	// Brush is the fill or stroke source. Prefer this over Pattern.
	Brush Brush

	// Pattern is the legacy fill or stroke source, kept in sync with Brush
	// by SetBrush for code that still reads it directly.
	Pattern Pattern

	// Stroke holds the full stroking style, including dashing. It is nil
	// until first requested through GetStroke or explicitly set.
	Stroke *Stroke

	// TransformScale is the uniform scale factor of the transform in effect
	// when this paint was last used, so stroke widths and dash lengths can
	// be converted between user space and device space.
	TransformScale float64

	// LineWidth is the width of strokes
	LineWidth float64

	// LineCap is the shape of line endpoints
	LineCap LineCap

	// LineJoin is the shape of line joins
	LineJoin LineJoin

	// MiterLimit is the miter limit for sharp joins
	MiterLimit float64

	// FillRule is the fill rule for paths
	FillRule FillRule

	// Antialias enables anti-aliasing
	Antialias bool
}

// NewPaint creates a new Paint with default values.
func NewPaint() *Paint {
	p := &Paint{
		LineWidth:      1.0,
		LineCap:        LineCapButt,
		LineJoin:       LineJoinMiter,
		MiterLimit:     10.0,
		FillRule:       FillRuleNonZero,
		Antialias:      true,
		TransformScale: 1.0,
	}
	p.SetBrush(Solid(Black))
	return p
}

// Clone creates a copy of the Paint.
func (p *Paint) Clone() *Paint {
	clone := &Paint{
		Brush:          p.Brush,
		Pattern:        p.Pattern,
		TransformScale: p.TransformScale,
		LineWidth:      p.LineWidth,
		LineCap:        p.LineCap,
		LineJoin:       p.LineJoin,
		MiterLimit:     p.MiterLimit,
		FillRule:       p.FillRule,
		Antialias:      p.Antialias,
	}
	if p.Stroke != nil {
		s := *p.Stroke
		clone.Stroke = &s
	}
	return clone
}

// SetBrush sets the fill or stroke source. It also updates Pattern so code
// that still reads the legacy field sees a consistent value.
func (p *Paint) SetBrush(b Brush) {
	p.Brush = b
	p.Pattern = PatternFromBrush(b)
}

// GetBrush returns the current brush. If Brush is unset but Pattern is set,
// the pattern is adapted to a Brush. With neither set, it returns opaque
// black.
func (p *Paint) GetBrush() Brush {
	if p.Brush != nil {
		return p.Brush
	}
	if p.Pattern != nil {
		return BrushFromPattern(p.Pattern)
	}
	return Solid(Black)
}

// ColorAt samples the current brush or pattern at the given coordinates,
// with Brush taking precedence over Pattern. Defaults to Black when neither
// is set.
func (p *Paint) ColorAt(x, y float64) RGBA {
	if p.Brush != nil {
		return p.Brush.ColorAt(x, y)
	}
	if p.Pattern != nil {
		return p.Pattern.ColorAt(x, y)
	}
	return Black
}

// SetStroke sets the full stroking style.
func (p *Paint) SetStroke(s Stroke) {
	p.Stroke = &s
}

// GetStroke returns the current stroking style, falling back to the legacy
// LineWidth/LineCap/LineJoin/MiterLimit fields when Stroke hasn't been set.
func (p *Paint) GetStroke() Stroke {
	if p.Stroke != nil {
		return *p.Stroke
	}
	return Stroke{
		Width:      p.LineWidth,
		Cap:        p.LineCap,
		Join:       p.LineJoin,
		MiterLimit: p.MiterLimit,
	}
}

// IsDashed reports whether the current stroke style has an active dash
// pattern.
func (p *Paint) IsDashed() bool {
	if p.Stroke == nil {
		return false
	}
	return p.Stroke.IsDashed()
}
