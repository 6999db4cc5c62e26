package gg

// Pattern is the legacy fill/stroke source interface, kept for compatibility
// with code written against it. New code should use Brush instead; Pattern
// values are adapted to Brush via BrushFromPattern and PatternFromBrush.
type Pattern interface {
	// ColorAt returns the color at the given coordinates.
	ColorAt(x, y float64) RGBA
}

// SolidPattern is a Pattern that returns the same color everywhere.
type SolidPattern struct {
	Color RGBA
}

// NewSolidPattern creates a SolidPattern with the given color.
func NewSolidPattern(c RGBA) *SolidPattern {
	return &SolidPattern{Color: c}
}

// ColorAt implements Pattern.
func (p *SolidPattern) ColorAt(_, _ float64) RGBA {
	return p.Color
}
