package gg

// CustomBrush is a brush backed by an arbitrary color function, letting
// callers define procedural fills (checkerboards, gradients not covered by
// the built-in types, pattern adapters) without implementing a new type.
type CustomBrush struct {
	// Func computes the color at the given coordinates.
	Func func(x, y float64) RGBA

	// Name is an optional label, mainly useful for debugging brushes that
	// were synthesized from a Pattern via BrushFromPattern.
	Name string
}

// brushMarker implements the sealed Brush interface.
func (CustomBrush) brushMarker() {}

// ColorAt implements Brush by delegating to Func.
func (b CustomBrush) ColorAt(x, y float64) RGBA {
	return b.Func(x, y)
}

// NewCustomBrush creates a CustomBrush from a color function.
//
// Example:
//
//	brush := gg.NewCustomBrush(func(x, y float64) gg.RGBA {
//		return gg.RGB(x/100, y/100, 0)
//	})
func NewCustomBrush(fn func(x, y float64) RGBA) CustomBrush {
	return CustomBrush{Func: fn}
}
