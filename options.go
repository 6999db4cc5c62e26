package gg

// ContextOption configures a Context during creation. Use functional
// options to customize Context behavior.
//
// Example:
//
//	dc := gg.NewContext(800, 600)
//	dc := gg.NewContext(800, 600, gg.WithPixmap(existing))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	pixmap *Pixmap
	face   *Face
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{}
}

// WithPixmap sets a custom pixmap for the Context. The pixmap dimensions
// should match the Context dimensions.
//
// Example:
//
//	pm := gg.NewPixmap(800, 600)
//	dc := gg.NewContext(800, 600, gg.WithPixmap(pm))
func WithPixmap(pm *Pixmap) ContextOption {
	return func(o *contextOptions) {
		o.pixmap = pm
	}
}

// WithFont sets the Context's starting font face, equivalent to calling
// SetFontFace immediately after NewContext.
//
// Example:
//
//	face, _ := gg.NewFace(fontData, 24)
//	dc := gg.NewContext(800, 600, gg.WithFont(face))
func WithFont(face *Face) ContextOption {
	return func(o *contextOptions) {
		o.face = face
	}
}
