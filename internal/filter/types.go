package filter

import "github.com/gogpu/canvas/internal/image"

// Rect is an axis-aligned float32 rectangle in pixel space, local to this
// package so filters stay free of a dependency on the root canvas package
// (which itself depends on filter for blur/shadow/color-matrix effects).
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

// NewBuffer allocates a straight-alpha RGBA8 pixel buffer sized for use as a
// filter source or destination.
func NewBuffer(width, height int) *image.ImageBuf {
	buf, err := image.NewImageBuf(width, height, image.FormatRGBA8)
	if err != nil {
		return nil
	}
	return buf
}
