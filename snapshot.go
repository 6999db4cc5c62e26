package gg

// Snapshot is the full drawing state saved by Push and restored by Pop: the
// transform, paint style, shadow, global alpha, compositing operator, text
// state, font face, and a copy of the clip/mask state. Bitmap contents are
// never part of a Snapshot — Push/Pop only ever affect what subsequent
// drawing does, never what has already been drawn.
type Snapshot struct {
	transform Transform
	paint     *Paint
	globalAlpha       float64
	compositeOp       CompositeOperation
	shadowColor       RGBA
	shadowOffsetX     float64
	shadowOffsetY     float64
	shadowBlur        float64
	textAlign         TextAlign
	textBaseline      TextBaseline
	face              *Face
	clipDepth         int
	mask              *Mask
}

// snapshot captures the Context's current state.
func (c *Context) snapshot() Snapshot {
	depth := 0
	if c.clipStack != nil {
		depth = c.clipStack.Depth()
	}
	var maskCopy *Mask
	if c.mask != nil {
		maskCopy = c.mask.Clone()
	}
	return Snapshot{
		transform:     c.transform,
		paint:         c.paint.Clone(),
		globalAlpha:   c.globalAlpha,
		compositeOp:   c.compositeOp,
		shadowColor:   c.shadowColor,
		shadowOffsetX: c.shadowOffsetX,
		shadowOffsetY: c.shadowOffsetY,
		shadowBlur:    c.shadowBlur,
		textAlign:     c.textAlign,
		textBaseline:  c.textBaseline,
		face:          c.face,
		clipDepth:     depth,
		mask:          maskCopy,
	}
}

// restore applies a previously captured Snapshot back onto the Context.
func (c *Context) restore(s Snapshot) {
	c.transform = s.transform
	c.paint = s.paint
	c.globalAlpha = s.globalAlpha
	c.compositeOp = s.compositeOp
	c.shadowColor = s.shadowColor
	c.shadowOffsetX = s.shadowOffsetX
	c.shadowOffsetY = s.shadowOffsetY
	c.shadowBlur = s.shadowBlur
	c.textAlign = s.textAlign
	c.textBaseline = s.textBaseline
	c.face = s.face
	c.mask = s.mask

	if c.clipStack != nil {
		for c.clipStack.Depth() > s.clipDepth {
			c.clipStack.Pop()
		}
	}
}
