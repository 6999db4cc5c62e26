package gg

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"math"

	"github.com/gogpu/canvas/internal/clip"
	ipath "github.com/gogpu/canvas/internal/path"
)

// Context is the main drawing context: an immediate-mode 2D vector
// rasterizer modeled on the HTML Canvas API. It maintains a pixel buffer,
// current path, paint state, and a stack of saved states pushed by Push and
// restored by Pop.
type Context struct {
	width  int
	height int
	pixmap *Pixmap

	// Current state
	path      *Path
	paint     *Paint
	face      *Face          // current font face for text drawing, nil if none loaded
	clipStack *clip.ClipStack // clipping stack; nil means "unclipped, full canvas"
	mask      *Mask           // current alpha mask, nil means "fully opaque"

	transform Transform
	stack     []Snapshot

	globalAlpha  float64
	compositeOp  CompositeOperation
	shadowColor  RGBA
	shadowOffsetX float64
	shadowOffsetY float64
	shadowBlur   float64
	textAlign    TextAlign
	textBaseline TextBaseline

	closed bool
}

// Ensure Context implements io.Closer.
var _ io.Closer = (*Context)(nil)

// NewContext creates a new drawing context with the given pixel dimensions.
// Optional ContextOptions can inject a pre-existing pixmap or a starting
// font:
//
//	dc := gg.NewContext(800, 600)
//	dc := gg.NewContext(800, 600, gg.WithPixmap(existing))
func NewContext(width, height int, opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	pixmap := options.pixmap
	if pixmap == nil {
		pixmap = NewPixmap(width, height)
	}

	return &Context{
		width:       width,
		height:      height,
		pixmap:      pixmap,
		path:        NewPath(),
		paint:       NewPaint(),
		face:        options.face,
		transform:   IdentityTransform(),
		stack:       make([]Snapshot, 0, 8),
		globalAlpha: 1,
		compositeOp: CompositeSourceOver,
	}
}

// NewContextForImage creates a context for drawing on top of an existing
// image. The image's pixels are copied into a new straight-alpha Pixmap;
// subsequent drawing does not mutate img itself.
func NewContextForImage(img image.Image, opts ...ContextOption) *Context {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixmap := FromImage(img)

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Context{
		width:       width,
		height:      height,
		pixmap:      pixmap,
		path:        NewPath(),
		paint:       NewPaint(),
		face:        options.face,
		transform:   IdentityTransform(),
		stack:       make([]Snapshot, 0, 8),
		globalAlpha: 1,
		compositeOp: CompositeSourceOver,
	}
}

// Close releases resources associated with the Context. After Close, the
// Context should not be used. Close is idempotent.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.ClearPath()
	c.stack = nil
	c.mask = nil
	return nil
}

// Width returns the width of the context in pixels.
func (c *Context) Width() int {
	return c.width
}

// Height returns the height of the context in pixels.
func (c *Context) Height() int {
	return c.height
}

// Image returns the context's pixel buffer as an image.Image.
func (c *Context) Image() image.Image {
	return c.pixmap.ToImage()
}

// SavePNG saves the context to a PNG file.
func (c *Context) SavePNG(path string) error {
	return c.pixmap.SavePNG(path)
}

// Clear fills the entire context with transparent black.
func (c *Context) Clear() {
	c.pixmap.Clear(Transparent)
}

// ClearWithColor fills the entire context with a specific color.
func (c *Context) ClearWithColor(col RGBA) {
	c.pixmap.Clear(col)
}

// SetColor sets the current drawing color.
func (c *Context) SetColor(col color.Color) {
	c.paint.SetBrush(Solid(FromColor(col)))
}

// SetRGB sets the current color using RGB values (0-1).
func (c *Context) SetRGB(r, g, b float64) {
	c.paint.SetBrush(SolidRGB(r, g, b))
}

// SetRGBA sets the current color using RGBA values (0-1).
func (c *Context) SetRGBA(r, g, b, a float64) {
	c.paint.SetBrush(SolidRGBA(r, g, b, a))
}

// SetHexColor sets the current color using a hex string.
func (c *Context) SetHexColor(hex string) {
	c.paint.SetBrush(SolidHex(hex))
}

// SetFillBrush sets the brush used for fill operations.
//
// Example:
//
//	ctx.SetFillBrush(gg.Solid(gg.Red))
//	ctx.SetFillBrush(gg.SolidHex("#FF5733"))
//	ctx.SetFillBrush(gg.NewLinearGradientBrush(0, 0, 100, 0))
func (c *Context) SetFillBrush(b Brush) {
	c.paint.SetBrush(b)
}

// SetStrokeBrush sets the brush used for stroke operations. Fill and stroke
// share the same brush; this method exists for API symmetry with
// SetFillBrush.
func (c *Context) SetStrokeBrush(b Brush) {
	c.paint.SetBrush(b)
}

// FillBrush returns the current fill brush.
func (c *Context) FillBrush() Brush {
	return c.paint.GetBrush()
}

// StrokeBrush returns the current stroke brush.
func (c *Context) StrokeBrush() Brush {
	return c.paint.GetBrush()
}

// SetLineWidth sets the line width for stroking.
func (c *Context) SetLineWidth(width float64) {
	c.paint.LineWidth = width
}

// SetLineCap sets the line cap style.
func (c *Context) SetLineCap(lineCap LineCap) {
	c.paint.LineCap = lineCap
}

// SetLineJoin sets the line join style.
func (c *Context) SetLineJoin(join LineJoin) {
	c.paint.LineJoin = join
}

// SetFillRule sets the fill rule.
func (c *Context) SetFillRule(rule FillRule) {
	c.paint.FillRule = rule
}

// SetMiterLimit sets the miter limit for line joins.
func (c *Context) SetMiterLimit(limit float64) {
	c.paint.MiterLimit = limit
}

// SetStroke sets the complete stroke style.
//
// Example:
//
//	ctx.SetStroke(gg.DefaultStroke().WithWidth(2).WithCap(gg.LineCapRound))
func (c *Context) SetStroke(stroke Stroke) {
	c.paint.SetStroke(stroke)
}

// GetStroke returns the current stroke style.
func (c *Context) GetStroke() Stroke {
	return c.paint.GetStroke()
}

// SetGlobalAlpha sets the alpha multiplier applied to every subsequent fill,
// stroke, and image draw, in addition to each operation's own alpha.
func (c *Context) SetGlobalAlpha(alpha float64) {
	c.globalAlpha = alpha
}

// GlobalAlpha returns the current global alpha multiplier.
func (c *Context) GlobalAlpha() float64 {
	return c.globalAlpha
}

// SetGlobalCompositeOperation sets the Porter-Duff operator used to combine
// new fills, strokes, and shadows with the existing pixel buffer.
func (c *Context) SetGlobalCompositeOperation(op CompositeOperation) {
	c.compositeOp = op
}

// GlobalCompositeOperation returns the current composite operation.
func (c *Context) GlobalCompositeOperation() CompositeOperation {
	return c.compositeOp
}

// SetDash sets the dash pattern for stroking. Pass alternating dash and gap
// lengths. Passing no arguments clears the dash pattern (returns to solid
// lines).
//
// Example:
//
//	ctx.SetDash(5, 3)        // 5 units dash, 3 units gap
//	ctx.SetDash(10, 5, 2, 5) // complex pattern
//	ctx.SetDash()            // clear dash (solid line)
func (c *Context) SetDash(lengths ...float64) {
	if len(lengths) == 0 {
		c.ClearDash()
		return
	}

	dash := NewDash(lengths...)
	if dash == nil {
		c.ClearDash()
		return
	}

	if c.paint.Stroke == nil {
		stroke := c.paint.GetStroke()
		c.paint.Stroke = &stroke
	}
	c.paint.Stroke.Dash = dash
}

// SetDashOffset sets the starting offset into the dash pattern. This has no
// effect if no dash pattern is set.
func (c *Context) SetDashOffset(offset float64) {
	if c.paint.Stroke == nil {
		stroke := c.paint.GetStroke()
		c.paint.Stroke = &stroke
	}
	if c.paint.Stroke.Dash != nil {
		c.paint.Stroke.Dash = c.paint.Stroke.Dash.WithOffset(offset)
	}
}

// ClearDash removes the dash pattern, returning to solid lines.
func (c *Context) ClearDash() {
	if c.paint.Stroke != nil {
		c.paint.Stroke.Dash = nil
	}
}

// IsDashed returns true if the current stroke uses a dash pattern.
func (c *Context) IsDashed() bool {
	return c.paint.IsDashed()
}

// MoveTo starts a new subpath at the given user-space point.
func (c *Context) MoveTo(x, y float64) {
	p := c.transform.Point(Pt(x, y))
	c.path.MoveTo(p.X, p.Y)
}

// LineTo adds a line to the current path.
func (c *Context) LineTo(x, y float64) {
	p := c.transform.Point(Pt(x, y))
	c.path.LineTo(p.X, p.Y)
}

// QuadraticTo adds a quadratic Bezier curve to the current path.
func (c *Context) QuadraticTo(cx, cy, x, y float64) {
	cp := c.transform.Point(Pt(cx, cy))
	p := c.transform.Point(Pt(x, y))
	c.path.QuadraticTo(cp.X, cp.Y, p.X, p.Y)
}

// CubicTo adds a cubic Bezier curve to the current path.
func (c *Context) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	cp1 := c.transform.Point(Pt(c1x, c1y))
	cp2 := c.transform.Point(Pt(c2x, c2y))
	p := c.transform.Point(Pt(x, y))
	c.path.CubicTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p.X, p.Y)
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	c.path.Close()
}

// ClearPath clears the current path.
func (c *Context) ClearPath() {
	c.path.Clear()
}

// NewSubPath starts a new subpath without closing the previous one. This is
// a no-op: a subsequent MoveTo already starts a new subpath. Provided for
// API compatibility with callers ported from gg-style libraries.
func (c *Context) NewSubPath() {
}

// Fill fills the current path using the current paint and clears the path.
func (c *Context) Fill() error {
	err := c.doFill()
	c.path.Clear()
	return err
}

// Stroke strokes the current path using the current paint and clears the
// path.
func (c *Context) Stroke() error {
	err := c.doStroke()
	c.path.Clear()
	return err
}

// FillPreserve fills the current path without clearing it.
func (c *Context) FillPreserve() error {
	return c.doFill()
}

// StrokePreserve strokes the current path without clearing it.
func (c *Context) StrokePreserve() error {
	return c.doStroke()
}

// Push saves the current drawing state (transform, paint, shadow, global
// alpha, composite operator, text state, font, clip, and mask) onto an
// internal stack.
func (c *Context) Push() {
	c.stack = append(c.stack, c.snapshot())
}

// Pop restores the most recently pushed drawing state. It is a no-op if the
// stack is empty.
func (c *Context) Pop() {
	if len(c.stack) == 0 {
		return
	}
	s := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.restore(s)
}

// Identity resets the transformation to identity.
func (c *Context) Identity() {
	c.transform = IdentityTransform()
}

// Translate applies a translation to the current transform.
func (c *Context) Translate(x, y float64) {
	c.transform = c.transform.Then(Translate(x, y))
}

// Scale applies a scaling transformation.
func (c *Context) Scale(x, y float64) {
	c.transform = c.transform.Then(Scale(x, y))
}

// Rotate applies a rotation (angle in radians).
func (c *Context) Rotate(angle float64) {
	c.transform = c.transform.Then(Rotate(angle))
}

// RotateAbout rotates around a specific point.
func (c *Context) RotateAbout(angle, x, y float64) {
	c.Translate(x, y)
	c.Rotate(angle)
	c.Translate(-x, -y)
}

// Shear applies a shear transformation.
func (c *Context) Shear(x, y float64) {
	c.transform = c.transform.Then(Shear(x, y))
}

// Transform multiplies the current transform by the given matrix, applied
// in the order current * m. This mirrors
// CanvasRenderingContext2D.transform().
func (c *Context) Transform(m Matrix) {
	c.transform = c.transform.Then(m)
}

// SetTransform replaces the current transform with the given matrix,
// mirroring CanvasRenderingContext2D.setTransform().
func (c *Context) SetTransform(m Matrix) {
	c.transform = NewTransform(m)
}

// GetTransform returns the current transformation matrix, mirroring
// CanvasRenderingContext2D.getTransform().
func (c *Context) GetTransform() Matrix {
	return c.transform.Forward
}

// TransformPoint transforms a user-space point by the current transform.
func (c *Context) TransformPoint(x, y float64) (float64, float64) {
	p := c.transform.Point(Pt(x, y))
	return p.X, p.Y
}

// InvertY flips the Y axis, useful when porting code written against a
// bottom-left origin coordinate system.
func (c *Context) InvertY() {
	c.Translate(0, float64(c.height))
	c.Scale(1, -1)
}

// SetPixel sets a single device-space pixel, bypassing the current
// transform, paint, and clip.
func (c *Context) SetPixel(x, y int, col RGBA) {
	c.pixmap.SetPixel(x, y, col)
}

// DrawPoint draws a filled circle of radius r centered at (x, y).
func (c *Context) DrawPoint(x, y, r float64) {
	c.DrawCircle(x, y, r)
}

// DrawLine adds a line segment between two points to the current path.
func (c *Context) DrawLine(x1, y1, x2, y2 float64) {
	c.MoveTo(x1, y1)
	c.LineTo(x2, y2)
}

// DrawRectangle adds a rectangle to the current path.
func (c *Context) DrawRectangle(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

// DrawRoundedRectangle adds a rectangle with rounded corners to the current
// path.
func (c *Context) DrawRoundedRectangle(x, y, w, h, r float64) {
	rp := NewPath()
	rp.RoundedRectangle(x, y, w, h, r)
	c.appendUserPath(rp)
}

// DrawCircle adds a circle to the current path, approximated with four
// cubic Bezier arcs.
func (c *Context) DrawCircle(x, y, r float64) {
	c.DrawEllipse(x, y, r, r)
}

// DrawEllipse adds an ellipse to the current path, approximated with four
// cubic Bezier arcs.
func (c *Context) DrawEllipse(x, y, rx, ry float64) {
	const k = 0.5522847498307936
	ox := rx * k
	oy := ry * k

	c.MoveTo(x+rx, y)
	c.CubicTo(x+rx, y+oy, x+ox, y+ry, x, y+ry)
	c.CubicTo(x-ox, y+ry, x-rx, y+oy, x-rx, y)
	c.CubicTo(x-rx, y-oy, x-ox, y-ry, x, y-ry)
	c.CubicTo(x+ox, y-ry, x+rx, y-oy, x+rx, y)
	c.ClosePath()
}

// DrawArc adds a circular arc to the current path, sweeping from angle1 to
// angle2 radians (increasing angle) around the given center.
func (c *Context) DrawArc(x, y, r, angle1, angle2 float64) {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil((angle2 - angle1) / maxAngle))
	if numSegments < 1 {
		numSegments = 1
	}
	angleStep := (angle2 - angle1) / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		a1 := angle1 + float64(i)*angleStep
		a2 := a1 + angleStep
		c.arcSegment(x, y, r, a1, a2)
	}
}

// arcSegment appends one cubic Bezier approximating an arc no larger than a
// quarter turn, in user space.
func (c *Context) arcSegment(cx, cy, r, a1, a2 float64) {
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	c1x := x1 - alpha*r*sin1
	c1y := y1 + alpha*r*cos1
	c2x := x2 + alpha*r*sin2
	c2y := y2 - alpha*r*cos2

	if !c.path.HasCurrentPoint() {
		c.MoveTo(x1, y1)
	}
	c.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
}

// ArcTo adds a circular arc of the given radius tangent to the lines from
// the current point to (x1, y1) and from (x1, y1) to (x2, y2), connecting
// to it with a straight line if needed, mirroring
// CanvasRenderingContext2D.arcTo(). Coordinates are in user space.
func (c *Context) ArcTo(x1, y1, x2, y2, r float64) {
	up := NewPath()
	if c.path.HasCurrentPoint() {
		cur := c.transform.InversePoint(c.path.CurrentPoint())
		up.MoveTo(cur.X, cur.Y)
	}
	up.ArcTo(x1, y1, x2, y2, r)
	elems := up.Elements()
	if c.path.HasCurrentPoint() {
		elems = elems[1:] // drop the synthetic leading MoveTo used to seed ArcTo
	}
	for _, elem := range elems {
		switch e := elem.(type) {
		case MoveTo:
			c.MoveTo(e.Point.X, e.Point.Y)
		case LineTo:
			c.LineTo(e.Point.X, e.Point.Y)
		case CubicTo:
			c.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		}
	}
}

// IsPointInPath reports whether the point (x, y), in user space, lies
// inside the current path under the given fill rule.
func (c *Context) IsPointInPath(x, y float64, rule FillRule) bool {
	polys, _ := flattenSubpaths(c.path.Elements(), ipath.FillAngularLimit)
	if len(polys) == 0 {
		return false
	}
	dp := c.transform.Point(Pt(x, y))
	runs := polygonRuns(polys, c.width, c.height)
	fold := clampAbs
	if rule == FillRuleEvenOdd {
		fold = foldEvenOdd
	}
	hit := false
	walkRuns(runs, c.width, c.height, fold, func(y, x0, x1 int, coverage float64) {
		if hit || coverage <= 0 {
			return
		}
		py := int(math.Floor(dp.Y))
		if y != py {
			return
		}
		px := int(math.Floor(dp.X))
		if px >= x0 && px < x1 {
			hit = true
		}
	})
	return hit
}

// DrawEllipticalArc adds an axis-aligned elliptical arc to the current path
// by scaling a unit-circle arc.
func (c *Context) DrawEllipticalArc(x, y, rx, ry, angle1, angle2 float64) {
	c.Push()
	c.Translate(x, y)
	c.Scale(rx, ry)
	c.DrawArc(0, 0, 1, angle1, angle2)
	c.Pop()
}

// appendUserPath transforms every element of a user-space path (built with
// package-local coordinates, e.g. by Path.RoundedRectangle) through the
// current transform and appends it to the context's device-space path.
func (c *Context) appendUserPath(p *Path) {
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			c.MoveTo(e.Point.X, e.Point.Y)
		case LineTo:
			c.LineTo(e.Point.X, e.Point.Y)
		case QuadTo:
			c.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case CubicTo:
			c.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case Close:
			c.ClosePath()
		}
	}
}

// currentColor returns the current drawing color from the paint if it is a
// plain solid color, or black if the current brush is a gradient, pattern,
// or custom brush.
func (c *Context) currentColor() color.Color {
	if sp, ok := c.paint.Pattern.(*SolidPattern); ok {
		return sp.Color.Color()
	}
	if sb, ok := c.paint.Brush.(*SolidBrush); ok {
		return sb.Color.Color()
	}
	return color.Black
}

// GetCurrentPoint returns the current point of the path in device space.
// Returns (0, 0, false) if there is no current point.
func (c *Context) GetCurrentPoint() (x, y float64, ok bool) {
	if c.path == nil || !c.path.HasCurrentPoint() {
		return 0, 0, false
	}
	pt := c.path.CurrentPoint()
	return pt.X, pt.Y, true
}

// EncodePNG writes the image as PNG to the given writer.
func (c *Context) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}

// EncodeJPEG writes the image as JPEG with the given quality (1-100).
func (c *Context) EncodeJPEG(w io.Writer, quality int) error {
	return jpeg.Encode(w, c.Image(), &jpeg.Options{Quality: quality})
}

// Resize changes the context dimensions, reallocating the pixel buffer. If
// the dimensions haven't changed, this is a no-op. Returns an error if
// width or height is <= 0.
//
// After Resize:
//   - The pixmap is reallocated and cleared
//   - The clip region is reset to unclipped
//   - The transform and Push/Pop stack are preserved
//   - The current path is cleared
func (c *Context) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions: width=%d, height=%d (both must be > 0)", width, height)
	}
	if c.width == width && c.height == height {
		return nil
	}

	c.width = width
	c.height = height
	c.pixmap = NewPixmap(width, height)
	c.clipStack = nil
	c.ClearPath()
	return nil
}

// ResizeTarget returns the underlying pixmap, primarily for advanced users
// who need direct access to the target buffer.
func (c *Context) ResizeTarget() *Pixmap {
	return c.pixmap
}
