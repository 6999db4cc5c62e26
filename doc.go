// Package gg provides an immediate-mode 2D vector graphics library for Go,
// modeled on the HTML Canvas drawing API.
//
// # Overview
//
// gg renders paths, strokes, gradients, images, and text onto an in-memory
// pixel buffer entirely on the CPU. There is no GPU dependency: every
// Context is backed by straight-alpha RGBA8 pixels produced by scan
// conversion and analytic antialiasing.
//
// # Quick Start
//
//	import "github.com/gogpu/canvas"
//
//	// Create a drawing context (dc = drawing context convention)
//	dc := gg.NewContext(512, 512)
//
//	// Draw shapes
//	dc.SetRGB(1, 0, 0)
//	dc.DrawCircle(256, 256, 100)
//	dc.Fill()
//
//	// Save to PNG
//	dc.SavePNG("output.png")
//
// # Architecture
//
//   - Public API: Context, Path, Paint, Brush, Matrix, Transform, Snapshot
//   - Internal: path (flattening), stroke (dashing and outline expansion),
//     raster (scanline coverage), clip (clip-stack intersection), filter
//     (blur and drop shadow), blend (compositing and layer blend modes),
//     image (sampling, decoding, and format conversion), text (glyph
//     advances, kerning, and outlines from a parsed font)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing from +X toward +Y
//     (clockwise on screen)
//
// The current transform (Context.Transform, Translate, Scale, Rotate, ...)
// maps user-space coordinates passed to MoveTo/LineTo/DrawRectangle/etc.
// into device-space pixel coordinates before they reach the rasterizer.
package gg
