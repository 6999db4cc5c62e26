// Package blend provides color blending operations.
package blend

import "github.com/gogpu/canvas/internal/color"

// Mode represents a blending mode for the simple compositing path used by
// mask and layer compositing (the full Porter-Duff set lives in porter_duff.go).
type Mode int

const (
	// ModeSourceOver is the default alpha blending mode.
	ModeSourceOver Mode = iota
	// ModeSourceCopy replaces the destination with the source.
	ModeSourceCopy
	// ModeDestinationOver draws destination over source.
	ModeDestinationOver
	// ModeDestinationIn keeps destination where source is opaque.
	ModeDestinationIn
	// ModeDestinationOut keeps destination where source is transparent.
	ModeDestinationOut
)

// Blend blends two straight-alpha colors using the specified mode.
func Blend(src, dst color.ColorF32, mode Mode) color.ColorF32 {
	switch mode {
	case ModeSourceOver:
		return sourceOver(src, dst)
	case ModeSourceCopy:
		return src
	case ModeDestinationOver:
		return sourceOver(dst, src)
	case ModeDestinationIn:
		return destinationIn(src, dst)
	case ModeDestinationOut:
		return destinationOut(src, dst)
	default:
		return sourceOver(src, dst)
	}
}

// sourceOver blends source over destination using alpha compositing.
func sourceOver(src, dst color.ColorF32) color.ColorF32 {
	srcA := src.A
	dstA := dst.A
	invSrcA := 1.0 - srcA

	outA := srcA + dstA*invSrcA
	if outA == 0 {
		return color.ColorF32{}
	}

	return color.ColorF32{
		R: (src.R*srcA + dst.R*dstA*invSrcA) / outA,
		G: (src.G*srcA + dst.G*dstA*invSrcA) / outA,
		B: (src.B*srcA + dst.B*dstA*invSrcA) / outA,
		A: outA,
	}
}

// destinationIn keeps destination where source is opaque.
func destinationIn(src, dst color.ColorF32) color.ColorF32 {
	return color.ColorF32{R: dst.R, G: dst.G, B: dst.B, A: dst.A * src.A}
}

// destinationOut keeps destination where source is transparent.
func destinationOut(src, dst color.ColorF32) color.ColorF32 {
	return color.ColorF32{R: dst.R, G: dst.G, B: dst.B, A: dst.A * (1 - src.A)}
}
