package color

// bayer4x4 is the standard 4x4 ordered-dither threshold matrix, indexed
// [y%4][x%4], holding the traversal order of each cell in [0,16).
var bayer4x4 = [4][4]int{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// ditherThreshold returns the dither bias for pixel (x,y) in units of one
// 8-bit step: (4*bayer+1)/64 - 1/128, one of 16 values from 1/128 to 121/128.
func ditherThreshold(x, y int) float64 {
	idx := bayer4x4[y&3][x&3]
	return (float64(idx*4+1))/64 - 1.0/128
}

// DitherByte quantizes a straight (unassociated) sRGB component in [0,1] to
// 8 bits using a 4x4 Bayer ordered dither keyed on the pixel position. This
// is the readback contract: two adjacent flat-color pixels may quantize to
// different bytes so that, averaged over a 4x4 tile, banding is eliminated.
func DitherByte(srgb float32, x, y int) uint8 {
	v := float64(srgb)*255 + ditherThreshold(x, y)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
