package imageutil

import (
	"image"
	"image/draw"
)

// ToRGB returns a fresh NRGBA copy of src with its bounds translated to
// the origin and the alpha channel forced to 255. Alpha is dropped so
// capacity and bit placement never depend on it, and the copy guarantees
// the caller's image is never written to.
func ToRGB(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xFF
	}
	return dst
}
