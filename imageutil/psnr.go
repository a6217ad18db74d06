package imageutil

import (
	"image"
	"math"
)

// PSNR measures how much an embed distorted the cover image, in dB.
// Returns +Inf when the images are identical and 0 when they are not
// comparable (different dimensions).
func PSNR(original, stego *image.NRGBA) float64 {
	if len(original.Pix) != len(stego.Pix) || len(original.Pix) == 0 {
		return 0.0
	}

	var mse float64
	samples := 0
	for i := 0; i < len(original.Pix); i += 4 {
		// R,G,B only; alpha is normalized to 255 on both sides
		for ch := 0; ch < 3; ch++ {
			diff := float64(original.Pix[i+ch]) - float64(stego.Pix[i+ch])
			mse += diff * diff
			samples++
		}
	}
	mse /= float64(samples)

	if mse == 0 {
		return math.Inf(1)
	}

	// PSNR = 20 * log10(MAX_SIGNAL_VALUE / sqrt(MSE)), 255 for 8-bit channels
	return 20 * math.Log10(255.0/math.Sqrt(mse))
}
