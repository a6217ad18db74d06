package stego

import (
	"image"
	"math"
	mathbits "math/bits"

	"imagestego-backend/imageutil"
	"imagestego-backend/models"
)

const detectorNotes = "Heuristic detector; high score suggests possible LSB embedding, but not definitive."

// Detect estimates how likely it is that img carries LSB-embedded data.
// The score is a heuristic in [0,1] combining two measures: how evenly
// the LSBs split between 0 and 1 (embedded data looks pseudo-random, so
// the split tends toward 50/50), and how often LSBs flip between
// horizontally adjacent pixels (noise-like high-frequency flips).
func Detect(img image.Image) (float64, *models.DetectionDetails) {
	rgb := imageutil.ToRGB(img)
	w := rgb.Bounds().Dx()
	h := rgb.Bounds().Dy()

	zeros, ones := 0, 0
	flips, comparisons := 0, 0
	for y := 0; y < h; y++ {
		prev := -1
		for x := 0; x < w; x++ {
			off := (y*w + x) * 4
			r := rgb.Pix[off] & 1
			g := rgb.Pix[off+1] & 1
			b := rgb.Pix[off+2] & 1

			ones += int(r) + int(g) + int(b)
			zeros += channelsPerPixel - int(r) - int(g) - int(b)

			cur := int(r)<<2 | int(g)<<1 | int(b)
			if prev >= 0 {
				flips += mathbits.OnesCount8(uint8(prev ^ cur))
				comparisons += channelsPerPixel
			}
			prev = cur
		}
	}

	// 50/50 split scores 1, fully skewed scores 0.
	lsbBalance := 0.5
	if ones+zeros > 0 {
		lsbBalance = float64(ones) / float64(ones+zeros)
	}
	balanceScore := 1.0 - math.Abs(0.5-lsbBalance)*2.0

	// A flip rate of 0.5 is already very noisy; saturate there.
	flipRate := 0.0
	if comparisons > 0 {
		flipRate = float64(flips) / float64(comparisons)
	}
	flipScore := math.Min(1.0, flipRate/0.5)

	score := 0.6*balanceScore + 0.4*flipScore
	score = math.Max(0.0, math.Min(1.0, score))

	details := &models.DetectionDetails{
		Width:      w,
		Height:     h,
		LSBOnes:    ones,
		LSBZeros:   zeros,
		LSBBalance: round4(lsbBalance),
		FlipRate:   round4(flipRate),
		Notes:      detectorNotes,
	}
	return score, details
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
