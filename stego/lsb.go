package stego

import (
	"image"

	"imagestego-backend/imageutil"
	"imagestego-backend/models"
)

// One bit per R, G and B channel; alpha is never written.
const channelsPerPixel = 3

// Capacity returns how much data an image can carry with 1 LSB per RGB
// channel: 3 bits per pixel regardless of the source color model.
func Capacity(img image.Image) (bits, byteCount int) {
	b := img.Bounds()
	bits = b.Dx() * b.Dy() * channelsPerPixel
	return bits, bits / 8
}

// Encode embeds header+payload into the LSBs of a copy of img. The input
// image is never modified. Pixels are written in row-major order, 3 bits
// per pixel in R,G,B order; within the last written pixel, channel slots
// past the final payload bit are forced to 0. Pixels beyond that are left
// untouched.
func Encode(img image.Image, payload []byte, filename string) (*image.NRGBA, *models.EncodeStats, error) {
	out := imageutil.ToRGB(img)
	w := out.Bounds().Dx()
	h := out.Bounds().Dy()

	full := append(PackHeader(filename, payload), payload...)
	totalBits := len(full) * 8

	capBits, _ := Capacity(out)
	if totalBits > capBits {
		return nil, nil, &CapacityError{NeededBits: totalBits, AvailableBits: capBits}
	}

	bits := BytesToBits(full)
	bitIdx := 0
	for p := 0; p < w*h; p++ {
		if bitIdx >= totalBits {
			break
		}
		off := p * 4 // NRGBA: R,G,B,A per pixel, bounds start at the origin
		for ch := 0; ch < channelsPerPixel; ch++ {
			var bit byte
			if bitIdx+ch < totalBits {
				bit = bits[bitIdx+ch]
			}
			out.Pix[off+ch] = out.Pix[off+ch]&0xFE | bit
		}
		bitIdx += channelsPerPixel
	}

	utilization := 0.0
	if capBits > 0 {
		utilization = float64(totalBits) / float64(capBits)
	}
	stats := &models.EncodeStats{
		Width:        w,
		Height:       h,
		CapacityBits: capBits,
		UsedBits:     totalBits,
		Utilization:  utilization,
	}
	return out, stats, nil
}

// Decode extracts an embedded filename and payload from img. It reads
// every RGB LSB in one row-major pass, then parses the header at bit 0.
func Decode(img image.Image) (filename string, payload []byte, err error) {
	rgb := imageutil.ToRGB(img)
	bits := extractLSBs(rgb)

	filename, payloadLen, headerBits, err := UnpackHeader(bits)
	if err != nil {
		return "", nil, err
	}

	neededBits := headerBits + payloadLen*8
	if len(bits) < neededBits {
		return "", nil, ErrInsufficientData
	}

	return filename, BitsToBytes(bits[headerBits:neededBits]), nil
}

// extractLSBs flattens the RGB LSBs of every pixel into a bitstream of
// exactly 3*w*h values.
func extractLSBs(img *image.NRGBA) []byte {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	bits := make([]byte, 0, w*h*channelsPerPixel)
	for p := 0; p < w*h; p++ {
		off := p * 4
		bits = append(bits, img.Pix[off]&1, img.Pix[off+1]&1, img.Pix[off+2]&1)
	}
	return bits
}
