// Command stego is a CLI front-end for the LSB codec: embed, extract,
// inspect capacity and score images without running the HTTP service.
package main

import (
	"fmt"
	"image"
	"os"

	"imagestego-backend/imageutil"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stego",
	Short: "LSB image steganography toolkit",
	Long:  "Hide a payload in the RGB least-significant bits of an image, recover it, or score an image for likely embedding.",
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadImage(path string) image.Image {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open image")
	}
	defer f.Close()

	img, format, err := imageutil.DecodeImage(f)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to decode image")
	}
	log.Debug().Str("format", format).Msg("decoded cover image")
	return img
}

func writePNG(path string, img image.Image) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create output file")
	}
	defer f.Close()

	if err := imageutil.EncodePNG(f, img); err != nil {
		log.Fatal().Err(err).Msg("Failed to write stego PNG")
	}
	fmt.Printf("wrote %s\n", path)
}
