package main

import (
	"fmt"
	"os"
	"path/filepath"

	"imagestego-backend/imageutil"
	"imagestego-backend/stego"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	encodeInput   string
	encodeOutput  string
	encodeText    string
	encodePayload string
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Embed a text or file payload into an image",
	Run: func(cmd *cobra.Command, args []string) {
		var payload []byte
		var payloadName string
		switch {
		case encodePayload != "":
			data, err := os.ReadFile(encodePayload)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to read payload file")
			}
			payload = data
			payloadName = filepath.Base(encodePayload)
		default:
			payload = []byte(encodeText)
			payloadName = "message.txt"
		}

		img := loadImage(encodeInput)
		cover := imageutil.ToRGB(img)
		out, stats, err := stego.Encode(img, payload, payloadName)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to embed payload")
		}

		log.Info().
			Int("used_bits", stats.UsedBits).
			Int("capacity_bits", stats.CapacityBits).
			Float64("utilization", stats.Utilization).
			Float64("psnr_db", imageutil.PSNR(cover, out)).
			Msg("payload embedded")

		writePNG(encodeOutput, out)
	},
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeInput, "input", "i", "", "cover image path (required)")
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "stego.png", "output PNG path")
	encodeCmd.Flags().StringVar(&encodeText, "text", "", "text to embed")
	encodeCmd.Flags().StringVar(&encodePayload, "payload", "", "file to embed (overrides --text)")
	if err := encodeCmd.MarkFlagRequired("input"); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	rootCmd.AddCommand(encodeCmd)
}
