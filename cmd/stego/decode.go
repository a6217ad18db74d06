package main

import (
	"fmt"
	"os"

	"imagestego-backend/stego"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	decodeInput  string
	decodeOutput string
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Extract an embedded payload from an image",
	Run: func(cmd *cobra.Command, args []string) {
		img := loadImage(decodeInput)

		filename, payload, err := stego.Decode(img)
		if err != nil {
			log.Fatal().Err(err).Msg("No payload recovered")
		}

		out := decodeOutput
		if out == "" {
			out = filename
		}
		if out == "" {
			out = "payload.bin"
		}
		if err := os.WriteFile(out, payload, 0o644); err != nil {
			log.Fatal().Err(err).Msg("Failed to write payload")
		}
		fmt.Printf("recovered %d bytes (embedded name %q) -> %s\n", len(payload), filename, out)
	},
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeInput, "input", "i", "", "stego image path (required)")
	decodeCmd.Flags().StringVarP(&decodeOutput, "output", "o", "", "output path (defaults to the embedded filename)")
	if err := decodeCmd.MarkFlagRequired("input"); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	rootCmd.AddCommand(decodeCmd)
}
