package main

import (
	"fmt"

	"imagestego-backend/stego"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var detectCmd = &cobra.Command{
	Use:   "detect [image-path]",
	Short: "Score an image for likely LSB embedding",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		img := loadImage(args[0])
		score, details := stego.Detect(img)

		fmt.Printf("image:        %dx%d\n", details.Width, details.Height)
		fmt.Printf("lsb ones:     %d\n", details.LSBOnes)
		fmt.Printf("lsb zeros:    %d\n", details.LSBZeros)
		fmt.Printf("lsb balance:  %.4f\n", details.LSBBalance)
		fmt.Printf("flip rate:    %.4f\n", details.FlipRate)

		verdict := color.GreenString("LOW")
		switch {
		case score >= 0.8:
			verdict = color.RedString("HIGH")
		case score >= 0.5:
			verdict = color.YellowString("MEDIUM")
		}
		fmt.Printf("suspicion:    %.4f (%s)\n", score, verdict)
		fmt.Println(details.Notes)
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
