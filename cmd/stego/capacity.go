package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"imagestego-backend/stego"

	"github.com/spf13/cobra"
)

var capacityCmd = &cobra.Command{
	Use:   "capacity [image-path]",
	Short: "Calculate the storage capacity of an image",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		img := loadImage(args[0])
		bits, byteCount := stego.Capacity(img)
		b := img.Bounds()

		wtr := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(wtr, "Width\tHeight\tBits/Pixel\tCapacity (Bits)\tCapacity (Bytes)")
		fmt.Fprintln(wtr, "-----\t------\t----------\t---------------\t----------------")
		fmt.Fprintf(wtr, "%d\t%d\t%d\t%d\t%d\n", b.Dx(), b.Dy(), 3, bits, byteCount)
		wtr.Flush()
	},
}

func init() {
	rootCmd.AddCommand(capacityCmd)
}
