package main

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	var (
		f          extractFlags
		output     string
		chipSize   int
		gap        int
		background string
	)

	cmd := &cobra.Command{
		Use:   "preview <image>",
		Short: "Render the swatches of an image as a PNG strip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := f.run(args[0])
			if err != nil {
				return err
			}
			preview, err := imaging.RenderSwatches(result.Swatches, chipSize, gap, background)
			if err != nil {
				return err
			}
			data, err := base64.StdEncoding.DecodeString(preview.ImageBase64)
			if err != nil {
				return fmt.Errorf("failed to decode preview: %w", err)
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d): %v\n", output, preview.Width, preview.Height, preview.Targets)
			return nil
		},
	}

	f.register(cmd)
	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "", "PNG file to write")
	flags.IntVar(&chipSize, "chip-size", imaging.DefaultChipSize, "edge length of each chip in pixels")
	flags.IntVar(&gap, "gap", 0, "spacing around chips in pixels")
	flags.StringVar(&background, "background", "", "gap colour as #RRGGBB or #AARRGGBB (default transparent)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
