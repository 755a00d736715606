package main

import (
	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
	"github.com/ironsheep/palette-tools-mcp/internal/palette"
	"github.com/spf13/cobra"
)

// extractFlags are the palette options shared by extract and preview.
type extractFlags struct {
	colours    int
	resizeArea int
	filter     string
	noFilters  bool
	targets    []string
	region     string
}

func (f *extractFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVarP(&f.colours, "colours", "c", palette.DefaultMaxColours, "maximum number of quantized colours")
	flags.IntVar(&f.resizeArea, "resize-area", palette.DefaultResizeArea, "shrink the image to about this many pixels first; negative disables")
	flags.StringVar(&f.filter, "filter", string(imaging.FilterNearest), "resampling filter: nearest, linear or lanczos")
	flags.BoolVar(&f.noFilters, "no-filters", false, "keep near-black, near-white and skin-tone colours")
	flags.StringSliceVarP(&f.targets, "targets", "t", nil, "targets to select, in order (default all six)")
	flags.StringVar(&f.region, "region", "", "restrict to a named region such as top-left or center")
}

// run loads path and extracts its palette.
func (f *extractFlags) run(path string) (*imaging.PaletteResult, error) {
	filter, err := imaging.ParseResampleFilter(f.filter)
	if err != nil {
		return nil, err
	}

	img, err := imaging.NewImageCache().Load(path)
	if err != nil {
		return nil, err
	}

	var region *imaging.Region
	if f.region != "" {
		r, err := imaging.NamedRegion(img.Bounds(), f.region)
		if err != nil {
			return nil, err
		}
		region = &r
	}

	return imaging.ExtractPalette(img, imaging.PaletteOptions{
		MaxColours: f.colours,
		ResizeArea: f.resizeArea,
		Targets:    f.targets,
		Region:     region,
		Resample:   filter,
		NoFilters:  f.noFilters,
	})
}

func newExtractCmd() *cobra.Command {
	var f extractFlags
	var population bool

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Print the swatches of an image as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := f.run(args[0])
			if err != nil {
				return err
			}
			if population {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return writeJSON(cmd.OutOrStdout(), struct {
				SampledWidth  int                    `json:"sampled_width"`
				SampledHeight int                    `json:"sampled_height"`
				Swatches      []imaging.SwatchResult `json:"swatches"`
			}{result.SampledWidth, result.SampledHeight, result.Swatches})
		},
	}

	f.register(cmd)
	cmd.Flags().BoolVarP(&population, "population", "p", false, "include the full quantized population")
	return cmd
}
