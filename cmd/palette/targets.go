package main

import (
	"github.com/ironsheep/palette-tools-mcp/internal/palette"
	"github.com/spf13/cobra"
)

func newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "Print the canonical swatch targets as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), palette.DefaultTargets())
		},
	}
}
