package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/animo/internal/adapter/output"
	"github.com/jmylchreest/animo/internal/theme"
)

var schemesOpts struct {
	format     string
	noSwatches bool
}

var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List the color schemes",
	Long: `List the color schemes a phrase can be shown with.

Plain output previews each scheme's colors as swatches; use --no-swatches on
terminals without true color.`,
	Args: cobra.NoArgs,
	RunE: runSchemes,
}

func init() {
	rootCmd.AddCommand(schemesCmd)

	schemesCmd.Flags().StringVarP(&schemesOpts.format, "format", "f", "plain",
		"Output format (plain, json, yaml, ids)")
	schemesCmd.Flags().BoolVar(&schemesOpts.noSwatches, "no-swatches", false,
		"Do not print color swatches")
}

func runSchemes(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(schemesOpts.format)
	if err != nil {
		return err
	}

	opts := output.DefaultFormatterOptions()
	opts.Swatches = !schemesOpts.noSwatches

	return output.NewFormatter(format, opts).FormatSchemes(cmd.OutOrStdout(), theme.DefaultSchemes())
}
