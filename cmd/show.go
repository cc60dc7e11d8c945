package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abordi-ai/abordi/internal/listing"
)

var (
	showParams listing.Params
	showWidth  int
)

func init() {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the tools for a profession or prompt",
		Long:  "Renders the same listing as the tools screen as formatted markdown.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			warnUnknownProfession(cmd.ErrOrStderr(), showParams.Profession)
			out, err := listing.Render(listing.Resolve(rt.catalog, showParams), rt.cfg.Style, showWidth)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVarP(&showParams.Profession, "profession", "p", "", "profession name")
	cmd.Flags().StringVar(&showParams.Prompt, "prompt", "", "prompt title")
	cmd.Flags().IntVar(&showWidth, "width", 80, "word wrap width")
	rootCmd.AddCommand(cmd)
}
