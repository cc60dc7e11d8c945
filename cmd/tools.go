package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/abordi-ai/abordi/internal/app"
	"github.com/abordi-ai/abordi/internal/listing"
)

var toolsParams listing.Params

func init() {
	cmd := &cobra.Command{
		Use:     "tools",
		Aliases: []string{"t"},
		Short:   "Browse the tools for a profession or prompt",
		Long:    "Interactive list of the tools recommended for a profession or one of its prompts. Without a known profession every tool in the catalog is listed once.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			warnUnknownProfession(cmd.ErrOrStderr(), toolsParams.Profession)
			m := app.NewAt(rt.env(), rt.deps(), listing.Route, toolsParams.Messages())
			p := tea.NewProgram(m, tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
	cmd.Flags().StringVarP(&toolsParams.Profession, "profession", "p", "", "profession name, e.g. \"Marketer\"")
	cmd.Flags().StringVar(&toolsParams.Prompt, "prompt", "", "prompt title, e.g. \"Create ad copy\"")
	rootCmd.AddCommand(cmd)
}
