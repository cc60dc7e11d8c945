package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

type professionSummary struct {
	Name    string `json:"name" yaml:"name"`
	Tools   int    `json:"tools" yaml:"tools"`
	Prompts int    `json:"prompts" yaml:"prompts"`
}

var professionsFormat string

func init() {
	cmd := &cobra.Command{
		Use:   "professions",
		Short: "List the professions in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutputFormat(professionsFormat); err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			summaries := make([]professionSummary, 0, len(rt.catalog.Professions))
			for _, p := range rt.catalog.Professions {
				summaries = append(summaries, professionSummary{Name: p.Name, Tools: len(p.Tools), Prompts: len(p.Prompts)})
			}

			switch professionsFormat {
			case formatJSON:
				return writeJSON(out, summaries)
			case formatYAML:
				return writeYAML(out, summaries)
			}

			if len(summaries) == 0 {
				_, err := fmt.Fprintln(out, "No professions available.")
				return err
			}
			t := newTable("#", "Profession", "Tools", "Prompts")
			for i, s := range summaries {
				t.Row(strconv.Itoa(i+1), s.Name, strconv.Itoa(s.Tools), strconv.Itoa(s.Prompts))
			}
			_, err := fmt.Fprintln(out, t.String())
			return err
		},
	}
	cmd.Flags().StringVarP(&professionsFormat, "format", "f", formatTable, "output format: table, yaml or json")
	rootCmd.AddCommand(cmd)
}
