package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abordi-ai/abordi/internal/filter"
)

var (
	searchFormat     string
	searchProfession string
)

func init() {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search tools by name or description",
		Long:  "Case-insensitive search over every profession's tools. With --profession only that profession's tools are searched.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutputFormat(searchFormat); err != nil {
				return err
			}
			query := args[0]
			out := cmd.OutOrStdout()

			if searchProfession != "" {
				p, ok := filter.LookupProfession(rt.catalog, searchProfession)
				if !ok {
					warnUnknownProfession(cmd.ErrOrStderr(), searchProfession)
					return fmt.Errorf("no profession named %q", searchProfession)
				}
				tools := filter.ProfessionTools(p, query)
				rt.logger.Debug("search",
					zap.String("query", query),
					zap.String("profession", p.Name),
					zap.Int("results", len(tools)),
				)
				return printTools(out, tools, searchFormat)
			}

			found := filter.GlobalTools(rt.catalog, query)
			rt.logger.Debug("search", zap.String("query", query), zap.Int("results", len(found)))
			return printMatches(out, found, searchFormat)
		},
	}
	cmd.Flags().StringVarP(&searchFormat, "format", "f", formatTable, "output format: table, yaml or json")
	cmd.Flags().StringVarP(&searchProfession, "profession", "p", "", "only search this profession's tools")
	rootCmd.AddCommand(cmd)
}
