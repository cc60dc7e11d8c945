package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abordi-ai/abordi/internal/catalog"
)

var (
	exportFormat string
	exportOutput string
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active catalog as yaml, json or toml",
		Long:  "Writes the catalog in use, built-in or loaded with --catalog, so it can be edited and passed back with --catalog.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := exportFormatFor(exportFormat, exportOutput)
			if err != nil {
				return err
			}
			data, err := catalog.Encode(rt.catalog, format)
			if err != nil {
				return err
			}

			if exportOutput == "" || exportOutput == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
				return fmt.Errorf("writing catalog: %w", err)
			}
			rt.logger.Info("catalog exported", zap.String("path", exportOutput), zap.String("format", string(format)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&exportFormat, "format", "f", "", "yaml, json or toml (default from the output extension, else yaml)")
	cmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(cmd)
}

// exportFormatFor picks the explicit format, else the output file's
// extension, else yaml.
func exportFormatFor(name, output string) (catalog.Format, error) {
	if name != "" {
		return catalog.ParseFormat(name)
	}
	if output != "" && output != "-" {
		if f, err := catalog.FormatFromPath(output); err == nil {
			return f, nil
		}
	}
	return catalog.FormatYAML, nil
}
