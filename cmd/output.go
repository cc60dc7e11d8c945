package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/abordi-ai/abordi/internal/catalog"
	"github.com/abordi-ai/abordi/internal/filter"
	"github.com/abordi-ai/abordi/internal/styles"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
	formatJSON  = "json"
)

func checkOutputFormat(format string) error {
	switch format {
	case formatTable, formatYAML, formatJSON:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want table, yaml or json)", format)
}

func writeJSON(w io.Writer, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeYAML(w io.Writer, value any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(value); err != nil {
		return err
	}
	return enc.Close()
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Dimmed).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Section.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// printMatches writes search results in the requested format. The empty
// result set is still valid yaml and json.
func printMatches(w io.Writer, found []filter.Match, format string) error {
	switch format {
	case formatJSON:
		if found == nil {
			found = []filter.Match{}
		}
		return writeJSON(w, found)
	case formatYAML:
		if found == nil {
			found = []filter.Match{}
		}
		return writeYAML(w, found)
	}

	if len(found) == 0 {
		_, err := fmt.Fprintln(w, "No tools found.")
		return err
	}
	t := newTable("Tool", "Profession", "Description", "URL")
	for _, m := range found {
		t.Row(m.Tool.Name, m.Profession, m.Tool.Description, m.Tool.URL)
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

// printTools is printMatches for a single profession, where the profession
// column would repeat.
func printTools(w io.Writer, tools []catalog.Tool, format string) error {
	switch format {
	case formatJSON:
		if tools == nil {
			tools = []catalog.Tool{}
		}
		return writeJSON(w, tools)
	case formatYAML:
		if tools == nil {
			tools = []catalog.Tool{}
		}
		return writeYAML(w, tools)
	}

	if len(tools) == 0 {
		_, err := fmt.Fprintln(w, "No tools found.")
		return err
	}
	t := newTable("Tool", "Description", "URL")
	for _, tool := range tools {
		t.Row(tool.Name, tool.Description, tool.URL)
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

// warnUnknownProfession tells the user when a profession flag names nothing
// in the catalog, with close matches if there are any.
func warnUnknownProfession(w io.Writer, name string) {
	if strings.TrimSpace(name) == "" {
		return
	}
	if _, ok := filter.LookupProfession(rt.catalog, name); ok {
		return
	}
	msg := fmt.Sprintf("unknown profession %q", name)
	if suggestions := filter.Suggest(rt.catalog, name, 3); len(suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(quoteAll(suggestions), ", "))
	}
	fmt.Fprintln(w, styles.Err.Render(msg))
	rt.logger.Warn("unknown profession", zap.String("profession", name))
}

func quoteAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}
