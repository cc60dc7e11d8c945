package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abordi-ai/abordi/internal/catalog"
	"github.com/abordi-ai/abordi/internal/filter"
)

// isolate points HOME, the XDG directories and the working directory at a
// fresh temp dir so no real config file is picked up.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Chdir(dir)
}

// run executes the root command with args in an isolated home directory and
// returns stdout and stderr. Flags are reset first since cobra keeps parsed
// values between executions.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	isolate(t)

	resetFlags(rootCmd)
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--log-file", "-"}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestSetup_ReadsFlagsFromRoot(t *testing.T) {
	isolate(t)
	resetFlags(rootCmd)
	f := rootCmd.PersistentFlags()
	require.NoError(t, f.Set("log-file", "-"))
	require.NoError(t, f.Set("style", "dracula"))
	require.NoError(t, f.Set("assistant-url", "https://assistant.example/"))

	require.NoError(t, setup(rootCmd))
	assert.Equal(t, "dracula", rt.cfg.Style)
	assert.Equal(t, "https://assistant.example/", rt.cfg.AssistantURL)
	assert.True(t, rt.cfg.Log.Disabled())
	assert.Len(t, rt.catalog.Professions, 5)
}

func TestSubcommand_RunsRootSetup(t *testing.T) {
	out, _, err := run(t, "--style", "notty", "show", "-p", "HR / Recruiter")
	require.NoError(t, err)
	assert.Contains(t, out, "HR / Recruiter Tools")
}

func TestProfessions_JSON(t *testing.T) {
	out, _, err := run(t, "professions", "--format", "json")
	require.NoError(t, err)

	var got []professionSummary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 5)
	assert.Equal(t, professionSummary{Name: "HR / Recruiter", Tools: 3, Prompts: 3}, got[0])
	assert.Equal(t, "Designer", got[4].Name)
}

func TestProfessions_Table(t *testing.T) {
	out, _, err := run(t, "professions")
	require.NoError(t, err)
	assert.Contains(t, out, "Startup Founder")
	assert.Contains(t, out, "Prompts")
}

func TestSearch_Global(t *testing.T) {
	out, _, err := run(t, "search", "ChatGPT", "--format", "json")
	require.NoError(t, err)

	var got []filter.Match
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 4)
	assert.Equal(t, "HR / Recruiter", got[0].Profession)
	for _, m := range got {
		assert.Equal(t, "ChatGPT", m.Tool.Name)
	}
}

func TestSearch_NoMatchesIsEmptyList(t *testing.T) {
	out, _, err := run(t, "search", "zzz", "-f", "json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestSearch_WithinProfession(t *testing.T) {
	out, _, err := run(t, "search", "seo", "-p", "Marketer", "-f", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Surfer SEO")
	assert.NotContains(t, out, "Jasper")
}

func TestSearch_UnknownProfessionSuggests(t *testing.T) {
	_, stderr, err := run(t, "search", "ai", "-p", "desgner")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no profession named "desgner"`)
	assert.Contains(t, stderr, `did you mean "Designer"`)
}

func TestSearch_BadFormat(t *testing.T) {
	_, _, err := run(t, "search", "ai", "-f", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestExport_RoundTripThroughCatalogFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.toml")
	_, _, err := run(t, "export", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Midjourney")

	out, _, err := run(t, "--catalog", path, "professions", "-f", "json")
	require.NoError(t, err)
	var got []professionSummary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 5)
}

func TestExport_Stdout(t *testing.T) {
	out, _, err := run(t, "export", "-f", "json")
	require.NoError(t, err)

	c, err := catalog.Parse([]byte(out), catalog.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().Names(), c.Names())
}

func TestCatalogFlag_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("professions:\n  - name: \"\"\n"), 0o644))

	_, _, err := run(t, "--catalog", path, "professions")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid catalog")
}

func TestPromptURL(t *testing.T) {
	out, _, err := run(t, "--assistant-url", "https://assistant.example/chat", "prompt-url", "Write a job posting")
	require.NoError(t, err)
	assert.Equal(t, "https://assistant.example/chat?q=Write+a+job+posting\n", out)
}

func TestPromptURL_Default(t *testing.T) {
	out, _, err := run(t, "prompt-url", "Create ad copy")
	require.NoError(t, err)
	assert.Equal(t, catalog.PromptURL(catalog.DefaultAssistantURL, "Create ad copy")+"\n", out)
}

func TestShow_Profession(t *testing.T) {
	out, _, err := run(t, "--style", "notty", "show", "-p", "Designer")
	require.NoError(t, err)
	assert.Contains(t, out, "Designer Tools")
	assert.Contains(t, out, "Midjourney")
}

func TestShow_UnknownProfessionFallsBack(t *testing.T) {
	out, stderr, err := run(t, "--style", "notty", "show", "-p", "Pilot")
	require.NoError(t, err)
	assert.Contains(t, out, "All AI Tools")
	assert.Contains(t, stderr, `unknown profession "Pilot"`)
}

func TestExportFormatFor(t *testing.T) {
	tests := []struct {
		name, format, output string
		want                 catalog.Format
	}{
		{"explicit wins", "json", "out.toml", catalog.FormatJSON},
		{"from extension", "", "out.toml", catalog.FormatTOML},
		{"stdout defaults to yaml", "", "-", catalog.FormatYAML},
		{"unknown extension defaults to yaml", "", "out.txt", catalog.FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := exportFormatFor(tt.format, tt.output)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := exportFormatFor("xml", "")
	assert.Error(t, err)
}
