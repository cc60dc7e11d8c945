package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/abordi-ai/abordi/internal/app"
	"github.com/abordi-ai/abordi/internal/catalog"
	"github.com/abordi-ai/abordi/internal/config"
	"github.com/abordi-ai/abordi/internal/logging"
	"github.com/abordi-ai/abordi/internal/registry"
)

// runtime is what every command works with once flags and config are resolved.
type runtime struct {
	cfg     config.Config
	catalog *catalog.Catalog
	logger  *zap.Logger
}

func (r runtime) env() registry.Env {
	return registry.Env{Catalog: r.catalog, AssistantURL: r.cfg.AssistantURL}
}

func (r runtime) deps() app.Deps {
	return app.Deps{Logger: r.logger}
}

var (
	cfgFile string
	rt      runtime
)

// flagKeys maps persistent flags to their config keys.
var flagKeys = map[string]string{
	"catalog":       "catalog",
	"assistant-url": "assistant_url",
	"style":         "style",
	"log-file":      "log.file",
	"log-level":     "log.level",
}

var rootCmd = &cobra.Command{
	Use:           "abordi",
	Short:         "Browse AI tools and prompts by profession",
	Long:          "abordi - a terminal directory of AI tools and prompt suggestions, grouped by profession",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd.Root())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if rt.logger != nil {
			_ = rt.logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(app.New(rt.env(), rt.deps()), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&cfgFile, "config", "", "config file (default abordi.yaml in the user config directory or .)")
	f.String("catalog", "", "catalog file (.yaml, .json or .toml) to use instead of the built-in one")
	f.String("assistant-url", catalog.DefaultAssistantURL, "chat assistant that prompts are sent to")
	f.String("style", "auto", "glamour style for rendered output (auto, dark, light, notty, ...)")
	f.String("log-file", "", "log file, - to disable (default "+config.DefaultLogFile()+")")
	f.String("log-level", "info", "log level (debug, info, warn, error)")
}

// setup resolves config, builds the logger and loads the catalog. Flags are
// read from root, the command that owns them.
func setup(root *cobra.Command) error {
	v := viper.New()
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, root.PersistentFlags().Lookup(flag)); err != nil {
			return err
		}
	}

	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}

	c, err := loadCatalog(cfg.Catalog, logger)
	if err != nil {
		return err
	}

	rt = runtime{cfg: cfg, catalog: c, logger: logger}
	return nil
}

func loadCatalog(path string, logger *zap.Logger) (*catalog.Catalog, error) {
	if path == "" {
		c := catalog.Default()
		logger.Debug("using built-in catalog", zap.Int("professions", len(c.Professions)))
		return c, nil
	}

	c, err := catalog.Load(path)
	if err != nil {
		logger.Error("catalog rejected", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	logger.Info("catalog loaded", zap.String("path", path), zap.Int("professions", len(c.Professions)))
	return c, nil
}

// SetVersion sets the version string shown by --version.
func SetVersion(v string) {
	rootCmd.Version = v
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
