// Package cli implements the hxel command-line interface.
//
// The commands are:
//   - render: render markup files to HTML
//   - styles: print the stylesheet of the built-in elements and configured sheets
//   - serve: serve a directory of markup pages over HTTP
//   - version: print the version
//
// Every command reads an optional TOML or YAML config file given with
// --config. See internal/config for its fields.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pthm/hxel"
	"github.com/pthm/hxel/html"
	"github.com/pthm/hxel/internal/config"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// version is set at build time with -ldflags "-X github.com/pthm/hxel/internal/cli.version=...".
var version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer
	configPath string
	config     *config.Config
}

// New creates a CLI writing command output to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(logw, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		out:    out,
		config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "hxel",
		Short:         "hxel renders HTML from component markup",
		Long:          `hxel renders markup built from HTML elements and components, prints their themed stylesheets and serves pages over HTTP.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.loadConfig()
		},
	}
	root.SetOut(c.out)
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (.toml, .yaml or .yml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.stylesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.versionCommand())

	return root
}

func (c *CLI) loadConfig() error {
	if c.configPath != "" {
		cfg, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		c.config = cfg
		c.Logger.Debug("loaded config", "path", c.configPath)
	}
	c.SetLogLevel(c.config.LogLevel())
	return nil
}

// newRegistry returns a registry holding the HTML elements.
func newRegistry() *hxel.Registry {
	reg := hxel.NewRegistry()
	html.Register(reg)
	return reg
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(StyleTitle.Render("hxel") + " " + StyleValue.Render(version))
		},
	}
}
