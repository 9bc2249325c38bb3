package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/hxel/lib/styles"
)

// stylesOpts holds the flags of the styles command.
type stylesOpts struct {
	theme        string
	noComponents bool
}

func (c *CLI) stylesCommand() *cobra.Command {
	var opts stylesOpts

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "Print the stylesheet for a theme",
		Long: `Styles prints the CSS of every registered element followed by the
stylesheets listed under [styles] in the config. Rules for the same
selector in a later sheet replace earlier ones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runStyles(opts)
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", "", "base theme: light or dark")
	cmd.Flags().BoolVar(&opts.noComponents, "no-components", false, "print only the configured stylesheets")

	return cmd
}

func (c *CLI) runStyles(opts stylesOpts) error {
	theme, err := c.theme(opts.theme)
	if err != nil {
		return err
	}
	extra, err := c.config.LoadStyles()
	if err != nil {
		return err
	}

	var sheets []styles.Sheet
	if !opts.noComponents {
		sheets = append(sheets, newRegistry().CollectStyles(theme))
	}
	sheets = append(sheets, extra)

	css := styles.Format(styles.Collect(theme, sheets...), "\n")
	c.Logger.Debug("collected styles", "theme", theme.Name, "bytes", len(css))
	if css != "" {
		fmt.Fprintln(c.out, css)
	}
	return nil
}

// theme builds the configured theme, optionally switching its base.
func (c *CLI) theme(base string) (*styles.Theme, error) {
	cfg := *c.config
	switch base {
	case "":
	case "light", "dark":
		cfg.Theme.Base = base
	default:
		return nil, fmt.Errorf("unknown theme %q: want light or dark", base)
	}
	return cfg.BuildTheme(), nil
}
