package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pthm/hxel"
	"github.com/pthm/hxel/lib/styles"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output string // directory for rendered files; stdout when empty
	jobs   int    // files rendered concurrently
	theme  string // base theme overriding the config
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{jobs: runtime.NumCPU()}

	cmd := &cobra.Command{
		Use:   "render <file>...",
		Short: "Render markup files to HTML",
		Long: `Render parses each file as markup, resolves its tags against the HTML
elements and writes the HTML. With --output every file is written to
<output>/<name>.html, otherwise the results are printed in argument order.`,
		Example: `  hxel render page.hxel
  hxel render -o dist --theme dark pages/*.hxel`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", opts.jobs, "files rendered concurrently")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "base theme: light or dark")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, files []string, opts renderOpts) error {
	theme, err := c.theme(opts.theme)
	if err != nil {
		return err
	}
	if opts.output != "" {
		if err := os.MkdirAll(opts.output, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	start := time.Now()
	reg := newRegistry()
	results := make([]string, len(files))

	g, ctx := errgroup.WithContext(ctx)
	if opts.jobs > 0 {
		g.SetLimit(opts.jobs)
	}
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			out, err := renderFile(ctx, reg, theme, path)
			if err != nil {
				return err
			}
			results[i] = out
			c.Logger.Debug("rendered", "file", path, "bytes", len(out))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range files {
		if opts.output == "" {
			fmt.Fprintln(c.out, results[i])
			continue
		}
		dst := filepath.Join(opts.output, outputName(path))
		if err := os.WriteFile(dst, []byte(results[i]), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", dst, err)
		}
		c.printWritten(path, dst)
	}

	c.Logger.Infof("Rendered %d file(s) (%s)", len(files), time.Since(start).Round(time.Millisecond))
	return nil
}

// renderFile renders one markup file with its own formatter.
func renderFile(ctx context.Context, reg *hxel.Registry, theme *styles.Theme, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	node, err := hxel.Parse(string(data), reg)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	ctx = hxel.WithTheme(ctx, theme)
	ctx = hxel.WithFormatter(ctx, hxel.NewFormatter())
	out, err := hxel.HTML(ctx, node)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

func outputName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".html"
}
