package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pthm/hxel"
	"github.com/pthm/hxel/html"
	"github.com/pthm/hxel/web"
)

// pageExt is the extension of markup pages served by the serve command.
const pageExt = ".hxel"

// serveOpts holds the flags of the serve command.
type serveOpts struct {
	addr string
}

func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Serve a directory of markup pages",
		Long: `Serve renders <dir>/<path>.hxel for every GET request, wrapped in an
HTML document that links the stylesheet. "/" serves index.hxel. The
stylesheet path, HTMX enforcement and style cache come from the config.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return c.runServe(cmd.Context(), dir, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address, overrides server.addr")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, dir string, opts serveOpts) error {
	cfg := c.config
	addr := cfg.Server.Addr
	if opts.addr != "" {
		addr = opts.addr
	}

	app, err := c.newApp(os.DirFS(dir))
	if err != nil {
		return err
	}
	defer app.Registry().SetStyleCache(nil)

	srv := &http.Server{
		Addr:         addr,
		Handler:      app,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c.Logger.Info("listening", "addr", "http://"+addr, "dir", dir)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		c.Logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// newApp builds the web app serving pages from fsys.
func (c *CLI) newApp(fsys fs.FS) (*web.App, error) {
	cfg := c.config

	reg := newRegistry()
	cache, err := cfg.StyleCache()
	if err != nil {
		return nil, err
	}
	reg.SetStyleCache(cache)

	extra, err := cfg.LoadStyles()
	if err != nil {
		return nil, err
	}
	if len(extra) > 0 {
		reg.Register(hxel.DefineElement("SiteStyles", hxel.KindSpec{Styles: extra}))
	}

	app := web.New(
		web.WithTheme(cfg.BuildTheme()),
		web.WithLogger(c.Logger),
		web.WithRegistry(reg),
	)
	if cfg.Server.RequireHTMX {
		app.Use(web.RequireHTMX)
	}
	if cfg.Server.Stylesheet != "" {
		app.Stylesheet(cfg.Server.Stylesheet, cfg.Cache.Driver != "none")
	}
	app.Get("/*", pageHandler(fsys, reg, cfg.Server.Stylesheet))
	return app, nil
}

// pageHandler renders markup pages from fsys. HTMX requests receive the
// page content without the surrounding document.
func pageHandler(fsys fs.FS, reg *hxel.Registry, stylesheet string) web.Handler {
	return func(r *web.Request) (hxel.Node, error) {
		name := strings.Trim(path.Clean(r.URL.Path), "/")
		if name == "" {
			name = "index"
		}
		file := name + pageExt
		if !fs.ValidPath(file) {
			return nil, web.NotFound("")
		}

		data, err := fs.ReadFile(fsys, file)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, web.NotFound(fmt.Sprintf("no page %q", "/"+name))
		}
		if err != nil {
			return nil, web.Internal("").Wrap(err)
		}

		content, err := hxel.Parse(string(data), reg)
		if err != nil {
			return nil, web.Internal("").Wrap(fmt.Errorf("%s: %w", file, err))
		}
		if r.IsHTMX() {
			return content, nil
		}

		head := []any{html.Meta(hxel.A("charset", "utf-8")), html.Title(name)}
		if stylesheet != "" {
			head = append(head, html.Link(hxel.A("rel", "stylesheet"), hxel.Href(stylesheet)))
		}
		return html.HTML(html.Head(head...), html.Body(content)), nil
	}
}
