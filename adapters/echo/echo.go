// Package hxelecho provides Echo framework integration for hxel.
//
// Return nodes from Echo handlers:
//
//	e := echo.New()
//	e.Use(hxelecho.Middleware(hxelecho.WithTheme(styles.DarkTheme())))
//	e.GET("/", hxelecho.Handler(func(c echo.Context) (hxel.Node, error) {
//	    return html.P("Hello"), nil
//	}))
//
// Or mount a whole web.App:
//
//	hxelecho.Mount(e, app, hxelecho.WithPath("/app/"))
package hxelecho

import (
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"github.com/pthm/hxel"
	"github.com/pthm/hxel/lib/styles"
	"github.com/pthm/hxel/web"
)

// Option configures Middleware, Mount and MountGroup.
type Option func(*options)

type options struct {
	theme  *styles.Theme
	logger *log.Logger
	path   string
}

// WithTheme sets the theme attached to request contexts.
func WithTheme(theme *styles.Theme) Option {
	return func(o *options) {
		o.theme = theme
	}
}

// WithLogger sets the logger attached to request contexts.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithPath sets the URL prefix an App is mounted under. Defaults to "/".
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

func newOptions(opts []Option) *options {
	o := &options{path: "/"}
	for _, opt := range opts {
		opt(o)
	}
	if !strings.HasSuffix(o.path, "/") {
		o.path += "/"
	}
	return o
}

// Middleware attaches a fresh formatter and the configured theme and
// logger to each request context. The formatter is cleared after the
// handler returns.
func Middleware(opts ...Option) echo.MiddlewareFunc {
	o := newOptions(opts)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			f := hxel.NewFormatter()
			defer f.Close()

			ctx := hxel.WithFormatter(c.Request().Context(), f)
			if o.theme != nil {
				ctx = hxel.WithTheme(ctx, o.theme)
			}
			if o.logger != nil {
				ctx = hxel.WithLogger(ctx, o.logger)
			}
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// Render writes a node to the Echo response with status 200.
//
//	func handler(c echo.Context) error {
//	    return hxelecho.Render(c, page)
//	}
func Render(c echo.Context, n hxel.Node) error {
	return RenderStatus(c, http.StatusOK, n)
}

// RenderStatus writes a node with the given status. The node is rendered
// before anything is written, so render errors leave the response intact.
func RenderStatus(c echo.Context, status int, n hxel.Node) error {
	out, err := hxel.HTML(c.Request().Context(), n)
	if err != nil {
		return err
	}
	return c.HTML(status, out)
}

// Handler adapts a node-returning function to an Echo handler. A
// *web.Error becomes an *echo.HTTPError with the same status; a nil node
// writes 204 No Content.
func Handler(fn func(c echo.Context) (hxel.Node, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		n, err := fn(c)
		if err != nil {
			var we *web.Error
			if errors.As(err, &we) {
				return echo.NewHTTPError(we.Status, we.Detail).SetInternal(err)
			}
			return err
		}
		if n == nil {
			return c.NoContent(http.StatusNoContent)
		}
		return Render(c, n)
	}
}

// Mount serves app on an Echo instance under the configured path.
//
//	e := echo.New()
//	hxelecho.Mount(e, app)
func Mount(e *echo.Echo, app *web.App, opts ...Option) {
	o := newOptions(opts)
	e.Any(o.path+"*", wrap(app, o.path))
}

// MountGroup serves app on an Echo group, so it shares the group's
// middleware (auth, logging, etc.).
//
//	g := e.Group("/app", authMiddleware)
//	hxelecho.MountGroup(g, app)
func MountGroup(g *echo.Group, app *web.App, opts ...Option) {
	o := newOptions(opts)
	g.Any(o.path+"*", func(c echo.Context) error {
		prefix := strings.TrimSuffix(strings.TrimSuffix(c.Path(), "*"), "/")
		http.StripPrefix(prefix, app).ServeHTTP(c.Response(), c.Request())
		return nil
	})
}

func wrap(app *web.App, path string) echo.HandlerFunc {
	if path == "/" {
		return echo.WrapHandler(app)
	}
	return echo.WrapHandler(http.StripPrefix(strings.TrimSuffix(path, "/"), app))
}
