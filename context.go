package hxel

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/pthm/hxel/lib/styles"
)

type themeKey struct{}

// WithTheme attaches theme to ctx. Nodes rendered with ctx use it unless
// they bind their own.
func WithTheme(ctx context.Context, theme *styles.Theme) context.Context {
	return context.WithValue(ctx, themeKey{}, theme)
}

// ThemeFrom returns the theme attached to ctx, or the default theme.
func ThemeFrom(ctx context.Context) *styles.Theme {
	if t, ok := ctx.Value(themeKey{}).(*styles.Theme); ok && t != nil {
		return t
	}
	return styles.DefaultTheme()
}

type loggerKey struct{}

var discardLogger = log.New(io.Discard)

// WithLogger attaches logger to ctx.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// LoggerFrom returns the logger attached to ctx, or a logger that discards
// everything.
func LoggerFrom(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok && l != nil {
		return l
	}
	return discardLogger
}
