package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/pthm/hxel"
	"github.com/pthm/hxel/html"
	"github.com/pthm/hxel/lib/styles"
)

// Routing errors.
var (
	ErrRouteNotFound = errors.New("web: route not found")
	ErrMissingParam  = errors.New("web: missing path parameter")
)

// Request is the request passed to handlers.
type Request struct {
	*http.Request

	app  *App
	resp *Response
	w    http.ResponseWriter
}

// Param returns a path parameter.
func (r *Request) Param(name string) string {
	return chi.URLParam(r.Request, name)
}

// Response returns the response builder for status and headers.
func (r *Request) Response() *Response { return r.resp }

// Writer returns the raw response writer, for handlers that write their
// own body and call Response().Skip().
func (r *Request) Writer() http.ResponseWriter { return r.w }

// Logger returns the request logger.
func (r *Request) Logger() *log.Logger { return hxel.LoggerFrom(r.Context()) }

// Theme returns the request theme.
func (r *Request) Theme() *styles.Theme { return hxel.ThemeFrom(r.Context()) }

// Formatter returns the request's formatter. It is cleared when the
// response is written.
func (r *Request) Formatter() *hxel.Formatter { return hxel.FormatterFrom(r.Context()) }

// IsHTMX reports whether the request was sent by htmx.
func (r *Request) IsHTMX() bool { return hxel.IsHTMX(r.Request) }

// URLFor builds the path of a named route.
func (r *Request) URLFor(name string, params map[string]string) (string, error) {
	return r.app.URLFor(name, params)
}

// LazyLoad returns a placeholder that loads the named route once shown.
func (r *Request) LazyLoad(name string, params map[string]string, placeholder ...any) (hxel.Node, error) {
	u, err := r.URLFor(name, params)
	if err != nil {
		return nil, err
	}
	return LazyLoad(u, placeholder...), nil
}

// URLFor builds the path of a named route. Path parameters are filled
// from params; the rest of params become the query string.
//
//	app.URLFor("todo", map[string]string{"id": "42"}) // "/todos/42"
func (a *App) URLFor(name string, params map[string]string) (string, error) {
	a.mu.RLock()
	pattern, ok := a.routes[name]
	a.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrRouteNotFound, name)
	}

	used := make(map[string]bool, len(params))
	var b strings.Builder
	rest := pattern
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			break
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			break
		}
		end += start

		key := rest[start+1 : end]
		if i := strings.IndexByte(key, ':'); i >= 0 {
			key = key[:i]
		}
		value, ok := params[key]
		if !ok {
			return "", fmt.Errorf("%w: %q for route %q", ErrMissingParam, key, name)
		}
		used[key] = true

		b.WriteString(rest[:start])
		b.WriteString(url.PathEscape(value))
		rest = rest[end+1:]
	}

	path := strings.TrimSuffix(b.String()+rest, "*")
	if strings.HasSuffix(pattern, "*") {
		if v, ok := params["*"]; ok {
			path += v
			used["*"] = true
		}
	}

	query := url.Values{}
	keys := make([]string, 0, len(params))
	for k := range params {
		if !used[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		query.Set(k, params[k])
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return path, nil
}

// LazyLoad returns a div showing placeholder until htmx replaces its
// content with the response from url. The default placeholder is
// "Loading ...".
func LazyLoad(url string, placeholder ...any) hxel.Node {
	if len(placeholder) == 0 {
		placeholder = []any{"Loading ..."}
	}
	return html.Div(placeholder, hxel.HxGet(url), hxel.HxTrigger("load"))
}
