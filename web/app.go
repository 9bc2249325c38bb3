// Package web serves hxel nodes over HTTP.
//
// An App is a chi router whose handlers return nodes instead of writing
// responses. Each request gets its own formatter and the app theme in its
// context, and errors map to status codes through *Error:
//
//	app := web.New(web.WithTheme(styles.DarkTheme()))
//	app.Get("/todos/{id}", func(r *web.Request) (hxel.Node, error) {
//	    todo, ok := store.Get(r.Param("id"))
//	    if !ok {
//	        return nil, web.NotFound("no such todo")
//	    }
//	    return TodoView(todo), nil
//	}, web.Name("todo"))
//	http.ListenAndServe(":8080", app)
package web

import (
	"fmt"
	"io"
	"net/http"
	"reflect"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pthm/hxel"
	"github.com/pthm/hxel/lib/styles"
)

// Handler produces the node for a request. A nil node with a nil error
// writes an empty response.
type Handler func(r *Request) (hxel.Node, error)

// ErrorHandler renders the page for a failed request.
type ErrorHandler func(r *Request, err *Error) (hxel.Node, error)

// App routes requests to handlers.
type App struct {
	router   chi.Router
	theme    *styles.Theme
	logger   *log.Logger
	registry *hxel.Registry

	mu     sync.RWMutex
	routes map[string]string
	errors map[int]ErrorHandler
}

// Option configures an App.
type Option func(*App)

// WithTheme sets the theme attached to every request context.
func WithTheme(theme *styles.Theme) Option {
	return func(a *App) { a.theme = theme }
}

// WithLogger sets the request logger.
func WithLogger(logger *log.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// WithRegistry sets the registry used for stylesheets. The default is
// hxel.Default().
func WithRegistry(reg *hxel.Registry) Option {
	return func(a *App) { a.registry = reg }
}

// New creates an App with request ID and logging middleware installed.
func New(opts ...Option) *App {
	a := &App{
		router: chi.NewRouter(),
		logger: log.New(io.Discard),
		routes: make(map[string]string),
		errors: make(map[int]ErrorHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.registry == nil {
		a.registry = hxel.Default()
	}

	a.router.Use(RequestID, RequestLogger(a.logger), middleware.GetHead)
	a.router.NotFound(a.serve(func(*Request) (hxel.Node, error) {
		return nil, NotFound("")
	}))
	a.router.MethodNotAllowed(a.serve(func(*Request) (hxel.Node, error) {
		return nil, MethodNotAllowed("")
	}))
	return a
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Router returns the underlying chi router.
func (a *App) Router() chi.Router { return a.router }

// Registry returns the registry used for stylesheets.
func (a *App) Registry() *hxel.Registry { return a.registry }

// Use appends middleware. It must be called before routes are added.
func (a *App) Use(mw ...func(http.Handler) http.Handler) {
	a.router.Use(mw...)
}

// Mount attaches a plain http.Handler under pattern.
func (a *App) Mount(pattern string, h http.Handler) {
	a.router.Mount(pattern, h)
}

// RouteOption configures a route.
type RouteOption func(*routeConfig)

type routeConfig struct {
	name string
}

// Name names a route for URLFor.
func Name(name string) RouteOption {
	return func(c *routeConfig) { c.name = name }
}

// Get registers a GET handler. HEAD requests are served by GET handlers.
func (a *App) Get(pattern string, h Handler, opts ...RouteOption) {
	a.Handle(http.MethodGet, pattern, h, opts...)
}

// Post registers a POST handler.
func (a *App) Post(pattern string, h Handler, opts ...RouteOption) {
	a.Handle(http.MethodPost, pattern, h, opts...)
}

// Put registers a PUT handler.
func (a *App) Put(pattern string, h Handler, opts ...RouteOption) {
	a.Handle(http.MethodPut, pattern, h, opts...)
}

// Patch registers a PATCH handler.
func (a *App) Patch(pattern string, h Handler, opts ...RouteOption) {
	a.Handle(http.MethodPatch, pattern, h, opts...)
}

// Delete registers a DELETE handler.
func (a *App) Delete(pattern string, h Handler, opts ...RouteOption) {
	a.Handle(http.MethodDelete, pattern, h, opts...)
}

// Handle registers h for method and pattern.
func (a *App) Handle(method, pattern string, h Handler, opts ...RouteOption) {
	cfg := routeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.name != "" {
		a.nameRoute(cfg.name, pattern)
	}
	a.router.Method(method, pattern, a.serve(h))
}

// Endpoint handlers, one per HTTP method.
type (
	Getter interface {
		Get(r *Request) (hxel.Node, error)
	}
	Poster interface {
		Post(r *Request) (hxel.Node, error)
	}
	Putter interface {
		Put(r *Request) (hxel.Node, error)
	}
	Patcher interface {
		Patch(r *Request) (hxel.Node, error)
	}
	Deleter interface {
		Delete(r *Request) (hxel.Node, error)
	}
)

// Endpoint registers every method handler ep implements under pattern.
// The route is named after ep's type unless Name is given.
//
//	type Contact struct{ store *Store }
//
//	func (c *Contact) Get(r *web.Request) (hxel.Node, error)   { ... }
//	func (c *Contact) Put(r *web.Request) (hxel.Node, error)   { ... }
//
//	app.Endpoint("/contacts/{id}", &Contact{store})
//
// Panics if ep implements none of Getter, Poster, Putter, Patcher and
// Deleter.
func (a *App) Endpoint(pattern string, ep any, opts ...RouteOption) {
	cfg := routeConfig{name: endpointName(ep)}
	for _, opt := range opts {
		opt(&cfg)
	}

	type methodHandler struct {
		method string
		h      Handler
	}
	var handlers []methodHandler
	add := func(method string, h Handler) {
		handlers = append(handlers, methodHandler{method, h})
	}
	if e, ok := ep.(Getter); ok {
		add(http.MethodGet, e.Get)
	}
	if e, ok := ep.(Poster); ok {
		add(http.MethodPost, e.Post)
	}
	if e, ok := ep.(Putter); ok {
		add(http.MethodPut, e.Put)
	}
	if e, ok := ep.(Patcher); ok {
		add(http.MethodPatch, e.Patch)
	}
	if e, ok := ep.(Deleter); ok {
		add(http.MethodDelete, e.Delete)
	}
	if len(handlers) == 0 {
		panic(fmt.Sprintf("web: endpoint %T handles no HTTP method", ep))
	}

	a.nameRoute(cfg.name, pattern)
	for _, h := range handlers {
		a.router.Method(h.method, pattern, a.serve(h.h))
	}
}

func endpointName(ep any) string {
	t := reflect.TypeOf(ep)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func (a *App) nameRoute(name, pattern string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if existing, ok := a.routes[name]; ok && existing != pattern {
		panic(fmt.Sprintf("web: route %q already names %q", name, existing))
	}
	a.routes[name] = pattern
}

// Stylesheet serves the registry's styles as text/css under pattern,
// using the request theme. With cached set the CSS is memoised.
func (a *App) Stylesheet(pattern string, cached bool) {
	a.router.Get(pattern, func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		theme := a.theme
		if theme == nil {
			theme = hxel.ThemeFrom(ctx)
		}
		css, err := a.registry.Stylesheet(ctx, theme, cached)
		if err != nil {
			hxel.LoggerFrom(ctx).Error("stylesheet failed", "err", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		_, _ = io.WriteString(w, css)
	})
}

// OnError sets the handler rendering errors with status. Status 0 sets
// the fallback used when no handler matches. Without any handler errors
// are written as plain text.
//
//	app.OnError(http.StatusNotFound, func(r *web.Request, err *web.Error) (hxel.Node, error) {
//	    return Page(html.H1("Page not found"), html.P(err.Detail)), nil
//	})
func (a *App) OnError(status int, h ErrorHandler) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.errors[status] = h
}

func (a *App) errorHandler(status int) ErrorHandler {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if h, ok := a.errors[status]; ok {
		return h
	}
	return a.errors[0]
}

func (a *App) serve(h Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := hxel.NewFormatter()
		defer f.Close()

		ctx := hxel.WithFormatter(r.Context(), f)
		if a.theme != nil {
			ctx = hxel.WithTheme(ctx, a.theme)
		}
		req := &Request{Request: r.WithContext(ctx), app: a, resp: newResponse(), w: w}

		node, err := call(func() (hxel.Node, error) { return h(req) })
		if err != nil {
			a.fail(w, req, err)
			return
		}
		if req.resp.skip {
			return
		}
		if node == nil {
			req.resp.apply(w)
			w.WriteHeader(req.resp.statusOr(http.StatusNoContent))
			return
		}

		out, err := hxel.HTML(req.Context(), node)
		if err != nil {
			a.fail(w, req, Internal("").Wrap(err))
			return
		}
		req.resp.apply(w)
		writeHTML(w, req.resp.statusOr(http.StatusOK), out)
	}
}

// call runs fn, turning a panic into an internal error.
func call(fn func() (hxel.Node, error)) (n hxel.Node, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = Internal("").Wrap(fmt.Errorf("panic: %v", p))
		}
	}()
	return fn()
}

func (a *App) fail(w http.ResponseWriter, req *Request, err error) {
	e := AsError(err)
	logger := hxel.LoggerFrom(req.Context())
	if e.ClientError() {
		logger.Debug("request rejected", "status", e.Status, "detail", e.Detail)
	} else {
		logger.Error("request failed", "status", e.Status, "err", e)
	}

	for k, vs := range e.Headers {
		w.Header()[k] = vs
	}

	if h := a.errorHandler(e.Status); h != nil {
		out, herr := a.renderError(h, req, e)
		if herr == nil {
			writeHTML(w, e.Status, out)
			return
		}
		logger.Error("error handler failed", "err", herr)
	}
	http.Error(w, e.Detail, e.Status)
}

func (a *App) renderError(h ErrorHandler, req *Request, e *Error) (string, error) {
	node, err := call(func() (hxel.Node, error) { return h(req, e) })
	if err != nil {
		return "", err
	}
	if node == nil {
		return "", fmt.Errorf("web: error handler for %d returned no node", e.Status)
	}
	return hxel.HTML(req.Context(), node)
}

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
