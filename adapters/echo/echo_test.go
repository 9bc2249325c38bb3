package hxelecho

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pthm/hxel"
	"github.com/pthm/hxel/html"
	"github.com/pthm/hxel/lib/styles"
	"github.com/pthm/hxel/web"
)

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRender(t *testing.T) {
	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		return Render(c, html.P("a < b"))
	})

	rec := serve(e, http.MethodGet, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Body.String(); got != "<p>a &lt; b</p>" {
		t.Errorf("body = %q, want %q", got, "<p>a &lt; b</p>")
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		fn         func(c echo.Context) (hxel.Node, error)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "node",
			fn:         func(echo.Context) (hxel.Node, error) { return html.B("bold"), nil },
			wantStatus: http.StatusOK,
			wantBody:   "<b>bold</b>",
		},
		{
			name:       "nil node",
			fn:         func(echo.Context) (hxel.Node, error) { return nil, nil },
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "web error",
			fn:         func(echo.Context) (hxel.Node, error) { return nil, web.NotFound("no such page") },
			wantStatus: http.StatusNotFound,
			wantBody:   "no such page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.GET("/", Handler(tt.fn))

			rec := serve(e, http.MethodGet, "/")
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body = %q, want it to contain %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestMiddlewareAttachesTheme(t *testing.T) {
	e := echo.New()
	e.Use(Middleware(WithTheme(styles.DarkTheme())))
	e.GET("/", Handler(func(c echo.Context) (hxel.Node, error) {
		ctx := c.Request().Context()
		if hxel.FormatterFrom(ctx) == nil {
			t.Error("FormatterFrom() = nil, want request formatter")
		}
		return html.Span(hxel.ThemeFrom(ctx).Name), nil
	}))

	rec := serve(e, http.MethodGet, "/")
	if got := rec.Body.String(); got != "<span>dark</span>" {
		t.Errorf("body = %q, want %q", got, "<span>dark</span>")
	}
}

func newApp() *web.App {
	app := web.New()
	app.Use(web.RequireHTMX)
	app.Get("/hello", func(*web.Request) (hxel.Node, error) {
		return html.P("hello"), nil
	})
	app.Post("/hello", func(*web.Request) (hxel.Node, error) {
		return html.P("posted"), nil
	})
	return app
}

func TestMount(t *testing.T) {
	tests := []struct {
		name   string
		opts   []Option
		target string
	}{
		{"root", nil, "/hello"},
		{"with path", []Option{WithPath("/app")}, "/app/hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			Mount(e, newApp(), tt.opts...)

			rec := serve(e, http.MethodGet, tt.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			if got := rec.Body.String(); got != "<p>hello</p>" {
				t.Errorf("body = %q, want %q", got, "<p>hello</p>")
			}
		})
	}
}

func TestMountGroup(t *testing.T) {
	e := echo.New()
	MountGroup(e.Group("/app"), newApp())

	rec := serve(e, http.MethodGet, "/app/hello")
	if got := rec.Body.String(); got != "<p>hello</p>" {
		t.Errorf("body = %q, want %q", got, "<p>hello</p>")
	}
}

func TestCSRFProtection(t *testing.T) {
	e := echo.New()
	Mount(e, newApp())

	rec := serve(e, http.MethodPost, "/hello")
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for POST without HX-Request, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/hello", nil)
	req.Header.Set("HX-Request", "true")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for HTMX POST, got %d", rec.Code)
	}
}
