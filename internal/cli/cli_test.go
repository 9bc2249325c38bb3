package cli

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := New(&out, io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetErr(io.Discard)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	one := writeFile(t, dir, "one.hxel", "<p>a &lt; b</p>")
	two := writeFile(t, dir, "two.hxel", "Hello <b>world</b>!")

	got, err := execute(t, "render", "-j", "1", one, two)
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	want := "<p>a &lt; b</p>\nHello <b>world</b>!\n"
	if got != want {
		t.Errorf("render output = %q, want %q", got, want)
	}
}

func TestRenderCommandOutputDir(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "page.hxel", "<h1>Title</h1>")
	outDir := filepath.Join(dir, "dist")

	if _, err := execute(t, "render", "-o", outDir, src); err != nil {
		t.Fatalf("render error = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(outDir, "page.html"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "<h1>Title</h1>" {
		t.Errorf("page.html = %q, want %q", data, "<h1>Title</h1>")
	}
}

func TestRenderCommandErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"unknown element", []string{"render", writeFile(t, dir, "card.hxel", "<Card>x</Card>")}},
		{"nested tags", []string{"render", writeFile(t, dir, "nested.hxel", "<div><b>x</b></div>")}},
		{"missing file", []string{"render", filepath.Join(dir, "missing.hxel")}},
		{"no files", []string{"render"}},
		{"bad theme", []string{"render", "--theme", "sepia", writeFile(t, dir, "ok.hxel", "<p>x</p>")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Errorf("execute(%v) error = nil, want error", tt.args)
			}
		})
	}
}

func TestStylesCommand(t *testing.T) {
	dir := t.TempDir()
	sheet := writeFile(t, dir, "site.yaml", "a:\n  color: blue\n")
	cfg := writeFile(t, dir, "hxel.toml", "[styles]\nfiles = [\""+filepath.ToSlash(sheet)+"\"]\n")

	got, err := execute(t, "--config", cfg, "styles", "--no-components")
	if err != nil {
		t.Fatalf("styles error = %v", err)
	}
	if got != "a { color: blue; }\n" {
		t.Errorf("styles output = %q, want %q", got, "a { color: blue; }\n")
	}
}

func TestStylesCommandBadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "hxel.yaml", "log:\n  level: loud\n")

	if _, err := execute(t, "--config", cfg, "styles"); err == nil {
		t.Error("styles error = nil for an invalid config")
	}
}

func TestVersionCommand(t *testing.T) {
	got, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.Contains(got, version) {
		t.Errorf("version output = %q, want it to contain %q", got, version)
	}
}

func TestPageHandler(t *testing.T) {
	fsys := fstest.MapFS{
		"index.hxel":      {Data: []byte("<h1>Home</h1>")},
		"docs/intro.hxel": {Data: []byte("<p>intro</p>")},
		"broken.hxel":     {Data: []byte("<Card>x</Card>")},
	}
	c := New(io.Discard, io.Discard, LogInfo)
	app, err := c.newApp(fsys)
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}

	tests := []struct {
		name       string
		target     string
		htmx       bool
		wantStatus int
		wantBody   []string
	}{
		{"index", "/", false, http.StatusOK, []string{"<!doctype html>", "<title>index</title>", `href="/styles.css"`, "<h1>Home</h1>"}},
		{"nested page", "/docs/intro", false, http.StatusOK, []string{"<body><p>intro</p></body>"}},
		{"htmx fragment", "/docs/intro", true, http.StatusOK, []string{"<p>intro</p>"}},
		{"missing", "/nope", false, http.StatusNotFound, []string{`no page "/nope"`}},
		{"unknown element", "/broken", false, http.StatusInternalServerError, nil},
		{"stylesheet", "/styles.css", false, http.StatusOK, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.htmx {
				req.Header.Set("HX-Request", "true")
			}
			rec := httptest.NewRecorder()
			app.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			for _, want := range tt.wantBody {
				if !strings.Contains(rec.Body.String(), want) {
					t.Errorf("body = %q, want it to contain %q", rec.Body.String(), want)
				}
			}
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/docs/intro", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	if rec.Body.String() != "<p>intro</p>" {
		t.Errorf("htmx body = %q, want only the page content", rec.Body.String())
	}
}
