package hxel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
)

// TestResult holds rendered output for assertions in tests.
type TestResult struct {
	HTML            string
	StatusCode      int
	Headers         http.Header
	TriggeredEvents []string
	RedirectURL     string
}

// TestRender renders a node with a background context.
//
//	result, err := hxel.TestRender(NewCard("Hello"))
//	if !result.HTMLContains(`class="card"`) {
//	    t.Fatal("missing card class")
//	}
func TestRender(n Node) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), n)
}

// TestRenderWithContext renders a node with ctx, for nodes that read a
// theme, formatter or other values from the context.
func TestRenderWithContext(ctx context.Context, n Node) (*TestResult, error) {
	out, err := HTML(ctx, n)
	if err != nil {
		return nil, err
	}
	return &TestResult{
		HTML:       out,
		StatusCode: http.StatusOK,
		Headers:    make(http.Header),
	}, nil
}

// TestRequestBuilder builds a request against an http.Handler:
//
//	result, err := hxel.NewTestRequest("POST", "/todos").
//	    WithFormData("title", "milk").
//	    AsHTMX().
//	    Execute(app)
type TestRequestBuilder struct {
	method   string
	url      string
	formData url.Values
	headers  http.Header
	ctx      context.Context
}

// NewTestRequest creates a request builder.
func NewTestRequest(method, target string) *TestRequestBuilder {
	return &TestRequestBuilder{
		method:   method,
		url:      target,
		formData: make(url.Values),
		headers:  make(http.Header),
		ctx:      context.Background(),
	}
}

// WithFormData adds a form value.
func (b *TestRequestBuilder) WithFormData(key, value string) *TestRequestBuilder {
	b.formData.Add(key, value)
	return b
}

// WithHeader sets a request header.
func (b *TestRequestBuilder) WithHeader(key, value string) *TestRequestBuilder {
	b.headers.Set(key, value)
	return b
}

// AsHTMX marks the request as sent by htmx.
func (b *TestRequestBuilder) AsHTMX() *TestRequestBuilder {
	return b.WithHeader("HX-Request", "true")
}

// WithContext sets the request context.
func (b *TestRequestBuilder) WithContext(ctx context.Context) *TestRequestBuilder {
	b.ctx = ctx
	return b
}

// Execute serves the request with h and records the response.
func (b *TestRequestBuilder) Execute(h http.Handler) (*TestResult, error) {
	body := strings.NewReader("")
	if len(b.formData) > 0 {
		body = strings.NewReader(b.formData.Encode())
	}

	req := httptest.NewRequest(b.method, b.url, body).WithContext(b.ctx)
	if len(b.formData) > 0 {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for k, vs := range b.headers {
		req.Header[k] = vs
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	result := &TestResult{
		HTML:        rec.Body.String(),
		StatusCode:  rec.Code,
		Headers:     rec.Header(),
		RedirectURL: rec.Header().Get("HX-Redirect"),
	}
	if trigger := rec.Header().Get("HX-Trigger"); trigger != "" {
		result.TriggeredEvents = parseTriggerHeader(trigger)
	}
	return result, nil
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HasEvent checks if an event was triggered.
func (r *TestResult) HasEvent(event string) bool {
	for _, e := range r.TriggeredEvents {
		if e == event {
			return true
		}
	}
	return false
}

// IsOK checks if the status code is 200.
func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// HasStatus checks if the status code matches.
func (r *TestResult) HasStatus(code int) bool {
	return r.StatusCode == code
}

// HasHeader checks if a header is set with the given value.
func (r *TestResult) HasHeader(key, value string) bool {
	return r.Headers.Get(key) == value
}

// parseTriggerHeader returns the event names of an HX-Trigger header,
// which is either a comma-separated list or a JSON object keyed by event.
func parseTriggerHeader(trigger string) []string {
	trigger = strings.TrimSpace(trigger)
	if trigger == "" {
		return nil
	}

	if strings.HasPrefix(trigger, "{") {
		var payload map[string]json.RawMessage
		if err := json.Unmarshal([]byte(trigger), &payload); err != nil {
			return nil
		}
		events := make([]string, 0, len(payload))
		for name := range payload {
			events = append(events, name)
		}
		sort.Strings(events)
		return events
	}

	parts := strings.Split(trigger, ",")
	events := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			events = append(events, p)
		}
	}
	return events
}
