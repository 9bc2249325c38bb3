package hxel

import (
	"encoding/json"
	"net/http"
)

// Render writes n to the HTTP response.
//
// Sets Content-Type to text/html and renders with the request's context,
// so themes and formatters attached by middleware apply.
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    hxel.Render(w, r, page)
//	}
func Render(w http.ResponseWriter, r *http.Request, n Node) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return Write(r.Context(), w, n)
}

// IsHTMX returns true if the request originated from HTMX.
//
// HTMX sends HX-Request: true on all requests. Use this to render a
// fragment for HTMX and a full page otherwise:
//
//	if hxel.IsHTMX(r) {
//	    return fragment
//	}
//	return page
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// IsBoosted returns true if the request is a boosted navigation (hx-boost).
func IsBoosted(r *http.Request) bool {
	return r.Header.Get("HX-Boosted") == "true"
}

// CurrentURL returns the URL the browser is on, from HX-Current-URL.
//
// Returns empty string if header not present (non-HTMX request).
func CurrentURL(r *http.Request) string {
	return r.Header.Get("HX-Current-URL")
}

// TriggerName returns the name attribute of the element that triggered the request.
//
// Useful for form handlers that need to know which submit button was clicked:
//
//	if hxel.TriggerName(r) == "save-draft" {
//	    // Handle draft save
//	}
//
// Returns empty string if not present.
func TriggerName(r *http.Request) string {
	return r.Header.Get("HX-Trigger-Name")
}

// TriggerID returns the id attribute of the element that triggered the request.
//
// Returns empty string if not present.
func TriggerID(r *http.Request) string {
	return r.Header.Get("HX-Trigger")
}

// TargetID returns the id attribute of the target element.
//
// Returns empty string if not present.
func TargetID(r *http.Request) string {
	return r.Header.Get("HX-Target")
}

// BuildTriggerHeader builds an HX-Trigger header value.
//
// An event without data is sent as its bare name; with data it becomes a
// JSON object so HTMX exposes the data as evt.detail:
//
//	BuildTriggerHeader("item-updated", nil)                  // item-updated
//	BuildTriggerHeader("filter:changed", map[string]any{...}) // {"filter:changed": {...}}
func BuildTriggerHeader(event string, data map[string]any) string {
	if event == "" {
		return ""
	}
	if data == nil {
		return event
	}
	out, err := json.Marshal(map[string]any{event: data})
	if err != nil {
		return event
	}
	return string(out)
}
