package web

import (
	"net/http"

	"github.com/pthm/hxel"
)

// Response collects status and headers for a handler's reply. Handlers
// reach it through Request.Response and return the node to render as
// usual:
//
//	func create(r *web.Request) (hxel.Node, error) {
//	    r.Response().Status(http.StatusCreated).Trigger("todo:created", nil)
//	    return todoRow(todo), nil
//	}
type Response struct {
	status             int
	headers            http.Header
	trigger            string
	triggerData        map[string]any
	triggerAfterSettle string
	redirect           string
	skip               bool
}

func newResponse() *Response {
	return &Response{headers: make(http.Header)}
}

// Status sets the HTTP status code. The default is 200, or 204 when the
// handler returns no node.
func (r *Response) Status(code int) *Response {
	r.status = code
	return r
}

// Header sets a response header.
func (r *Response) Header(key, value string) *Response {
	r.headers.Set(key, value)
	return r
}

// Trigger emits an event through HX-Trigger. With data the header carries
// a JSON object so listeners receive it as evt.detail.
func (r *Response) Trigger(event string, data map[string]any) *Response {
	r.trigger = event
	r.triggerData = data
	return r
}

// TriggerAfterSettle emits an event through HX-Trigger-After-Settle.
func (r *Response) TriggerAfterSettle(event string) *Response {
	r.triggerAfterSettle = event
	return r
}

// Redirect makes htmx navigate to url through HX-Redirect.
func (r *Response) Redirect(url string) *Response {
	r.redirect = url
	return r
}

// PushURL updates the browser URL through HX-Push-Url.
func (r *Response) PushURL(url string) *Response {
	return r.Header("HX-Push-Url", url)
}

// Retarget replaces the swap target through HX-Retarget.
func (r *Response) Retarget(selector string) *Response {
	return r.Header("HX-Retarget", selector)
}

// Reswap replaces the swap strategy through HX-Reswap.
func (r *Response) Reswap(mode hxel.SwapMode) *Response {
	return r.Header("HX-Reswap", mode.String())
}

// Skip marks the response as already written by the handler.
func (r *Response) Skip() *Response {
	r.skip = true
	return r
}

// apply writes headers; the status is written by the caller.
func (r *Response) apply(w http.ResponseWriter) {
	for k, vs := range r.headers {
		w.Header()[k] = vs
	}
	if r.trigger != "" {
		w.Header().Set("HX-Trigger", hxel.BuildTriggerHeader(r.trigger, r.triggerData))
	}
	if r.triggerAfterSettle != "" {
		w.Header().Set("HX-Trigger-After-Settle", r.triggerAfterSettle)
	}
	if r.redirect != "" {
		w.Header().Set("HX-Redirect", r.redirect)
	}
}

func (r *Response) statusOr(fallback int) int {
	if r.status != 0 {
		return r.status
	}
	return fallback
}
