package hxel

import "strings"

// SwapMode is an hx-swap value: how response HTML replaces the target.
//
//	html.Button(hxel.HxPost("/items"), hxel.HxSwap(hxel.SwapBeforeEnd.With("settle:100ms")))
//
// See https://htmx.org/attributes/hx-swap/ for visual examples.
type SwapMode string

func (m SwapMode) String() string { return string(m) }

// With appends swap modifiers such as "swap:1s", "scroll:top" or
// "transition:true".
func (m SwapMode) With(modifiers ...string) SwapMode {
	if len(modifiers) == 0 {
		return m
	}
	return SwapMode(string(m) + " " + strings.Join(modifiers, " "))
}

const (
	// SwapOuter replaces the entire element including its tag (outerHTML).
	SwapOuter SwapMode = "outerHTML"

	// SwapInner replaces only the element's contents, preserving the outer tag (innerHTML).
	SwapInner SwapMode = "innerHTML"

	// SwapBeforeEnd appends the response to the end of the target's contents (before closing tag).
	// Useful for adding items to lists.
	SwapBeforeEnd SwapMode = "beforeend"

	// SwapAfterEnd inserts the response after the target element (as next sibling).
	SwapAfterEnd SwapMode = "afterend"

	// SwapBeforeBegin inserts the response before the target element (as previous sibling).
	SwapBeforeBegin SwapMode = "beforebegin"

	// SwapAfterBegin prepends the response to the start of the target's contents (after opening tag).
	// Useful for prepending items to lists.
	SwapAfterBegin SwapMode = "afterbegin"

	// SwapDelete removes the target element. Response content is ignored.
	SwapDelete SwapMode = "delete"

	// SwapNone performs no swap; the response is discarded.
	SwapNone SwapMode = "none"
)
