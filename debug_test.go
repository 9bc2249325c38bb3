package hxel

import "testing"

func TestDebugString(t *testing.T) {
	tests := []struct {
		name   string
		node   Node
		pretty bool
		want   string
	}{
		{"empty", testDiv.New(), false, "<div />"},
		{"flat", testDiv.New(testP.New("x"), ID("a")), false, `<div id="a"><p>x</p></div>`},
		{"simple inline", testP.New("x"), true, "<p>x</p>"},
		{"pretty", testDiv.New(testP.New("x"), ID("a")), true, "<div id=\"a\">\n  <p>x</p>\n</div>"},
		{
			"pretty nested",
			testDiv.New(testDiv.New(testB.New("x"), "y")),
			true,
			"<div>\n  <div>\n    <b>x</b>\n    y\n  </div>\n</div>",
		},
		{"component by name", testCardKind.New("hi"), false, "<Card>hi</Card>"},
		{"unescaped text", testP.New("a < b"), false, "<p>a < b</p>"},
		{"bool attr", testDiv.New(Hidden(true), HxBoost(false)), false, `<div hidden="true" hx-boost="false" />`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DebugString(tt.node, tt.pretty); got != tt.want {
				t.Errorf("DebugString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestElementString(t *testing.T) {
	n := testDiv.New(testP.New("x"))
	if got, want := n.Base().String(), DebugString(n, true); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
