package styles

import "sync/atomic"

// Colors is the theme palette.
type Colors struct {
	Primary   ColorRange
	Secondary ColorRange
	Success   ColorRange
	Info      ColorRange
	Warning   ColorRange
	Danger    ColorRange
	Light     ColorRange
	Dark      ColorRange
	White     ColorRange
	Black     ColorRange
}

// FontFamilies names the font stacks used by a theme.
type FontFamilies struct {
	Primary   string
	Secondary string
	Monospace string
}

// Fonts holds typography settings.
type Fonts struct {
	Families   FontFamilies
	Size       Measure
	LineHeight float64
}

// Sizes is the spacing scale.
type Sizes struct {
	XXXS Measure
	XXS  Measure
	XS   Measure
	S    Measure
	M    Measure
	L    Measure
	XL   Measure
	XXL  Measure
	XXXL Measure
}

// Rounding holds border radius steps.
type Rounding struct {
	Less   Measure
	Normal Measure
	More   Measure
}

// Borders holds border width steps.
type Borders struct {
	Thin   Measure
	Normal Measure
	Thick  Measure
}

// Header configures one heading level.
type Header struct {
	Size   Measure
	Anchor bool
}

// Headers configures h1 through h6.
type Headers struct {
	H1, H2, H3, H4, H5, H6 Header
}

// Level returns the settings for heading level 1..6.
func (h Headers) Level(n int) Header {
	switch n {
	case 1:
		return h.H1
	case 2:
		return h.H2
	case 3:
		return h.H3
	case 4:
		return h.H4
	case 5:
		return h.H5
	default:
		return h.H6
	}
}

// Theme is the configuration consulted while collecting styles and
// rendering components. Themes are treated as immutable once in use and
// compare by Name.
type Theme struct {
	Name     string
	Colors   Colors
	Fonts    Fonts
	Sizes    Sizes
	Rounding Rounding
	Borders  Borders
	Headers  Headers
}

// Equal reports whether both themes share a name.
func (t *Theme) Equal(other *Theme) bool {
	return t != nil && other != nil && t.Name == other.Name
}

// Size returns step n of the spacing scale, where 0 is M, negative steps
// are smaller and positive steps larger.
func (t *Theme) Size(n int) Measure {
	scale := []Measure{t.Sizes.XXXS, t.Sizes.XXS, t.Sizes.XS, t.Sizes.S, t.Sizes.M,
		t.Sizes.L, t.Sizes.XL, t.Sizes.XXL, t.Sizes.XXXL}
	return scale[clampInt(n+4, 0, len(scale)-1)]
}

func baseTheme(name string) *Theme {
	return &Theme{
		Name: name,
		Fonts: Fonts{
			Families: FontFamilies{
				Primary:   "Helvetica Neue, Helvetica, Arial, sans-serif",
				Secondary: "Georgia, serif",
				Monospace: "Courier New, monospace",
			},
			Size:       Sz(1.01, Em),
			LineHeight: 1.5,
		},
		Sizes: Sizes{
			XXXS: Clamp(0.25, 0.1, 0.35),
			XXS:  Clamp(0.4, 0.2, 0.5),
			XS:   Clamp(0.5, 0.3, 0.75),
			S:    Clamp(0.75, 0.4, 1),
			M:    Clamp(1, 0.5, 1.5),
			L:    Clamp(1.25, 0.75, 2),
			XL:   Clamp(1.75, 1, 3),
			XXL:  Clamp(2.5, 1.5, 4),
			XXXL: Clamp(3.5, 2, 6),
		},
		Rounding: Rounding{Less: Sz(0.2, Rem), Normal: Sz(0.4, Rem), More: Sz(0.8, Rem)},
		Borders:  Borders{Thin: Sz(1, Px), Normal: Sz(2, Px), Thick: Sz(4, Px)},
		Headers: Headers{
			H1: Header{Size: Clamp(2, 1.5, 3), Anchor: false},
			H2: Header{Size: Clamp(1.6, 1, 2.4), Anchor: true},
			H3: Header{Size: Clamp(1.4, 0.8, 2), Anchor: true},
			H4: Header{Size: Clamp(1.2, 0.5, 1.6), Anchor: true},
			H5: Header{Size: Clamp(1.1, 0.3, 1.3)},
			H6: Header{Size: Clamp(1, 0.2, 1.1)},
		},
	}
}

// LightTheme returns the built-in light theme.
func LightTheme() *Theme {
	t := baseTheme("light")
	t.Colors = Colors{
		Primary:   Range("#0a4f7d", "#0d6efd", "#4d94fe", "#c2e7fd"),
		Secondary: Range("#4d5358", "#6c757d", "#a7acb1", "#fefefe"),
		Success:   Range("#10562f", "#198754", "#5dab87", "#c9ffad"),
		Info:      Range("#087990", "#0dcaf0", "#6edff6", "#fff080"),
		Warning:   Range("#997404", "#ffc107", "#ffda6a", "#ffc280"),
		Danger:    Range("#842029", "#dc3545", "#ea868f", "#ffaca1"),
		Light:     Range("#e9ecef", "#f8f8f8", "#fcfcfc"),
		Dark:      Range("#212529", "#414549", "#5c636a"),
		White:     Range("#fff"),
		Black:     Range("#222"),
	}
	return t
}

// DarkTheme returns the built-in dark theme.
func DarkTheme() *Theme {
	t := baseTheme("dark")
	t.Colors = Colors{
		Primary:   Range("#084298", "#0d6efd", "#6ea8fe"),
		Secondary: Range("#41464b", "#6c757d", "#c4c8cb"),
		Success:   Range("#0f5132", "#198754", "#75b798"),
		Info:      Range("#055160", "#0dcaf0", "#6edff6"),
		Warning:   Range("#664d03", "#ffc107", "#ffda6a"),
		Danger:    Range("#58151c", "#dc3545", "#ea868f"),
		Light:     Range("#313539", "#495057", "#6c757d"),
		Dark:      Range("#e9ecef", "#f8f9fa", "#fff"),
		White:     Range("#222"),
		Black:     Range("#fff"),
	}
	return t
}

var defaultTheme atomic.Pointer[Theme]

// DefaultTheme returns the process-wide default theme, LightTheme unless
// replaced with SetDefaultTheme.
func DefaultTheme() *Theme {
	if t := defaultTheme.Load(); t != nil {
		return t
	}
	defaultTheme.CompareAndSwap(nil, LightTheme())
	return defaultTheme.Load()
}

// SetDefaultTheme swaps the process-wide default theme. Renders that do
// not bind a theme explicitly observe the swap immediately, so prefer
// binding a theme per request when serving live traffic.
func SetDefaultTheme(t *Theme) {
	if t == nil {
		panic("styles: nil theme")
	}
	defaultTheme.Store(t)
}
