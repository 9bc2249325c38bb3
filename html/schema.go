package html

import "github.com/pthm/hxel"

// Shorthand attribute specs.
var (
	str    = hxel.AttrSpec{Type: hxel.AttrString}
	flag   = hxel.AttrSpec{Type: hxel.AttrBool}
	number = hxel.AttrSpec{Type: hxel.AttrNumber}
	anyVal = hxel.AttrSpec{Type: hxel.AttrAny}
)

func oneOf(values string) hxel.AttrSpec {
	return hxel.AttrSpec{Type: hxel.AttrString, Rule: "oneof=" + values}
}

var eventHandlers = []string{
	// window
	"onafterprint", "onbeforeprint", "onbeforeunload", "onerror", "onhashchange",
	"onload", "onmessage", "onoffline", "ononline", "onpagehide", "onpageshow",
	"onpopstate", "onresize", "onstorage", "onunhandledrejection", "onunload",
	// form
	"onblur", "onchange", "oncontextmenu", "onfocus", "oninput", "oninvalid",
	"onreset", "onsearch", "onselect", "onsubmit",
	// keyboard
	"onkeydown", "onkeypress", "onkeyup",
	// mouse
	"onclick", "ondblclick", "onmousedown", "onmousemove", "onmouseout",
	"onmouseover", "onmouseup", "onwheel",
	// drag
	"ondrag", "ondragend", "ondragenter", "ondragleave", "ondragover",
	"ondragstart", "ondrop",
	// clipboard
	"oncopy", "oncut", "onpaste",
}

// Global is accepted by every element in the catalog.
var Global = globalSchema()

func globalSchema() hxel.Schema {
	s := hxel.Schema{
		"id":              str,
		"accesskey":       str,
		"class_":          str,
		"classes":         {Type: hxel.AttrList},
		"contenteditable": oneOf("true false"),
		"dir":             oneOf("ltr rtl auto"),
		"draggable":       oneOf("true false"),
		"enterkeyhint":    oneOf("enter done go next previous search send"),
		"hidden":          flag,
		"inert":           flag,
		"inputmode":       oneOf("none text search tel url email numeric decimal"),
		"lang":            str,
		"popover":         flag,
		"role":            str,
		"slot":            str,
		"spellcheck":      oneOf("true false"),
		"style":           {Type: hxel.AttrMapping},
		"tabindex":        number,
		"title":           str,
		"translate":       oneOf("yes no"),
	}
	for _, name := range eventHandlers {
		s[name] = anyVal
	}
	return s
}

var (
	hyperlinkAttrs = Global.Merge(hxel.Schema{
		"href":           str,
		"target":         str,
		"rel":            str,
		"download":       anyVal,
		"hreflang":       str,
		"ping":           str,
		"referrerpolicy": str,
		"type":           str,
	})

	inputAttrs = Global.Merge(hxel.Schema{
		"accept":       str,
		"alt":          str,
		"autocomplete": str,
		"autofocus":    flag,
		"checked":      flag,
		"dirname":      str,
		"disabled":     flag,
		"form":         str,
		"formaction":   str,
		"formmethod":   oneOf("get post dialog"),
		"height":       anyVal,
		"list":         str,
		"max":          anyVal,
		"maxlength":    number,
		"min":          anyVal,
		"minlength":    number,
		"multiple":     flag,
		"name":         str,
		"pattern":      str,
		"placeholder":  str,
		"readonly":     flag,
		"required":     flag,
		"size":         number,
		"src":          str,
		"step":         anyVal,
		"type": oneOf("button checkbox color date datetime-local email file hidden " +
			"image month number password radio range reset search submit tel text time url week"),
		"value": anyVal,
		"width": anyVal,
	})

	buttonAttrs = Global.Merge(hxel.Schema{
		"autofocus":  flag,
		"disabled":   flag,
		"form":       str,
		"formaction": str,
		"formmethod": oneOf("get post dialog"),
		"name":       str,
		"type":       oneOf("button submit reset"),
		"value":      anyVal,
	})

	formAttrs = Global.Merge(hxel.Schema{
		"accept_charset": str,
		"action":         str,
		"autocomplete":   oneOf("on off"),
		"enctype":        str,
		"method":         oneOf("get post dialog"),
		"name":           str,
		"novalidate":     flag,
		"target":         str,
	})

	labelAttrs  = Global.Merge(hxel.Schema{"for_": str, "form": str})
	outputAttrs = Global.Merge(hxel.Schema{"for_": str, "form": str, "name": str})

	selectAttrs = Global.Merge(hxel.Schema{
		"autofocus": flag,
		"disabled":  flag,
		"form":      str,
		"multiple":  flag,
		"name":      str,
		"required":  flag,
		"size":      number,
	})

	optionAttrs   = Global.Merge(hxel.Schema{"disabled": flag, "label": str, "selected": flag, "value": anyVal})
	optgroupAttrs = Global.Merge(hxel.Schema{"disabled": flag, "label": str})
	fieldsetAttrs = Global.Merge(hxel.Schema{"disabled": flag, "form": str, "name": str})

	textareaAttrs = Global.Merge(hxel.Schema{
		"autocomplete": str,
		"autofocus":    flag,
		"cols":         number,
		"dirname":      str,
		"disabled":     flag,
		"form":         str,
		"maxlength":    number,
		"minlength":    number,
		"name":         str,
		"placeholder":  str,
		"readonly":     flag,
		"required":     flag,
		"rows":         number,
		"wrap":         oneOf("hard soft off"),
	})

	cellAttrs = Global.Merge(hxel.Schema{"colspan": number, "rowspan": number, "headers": str})
	thAttrs   = cellAttrs.Merge(hxel.Schema{"abbr": str, "scope": oneOf("row col rowgroup colgroup")})

	liAttrs = Global.Merge(hxel.Schema{"value": number})
	olAttrs = Global.Merge(hxel.Schema{"reversed": flag, "start": number, "type": oneOf("1 a A i I")})

	imgAttrs = Global.Merge(hxel.Schema{
		"alt":            str,
		"crossorigin":    str,
		"decoding":       oneOf("sync async auto"),
		"height":         anyVal,
		"ismap":          flag,
		"loading":        oneOf("eager lazy"),
		"referrerpolicy": str,
		"sizes":          str,
		"src":            str,
		"srcset":         str,
		"usemap":         str,
		"width":          anyVal,
	})

	iframeAttrs = Global.Merge(hxel.Schema{
		"allow":           str,
		"allowfullscreen": flag,
		"height":          anyVal,
		"loading":         oneOf("eager lazy"),
		"name":            str,
		"referrerpolicy":  str,
		"sandbox":         str,
		"src":             str,
		"srcdoc":          str,
		"width":           anyVal,
	})

	mediaAttrs = Global.Merge(hxel.Schema{
		"autoplay":    flag,
		"controls":    flag,
		"crossorigin": str,
		"loop":        flag,
		"muted":       flag,
		"preload":     oneOf("auto metadata none"),
		"src":         str,
	})
	videoAttrs = mediaAttrs.Merge(hxel.Schema{"height": anyVal, "playsinline": flag, "poster": str, "width": anyVal})

	sourceAttrs = Global.Merge(hxel.Schema{"media": str, "sizes": str, "src": str, "srcset": str, "type": str})
	trackAttrs  = Global.Merge(hxel.Schema{
		"default_": flag,
		"kind":     oneOf("subtitles captions descriptions chapters metadata"),
		"label":    str,
		"src":      str,
		"srclang":  str,
	})

	areaAttrs = Global.Merge(hxel.Schema{
		"alt": str, "coords": str, "download": anyVal, "href": str,
		"hreflang": str, "rel": str, "shape": oneOf("default rect circle poly"), "target": str,
	})
	embedAttrs    = Global.Merge(hxel.Schema{"height": anyVal, "src": str, "type": str, "width": anyVal})
	objectAttrs   = Global.Merge(hxel.Schema{"data": str, "form": str, "height": anyVal, "name": str, "type": str, "width": anyVal})
	mapAttrs      = Global.Merge(hxel.Schema{"name": str})
	baseAttrs     = Global.Merge(hxel.Schema{"href": str, "target": str})
	canvasAttrs   = Global.Merge(hxel.Schema{"height": anyVal, "width": anyVal})
	colAttrs      = Global.Merge(hxel.Schema{"span": number})
	dataAttrs     = Global.Merge(hxel.Schema{"value": anyVal})
	openAttrs     = Global.Merge(hxel.Schema{"open": flag})
	editAttrs     = Global.Merge(hxel.Schema{"cite": str, "datetime": str})
	quoteAttrs    = Global.Merge(hxel.Schema{"cite": str})
	timeAttrs     = Global.Merge(hxel.Schema{"datetime": str})
	progressAttrs = Global.Merge(hxel.Schema{"max": number, "value": number})
	meterAttrs    = Global.Merge(hxel.Schema{
		"form": str, "high": number, "low": number, "max": number,
		"min": number, "optimum": number, "value": number,
	})

	htmlTagAttrs = hxel.Schema{"lang": str, "dir": oneOf("ltr rtl auto"), "xmlns": str}
	metaAttrs    = Global.Merge(hxel.Schema{
		"charset": str, "content": str, "http_equiv": str, "media": str, "name": str, "property": str,
	})
	linkAttrs = Global.Merge(hxel.Schema{
		"as_": str, "crossorigin": str, "href": str, "hreflang": str, "integrity": str,
		"media": str, "referrerpolicy": str, "rel": str, "sizes": str, "type": str,
	})
	scriptAttrs = Global.Merge(hxel.Schema{
		"async_": flag, "crossorigin": str, "defer": flag, "integrity": str,
		"nomodule": flag, "referrerpolicy": str, "src": str, "type": str,
	})
	styleAttrs = Global.Merge(hxel.Schema{"media": str, "nonce": str, "type": str})

	svgAttrs = Global.Merge(hxel.Schema{
		"fill": str, "height": anyVal, "preserveAspectRatio": str, "stroke": str,
		"viewBox": str, "width": anyVal, "xmlns": str,
	})
	shapeAttrs = Global.Merge(hxel.Schema{
		"fill": str, "stroke": str, "stroke_width": anyVal, "stroke_linecap": str,
		"stroke_linejoin": str, "transform": str,
	})
	circleAttrs   = shapeAttrs.Merge(hxel.Schema{"cx": anyVal, "cy": anyVal, "r": anyVal})
	lineAttrs     = shapeAttrs.Merge(hxel.Schema{"x1": anyVal, "x2": anyVal, "y1": anyVal, "y2": anyVal})
	pathAttrs     = shapeAttrs.Merge(hxel.Schema{"d": str})
	polylineAttrs = shapeAttrs.Merge(hxel.Schema{"points": str})
)
