// Package html is the catalog of HTML element kinds.
//
// Every element has a Kind variable and a constructor taking children and
// attributes in any order:
//
//	html.Div(
//	    hxel.Class("card"),
//	    html.H2("Title"),
//	    html.P("Body text"),
//	)
//
// Void elements (br, img, input, ...) reject children and render as
// self-closing tags. Everything else always writes a closing tag.
package html

import "github.com/pthm/hxel"

func kind(tag string, spec hxel.KindSpec, schema hxel.Schema) *hxel.Kind {
	spec.Tag = tag
	spec.Schema = schema
	return hxel.DefineElement(tag, spec)
}

// Element kinds.
var (
	HTMLKind       = kind("html", hxel.KindSpec{AlwaysPaired: true, Header: "<!doctype html>"}, htmlTagAttrs)
	HeadKind       = kind("head", hxel.KindSpec{AlwaysPaired: true}, Global)
	BodyKind       = kind("body", hxel.KindSpec{AlwaysPaired: true}, Global)
	TitleKind      = kind("title", hxel.KindSpec{AlwaysPaired: true, Children: hxel.TextChildren}, Global)
	MetaKind       = kind("meta", hxel.KindSpec{Children: hxel.NoChildren}, metaAttrs)
	LinkKind       = kind("link", hxel.KindSpec{Children: hxel.NoChildren}, linkAttrs)
	BaseKind       = kind("base", hxel.KindSpec{Children: hxel.NoChildren}, baseAttrs)
	ScriptKind     = kind("script", hxel.KindSpec{AlwaysPaired: true, Children: hxel.TextChildren}, scriptAttrs)
	NoscriptKind   = kind("noscript", hxel.KindSpec{AlwaysPaired: true}, Global)
	TemplateKind   = kind("template", hxel.KindSpec{AlwaysPaired: true}, Global)
	DivKind        = kind("div", hxel.KindSpec{AlwaysPaired: true}, Global)
	SpanKind       = kind("span", hxel.KindSpec{AlwaysPaired: true}, Global)
	MainKind       = kind("main", hxel.KindSpec{AlwaysPaired: true}, Global)
	PKind          = kind("p", hxel.KindSpec{AlwaysPaired: true}, Global)
	AKind          = kind("a", hxel.KindSpec{AlwaysPaired: true}, hyperlinkAttrs)
	BrKind         = kind("br", hxel.KindSpec{Children: hxel.NoChildren}, Global)
	HrKind         = kind("hr", hxel.KindSpec{Children: hxel.NoChildren}, Global)
	WbrKind        = kind("wbr", hxel.KindSpec{Children: hxel.NoChildren}, Global)
	ButtonKind     = kind("button", hxel.KindSpec{AlwaysPaired: true}, buttonAttrs)
	LabelKind      = kind("label", hxel.KindSpec{AlwaysPaired: true}, labelAttrs)
	TdKind         = kind("td", hxel.KindSpec{AlwaysPaired: true}, cellAttrs)
	ThKind         = kind("th", hxel.KindSpec{AlwaysPaired: true}, thAttrs)
	TrKind         = kind("tr", hxel.KindSpec{AlwaysPaired: true}, Global)
	TheadKind      = kind("thead", hxel.KindSpec{AlwaysPaired: true}, Global)
	TbodyKind      = kind("tbody", hxel.KindSpec{AlwaysPaired: true}, Global)
	TfootKind      = kind("tfoot", hxel.KindSpec{AlwaysPaired: true}, Global)
	TableKind      = kind("table", hxel.KindSpec{AlwaysPaired: true}, Global)
	CaptionKind    = kind("caption", hxel.KindSpec{AlwaysPaired: true}, Global)
	ColKind        = kind("col", hxel.KindSpec{Children: hxel.NoChildren}, colAttrs)
	ColgroupKind   = kind("colgroup", hxel.KindSpec{AlwaysPaired: true}, colAttrs)
	LiKind         = kind("li", hxel.KindSpec{AlwaysPaired: true}, liAttrs)
	UlKind         = kind("ul", hxel.KindSpec{AlwaysPaired: true}, Global)
	OlKind         = kind("ol", hxel.KindSpec{AlwaysPaired: true}, olAttrs)
	MenuKind       = kind("menu", hxel.KindSpec{AlwaysPaired: true}, Global)
	DtKind         = kind("dt", hxel.KindSpec{AlwaysPaired: true}, Global)
	DdKind         = kind("dd", hxel.KindSpec{AlwaysPaired: true}, Global)
	DlKind         = kind("dl", hxel.KindSpec{AlwaysPaired: true}, Global)
	SectionKind    = kind("section", hxel.KindSpec{AlwaysPaired: true}, Global)
	ArticleKind    = kind("article", hxel.KindSpec{AlwaysPaired: true}, Global)
	AsideKind      = kind("aside", hxel.KindSpec{AlwaysPaired: true}, Global)
	HeaderKind     = kind("header", hxel.KindSpec{AlwaysPaired: true}, Global)
	FooterKind     = kind("footer", hxel.KindSpec{AlwaysPaired: true}, Global)
	NavKind        = kind("nav", hxel.KindSpec{AlwaysPaired: true}, Global)
	AddressKind    = kind("address", hxel.KindSpec{AlwaysPaired: true}, Global)
	HgroupKind     = kind("hgroup", hxel.KindSpec{AlwaysPaired: true}, Global)
	SearchKind     = kind("search", hxel.KindSpec{AlwaysPaired: true}, Global)
	H1Kind         = kind("h1", hxel.KindSpec{AlwaysPaired: true}, Global)
	H2Kind         = kind("h2", hxel.KindSpec{AlwaysPaired: true}, Global)
	H3Kind         = kind("h3", hxel.KindSpec{AlwaysPaired: true}, Global)
	H4Kind         = kind("h4", hxel.KindSpec{AlwaysPaired: true}, Global)
	H5Kind         = kind("h5", hxel.KindSpec{AlwaysPaired: true}, Global)
	H6Kind         = kind("h6", hxel.KindSpec{AlwaysPaired: true}, Global)
	FormKind       = kind("form", hxel.KindSpec{AlwaysPaired: true}, formAttrs)
	FieldsetKind   = kind("fieldset", hxel.KindSpec{AlwaysPaired: true}, fieldsetAttrs)
	LegendKind     = kind("legend", hxel.KindSpec{AlwaysPaired: true, Children: hxel.TextChildren}, Global)
	InputKind      = kind("input", hxel.KindSpec{Children: hxel.NoChildren}, inputAttrs)
	OutputKind     = kind("output", hxel.KindSpec{AlwaysPaired: true}, outputAttrs)
	SelectKind     = kind("select", hxel.KindSpec{AlwaysPaired: true}, selectAttrs)
	OptionKind     = kind("option", hxel.KindSpec{AlwaysPaired: true, Children: hxel.TextChildren}, optionAttrs)
	OptgroupKind   = kind("optgroup", hxel.KindSpec{AlwaysPaired: true}, optgroupAttrs)
	TextareaKind   = kind("textarea", hxel.KindSpec{AlwaysPaired: true, Children: hxel.TextChildren}, textareaAttrs)
	DatalistKind   = kind("datalist", hxel.KindSpec{AlwaysPaired: true}, Global)
	ProgressKind   = kind("progress", hxel.KindSpec{AlwaysPaired: true}, progressAttrs)
	MeterKind      = kind("meter", hxel.KindSpec{AlwaysPaired: true}, meterAttrs)
	ImgKind        = kind("img", hxel.KindSpec{Children: hxel.NoChildren}, imgAttrs)
	PictureKind    = kind("picture", hxel.KindSpec{AlwaysPaired: true}, Global)
	FigureKind     = kind("figure", hxel.KindSpec{AlwaysPaired: true}, Global)
	FigcaptionKind = kind("figcaption", hxel.KindSpec{AlwaysPaired: true}, Global)
	IframeKind     = kind("iframe", hxel.KindSpec{AlwaysPaired: true, Children: hxel.NoChildren}, iframeAttrs)
	EmbedKind      = kind("embed", hxel.KindSpec{Children: hxel.NoChildren}, embedAttrs)
	ObjectKind     = kind("object", hxel.KindSpec{AlwaysPaired: true}, objectAttrs)
	ParamKind      = kind("param", hxel.KindSpec{Children: hxel.NoChildren}, Global.Merge(hxel.Schema{"name": str, "value": anyVal}))
	VideoKind      = kind("video", hxel.KindSpec{AlwaysPaired: true}, videoAttrs)
	AudioKind      = kind("audio", hxel.KindSpec{AlwaysPaired: true}, mediaAttrs)
	SourceKind     = kind("source", hxel.KindSpec{Children: hxel.NoChildren}, sourceAttrs)
	TrackKind      = kind("track", hxel.KindSpec{Children: hxel.NoChildren}, trackAttrs)
	CanvasKind     = kind("canvas", hxel.KindSpec{AlwaysPaired: true}, canvasAttrs)
	MapKind        = kind("map", hxel.KindSpec{AlwaysPaired: true}, mapAttrs)
	AreaKind       = kind("area", hxel.KindSpec{Children: hxel.NoChildren}, areaAttrs)
	SvgKind        = kind("svg", hxel.KindSpec{AlwaysPaired: true}, svgAttrs)
	CircleKind     = kind("circle", hxel.KindSpec{AlwaysPaired: true}, circleAttrs)
	LineKind       = kind("line", hxel.KindSpec{AlwaysPaired: true}, lineAttrs)
	PathKind       = kind("path", hxel.KindSpec{AlwaysPaired: true}, pathAttrs)
	PolylineKind   = kind("polyline", hxel.KindSpec{AlwaysPaired: true}, polylineAttrs)
	BKind          = kind("b", hxel.KindSpec{AlwaysPaired: true}, Global)
	IKind          = kind("i", hxel.KindSpec{AlwaysPaired: true}, Global)
	SKind          = kind("s", hxel.KindSpec{AlwaysPaired: true}, Global)
	UKind          = kind("u", hxel.KindSpec{AlwaysPaired: true}, Global)
	StrongKind     = kind("strong", hxel.KindSpec{AlwaysPaired: true}, Global)
	EmKind         = kind("em", hxel.KindSpec{AlwaysPaired: true}, Global)
	MarkKind       = kind("mark", hxel.KindSpec{AlwaysPaired: true}, Global)
	SmallKind      = kind("small", hxel.KindSpec{AlwaysPaired: true}, Global)
	BigKind        = kind("big", hxel.KindSpec{AlwaysPaired: true}, Global)
	SubKind        = kind("sub", hxel.KindSpec{AlwaysPaired: true}, Global)
	SupKind        = kind("sup", hxel.KindSpec{AlwaysPaired: true}, Global)
	DelKind        = kind("del", hxel.KindSpec{AlwaysPaired: true}, editAttrs)
	InsKind        = kind("ins", hxel.KindSpec{AlwaysPaired: true}, editAttrs)
	CodeKind       = kind("code", hxel.KindSpec{AlwaysPaired: true}, Global)
	PreKind        = kind("pre", hxel.KindSpec{AlwaysPaired: true}, Global)
	KbdKind        = kind("kbd", hxel.KindSpec{AlwaysPaired: true}, Global)
	SampKind       = kind("samp", hxel.KindSpec{AlwaysPaired: true}, Global)
	VarKind        = kind("var", hxel.KindSpec{AlwaysPaired: true}, Global)
	CiteKind       = kind("cite", hxel.KindSpec{AlwaysPaired: true}, Global)
	QKind          = kind("q", hxel.KindSpec{AlwaysPaired: true}, quoteAttrs)
	BlockquoteKind = kind("blockquote", hxel.KindSpec{AlwaysPaired: true}, quoteAttrs)
	AbbrKind       = kind("abbr", hxel.KindSpec{AlwaysPaired: true}, Global)
	BdiKind        = kind("bdi", hxel.KindSpec{AlwaysPaired: true}, Global)
	BdoKind        = kind("bdo", hxel.KindSpec{AlwaysPaired: true}, Global)
	DataKind       = kind("data", hxel.KindSpec{AlwaysPaired: true}, dataAttrs)
	TimeKind       = kind("time", hxel.KindSpec{AlwaysPaired: true}, timeAttrs)
	RubyKind       = kind("ruby", hxel.KindSpec{AlwaysPaired: true}, Global)
	RpKind         = kind("rp", hxel.KindSpec{AlwaysPaired: true}, Global)
	RtKind         = kind("rt", hxel.KindSpec{AlwaysPaired: true}, Global)
	DetailsKind    = kind("details", hxel.KindSpec{AlwaysPaired: true}, openAttrs)
	SummaryKind    = kind("summary", hxel.KindSpec{AlwaysPaired: true}, Global)
	DialogKind     = kind("dialog", hxel.KindSpec{AlwaysPaired: true}, openAttrs)
)

// Blank renders only its children.
var BlankKind = hxel.Fragment

// Blank groups nodes without a wrapping element.
func Blank(args ...any) hxel.Node { return BlankKind.New(args...) }

// HTML creates a <html> element.
func HTML(args ...any) hxel.Node { return HTMLKind.New(args...) }

// Head creates a <head> element.
func Head(args ...any) hxel.Node { return HeadKind.New(args...) }

// Body creates a <body> element.
func Body(args ...any) hxel.Node { return BodyKind.New(args...) }

// Title creates a <title> element.
func Title(args ...any) hxel.Node { return TitleKind.New(args...) }

// Meta creates a <meta> element.
func Meta(args ...any) hxel.Node { return MetaKind.New(args...) }

// Link creates a <link> element.
func Link(args ...any) hxel.Node { return LinkKind.New(args...) }

// Base creates a <base> element.
func Base(args ...any) hxel.Node { return BaseKind.New(args...) }

// Script creates a <script> element.
func Script(args ...any) hxel.Node { return ScriptKind.New(args...) }

// Noscript creates a <noscript> element.
func Noscript(args ...any) hxel.Node { return NoscriptKind.New(args...) }

// Template creates a <template> element.
func Template(args ...any) hxel.Node { return TemplateKind.New(args...) }

// Div creates a <div> element.
func Div(args ...any) hxel.Node { return DivKind.New(args...) }

// Span creates a <span> element.
func Span(args ...any) hxel.Node { return SpanKind.New(args...) }

// Main creates a <main> element.
func Main(args ...any) hxel.Node { return MainKind.New(args...) }

// P creates a <p> element.
func P(args ...any) hxel.Node { return PKind.New(args...) }

// A creates a <a> element.
func A(args ...any) hxel.Node { return AKind.New(args...) }

// Br creates a <br> element.
func Br(args ...any) hxel.Node { return BrKind.New(args...) }

// Hr creates a <hr> element.
func Hr(args ...any) hxel.Node { return HrKind.New(args...) }

// Wbr creates a <wbr> element.
func Wbr(args ...any) hxel.Node { return WbrKind.New(args...) }

// Button creates a <button> element.
func Button(args ...any) hxel.Node { return ButtonKind.New(args...) }

// Label creates a <label> element.
func Label(args ...any) hxel.Node { return LabelKind.New(args...) }

// Td creates a <td> element.
func Td(args ...any) hxel.Node { return TdKind.New(args...) }

// Th creates a <th> element.
func Th(args ...any) hxel.Node { return ThKind.New(args...) }

// Tr creates a <tr> element.
func Tr(args ...any) hxel.Node { return TrKind.New(args...) }

// Thead creates a <thead> element.
func Thead(args ...any) hxel.Node { return TheadKind.New(args...) }

// Tbody creates a <tbody> element.
func Tbody(args ...any) hxel.Node { return TbodyKind.New(args...) }

// Tfoot creates a <tfoot> element.
func Tfoot(args ...any) hxel.Node { return TfootKind.New(args...) }

// Table creates a <table> element.
func Table(args ...any) hxel.Node { return TableKind.New(args...) }

// Caption creates a <caption> element.
func Caption(args ...any) hxel.Node { return CaptionKind.New(args...) }

// Col creates a <col> element.
func Col(args ...any) hxel.Node { return ColKind.New(args...) }

// Colgroup creates a <colgroup> element.
func Colgroup(args ...any) hxel.Node { return ColgroupKind.New(args...) }

// Li creates a <li> element.
func Li(args ...any) hxel.Node { return LiKind.New(args...) }

// Ul creates a <ul> element.
func Ul(args ...any) hxel.Node { return UlKind.New(args...) }

// Ol creates a <ol> element.
func Ol(args ...any) hxel.Node { return OlKind.New(args...) }

// Menu creates a <menu> element.
func Menu(args ...any) hxel.Node { return MenuKind.New(args...) }

// Dt creates a <dt> element.
func Dt(args ...any) hxel.Node { return DtKind.New(args...) }

// Dd creates a <dd> element.
func Dd(args ...any) hxel.Node { return DdKind.New(args...) }

// Dl creates a <dl> element.
func Dl(args ...any) hxel.Node { return DlKind.New(args...) }

// Section creates a <section> element.
func Section(args ...any) hxel.Node { return SectionKind.New(args...) }

// Article creates a <article> element.
func Article(args ...any) hxel.Node { return ArticleKind.New(args...) }

// Aside creates a <aside> element.
func Aside(args ...any) hxel.Node { return AsideKind.New(args...) }

// Header creates a <header> element.
func Header(args ...any) hxel.Node { return HeaderKind.New(args...) }

// Footer creates a <footer> element.
func Footer(args ...any) hxel.Node { return FooterKind.New(args...) }

// Nav creates a <nav> element.
func Nav(args ...any) hxel.Node { return NavKind.New(args...) }

// Address creates a <address> element.
func Address(args ...any) hxel.Node { return AddressKind.New(args...) }

// Hgroup creates a <hgroup> element.
func Hgroup(args ...any) hxel.Node { return HgroupKind.New(args...) }

// Search creates a <search> element.
func Search(args ...any) hxel.Node { return SearchKind.New(args...) }

// H1 creates a <h1> element.
func H1(args ...any) hxel.Node { return H1Kind.New(args...) }

// H2 creates a <h2> element.
func H2(args ...any) hxel.Node { return H2Kind.New(args...) }

// H3 creates a <h3> element.
func H3(args ...any) hxel.Node { return H3Kind.New(args...) }

// H4 creates a <h4> element.
func H4(args ...any) hxel.Node { return H4Kind.New(args...) }

// H5 creates a <h5> element.
func H5(args ...any) hxel.Node { return H5Kind.New(args...) }

// H6 creates a <h6> element.
func H6(args ...any) hxel.Node { return H6Kind.New(args...) }

// Form creates a <form> element.
func Form(args ...any) hxel.Node { return FormKind.New(args...) }

// Fieldset creates a <fieldset> element.
func Fieldset(args ...any) hxel.Node { return FieldsetKind.New(args...) }

// Legend creates a <legend> element.
func Legend(args ...any) hxel.Node { return LegendKind.New(args...) }

// Input creates a <input> element.
func Input(args ...any) hxel.Node { return InputKind.New(args...) }

// Output creates a <output> element.
func Output(args ...any) hxel.Node { return OutputKind.New(args...) }

// Select creates a <select> element.
func Select(args ...any) hxel.Node { return SelectKind.New(args...) }

// Option creates a <option> element.
func Option(args ...any) hxel.Node { return OptionKind.New(args...) }

// Optgroup creates a <optgroup> element.
func Optgroup(args ...any) hxel.Node { return OptgroupKind.New(args...) }

// Textarea creates a <textarea> element.
func Textarea(args ...any) hxel.Node { return TextareaKind.New(args...) }

// Datalist creates a <datalist> element.
func Datalist(args ...any) hxel.Node { return DatalistKind.New(args...) }

// Progress creates a <progress> element.
func Progress(args ...any) hxel.Node { return ProgressKind.New(args...) }

// Meter creates a <meter> element.
func Meter(args ...any) hxel.Node { return MeterKind.New(args...) }

// Img creates a <img> element.
func Img(args ...any) hxel.Node { return ImgKind.New(args...) }

// Picture creates a <picture> element.
func Picture(args ...any) hxel.Node { return PictureKind.New(args...) }

// Figure creates a <figure> element.
func Figure(args ...any) hxel.Node { return FigureKind.New(args...) }

// Figcaption creates a <figcaption> element.
func Figcaption(args ...any) hxel.Node { return FigcaptionKind.New(args...) }

// Iframe creates a <iframe> element.
func Iframe(args ...any) hxel.Node { return IframeKind.New(args...) }

// Embed creates a <embed> element.
func Embed(args ...any) hxel.Node { return EmbedKind.New(args...) }

// Object creates a <object> element.
func Object(args ...any) hxel.Node { return ObjectKind.New(args...) }

// Param creates a <param> element.
func Param(args ...any) hxel.Node { return ParamKind.New(args...) }

// Video creates a <video> element.
func Video(args ...any) hxel.Node { return VideoKind.New(args...) }

// Audio creates a <audio> element.
func Audio(args ...any) hxel.Node { return AudioKind.New(args...) }

// Source creates a <source> element.
func Source(args ...any) hxel.Node { return SourceKind.New(args...) }

// Track creates a <track> element.
func Track(args ...any) hxel.Node { return TrackKind.New(args...) }

// Canvas creates a <canvas> element.
func Canvas(args ...any) hxel.Node { return CanvasKind.New(args...) }

// Map creates a <map> element.
func Map(args ...any) hxel.Node { return MapKind.New(args...) }

// Area creates a <area> element.
func Area(args ...any) hxel.Node { return AreaKind.New(args...) }

// Svg creates a <svg> element.
func Svg(args ...any) hxel.Node { return SvgKind.New(args...) }

// Circle creates a <circle> element.
func Circle(args ...any) hxel.Node { return CircleKind.New(args...) }

// Line creates a <line> element.
func Line(args ...any) hxel.Node { return LineKind.New(args...) }

// Path creates a <path> element.
func Path(args ...any) hxel.Node { return PathKind.New(args...) }

// Polyline creates a <polyline> element.
func Polyline(args ...any) hxel.Node { return PolylineKind.New(args...) }

// B creates a <b> element.
func B(args ...any) hxel.Node { return BKind.New(args...) }

// I creates a <i> element.
func I(args ...any) hxel.Node { return IKind.New(args...) }

// S creates a <s> element.
func S(args ...any) hxel.Node { return SKind.New(args...) }

// U creates a <u> element.
func U(args ...any) hxel.Node { return UKind.New(args...) }

// Strong creates a <strong> element.
func Strong(args ...any) hxel.Node { return StrongKind.New(args...) }

// Em creates a <em> element.
func Em(args ...any) hxel.Node { return EmKind.New(args...) }

// Mark creates a <mark> element.
func Mark(args ...any) hxel.Node { return MarkKind.New(args...) }

// Small creates a <small> element.
func Small(args ...any) hxel.Node { return SmallKind.New(args...) }

// Big creates a <big> element.
func Big(args ...any) hxel.Node { return BigKind.New(args...) }

// Sub creates a <sub> element.
func Sub(args ...any) hxel.Node { return SubKind.New(args...) }

// Sup creates a <sup> element.
func Sup(args ...any) hxel.Node { return SupKind.New(args...) }

// Del creates a <del> element.
func Del(args ...any) hxel.Node { return DelKind.New(args...) }

// Ins creates a <ins> element.
func Ins(args ...any) hxel.Node { return InsKind.New(args...) }

// Code creates a <code> element.
func Code(args ...any) hxel.Node { return CodeKind.New(args...) }

// Pre creates a <pre> element.
func Pre(args ...any) hxel.Node { return PreKind.New(args...) }

// Kbd creates a <kbd> element.
func Kbd(args ...any) hxel.Node { return KbdKind.New(args...) }

// Samp creates a <samp> element.
func Samp(args ...any) hxel.Node { return SampKind.New(args...) }

// Var creates a <var> element.
func Var(args ...any) hxel.Node { return VarKind.New(args...) }

// Cite creates a <cite> element.
func Cite(args ...any) hxel.Node { return CiteKind.New(args...) }

// Q creates a <q> element.
func Q(args ...any) hxel.Node { return QKind.New(args...) }

// Blockquote creates a <blockquote> element.
func Blockquote(args ...any) hxel.Node { return BlockquoteKind.New(args...) }

// Abbr creates a <abbr> element.
func Abbr(args ...any) hxel.Node { return AbbrKind.New(args...) }

// Bdi creates a <bdi> element.
func Bdi(args ...any) hxel.Node { return BdiKind.New(args...) }

// Bdo creates a <bdo> element.
func Bdo(args ...any) hxel.Node { return BdoKind.New(args...) }

// Data creates a <data> element.
func Data(args ...any) hxel.Node { return DataKind.New(args...) }

// Time creates a <time> element.
func Time(args ...any) hxel.Node { return TimeKind.New(args...) }

// Ruby creates a <ruby> element.
func Ruby(args ...any) hxel.Node { return RubyKind.New(args...) }

// Rp creates a <rp> element.
func Rp(args ...any) hxel.Node { return RpKind.New(args...) }

// Rt creates a <rt> element.
func Rt(args ...any) hxel.Node { return RtKind.New(args...) }

// Details creates a <details> element.
func Details(args ...any) hxel.Node { return DetailsKind.New(args...) }

// Summary creates a <summary> element.
func Summary(args ...any) hxel.Node { return SummaryKind.New(args...) }

// Dialog creates a <dialog> element.
func Dialog(args ...any) hxel.Node { return DialogKind.New(args...) }

// Kinds returns every kind in the catalog, the style element and Blank
// included.
func Kinds() []*hxel.Kind {
	return []*hxel.Kind{
		BlankKind,
		StyleKind,
		HTMLKind,
		HeadKind,
		BodyKind,
		TitleKind,
		MetaKind,
		LinkKind,
		BaseKind,
		ScriptKind,
		NoscriptKind,
		TemplateKind,
		DivKind,
		SpanKind,
		MainKind,
		PKind,
		AKind,
		BrKind,
		HrKind,
		WbrKind,
		ButtonKind,
		LabelKind,
		TdKind,
		ThKind,
		TrKind,
		TheadKind,
		TbodyKind,
		TfootKind,
		TableKind,
		CaptionKind,
		ColKind,
		ColgroupKind,
		LiKind,
		UlKind,
		OlKind,
		MenuKind,
		DtKind,
		DdKind,
		DlKind,
		SectionKind,
		ArticleKind,
		AsideKind,
		HeaderKind,
		FooterKind,
		NavKind,
		AddressKind,
		HgroupKind,
		SearchKind,
		H1Kind,
		H2Kind,
		H3Kind,
		H4Kind,
		H5Kind,
		H6Kind,
		FormKind,
		FieldsetKind,
		LegendKind,
		InputKind,
		OutputKind,
		SelectKind,
		OptionKind,
		OptgroupKind,
		TextareaKind,
		DatalistKind,
		ProgressKind,
		MeterKind,
		ImgKind,
		PictureKind,
		FigureKind,
		FigcaptionKind,
		IframeKind,
		EmbedKind,
		ObjectKind,
		ParamKind,
		VideoKind,
		AudioKind,
		SourceKind,
		TrackKind,
		CanvasKind,
		MapKind,
		AreaKind,
		SvgKind,
		CircleKind,
		LineKind,
		PathKind,
		PolylineKind,
		BKind,
		IKind,
		SKind,
		UKind,
		StrongKind,
		EmKind,
		MarkKind,
		SmallKind,
		BigKind,
		SubKind,
		SupKind,
		DelKind,
		InsKind,
		CodeKind,
		PreKind,
		KbdKind,
		SampKind,
		VarKind,
		CiteKind,
		QKind,
		BlockquoteKind,
		AbbrKind,
		BdiKind,
		BdoKind,
		DataKind,
		TimeKind,
		RubyKind,
		RpKind,
		RtKind,
		DetailsKind,
		SummaryKind,
		DialogKind,
	}
}

// Register adds the catalog to reg so markup can refer to HTML elements.
func Register(reg *hxel.Registry) {
	reg.Register(Kinds()...)
}
