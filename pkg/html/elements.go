package html

import "github.com/vango-dev/markup/pkg/tree"

// voidElements are tags that cannot have children and render without a
// closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// Element creates a node with an arbitrary tag name. Known void elements
// arrive pre-marked self-closing. Arguments follow tree.New: strings are
// content, tree.Attr / []tree.Attr / map[string]string are attributes.
func Element(tag string, args ...any) *tree.Node {
	n := tree.New(tag, args...)
	if IsVoidElement(tag) {
		n.Void("")
	}
	return n
}

// Document structure

func Html(args ...any) *tree.Node  { return Element("html", args...) }
func Head(args ...any) *tree.Node  { return Element("head", args...) }
func Body(args ...any) *tree.Node  { return Element("body", args...) }
func Title(args ...any) *tree.Node { return Element("title", args...) }
func Meta(args ...any) *tree.Node  { return Element("meta", args...) }

// LinkEl creates a <link> element. Named to leave Link free for anchor
// helpers.
func LinkEl(args ...any) *tree.Node { return Element("link", args...) }

// Sectioning and headings

func Header(args ...any) *tree.Node  { return Element("header", args...) }
func Footer(args ...any) *tree.Node  { return Element("footer", args...) }
func Main(args ...any) *tree.Node    { return Element("main", args...) }
func Section(args ...any) *tree.Node { return Element("section", args...) }
func Article(args ...any) *tree.Node { return Element("article", args...) }
func Nav(args ...any) *tree.Node     { return Element("nav", args...) }
func H1(args ...any) *tree.Node      { return Element("h1", args...) }
func H2(args ...any) *tree.Node      { return Element("h2", args...) }
func H3(args ...any) *tree.Node      { return Element("h3", args...) }

// Flow content

func Div(args ...any) *tree.Node        { return Element("div", args...) }
func P(args ...any) *tree.Node          { return Element("p", args...) }
func Span(args ...any) *tree.Node       { return Element("span", args...) }
func A(args ...any) *tree.Node          { return Element("a", args...) }
func Ul(args ...any) *tree.Node         { return Element("ul", args...) }
func Ol(args ...any) *tree.Node         { return Element("ol", args...) }
func Li(args ...any) *tree.Node         { return Element("li", args...) }
func Table(args ...any) *tree.Node      { return Element("table", args...) }
func Tr(args ...any) *tree.Node         { return Element("tr", args...) }
func Td(args ...any) *tree.Node         { return Element("td", args...) }
func Th(args ...any) *tree.Node         { return Element("th", args...) }
func Pre(args ...any) *tree.Node        { return Element("pre", args...) }
func Code(args ...any) *tree.Node       { return Element("code", args...) }
func Blockquote(args ...any) *tree.Node { return Element("blockquote", args...) }
func Strong(args ...any) *tree.Node     { return Element("strong", args...) }
func Em(args ...any) *tree.Node         { return Element("em", args...) }
func Script(args ...any) *tree.Node     { return Element("script", args...) }
func StyleEl(args ...any) *tree.Node    { return Element("style", args...) }

// Void elements

func Br(args ...any) *tree.Node    { return Element("br", args...) }
func Hr(args ...any) *tree.Node    { return Element("hr", args...) }
func Img(args ...any) *tree.Node   { return Element("img", args...) }
func Input(args ...any) *tree.Node { return Element("input", args...) }
