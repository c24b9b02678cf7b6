package doc

import (
	"io"

	"github.com/vango-dev/markup/pkg/html"
	"github.com/vango-dev/markup/pkg/tree"
)

// Page contains all data needed to render a complete HTML document.
type Page struct {
	// Body is the root node for the page content.
	Body *tree.Node

	// Title is the page title.
	Title string

	// Meta contains meta tags for the document head.
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// InlineScripts contains script bodies appended at the end of body.
	InlineScripts []string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name      string // name attribute
	Content   string // content attribute
	Property  string // property attribute (for OpenGraph)
	HTTPEquiv string // http-equiv attribute
	Charset   string // charset attribute
}

// Build assembles the full document tree: html root, head with charset,
// viewport, title, meta and link tags, and a body wrapping Page.Body.
// The scaffolding is rebuilt on each call; Page.Body is shared between
// calls, so flush at most once.
func (p *Page) Build() *tree.Node {
	lang := p.Lang
	if lang == "" {
		lang = "en"
	}

	root := html.Html(html.Lang(lang))

	head := root.Attach(html.Head())
	head.Attach(html.Meta(html.Charset("utf-8")))
	head.Attach(html.Meta(
		html.Name("viewport"),
		html.Content("width=device-width, initial-scale=1"),
	))
	if p.Title != "" {
		head.Attach(html.Title(p.Title))
	}
	for _, m := range p.Meta {
		head.Attach(buildMetaTag(m))
	}
	for _, href := range p.StyleSheets {
		head.Attach(html.LinkEl(html.Rel("stylesheet"), html.Href(href)))
	}

	body := root.Attach(html.Body())
	if p.Body != nil {
		body.Attach(p.Body)
	}
	for _, script := range p.InlineScripts {
		body.Attach(html.Script(script))
	}

	return root
}

// Render writes the complete document, DOCTYPE included, to w.
func (p *Page) Render(w io.Writer, minimize bool) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	return p.Build().RenderTo(w, minimize)
}

// buildMetaTag builds a meta element, adding only the populated
// attributes in a fixed order.
func buildMetaTag(m MetaTag) *tree.Node {
	n := html.Meta()
	if m.Charset != "" {
		n.SetAttr("charset", m.Charset)
	}
	if m.Name != "" {
		n.SetAttr("name", m.Name)
	}
	if m.Property != "" {
		n.SetAttr("property", m.Property)
	}
	if m.HTTPEquiv != "" {
		n.SetAttr("http-equiv", m.HTTPEquiv)
	}
	if m.Content != "" {
		n.SetAttr("content", m.Content)
	}
	return n
}
