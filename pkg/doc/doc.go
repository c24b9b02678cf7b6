// Package doc assembles complete HTML documents around a pkg/tree body.
//
// Page collects the head metadata (title, meta tags, stylesheets) and a
// body tree, and renders the whole document with DOCTYPE:
//
//	page := &doc.Page{
//	    Title: "Hello",
//	    Body:  html.Div(html.Class("app"), "Hi"),
//	}
//	err := page.Render(w, false)
package doc
