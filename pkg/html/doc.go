// Package html provides the HTML element and attribute vocabulary over
// pkg/tree.
//
// Elements are created with variadic factory functions:
//
//	html.Div(html.Class("card"), html.ID("main"))
//
// Known void elements (br, img, input, ...) come back already marked
// self-closing. Element is the dynamic catch-all for arbitrary tag names.
package html
