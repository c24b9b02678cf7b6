// Package tree provides the in-memory markup tree and its serializer.
//
// A Node represents one element of an SGML-family document: a tag, a text
// fragment, or a comment. Trees are built programmatically and then
// serialized to markup text, either minimized or indented.
//
// # Building
//
// Nodes are created with New and grown with fluent mutators:
//
//	root := tree.New("article", tree.Attr{Key: "lang", Value: "en"})
//	root.Tag("h1", "Hello")
//	root.Comment("generated")
//	list := root.Tag("ul")
//	list.Tag("li", "one")
//	list.Tag("li", "two")
//
// New and Tag accept mixed arguments: strings become inline content
// (space-joined), Attr, []Attr, and map[string]string values become
// attributes with last-write-wins merging.
//
// # Content and children
//
// A node holds either inline content or children, never both. When a
// child is attached to a node that holds content, the content is promoted
// into an anonymous child first, so free text keeps its position relative
// to elements attached later.
//
// # Rendering
//
// Render produces the markup text. Verbose output indents two spaces per
// level and terminates structural lines with newlines; minimized output
// has no whitespace and drops comments. Void nodes render without a
// closing tag; blocked nodes withhold their closing tag until Unblock,
// which allows a container to stay open across partial flushes.
//
// Flush renders and then clears the node, suppressing the start tag on
// any later render. This makes a subtree a one-shot, order-sensitive
// emitter suitable for incremental output.
//
// # Error policy
//
// All tree operations are total: missing attributes read as "", malformed
// argument shapes are absorbed, duplicate keys overwrite. Only RenderTo
// and FlushTo can fail, and only with the sink's own write error.
package tree
