// Package markup is the user-facing entry point for the markup tree
// builder.
//
// It re-exports the core types and constructors from pkg/tree so library
// users need a single import:
//
//	root := markup.New("article", markup.Attr{Key: "lang", Value: "en"})
//	root.Tag("h1", "Hello")
//	fmt.Println(root.Render(false))
//
// The HTML element vocabulary lives in pkg/html, document assembly in
// pkg/doc, and declarative YAML manifests in pkg/manifest.
package markup

import "github.com/vango-dev/markup/pkg/tree"

// Node is one element of a markup tree. See pkg/tree.
type Node = tree.Node

// Attr is a single node attribute.
type Attr = tree.Attr

// CommentMarker is the reserved node name that marks a comment node.
const CommentMarker = tree.CommentMarker

// New creates a node with the given tag name and optional arguments.
func New(name string, args ...any) *Node {
	return tree.New(name, args...)
}

// Text creates an anonymous text node.
func Text(content string) *Node {
	return tree.Text(content)
}

// Comment creates a standalone comment node.
func Comment(text string) *Node {
	return tree.New(tree.CommentMarker, text)
}
