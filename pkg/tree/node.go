package tree

import "strings"

// CommentMarker is the reserved node name that marks a comment node.
// A node named "--" renders as <!-- content --> instead of a tag.
const CommentMarker = "--"

// Attr is a single attribute of a node. Attributes keep their insertion
// order so output is deterministic.
type Attr struct {
	Key   string
	Value string
}

// Node is one element of a markup tree: a tag, a text fragment, or a
// comment. A node holds either inline content or child nodes, never both;
// attaching a child to a node with content promotes the content into an
// anonymous child first, preserving document order.
//
// Node is a single-owner structure. It is not safe for concurrent mutation
// and Flush mutates the node as a side effect of rendering.
type Node struct {
	name     string
	content  string
	children []*Node
	attrs    []Attr

	isVoid       bool
	voidClosure  string
	minimized    bool
	blocked      bool
	startFlushed bool
}

// New creates a node with the given tag name and optional arguments.
// Arguments can be: string (content, space-joined), Attr, []Attr, or
// map[string]string (attributes, last write wins). Anything else is
// ignored. An empty name creates an anonymous text holder that renders
// only its content.
func New(name string, args ...any) *Node {
	content, attrs := normalizeArgs(args)
	return &Node{
		name:    name,
		content: content,
		attrs:   attrs,
	}
}

// Text creates an anonymous text node.
func Text(content string) *Node {
	return &Node{content: content}
}

// Name returns the node's tag name. Empty for anonymous text nodes.
func (n *Node) Name() string { return n.name }

// Content returns the node's inline content. Empty once children exist.
func (n *Node) Content() string { return n.content }

// Children returns the node's children in document order.
func (n *Node) Children() []*Node { return n.children }

// Attrs returns the node's attributes in insertion order.
func (n *Node) Attrs() []Attr { return n.attrs }

// IsVoid reports whether the node renders without a closing tag.
func (n *Node) IsVoid() bool { return n.isVoid }

// Blocked reports whether the closing tag is currently withheld.
func (n *Node) Blocked() bool { return n.blocked }

// SetAttr sets an attribute, overwriting any existing value. Setting a
// value to "" renders the attribute as a bare name (boolean attribute).
func (n *Node) SetAttr(key, value string) *Node {
	for i := range n.attrs {
		if n.attrs[i].Key == key {
			n.attrs[i].Value = value
			return n
		}
	}
	n.attrs = append(n.attrs, Attr{Key: key, Value: value})
	return n
}

// AppendAttr appends to an existing attribute value, space-separated.
// If the attribute is absent it behaves like SetAttr.
func (n *Node) AppendAttr(key, value string) *Node {
	existing := n.Attr(key)
	if existing == "" {
		return n.SetAttr(key, strings.TrimSpace(value))
	}
	return n.SetAttr(key, existing+" "+strings.TrimSpace(value))
}

// SetAttrs applies SetAttr for each attribute in order.
func (n *Node) SetAttrs(attrs ...Attr) *Node {
	for _, a := range attrs {
		n.SetAttr(a.Key, a.Value)
	}
	return n
}

// RemoveAttr deletes an attribute. Removing an absent key is a no-op.
func (n *Node) RemoveAttr(key string) *Node {
	for i := range n.attrs {
		if n.attrs[i].Key == key {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return n
		}
	}
	return n
}

// Attr returns an attribute value, or "" if the attribute is absent.
func (n *Node) Attr(key string) string {
	for _, a := range n.attrs {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}

// Write appends text to the node. If the node already has children the
// text becomes a new anonymous child at the end, keeping its position
// relative to earlier children.
func (n *Node) Write(text string) *Node {
	if len(n.children) > 0 {
		n.children = append(n.children, Text(text))
		return n
	}
	n.content += text
	return n
}

// Attach adds a child node and returns the child. If the node currently
// holds inline content, the content is promoted into an anonymous child
// first so the original text keeps its place before the new child.
func (n *Node) Attach(child *Node) *Node {
	if n.content != "" {
		n.children = append(n.children, Text(n.content))
		n.content = ""
	}
	n.children = append(n.children, child)
	return child
}

// Tag creates a named child with the given arguments, attaches it, and
// returns it. The tag name is arbitrary; callers are not limited to a
// fixed element vocabulary.
func (n *Node) Tag(name string, args ...any) *Node {
	return n.Attach(New(name, args...))
}

// Comment attaches a comment child. Comments render as <!-- text --> and
// are dropped entirely from minimized output.
func (n *Node) Comment(text string) *Node {
	n.Attach(New(CommentMarker, text))
	return n
}

// Void marks the node as self-closing. closure customizes the closing
// punctuation of the start tag: "" for HTML style, " /" for XML style.
func (n *Node) Void(closure string) *Node {
	n.isVoid = true
	n.voidClosure = closure
	return n
}

// Minimize forces minimized rendering for this node's subtree, regardless
// of what the render call asks for.
func (n *Node) Minimize() *Node {
	n.minimized = true
	return n
}

// Block withholds the node's closing tag from output. This is a deliberate
// mechanism for leaving a tag open across partial flushes, not an error
// state.
func (n *Node) Block() *Node {
	n.blocked = true
	return n
}

// Unblock restores emission of the closing tag.
func (n *Node) Unblock() *Node {
	n.blocked = false
	return n
}
