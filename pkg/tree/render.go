package tree

import (
	"io"
	"strings"
)

// indentUnit is the indent prefix per nesting level in verbose output.
const indentUnit = "  "

// Render serializes the node's subtree to markup text. When minimize is
// true the output carries no indentation, newlines, or comments. A node
// marked Minimize forces minimized output for its subtree even when the
// caller asked for verbose output; the reverse is not possible.
func (n *Node) Render(minimize bool) string {
	var sb strings.Builder
	n.render(&sb, minimize, 0)
	return sb.String()
}

// RenderTo serializes the node's subtree to w. The only possible error is
// the writer's own.
func (n *Node) RenderTo(w io.Writer, minimize bool) error {
	_, err := io.WriteString(w, n.Render(minimize))
	return err
}

// Flush renders the node, then clears its content, children, and
// attributes and suppresses the start tag on all future renders. Flushing
// is a one-shot, order-sensitive operation: a second flush of the same
// node yields only what was written after the first, closed by the end
// tag unless the node is void or blocked.
func (n *Node) Flush(minimize bool) string {
	out := n.Render(minimize)
	n.content = ""
	n.children = nil
	n.attrs = nil
	n.startFlushed = true
	return out
}

// FlushTo is Flush writing to a sink instead of returning a string. The
// node is cleared even when the write fails.
func (n *Node) FlushTo(w io.Writer, minimize bool) error {
	_, err := io.WriteString(w, n.Flush(minimize))
	return err
}

// render walks the subtree recursively. Each structural line gets an
// indent prefix and a trailing newline unless the effective mode is
// minimized. depth is the current nesting level.
func (n *Node) render(sb *strings.Builder, minimize bool, depth int) {
	minimized := minimize || n.minimized

	indent, newline := "", ""
	if !minimized {
		indent = strings.Repeat(indentUnit, depth)
		newline = "\n"
	}

	// Comments never survive minimization.
	if n.name == CommentMarker {
		if minimized {
			return
		}
		sb.WriteString(indent)
		sb.WriteString("<!-- ")
		sb.WriteString(n.content)
		sb.WriteString(" -->")
		sb.WriteString(newline)
		return
	}

	start := ""
	if n.name != "" && !n.startFlushed {
		start = n.startTag()
	}
	end := n.endTag()

	switch {
	case n.content != "":
		// A leaf with inline text is a single unbroken unit: no internal
		// whitespace regardless of mode.
		sb.WriteString(indent)
		sb.WriteString(start)
		sb.WriteString(n.content)
		sb.WriteString(end)
		sb.WriteString(newline)

	case len(n.children) > 0:
		// Anonymous wrappers emit no tag and add no nesting level.
		childDepth := depth
		if n.name != "" {
			childDepth = depth + 1
			if start != "" {
				sb.WriteString(indent)
				sb.WriteString(start)
				sb.WriteString(newline)
			}
		}
		for _, child := range n.children {
			child.render(sb, minimized, childDepth)
		}
		if end != "" {
			sb.WriteString(indent)
			sb.WriteString(end)
			sb.WriteString(newline)
		}

	default:
		// No content, no children. Anonymous nodes emit nothing; named
		// nodes emit an empty element.
		if start == "" && end == "" {
			return
		}
		sb.WriteString(indent)
		sb.WriteString(start)
		sb.WriteString(end)
		sb.WriteString(newline)
	}
}

// startTag builds "<name attrs...>" with the node's void closure applied.
// Attributes with empty values render as bare names (boolean attributes);
// all other values are quoted with quote and backslash characters escaped.
func (n *Node) startTag() string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(n.name)
	for _, a := range n.attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		if a.Value != "" {
			sb.WriteString(`="`)
			sb.WriteString(escapeAttrValue(a.Value))
			sb.WriteByte('"')
		}
	}
	if n.isVoid {
		sb.WriteString(n.voidClosure)
	}
	sb.WriteByte('>')
	return sb.String()
}

// endTag returns "</name>", or "" when the node is void, blocked, or
// anonymous.
func (n *Node) endTag() string {
	if n.isVoid || n.blocked || n.name == "" {
		return ""
	}
	return "</" + n.name + ">"
}
