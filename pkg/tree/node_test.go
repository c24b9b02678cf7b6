package tree

import (
	"strings"
	"testing"
)

func TestContentChildrenMutuallyExclusive(t *testing.T) {
	n := New("div", "hello")

	if n.Content() == "" {
		t.Fatalf("expected inline content before attach")
	}

	n.Attach(New("span"))

	if n.Content() != "" {
		t.Errorf("content should be cleared after attach, got %q", n.Content())
	}
	if len(n.Children()) != 2 {
		t.Fatalf("expected promoted text child plus attached child, got %d children", len(n.Children()))
	}
	if n.Children()[0].Content() != "hello" || n.Children()[0].Name() != "" {
		t.Errorf("first child should be the promoted anonymous text node, got %#v", n.Children()[0])
	}
	if n.Children()[1].Name() != "span" {
		t.Errorf("second child should be the attached element, got %q", n.Children()[1].Name())
	}
}

func TestInvariantHoldsUnderMixedWrites(t *testing.T) {
	n := New("div")

	ops := []func(){
		func() { n.Write("a") },
		func() { n.Attach(New("b")) },
		func() { n.Write("c") },
		func() { n.Tag("d", "text") },
		func() { n.Write("e") },
	}

	for i, op := range ops {
		op()
		if n.Content() != "" && len(n.Children()) > 0 {
			t.Fatalf("after op %d node holds both content %q and %d children", i, n.Content(), len(n.Children()))
		}
	}
}

func TestWriteAfterAttachAppendsTextChild(t *testing.T) {
	n := New("p")
	n.Tag("b", "bold")
	n.Write(" tail")

	kids := n.Children()
	if len(kids) != 2 {
		t.Fatalf("expected 2 children, got %d", len(kids))
	}
	last := kids[len(kids)-1]
	if last.Name() != "" || last.Content() != " tail" {
		t.Errorf("trailing write should become an anonymous text child, got %#v", last)
	}
}

func TestWriteAppendsToContent(t *testing.T) {
	n := New("p", "Hello")
	n.Write(", world")

	if n.Content() != "Hello, world" {
		t.Errorf("got %q, want %q", n.Content(), "Hello, world")
	}
}

func TestAttachReturnsChild(t *testing.T) {
	parent := New("ul")
	child := New("li", "one")

	if got := parent.Attach(child); got != child {
		t.Fatalf("Attach should return the attached child")
	}
	if got := parent.Tag("li", "two"); got.Name() != "li" || got.Content() != "two" {
		t.Fatalf("Tag should create and return the new child, got %#v", got)
	}
}

func TestAttrAccessors(t *testing.T) {
	n := New("input")

	n.SetAttr("type", "text")
	n.SetAttr("type", "email") // overwrite
	n.SetAttr("name", "addr")

	if got := n.Attr("type"); got != "email" {
		t.Errorf("Attr(type) = %q, want %q", got, "email")
	}
	if got := n.Attr("missing"); got != "" {
		t.Errorf("missing attribute should read as empty string, got %q", got)
	}

	// Overwrite keeps the original insertion position.
	attrs := n.Attrs()
	if len(attrs) != 2 || attrs[0].Key != "type" || attrs[1].Key != "name" {
		t.Errorf("unexpected attribute order: %#v", attrs)
	}

	n.RemoveAttr("type")
	n.RemoveAttr("type") // absent, no-op
	if got := n.Attr("type"); got != "" {
		t.Errorf("removed attribute should read as empty string, got %q", got)
	}
}

func TestAppendAttr(t *testing.T) {
	n := New("div")

	n.AppendAttr("class", "card")
	n.AppendAttr("class", " raised ")

	if got := n.Attr("class"); got != "card raised" {
		t.Errorf("AppendAttr = %q, want %q", got, "card raised")
	}
}

func TestSetAttrsOrder(t *testing.T) {
	n := New("a")
	n.SetAttrs(
		Attr{Key: "href", Value: "/"},
		Attr{Key: "rel", Value: "noopener"},
		Attr{Key: "href", Value: "/home"},
	)

	attrs := n.Attrs()
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "href" || attrs[0].Value != "/home" {
		t.Errorf("later value should win in place, got %#v", attrs[0])
	}
}

func TestCommentSugar(t *testing.T) {
	n := New("div")
	if got := n.Comment("note"); got != n {
		t.Fatalf("Comment should return the node itself for chaining")
	}

	kids := n.Children()
	if len(kids) != 1 || kids[0].Name() != CommentMarker || kids[0].Content() != "note" {
		t.Fatalf("Comment should attach a %q child, got %#v", CommentMarker, kids)
	}
}

func TestChaining(t *testing.T) {
	out := New("section").
		SetAttr("id", "main").
		Comment("header follows").
		Tag("h1", "Title").
		Render(true)

	// Tag returns the child, so the render applies to the h1.
	if out != "<h1>Title</h1>" {
		t.Errorf("got %q", out)
	}
}

func TestMinimizeSubtreeForcedByAncestor(t *testing.T) {
	root := New("a")
	b := root.Tag("b")
	b.Minimize()
	b.Tag("c", "x")

	out := root.Render(false)
	if !strings.Contains(out, "<b><c>x</c></b>") {
		t.Errorf("minimized ancestor should force its subtree minimized, got %q", out)
	}
	if !strings.HasPrefix(out, "<a>\n") {
		t.Errorf("outer tree should stay verbose, got %q", out)
	}
}
