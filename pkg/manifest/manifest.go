package manifest

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/markup/pkg/doc"
	"github.com/vango-dev/markup/pkg/html"
	"github.com/vango-dev/markup/pkg/tree"
)

// Manifest is a declarative YAML description of one HTML document.
type Manifest struct {
	// Title is the document title.
	Title string `yaml:"title"`

	// Lang is the html element language. Defaults to "en".
	Lang string `yaml:"lang"`

	// StyleSheets are external stylesheet paths for the head.
	StyleSheets []string `yaml:"stylesheets"`

	// Minimize renders the document without whitespace or comments.
	Minimize bool `yaml:"minimize"`

	// Root is the body content tree.
	Root *NodeSpec `yaml:"root"`
}

// NodeSpec describes one node of the document tree.
type NodeSpec struct {
	// Tag is the element name. Required unless Comment or bare Text is set.
	Tag string `yaml:"tag"`

	// Attrs are the element attributes.
	Attrs map[string]string `yaml:"attrs"`

	// Text is the node's inline content.
	Text string `yaml:"text"`

	// Comment makes this node a comment instead of an element.
	Comment string `yaml:"comment"`

	// Void renders the element without a closing tag.
	Void bool `yaml:"void"`

	// XMLClose uses the " />" closing style for void elements.
	XMLClose bool `yaml:"xmlclose"`

	// Minimize forces minimized rendering for this subtree.
	Minimize bool `yaml:"minimize"`

	// Children are nested nodes, in document order.
	Children []*NodeSpec `yaml:"children"`
}

// Load reads a manifest from r. Unknown fields are rejected so typos in
// hand-written manifests surface as errors instead of silent drops.
func Load(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	if m.Root == nil {
		return nil, fmt.Errorf("manifest has no root node")
	}
	return &m, nil
}

// LoadFile reads a manifest from a file path.
func LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Build assembles the manifest into a renderable document.
func (m *Manifest) Build() (*doc.Page, error) {
	body, err := m.Root.build()
	if err != nil {
		return nil, err
	}
	return &doc.Page{
		Title:       m.Title,
		Lang:        m.Lang,
		StyleSheets: m.StyleSheets,
		Body:        body,
	}, nil
}

// build converts one spec into a tree node.
func (s *NodeSpec) build() (*tree.Node, error) {
	if s.Comment != "" {
		if s.Tag != "" || s.Text != "" || len(s.Children) > 0 {
			return nil, fmt.Errorf("comment node cannot carry tag, text, or children")
		}
		return tree.New(tree.CommentMarker, s.Comment), nil
	}

	if s.Tag == "" {
		if s.Text == "" {
			return nil, fmt.Errorf("node needs a tag, text, or comment")
		}
		if len(s.Children) > 0 {
			return nil, fmt.Errorf("bare text node cannot have children")
		}
		return tree.Text(s.Text), nil
	}

	n := html.Element(s.Tag, s.Attrs)
	if s.Text != "" {
		n.Write(s.Text)
	}
	if s.Void {
		closure := ""
		if s.XMLClose {
			closure = " /"
		}
		n.Void(closure)
	}
	if s.Minimize {
		n.Minimize()
	}

	for i, child := range s.Children {
		built, err := child.build()
		if err != nil {
			return nil, fmt.Errorf("child %d of <%s>: %w", i, s.Tag, err)
		}
		n.Attach(built)
	}

	return n, nil
}
