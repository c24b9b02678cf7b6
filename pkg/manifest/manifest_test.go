package manifest

import (
	"strings"
	"testing"
)

const recipeManifest = `
title: Pancakes
lang: en
stylesheets:
  - /recipe.css
root:
  tag: recipe
  attrs:
    language: English
  children:
    - comment: Best served warm
    - tag: title
      text: Pancakes
    - tag: ingredients
      children:
        - tag: ingredient
          text: 150g flour
        - tag: ingredient
          text: 2 eggs
`

func TestLoadAndBuild(t *testing.T) {
	m, err := Load(strings.NewReader(recipeManifest))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Title != "Pancakes" {
		t.Errorf("title: got %q", m.Title)
	}

	page, err := m.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sb strings.Builder
	if err := page.Render(&sb, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := sb.String()

	for _, want := range []string{
		`<recipe language="English">`,
		"<!-- Best served warm -->",
		"<title>Pancakes</title>",
		"<ingredient>150g flour</ingredient>",
		"<ingredient>2 eggs</ingredient>",
		`<link rel="stylesheet" href="/recipe.css">`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output should contain %q\ngot:\n%s", want, got)
		}
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("title: x\nbogus: y\nroot:\n  tag: p\n"))
	if err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestLoadRequiresRoot(t *testing.T) {
	_, err := Load(strings.NewReader("title: x\n"))
	if err == nil || !strings.Contains(err.Error(), "root") {
		t.Fatalf("expected missing-root error, got %v", err)
	}
}

func TestBuildVoidAndMinimize(t *testing.T) {
	src := `
root:
  tag: div
  children:
    - tag: img
      attrs: {src: /a.png}
      void: true
      xmlclose: true
    - tag: aside
      minimize: true
      children:
        - comment: dropped
        - tag: p
          text: packed
`
	m, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	page, err := m.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := page.Body.Render(false)
	if !strings.Contains(got, `<img src="/a.png" />`) {
		t.Errorf("xmlclose void element missing, got %q", got)
	}
	if !strings.Contains(got, "<aside><p>packed</p></aside>") {
		t.Errorf("minimized subtree missing, got %q", got)
	}
	if strings.Contains(got, "dropped") {
		t.Errorf("comment inside minimized subtree should be dropped, got %q", got)
	}
}

func TestBuildRejectsAmbiguousNodes(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"comment with tag", "root:\n  tag: p\n  comment: x\n"},
		{"text with children", "root:\n  text: x\n  children:\n    - tag: p\n"},
		{"empty node", "root:\n  attrs: {id: x}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Load(strings.NewReader(tt.src))
			if err != nil {
				t.Fatalf("load should succeed, got %v", err)
			}
			if _, err := m.Build(); err == nil {
				t.Fatalf("expected build error")
			}
		})
	}
}
