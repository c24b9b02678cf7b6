package doc

import (
	"strings"
	"testing"

	"github.com/vango-dev/markup/pkg/html"
)

func TestPageRender(t *testing.T) {
	page := &Page{
		Title:       "Test Page",
		StyleSheets: []string{"/app.css"},
		Meta: []MetaTag{
			{Name: "description", Content: "a test"},
		},
		Body: html.Div(html.ID("app"), "Hello"),
	}

	var sb strings.Builder
	if err := page.Render(&sb, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := sb.String()

	if !strings.HasPrefix(got, "<!DOCTYPE html>\n") {
		t.Errorf("document should start with DOCTYPE, got %q", got[:40])
	}
	for _, want := range []string{
		`<html lang="en">`,
		`<meta charset="utf-8">`,
		`<meta name="viewport" content="width=device-width, initial-scale=1">`,
		"<title>Test Page</title>",
		`<meta name="description" content="a test">`,
		`<link rel="stylesheet" href="/app.css">`,
		`<div id="app">Hello</div>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output should contain %q\ngot:\n%s", want, got)
		}
	}
}

func TestPageRenderMinimized(t *testing.T) {
	page := &Page{Title: "Min", Body: html.P("x")}

	var sb strings.Builder
	if err := page.Render(&sb, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := sb.String()

	// Only the DOCTYPE line carries a newline in minimized output.
	if strings.Count(got, "\n") != 1 {
		t.Errorf("minimized output should have a single newline, got %q", got)
	}
	if !strings.Contains(got, "<body><p>x</p></body>") {
		t.Errorf("got %q", got)
	}
}

func TestPageDefaultsLang(t *testing.T) {
	page := &Page{Lang: "de", Body: html.P("hallo")}

	var sb strings.Builder
	if err := page.Render(&sb, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sb.String(), `<html lang="de">`) {
		t.Errorf("got %q", sb.String())
	}
}

func TestPageInlineScripts(t *testing.T) {
	page := &Page{
		Body:          html.P("x"),
		InlineScripts: []string{"console.log(1)"},
	}

	var sb strings.Builder
	if err := page.Render(&sb, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sb.String(), "<script>console.log(1)</script>") {
		t.Errorf("got %q", sb.String())
	}
}
