package html

import (
	"strings"

	"github.com/vango-dev/markup/pkg/tree"
)

// attr builds a tree.Attr with the given key and value.
func attr(key, value string) tree.Attr {
	return tree.Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) tree.Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) tree.Attr { return attr("class", strings.Join(classes, " ")) }

// Style sets the style attribute.
func Style(style string) tree.Attr { return attr("style", style) }

// Lang sets the lang attribute.
func Lang(lang string) tree.Attr { return attr("lang", lang) }

// Data creates a data-* attribute.
// Example: Data("id", "123") renders data-id="123".
func Data(key, value string) tree.Attr { return attr("data-"+key, value) }

// Link attributes

// Href sets the href attribute.
func Href(href string) tree.Attr { return attr("href", href) }

// Rel sets the rel attribute.
func Rel(rel string) tree.Attr { return attr("rel", rel) }

// Target sets the target attribute.
func Target(target string) tree.Attr { return attr("target", target) }

// Media attributes

// Src sets the src attribute.
func Src(src string) tree.Attr { return attr("src", src) }

// Alt sets the alt attribute.
func Alt(alt string) tree.Attr { return attr("alt", alt) }

// Form attributes

// Type sets the type attribute.
func Type(t string) tree.Attr { return attr("type", t) }

// Name sets the name attribute.
func Name(name string) tree.Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) tree.Attr { return attr("value", value) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) tree.Attr { return attr("placeholder", text) }

// Boolean attributes render as a bare name: the empty value is the
// bare-attribute convention in pkg/tree.

// Disabled sets the disabled attribute.
func Disabled() tree.Attr { return attr("disabled", "") }

// Checked sets the checked attribute.
func Checked() tree.Attr { return attr("checked", "") }

// Required sets the required attribute.
func Required() tree.Attr { return attr("required", "") }

// Defer sets the defer attribute.
func Defer() tree.Attr { return attr("defer", "") }

// Meta attributes

// Charset sets the charset attribute.
func Charset(cs string) tree.Attr { return attr("charset", cs) }

// Content sets the content attribute.
func Content(content string) tree.Attr { return attr("content", content) }
