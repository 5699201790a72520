// Package render serializes dom trees back to HTML.
package render

import (
	"bytes"
	"io"
	"strings"

	"github.com/JohnRodney/aframe/pkg/dom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed output with indentation. Development
	// only; it increases output size.
	Pretty bool

	// Indent is the string used per indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string
}

// Renderer serializes dom.Node trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a node tree to an HTML string.
func (r *Renderer) RenderToString(node *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a node tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *dom.Node) error {
	return r.renderNode(w, node, 0)
}

func (r *Renderer) renderNode(w io.Writer, node *dom.Node, depth int) error {
	if node == nil {
		return nil
	}
	switch node.Kind {
	case dom.KindElement:
		return r.renderElement(w, node, depth)
	case dom.KindText:
		return r.writeIndented(w, escapeHTML(node.Text), depth)
	default:
		return nil
	}
}

func (r *Renderer) renderElement(w io.Writer, node *dom.Node, depth int) error {
	var buf strings.Builder
	buf.WriteByte('<')
	buf.WriteString(node.Tag)
	// Attributes keep document order; the node model is ordered, so output
	// is deterministic without sorting.
	for _, a := range node.Attrs {
		v, ok := node.RenderedAttr(a.Key)
		if !ok {
			continue
		}
		buf.WriteByte(' ')
		buf.WriteString(a.Key)
		if v == "" && isBooleanTrue(a.Value) {
			continue
		}
		buf.WriteString(`="`)
		buf.WriteString(escapeAttr(v))
		buf.WriteByte('"')
	}
	buf.WriteByte('>')

	if err := r.writeIndented(w, buf.String(), depth); err != nil {
		return err
	}
	if dom.IsVoidElement(node.Tag) {
		return nil
	}

	for _, c := range node.Children {
		if err := r.renderNode(w, c, depth+1); err != nil {
			return err
		}
	}

	// In pretty mode a non-empty element closes on its own line; an empty
	// one closes inline right after the open tag.
	if r.config.Pretty && len(node.Children) > 0 {
		if _, err := io.WriteString(w, "\n"+strings.Repeat(r.config.Indent, depth)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+node.Tag+">")
	return err
}

// writeIndented writes s, prefixed with a newline and indentation in pretty
// mode (except at the top level).
func (r *Renderer) writeIndented(w io.Writer, s string, depth int) error {
	if r.config.Pretty && depth > 0 {
		if _, err := io.WriteString(w, "\n"+strings.Repeat(r.config.Indent, depth)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, s)
	return err
}

// isBooleanTrue reports whether the stored value is the bool true, which
// renders as a bare attribute name with no ="" suffix.
func isBooleanTrue(value any) bool {
	b, ok := value.(bool)
	return ok && b
}

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	return escape(s, false)
}

// escapeAttr escapes text for attribute values; it additionally encodes
// whitespace characters that could break attribute parsing.
func escapeAttr(s string) string {
	return escape(s, true)
}

func escape(s string, attr bool) string {
	var buf strings.Builder
	buf.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		case '\n':
			if attr {
				buf.WriteString("&#10;")
			} else {
				buf.WriteRune(r)
			}
		case '\r':
			if attr {
				buf.WriteString("&#13;")
			} else {
				buf.WriteRune(r)
			}
		case '\t':
			if attr {
				buf.WriteString("&#9;")
			} else {
				buf.WriteRune(r)
			}
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
