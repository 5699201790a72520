package domtest

import (
	"strings"
	"testing"

	"github.com/JohnRodney/aframe/pkg/dom"
	"github.com/JohnRodney/aframe/pkg/render"
)

// ParseString parses an HTML snippet into a Document, failing the test on
// parse errors.
//
// Example:
//
//	doc := domtest.ParseString(t, `<a-scene><a-box color="red"></a-box></a-scene>`)
func ParseString(t *testing.T, src string) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString(src)
	if err != nil {
		t.Fatalf("ParseString(%q) failed: %v", truncate(src, 80), err)
	}
	return doc
}

// RenderToString renders a node and returns the HTML string. This is useful
// for asserting on rendered output.
func RenderToString(node *dom.Node) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains the expected substring.
//
// Example:
//
//	domtest.ExpectContains(t, node, `color="red"`)
func ExpectContains(t *testing.T, node *dom.Node, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectAttribute asserts that a node carries an attribute with the given
// rendered value.
func ExpectAttribute(t *testing.T, node *dom.Node, key, want string) {
	t.Helper()
	got, ok := node.RenderedAttr(key)
	if !ok {
		t.Errorf("expected attribute %q to be present", key)
		return
	}
	if got != want {
		t.Errorf("attribute %q = %q, want %q", key, got, want)
	}
}

// ExpectCount asserts that a selector matches the given number of nodes in
// the document.
func ExpectCount(t *testing.T, doc *dom.Document, selector string, want int) {
	t.Helper()
	got := len(doc.SelectAll(selector, nil))
	if got != want {
		t.Errorf("SelectAll(%q) matched %d nodes, want %d", selector, got, want)
	}
}

// NodeBuilder allows fluent construction of test trees.
//
// Example:
//
//	node := domtest.El("a-box").
//	    WithAttr("color", "red").
//	    WithText("hi").
//	    Build()
type NodeBuilder struct {
	node *dom.Node
}

// El starts a builder for an element with the given tag.
func El(tag string) *NodeBuilder {
	return &NodeBuilder{node: dom.New(tag)}
}

// WithAttr sets an attribute on the node under construction.
func (b *NodeBuilder) WithAttr(key string, value any) *NodeBuilder {
	b.node.SetAttr(key, value)
	return b
}

// WithText appends a text child.
func (b *NodeBuilder) WithText(text string) *NodeBuilder {
	b.node.AppendChild(dom.Text(text))
	return b
}

// WithChild appends a child node.
func (b *NodeBuilder) WithChild(c *dom.Node) *NodeBuilder {
	b.node.AppendChild(c)
	return b
}

// Build returns the constructed node.
func (b *NodeBuilder) Build() *dom.Node {
	return b.node
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
