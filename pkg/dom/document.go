package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Document wraps a parsed tree and provides root-scoped queries.
type Document struct {
	Root *Node
}

// NewDocument creates a Document over an existing root node.
func NewDocument(root *Node) *Document {
	return &Document{Root: root}
}

// SelectOne queries the document. A nil scope defaults to the document root.
func (d *Document) SelectOne(query any, scope *Node) *Node {
	if scope == nil {
		scope = d.Root
	}
	return SelectOne(query, scope)
}

// SelectAll queries the document. A nil scope defaults to the document root.
func (d *Document) SelectAll(query any, scope *Node) []*Node {
	if scope == nil {
		scope = d.Root
	}
	return SelectAll(query, scope)
}

// Parse reads an HTML document into a Document. The root is the top-level
// <html> element. Comments and doctype nodes are dropped, as are
// whitespace-only text nodes.
func Parse(r io.Reader) (*Document, error) {
	hdoc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	for c := hdoc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return &Document{Root: convert(c)}, nil
		}
	}
	return &Document{Root: New("html")}, nil
}

// ParseString parses an HTML string into a Document.
func ParseString(src string) (*Document, error) {
	return Parse(strings.NewReader(src))
}

func convert(hn *html.Node) *Node {
	n := &Node{Kind: KindElement, Tag: hn.Data}
	for _, a := range hn.Attr {
		n.Attrs = append(n.Attrs, Attr{Key: strings.ToLower(a.Key), Value: a.Val})
	}
	for c := hn.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			n.AppendChild(convert(c))
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				n.AppendChild(Text(c.Data))
			}
		}
	}
	return n
}
