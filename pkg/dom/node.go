package dom

import (
	"strconv"
	"strings"
)

// NodeKind is the node type discriminator.
type NodeKind uint8

const (
	KindElement NodeKind = iota // <a-scene>, <div>, etc.
	KindText                    // Plain text node
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Attr is a single attribute. Values parsed from markup are strings; values
// set programmatically may be any of the supported types (string, bool, int,
// int64, float64). RenderedValue applies the coercion.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Node is a node in a document tree.
//
// Attrs preserves document order, which matters for MergeAttributes and for
// deterministic rendering. Parent is maintained by AppendChild and by Parse.
type Node struct {
	Kind     NodeKind
	Tag      string // Element tag name, lowercase (e.g., "a-box")
	Attrs    []Attr // Attributes in document order
	Children []*Node
	Parent   *Node
	Text     string // For KindText
}

// New creates an element node with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *Node, []*Node, string (a text child).
func New(tag string, args ...any) *Node {
	node := &Node{
		Kind: KindElement,
		Tag:  strings.ToLower(tag),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional arguments)
			continue

		case Attr:
			if v.Key != "" {
				node.SetAttr(v.Key, v.Value)
			}

		case []Attr:
			for _, a := range v {
				if a.Key != "" {
					node.SetAttr(a.Key, a.Value)
				}
			}

		case *Node:
			if v != nil {
				node.AppendChild(v)
			}

		case []*Node:
			for _, c := range v {
				if c != nil {
					node.AppendChild(c)
				}
			}

		case string:
			node.AppendChild(Text(v))
		}
	}

	return node
}

// Text creates a text node.
func Text(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

// AttrOf creates an Attr with the given key and value. The key is lowercased
// to match how attributes come out of the parser.
func AttrOf(key string, value any) Attr {
	return Attr{Key: strings.ToLower(key), Value: value}
}

// AppendChild appends c to the node's children and sets its parent.
func (n *Node) AppendChild(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
}

// Attr returns the raw stored value of the named attribute.
func (n *Node) Attr(key string) (any, bool) {
	if n == nil {
		return nil, false
	}
	key = strings.ToLower(key)
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return nil, false
}

// SetAttr sets the named attribute, replacing an existing value in place so
// document order is preserved.
func (n *Node) SetAttr(key string, value any) {
	key = strings.ToLower(key)
	for i, a := range n.Attrs {
		if a.Key == key {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Value: value})
}

// RenderedAttr returns the attribute's rendered string value, after value
// coercion. The second result is false when the attribute is absent or when
// it renders to nothing (a false boolean attribute).
func (n *Node) RenderedAttr(key string) (string, bool) {
	v, ok := n.Attr(key)
	if !ok {
		return "", false
	}
	return renderedValue(strings.ToLower(key), v)
}

// ID returns the node's id attribute, or "".
func (n *Node) ID() string {
	s, _ := n.RenderedAttr("id")
	return s
}

// HasClass reports whether the node's class attribute contains class.
func (n *Node) HasClass(class string) bool {
	s, ok := n.RenderedAttr("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(s) {
		if c == class {
			return true
		}
	}
	return false
}

// TextContent returns the concatenated text of the node and its descendants.
func (n *Node) TextContent() string {
	if n == nil {
		return ""
	}
	if n.Kind == KindText {
		return n.Text
	}
	var buf strings.Builder
	for _, c := range n.Children {
		buf.WriteString(c.TextContent())
	}
	return buf.String()
}

// booleanAttrs are HTML attributes whose presence, not value, carries meaning.
var booleanAttrs = map[string]bool{
	"allowfullscreen": true,
	"async":           true,
	"autofocus":       true,
	"autoplay":        true,
	"checked":         true,
	"controls":        true,
	"default":         true,
	"defer":           true,
	"disabled":        true,
	"formnovalidate":  true,
	"hidden":          true,
	"inert":           true,
	"ismap":           true,
	"loop":            true,
	"multiple":        true,
	"muted":           true,
	"novalidate":      true,
	"open":            true,
	"playsinline":     true,
	"readonly":        true,
	"required":        true,
	"reversed":        true,
	"selected":        true,
}

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[strings.ToLower(tag)]
}

// renderedValue coerces a stored attribute value to its rendered string form.
// A false boolean attribute renders to nothing; a true one renders to "".
func renderedValue(key string, value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		if booleanAttrs[key] {
			if v {
				return "", true
			}
			return "", false
		}
		if v {
			return "true", true
		}
		return "false", true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}
