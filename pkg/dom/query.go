package dom

import "strings"

// SelectOne returns the first node in scope matching the query, in document
// order. The query is either a selector string, an already-resolved *Node
// (returned unchanged, no re-query), or a []*Node (first element returned).
// A string query with no match returns nil.
func SelectOne(query any, scope *Node) *Node {
	switch q := query.(type) {
	case string:
		if scope == nil {
			return nil
		}
		sel, ok := parseSelector(q)
		if !ok {
			return nil
		}
		var found *Node
		walk(scope, func(n *Node) bool {
			if sel.matches(n) {
				found = n
				return false
			}
			return true
		})
		return found
	case *Node:
		return q
	case []*Node:
		if len(q) == 0 {
			return nil
		}
		return q[0]
	default:
		return nil
	}
}

// SelectAll returns every node in scope matching the query, in document
// order. Non-string queries are coerced via ToSequence without re-querying.
// The result is never nil: no matches yields an empty slice.
func SelectAll(query any, scope *Node) []*Node {
	q, ok := query.(string)
	if !ok {
		return ToSequence(query)
	}
	out := []*Node{}
	if scope == nil {
		return out
	}
	sel, parsed := parseSelector(q)
	if !parsed {
		return out
	}
	walk(scope, func(n *Node) bool {
		if sel.matches(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// walk visits the descendants of scope (not scope itself) depth-first in
// document order. The visitor returns false to stop.
func walk(scope *Node, visit func(*Node) bool) {
	var rec func(n *Node) bool
	rec = func(n *Node) bool {
		for _, c := range n.Children {
			if !visit(c) {
				return false
			}
			if !rec(c) {
				return false
			}
		}
		return true
	}
	rec(scope)
}

// selector is a parsed selector group: "a, b c" → two compound chains.
type selector struct {
	groups []compound
}

// compound is a descendant chain of simple selectors; the last entry must
// match the candidate node, earlier entries must match its ancestors.
type compound []simpleSelector

type simpleSelector struct {
	tag     string
	id      string
	classes []string
	attrs   []attrSelector
}

type attrSelector struct {
	key      string
	value    string
	hasValue bool
}

func (s selector) matches(n *Node) bool {
	for _, g := range s.groups {
		if g.matches(n) {
			return true
		}
	}
	return false
}

func (c compound) matches(n *Node) bool {
	if len(c) == 0 || !c[len(c)-1].matches(n) {
		return false
	}
	// Each remaining simple selector must match some strictly higher ancestor.
	anc := n.Parent
	for i := len(c) - 2; i >= 0; i-- {
		for {
			if anc == nil {
				return false
			}
			if c[i].matches(anc) {
				break
			}
			anc = anc.Parent
		}
		anc = anc.Parent
	}
	return true
}

func (s simpleSelector) matches(n *Node) bool {
	if n == nil || n.Kind != KindElement {
		return false
	}
	if s.tag != "" && s.tag != n.Tag {
		return false
	}
	if s.id != "" && n.ID() != s.id {
		return false
	}
	for _, c := range s.classes {
		if !n.HasClass(c) {
			return false
		}
	}
	for _, a := range s.attrs {
		v, ok := n.RenderedAttr(a.key)
		if !ok {
			// Presence checks also accept false-rendering boolean attrs as
			// long as the attribute exists on the node.
			if _, exists := n.Attr(a.key); !exists || a.hasValue {
				return false
			}
			continue
		}
		if a.hasValue && v != a.value {
			return false
		}
	}
	return true
}

func parseSelector(src string) (selector, bool) {
	var sel selector
	for _, group := range strings.Split(src, ",") {
		group = strings.TrimSpace(group)
		if group == "" {
			continue
		}
		var chain compound
		for _, tok := range strings.Fields(group) {
			simple, ok := parseSimple(tok)
			if !ok {
				return selector{}, false
			}
			chain = append(chain, simple)
		}
		sel.groups = append(sel.groups, chain)
	}
	return sel, len(sel.groups) > 0
}

// parseSimple parses one compound token, e.g. "a-box.visible#player[color=red]".
func parseSimple(tok string) (simpleSelector, bool) {
	var sel simpleSelector
	i := 0

	readName := func() string {
		start := i
		for i < len(tok) && isNameChar(tok[i]) {
			i++
		}
		return tok[start:i]
	}

	if i < len(tok) && tok[i] != '#' && tok[i] != '.' && tok[i] != '[' {
		if tok[i] == '*' {
			i++
		} else {
			sel.tag = strings.ToLower(readName())
			if sel.tag == "" {
				return simpleSelector{}, false
			}
		}
	}

	for i < len(tok) {
		switch tok[i] {
		case '#':
			i++
			sel.id = readName()
			if sel.id == "" {
				return simpleSelector{}, false
			}
		case '.':
			i++
			class := readName()
			if class == "" {
				return simpleSelector{}, false
			}
			sel.classes = append(sel.classes, class)
		case '[':
			end := strings.IndexByte(tok[i:], ']')
			if end < 0 {
				return simpleSelector{}, false
			}
			body := tok[i+1 : i+end]
			i += end + 1
			if body == "" {
				return simpleSelector{}, false
			}
			if eq := strings.IndexByte(body, '='); eq >= 0 {
				sel.attrs = append(sel.attrs, attrSelector{
					key:      strings.ToLower(body[:eq]),
					value:    strings.Trim(body[eq+1:], `"'`),
					hasValue: true,
				})
			} else {
				sel.attrs = append(sel.attrs, attrSelector{key: strings.ToLower(body)})
			}
		default:
			return simpleSelector{}, false
		}
	}

	return sel, true
}

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '-' || c == '_'
}
