// Package aframe is a convenience facade over the library's packages, so
// applications can import one path for the common operations:
//
//	doc, _ := aframe.ParseString(`<a-scene><a-box color="red"></a-box></a-scene>`)
//	box := doc.SelectOne("a-box", nil)
//	out, _ := aframe.Format("color is {color=blue}", aframe.Named{"color": "red"})
package aframe

import (
	"io"

	"github.com/JohnRodney/aframe/pkg/dom"
	"github.com/JohnRodney/aframe/pkg/format"
	"github.com/JohnRodney/aframe/pkg/registry"
)

// Core dom types.
type (
	Node     = dom.Node
	Attr     = dom.Attr
	Document = dom.Document
)

// Format argument types.
type (
	Positional = format.Positional
	Named      = format.Named
)

// Registry types.
type (
	Registry       = registry.Registry
	ElementType    = registry.ElementType
	TypeDescriptor = registry.TypeDescriptor
	Props          = registry.Props
	PropDescriptor = registry.PropDescriptor
)

// ErrEmptyTemplate is returned by Format for an empty template string.
var ErrEmptyTemplate = format.ErrEmptyTemplate

// Parse reads an HTML document. See dom.Parse.
func Parse(r io.Reader) (*Document, error) { return dom.Parse(r) }

// ParseString parses an HTML string. See dom.ParseString.
func ParseString(src string) (*Document, error) { return dom.ParseString(src) }

// SelectOne returns the first match for a query in scope. See dom.SelectOne.
func SelectOne(query any, scope *Node) *Node { return dom.SelectOne(query, scope) }

// SelectAll returns every match for a query in scope. See dom.SelectAll.
func SelectAll(query any, scope *Node) []*Node { return dom.SelectAll(query, scope) }

// ToSequence normalizes a collection into a detached slice. See dom.ToSequence.
func ToSequence(v any) []*Node { return dom.ToSequence(v) }

// ForEach applies fn to each item of a collection. See dom.ForEach.
func ForEach(v any, fn func(*Node)) { dom.ForEach(v, fn) }

// MergeAttributes flattens node attributes into one map. See dom.MergeAttributes.
func MergeAttributes(nodes ...*Node) map[string]string { return dom.MergeAttributes(nodes...) }

// Format substitutes template placeholders. See format.Format.
func Format(template string, args format.Args) (string, error) {
	return format.Format(template, args)
}

// WrapElement registers a derived element type. See registry.WrapElement.
func WrapElement(reg Registry, name string, source *ElementType, extra Props) (*ElementType, error) {
	return registry.WrapElement(reg, name, source, extra)
}

// WrapEventElement registers an event element type. See registry.WrapEventElement.
func WrapEventElement(reg Registry, name, eventName string, extra Props, debug bool) (*ElementType, error) {
	return registry.WrapEventElement(reg, name, eventName, extra, debug)
}
