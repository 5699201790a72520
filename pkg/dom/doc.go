// Package dom provides the node model and query utilities that the rest of
// the framework builds on.
//
// A document is a tree of [Node] values, usually produced by [Parse] from
// real HTML. The package offers a small querySelector-style language for
// finding nodes ([SelectOne], [SelectAll]), collection coercion helpers
// ([ToSequence], [ForEach]) and attribute flattening ([MergeAttributes]).
//
// Nodes are borrowed, never owned: the package never detaches or mutates
// nodes it is given, and query results alias the original tree. The one
// exception is [ToSequence], which always returns a fresh slice so callers
// can append without touching the source collection.
//
// # Selectors
//
// The selector language is the practical subset used by the framework:
//
//	a-box                tag
//	#player              id
//	.visible             class
//	[color]              attribute presence
//	[color=red]          attribute value
//	a-box.visible[dynamic]   compound
//	a-scene a-box        descendant
//	a-box, a-sphere      group
//
// Unmatched selectors are not an error: SelectOne returns nil and SelectAll
// returns an empty slice.
package dom
