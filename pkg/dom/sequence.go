package dom

// ToSequence normalizes a collection into a flat, detached []*Node.
//
// A []*Node is copied into a new slice, so appending to the result never
// aliases the source. A single *Node is wrapped as a one-element slice.
// nil (or an unsupported value) yields an empty slice. Idempotent: applying
// it twice gives an equal slice.
func ToSequence(v any) []*Node {
	switch s := v.(type) {
	case []*Node:
		out := make([]*Node, len(s))
		copy(out, s)
		return out
	case *Node:
		if s == nil {
			return []*Node{}
		}
		return []*Node{s}
	default:
		return []*Node{}
	}
}

// ForEach applies fn to each item of the collection in index order. The
// traversal is synchronous and unconditional; there is no early exit. Accepts
// the same collection shapes as ToSequence.
func ForEach(v any, fn func(*Node)) {
	for _, n := range ToSequence(v) {
		fn(n)
	}
}
