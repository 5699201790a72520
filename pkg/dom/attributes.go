package dom

// MergeAttributes flattens the attributes of the given nodes into a single
// map of rendered values. Each node's attributes are visited in document
// order; when the same attribute name appears on several nodes, the later
// argument wins. The map is freshly built and shares nothing with the nodes.
//
// Values go through the same coercion as rendering, so a boolean attribute
// set to false is dropped rather than copied.
func MergeAttributes(nodes ...*Node) map[string]string {
	merged := make(map[string]string)
	for _, n := range nodes {
		if n == nil {
			continue
		}
		for _, a := range n.Attrs {
			if v, ok := renderedValue(a.Key, a.Value); ok {
				merged[a.Key] = v
			}
		}
	}
	return merged
}
