package registry

// EventElement is the base type for event-carrying elements. Event-specific
// types produced by WrapEventElement derive from it.
var EventElement = &ElementType{
	Name: "a-event",
	Props: Props{
		"type":   {Value: "", Writable: true},
		"target": {Value: "", Writable: true},
		"detail": {Value: nil, Writable: true},
	},
}

// WrapElement registers a new element type derived from source, with extra
// property descriptors layered on top of the source's properties. Extra
// props override inherited ones on name collision.
func WrapElement(reg Registry, name string, source *ElementType, extra Props) (*ElementType, error) {
	return reg.Register(name, TypeDescriptor{Extends: source, Props: extra})
}

// WrapEventElement registers a new event element type derived from
// EventElement, with the "type" property fixed to eventName. The property is
// writable only when debug is set, so production types can't have their
// event name reassigned. Extra props are layered first; the fixed type prop
// always wins.
func WrapEventElement(reg Registry, name, eventName string, extra Props, debug bool) (*ElementType, error) {
	props := make(Props, len(extra)+1)
	for k, v := range extra {
		props[k] = v
	}
	props["type"] = PropDescriptor{Value: eventName, Writable: debug}
	return WrapElement(reg, name, EventElement, props)
}
