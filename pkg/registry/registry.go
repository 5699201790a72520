// Package registry manages named custom element types.
//
// A type is registered from a TypeDescriptor: an explicit "extends this base
// plus these additional properties" request. The full property set of the
// new type is flattened at registration time, so a registered ElementType is
// self-contained; the Extends pointer is kept only so the derivation chain
// stays inspectable.
//
// The registry is an injected collaborator, not a hidden global: code that
// registers types takes a Registry value, and tests supply a fake.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ErrDuplicateType is returned when a type name is registered twice.
var ErrDuplicateType = errors.New("registry: type already registered")

// PropDescriptor describes a single property on an element type.
type PropDescriptor struct {
	Value    any
	Writable bool
}

// Props maps property names to descriptors.
type Props map[string]PropDescriptor

// clone returns a shallow copy of the props map.
func (p Props) clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// ElementType is a registered custom element type. Props holds the flattened
// property set (inherited plus own); Extends preserves the derivation chain.
type ElementType struct {
	Name    string
	Extends *ElementType
	Props   Props
}

// Prop returns the descriptor for the named property.
func (t *ElementType) Prop(name string) (PropDescriptor, bool) {
	d, ok := t.Props[name]
	return d, ok
}

// DerivesFrom reports whether base appears in the type's derivation chain.
func (t *ElementType) DerivesFrom(base *ElementType) bool {
	for cur := t.Extends; cur != nil; cur = cur.Extends {
		if cur == base {
			return true
		}
	}
	return false
}

// TypeDescriptor is a registration request: the base type to extend plus the
// additional properties to layer on top of it.
type TypeDescriptor struct {
	Extends *ElementType
	Props   Props
}

// Registry registers element types by name.
type Registry interface {
	Register(name string, desc TypeDescriptor) (*ElementType, error)
}

// Config configures an InMemory registry.
type Config struct {
	// Namespace is the metrics namespace (default: "aframe").
	Namespace string

	// Registerer enables Prometheus metrics when set. Metrics are off by
	// default so library consumers don't touch the global registry.
	Registerer prometheus.Registerer
}

// Option configures an InMemory registry.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithRegisterer enables registration metrics on the given registerer.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registerer = reg
	}
}

// InMemory is a map-backed Registry. Safe for concurrent use, though the
// host environment is expected to register from a single goroutine.
type InMemory struct {
	mu    sync.Mutex
	types map[string]*ElementType

	registrations prometheus.Counter
}

// NewInMemory creates an empty registry.
func NewInMemory(opts ...Option) *InMemory {
	config := Config{Namespace: "aframe"}
	for _, opt := range opts {
		opt(&config)
	}

	r := &InMemory{types: make(map[string]*ElementType)}
	if config.Registerer != nil {
		r.registrations = promauto.With(config.Registerer).NewCounter(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: "registry",
			Name:      "registrations_total",
			Help:      "Total number of element types registered.",
		})
	}
	return r
}

// Register implements Registry. The new type's property set is the base
// type's flattened props overlaid with the descriptor's own props.
func (r *InMemory) Register(name string, desc TypeDescriptor) (*ElementType, error) {
	if name == "" {
		return nil, fmt.Errorf("registry: empty type name")
	}

	props := make(Props)
	if desc.Extends != nil {
		props = desc.Extends.Props.clone()
	}
	for k, v := range desc.Props {
		props[k] = v
	}

	t := &ElementType{Name: name, Extends: desc.Extends, Props: props}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.types[name]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateType, name)
	}
	r.types[name] = t

	if r.registrations != nil {
		r.registrations.Inc()
	}
	return t, nil
}

// Lookup returns a previously registered type.
func (r *InMemory) Lookup(name string) (*ElementType, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.types[name]
	return t, ok
}
