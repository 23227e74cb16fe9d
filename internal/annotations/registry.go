package annotations

import (
	"fmt"
	"sync"
)

// Registry manages the annotation schemas the resolver validates against.
type Registry interface {
	// Register adds a new annotation kind with its schema.
	Register(kind Kind, schema Schema) error

	// GetSchema retrieves the schema for an annotation kind.
	GetSchema(kind Kind) (Schema, error)

	// ListKinds returns all registered annotation kinds.
	ListKinds() []Kind

	// IsRegistered checks if an annotation kind is registered.
	IsRegistered(kind Kind) bool
}

type registry struct {
	mu      sync.RWMutex
	schemas map[Kind]Schema
}

// NewRegistry creates an empty annotation registry.
func NewRegistry() Registry {
	return &registry{schemas: make(map[Kind]Schema)}
}

var (
	defaultRegistry     Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the global registry with the builtin schemas
// registered.
func DefaultRegistry() Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		if err := RegisterBuiltinSchemas(defaultRegistry); err != nil {
			panic(fmt.Sprintf("builtin schema registration failed: %v", err))
		}
	})
	return defaultRegistry
}

func (r *registry) Register(kind Kind, schema Schema) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if schema.Kind != kind {
		return fmt.Errorf("schema kind %s does not match annotation kind %s",
			schema.Kind.String(), kind.String())
	}
	if _, exists := r.schemas[kind]; exists {
		return fmt.Errorf("annotation kind %s is already registered", kind.String())
	}
	for paramName := range schema.Parameters {
		if paramName == "" {
			return fmt.Errorf("parameter name cannot be empty in schema for %s", kind.String())
		}
	}

	r.schemas[kind] = schema
	return nil
}

func (r *registry) GetSchema(kind Kind) (Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schema, exists := r.schemas[kind]
	if !exists {
		return Schema{}, fmt.Errorf("annotation kind %s is not registered", kind.String())
	}
	return schema, nil
}

func (r *registry) ListKinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]Kind, 0, len(r.schemas))
	for kind := range r.schemas {
		kinds = append(kinds, kind)
	}
	return kinds
}

func (r *registry) IsRegistered(kind Kind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.schemas[kind]
	return exists
}
