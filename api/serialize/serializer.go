package serialize

import "sync"

// Serializer is the contract every serializer must satisfy: given a record
// and the per-request context, produce a flat key-value representation.
type Serializer interface {
	Serialize(record any, sctx Context) map[string]any
}

// SerializerFunc adapts a plain function to the Serializer interface.
type SerializerFunc func(record any, sctx Context) map[string]any

func (f SerializerFunc) Serialize(record any, sctx Context) map[string]any {
	return f(record, sctx)
}

// Lister is implemented by collection wrappers (for example paginated pages)
// that carry their elements alongside other capabilities.
type Lister interface {
	Elements() []any
}

// Registry maps resource names to serializers. It is written at
// configuration time and read concurrently during request handling.
type Registry struct {
	mu          sync.RWMutex
	serializers map[string]Serializer
}

func NewRegistry() *Registry {
	return &Registry{serializers: make(map[string]Serializer)}
}

// Register installs the serializer for a resource, replacing any previous one.
func (r *Registry) Register(resource string, s Serializer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.serializers[resource] = s
}

// Resolve returns the serializer registered for a resource.
func (r *Registry) Resolve(resource string) (Serializer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.serializers[resource]
	return s, ok
}
