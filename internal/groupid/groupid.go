package groupid

import (
	"sync"

	"github.com/google/uuid"
)

// Registry hands out stable group identifiers. All selection controllers
// that are siblings under the same container share one id (and therefore
// one shift-range anchor history); distinct containers get distinct ids.
type Registry struct {
	mu  sync.Mutex
	ids map[string]string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		ids: make(map[string]string),
	}
}

// Resolve returns the group id for a container, generating and caching a
// new one on first use
func (r *Registry) Resolve(container string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.ids[container]; ok {
		return id
	}
	id := uuid.NewString()
	r.ids[container] = id
	return id
}
