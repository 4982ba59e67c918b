package battler

// Registry holds the live entities of a simulation in insertion order. Entities
// refer to each other by id through the registry, so references to removed entities
// simply stop resolving.
type Registry struct {
	order []string
	byID  map[string]*Battler
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*Battler)}
}

// Add registers an entity. Re-adding an id replaces the entity in place.
func (r *Registry) Add(b *Battler) {
	if _, exists := r.byID[b.id]; !exists {
		r.order = append(r.order, b.id)
	}
	r.byID[b.id] = b
}

// Remove unregisters an entity
func (r *Registry) Remove(id string) {
	if _, exists := r.byID[id]; !exists {
		return
	}
	delete(r.byID, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}

// Get resolves an id
func (r *Registry) Get(id string) (*Battler, bool) {
	if id == "" {
		return nil, false
	}
	b, ok := r.byID[id]
	return b, ok
}

// All returns the entities in insertion order
func (r *Registry) All() []*Battler {
	out := make([]*Battler, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Len returns the number of registered entities
func (r *Registry) Len() int {
	return len(r.order)
}
