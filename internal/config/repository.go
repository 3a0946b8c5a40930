package config

// Repository implements Store with an in-memory map.
type Repository struct {
	items map[string]string
}

// New creates a Repository seeded with items. The Repository takes
// ownership of the map; callers should not retain a reference to it.
// A nil map yields an empty store.
func New(items map[string]string) *Repository {
	if items == nil {
		items = make(map[string]string)
	}
	return &Repository{items: items}
}

// Has returns whether key is present.
func (r *Repository) Has(key string) bool {
	_, ok := r.items[key]
	return ok
}

// Get returns the value for key and whether it was found.
func (r *Repository) Get(key string) (string, bool) {
	v, ok := r.items[key]
	return v, ok
}

// Set writes key=value, overwriting any previous value.
func (r *Repository) Set(key, value string) {
	r.items[key] = value
}

// All returns a copy of all key-value pairs.
func (r *Repository) All() map[string]string {
	out := make(map[string]string, len(r.items))
	for k, v := range r.items {
		out[k] = v
	}
	return out
}

// Compile-time check that Repository implements Store.
var _ Store = (*Repository)(nil)
