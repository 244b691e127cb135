package satchel

// store owns the field-name to value mapping for one container. It never
// validates; the engine runs before anything is written.
type store struct {
	data map[string]any
}

func newStore() store {
	return store{data: map[string]any{}}
}

func (s store) set(name string, v any) {
	s.data[name] = v
}

// get returns the stored value with a comma-ok absent marker. A key set to
// null is present with a nil value.
func (s store) get(name string) (any, bool) {
	v, ok := s.data[name]
	return v, ok
}

// has reports a non-null entry. Null-valued keys read as absent here.
func (s store) has(name string) bool {
	v, ok := s.data[name]
	return ok && !isNull(v)
}

func (s store) forget(name string) {
	delete(s.data, name)
}

// snapshot returns a top-level copy; nested values are shared.
func (s store) snapshot() map[string]any {
	out := make(map[string]any, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}
