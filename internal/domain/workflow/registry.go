package workflow

import "fmt"

// Registry maps document types to their compiled machines. Types are
// registered once at process start; the registry is read-only afterwards,
// so lookups need no synchronization.
type Registry struct {
	machines map[DocumentType]*Machine
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		machines: make(map[DocumentType]*Machine),
	}
}

// Register wires a document type to its machine. Registering an invalid type
// or the same type twice is a startup wiring error and panics.
func (r *Registry) Register(t DocumentType, m *Machine) {
	if !t.IsValid() {
		panic(fmt.Sprintf("workflow: register unknown document type %q", t))
	}
	if m == nil {
		panic(fmt.Sprintf("workflow: register nil machine for %s", t))
	}
	if _, dup := r.machines[t]; dup {
		panic(fmt.Sprintf("workflow: document type %s registered twice", t))
	}
	r.machines[t] = m
}

// Get returns the machine for a document type, or ErrUnknownType if the type
// was never registered
func (r *Registry) Get(t DocumentType) (*Machine, error) {
	m, ok := r.machines[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
	return m, nil
}

// Types returns every registered document type
func (r *Registry) Types() []DocumentType {
	types := make([]DocumentType, 0, len(r.machines))
	for t := range r.machines {
		types = append(types, t)
	}
	return types
}
