package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	usecase "github.com/cjohansen/use-case"
	"github.com/cjohansen/use-case/pkg/outcome"
)

// ErrNotFound is returned when executing or fetching an unregistered use case.
var ErrNotFound = errors.New("use case not found")

// Registry manages named use cases for hosts that dispatch by name, such as
// the HTTP adapter. Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	cases map[string]*usecase.UseCase
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		cases: make(map[string]*usecase.UseCase),
	}
}

// Register adds a use case under its configured name.
// If one with the same name exists, it is overwritten.
func (r *Registry) Register(u *usecase.UseCase) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cases[u.Name()] = u
}

// Get returns the use case registered under name.
func (r *Registry) Get(name string) (*usecase.UseCase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.cases[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return u, nil
}

// Execute looks up a use case by name and executes it.
func (r *Registry) Execute(ctx context.Context, name string, raw any) (*outcome.Outcome, error) {
	u, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return u.Execute(ctx, raw)
}

// Names returns the registered use case names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.cases))
	for name := range r.cases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
