// Package structmap provides a ports.InputAdapter that decodes raw
// key-value input into a typed struct using mapstructure.
package structmap

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/cjohansen/use-case/pkg/ports"
)

// Adapter decodes raw input into values of type T.
type Adapter[T any] struct {
	weak bool
}

// Option configures an Adapter.
type Option[T any] func(*Adapter[T])

// WithWeakTyping enables weakly-typed decoding (e.g. "42" into an int
// field), useful when the raw input comes from query strings or forms.
func WithWeakTyping[T any]() Option[T] {
	return func(a *Adapter[T]) {
		a.weak = true
	}
}

// New creates an adapter producing values of type T.
func New[T any](opts ...Option[T]) *Adapter[T] {
	a := &Adapter[T]{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var _ ports.InputAdapter = (*Adapter[struct{}])(nil)

// Adapt decodes raw into a T. Unknown keys are ignored; type mismatches are
// errors and propagate to the caller of Execute.
func (a *Adapter[T]) Adapt(raw any) (any, error) {
	var out T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: a.weak,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to adapt input: %w", err)
	}
	return out, nil
}
