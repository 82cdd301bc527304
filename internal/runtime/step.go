package runtime

import (
	"context"
	"fmt"

	"github.com/cjohansen/use-case/pkg/ports"
)

// Step is a fully resolved builder → validators → command unit. All
// capability probing happens once, in ResolveStep; execution never reflects
// on the command again.
type Step struct {
	builder    ports.Builder // nil means identity
	validators []ports.Validator
	invoke     func(ctx context.Context, input any) (any, error)
}

// ResolveStep resolves a step descriptor into its executable form.
//
// The effective builder is the explicit builder when given; otherwise a
// command that itself implements ports.Builder is used (build capability
// wins, the explicit option overrides the default); otherwise the input
// passes through unchanged. The command's invocation capability is Execute
// when available, Call as fallback.
func ResolveStep(command any, builder ports.Builder, validators []ports.Validator) (Step, error) {
	if command == nil {
		return Step{}, fmt.Errorf("step has no command")
	}

	var invoke func(ctx context.Context, input any) (any, error)
	switch c := command.(type) {
	case ports.Command:
		invoke = c.Execute
	case ports.Callable:
		invoke = c.Call
	default:
		return Step{}, fmt.Errorf("command %T implements neither Execute nor Call", command)
	}

	effective := builder
	if effective == nil {
		if b, ok := command.(ports.Builder); ok {
			effective = b
		}
	}

	return Step{
		builder:    effective,
		validators: validators,
		invoke:     invoke,
	}, nil
}

func (s Step) build(ctx context.Context, input any) (any, error) {
	if s.builder == nil {
		return input, nil
	}
	return s.builder.Build(ctx, input)
}
