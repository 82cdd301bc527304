package runtime

import (
	"context"
	"log/slog"

	"github.com/cjohansen/use-case/pkg/outcome"
)

// Pipeline runs resolved steps in order, threading each command's output
// into the next step's input.
type Pipeline struct {
	steps     []Step
	logger    *slog.Logger
	stepStart func(ctx context.Context, index int)
	stepEnd   func(ctx context.Context, index int, err error)
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithStepObserver registers callbacks fired around each step's command.
// Either callback may be nil.
func WithStepObserver(start func(ctx context.Context, index int), end func(ctx context.Context, index int, err error)) PipelineOption {
	return func(p *Pipeline) {
		p.stepStart = start
		p.stepEnd = end
	}
}

// NewPipeline creates a pipeline over the given resolved steps.
func NewPipeline(steps []Step, logger *slog.Logger, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{steps: steps, logger: logger}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the pipeline. Builder errors are folded into a
// PreConditionFailed outcome and the first invalid validator result into a
// Failed outcome; both abort the remaining steps. Command errors are the one
// fatal case: they are returned as the error value and never converted to an
// outcome, so the caller of Execute sees them directly.
func (p *Pipeline) Run(ctx context.Context, input any) (*outcome.Outcome, error) {
	value := input

	for i, step := range p.steps {
		built, err := step.build(ctx, value)
		if err != nil {
			p.logger.Debug("builder failed", "step", i, "error", err)
			return outcome.PreConditionFailed(err), nil
		}

		for _, v := range step.validators {
			result := v.Validate(built)
			if !result.Valid() {
				p.logger.Debug("validation failed", "step", i, "errors", result.Errors())
				return outcome.Failed(result, built), nil
			}
		}

		if p.stepStart != nil {
			p.stepStart(ctx, i)
		}
		out, err := step.invoke(ctx, built)
		if p.stepEnd != nil {
			p.stepEnd(ctx, i, err)
		}
		if err != nil {
			p.logger.Debug("command failed", "step", i, "error", err)
			return nil, err
		}

		value = out
	}

	return outcome.Success(value), nil
}
