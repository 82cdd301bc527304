package observability

import (
	"context"
	"time"
)

// ExecutionEvent marks the start of an execution.
type ExecutionEvent struct {
	UseCase string
	At      time.Time
}

// StepEvent marks a step's command invocation. Err is only set on step end.
type StepEvent struct {
	UseCase string
	Index   int
	Err     error
}

// OutcomeEvent reports the final status of an execution. Status is the
// outcome status string, or "command_error"/"adapter_error" when a command
// or the input adapter failed and no outcome was produced.
type OutcomeEvent struct {
	UseCase  string
	Status   string
	Tag      string
	Duration time.Duration
}

// Hooks defines callbacks for engine observability. Any field may be nil.
type Hooks struct {
	OnExecuteStart func(context.Context, *ExecutionEvent)
	OnStepStart    func(context.Context, *StepEvent)
	OnStepEnd      func(context.Context, *StepEvent)
	OnOutcome      func(context.Context, *OutcomeEvent)
}
