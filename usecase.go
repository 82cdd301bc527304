package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cjohansen/use-case/internal/logging"
	"github.com/cjohansen/use-case/internal/runtime"
	"github.com/cjohansen/use-case/pkg/observability"
	"github.com/cjohansen/use-case/pkg/outcome"
	"github.com/cjohansen/use-case/pkg/ports"
)

// StatusCommandError and StatusAdapterError are the journal/hook statuses
// recorded when a command or the input adapter fails. Both errors propagate
// to the caller and produce no outcome, so the regular outcome statuses do
// not cover them.
const (
	StatusCommandError = "command_error"
	StatusAdapterError = "adapter_error"
)

// Step describes one builder → validators → command unit. Command is any
// value implementing ports.Command or ports.Callable; Builder and Validators
// are optional. Capabilities are resolved once, in New.
type Step struct {
	Command    any
	Builder    ports.Builder
	Validators []ports.Validator
}

// UseCase is an immutable use case definition: an ordered precondition gate
// followed by an ordered step pipeline, with an optional input adapter in
// front. Assemble it once with New and share it freely; each Execute call
// owns its own transient state.
type UseCase struct {
	name          string
	adapter       ports.InputAdapter
	preconditions []ports.Precondition
	steps         []Step
	pipeline      *runtime.Pipeline
	logger        *slog.Logger
	hooks         observability.Hooks
	journal       ports.Journal
}

// Option defines a functional option for configuring a UseCase.
type Option func(*UseCase)

// WithName sets the use case name used in logs, metrics, and the journal.
func WithName(name string) Option {
	return func(u *UseCase) {
		u.name = name
	}
}

// WithInputAdapter sets the adapter applied to raw input before the gate.
func WithInputAdapter(adapter ports.InputAdapter) Option {
	return func(u *UseCase) {
		u.adapter = adapter
	}
}

// WithPreconditions appends gate checks, evaluated in declaration order.
func WithPreconditions(preconditions ...ports.Precondition) Option {
	return func(u *UseCase) {
		u.preconditions = append(u.preconditions, preconditions...)
	}
}

// WithStep appends one step to the pipeline.
func WithStep(step Step) Option {
	return func(u *UseCase) {
		u.steps = append(u.steps, step)
	}
}

// WithSteps appends steps to the pipeline, run in declaration order.
func WithSteps(steps ...Step) Option {
	return func(u *UseCase) {
		u.steps = append(u.steps, steps...)
	}
}

// WithCommand appends a single step wrapping the command, with no explicit
// builder and no validators. Shorthand for the common one-step case.
func WithCommand(command any) Option {
	return func(u *UseCase) {
		u.steps = append(u.steps, Step{Command: command})
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(u *UseCase) {
		u.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks observability.Hooks) Option {
	return func(u *UseCase) {
		u.hooks = hooks
	}
}

// WithJournal records every execution to the given journal.
func WithJournal(journal ports.Journal) Option {
	return func(u *UseCase) {
		u.journal = journal
	}
}

// New assembles a use case definition. Step capabilities (effective builder,
// execute-vs-call invocation) are resolved here, once; a step whose command
// supports neither invocation capability is a construction error. The
// returned definition is frozen and safe for concurrent Execute calls.
func New(opts ...Option) (*UseCase, error) {
	u := &UseCase{name: "use_case"}
	for _, opt := range opts {
		opt(u)
	}

	if u.logger == nil {
		u.logger = logging.NewNop()
	}
	u.logger = u.logger.With("use_case", u.name)

	resolved := make([]runtime.Step, len(u.steps))
	for i, s := range u.steps {
		step, err := runtime.ResolveStep(s.Command, s.Builder, s.Validators)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		resolved[i] = step
	}

	u.pipeline = runtime.NewPipeline(resolved, u.logger,
		runtime.WithStepObserver(u.stepStart, u.stepEnd))

	return u, nil
}

// Name returns the configured use case name.
func (u *UseCase) Name() string {
	return u.name
}

// Execute runs raw input through the adapter, the precondition gate, and the
// step pipeline, and reports the result as an outcome.
//
// Unmet preconditions, crashed precondition checks, builder errors, and
// validation failures are all folded into the returned outcome; the error
// value is reserved for input adapter errors and command errors, which
// propagate to the caller uncaught.
func (u *UseCase) Execute(ctx context.Context, raw any) (*outcome.Outcome, error) {
	started := time.Now()
	if u.hooks.OnExecuteStart != nil {
		u.hooks.OnExecuteStart(ctx, &observability.ExecutionEvent{UseCase: u.name, At: started})
	}

	input := raw
	if u.adapter != nil {
		adapted, err := u.adapter.Adapt(raw)
		if err != nil {
			u.report(ctx, StatusAdapterError, "", started)
			return nil, fmt.Errorf("adapt input: %w", err)
		}
		input = adapted
	}

	if o := runtime.VerifyPreconditions(ctx, u.logger, u.preconditions, input); o != nil {
		u.finish(ctx, o, started)
		return o, nil
	}

	o, err := u.pipeline.Run(ctx, input)
	if err != nil {
		u.report(ctx, StatusCommandError, "", started)
		return nil, err
	}

	u.finish(ctx, o, started)
	return o, nil
}

func (u *UseCase) stepStart(ctx context.Context, index int) {
	if u.hooks.OnStepStart != nil {
		u.hooks.OnStepStart(ctx, &observability.StepEvent{UseCase: u.name, Index: index})
	}
}

func (u *UseCase) stepEnd(ctx context.Context, index int, err error) {
	if u.hooks.OnStepEnd != nil {
		u.hooks.OnStepEnd(ctx, &observability.StepEvent{UseCase: u.name, Index: index, Err: err})
	}
}

func (u *UseCase) finish(ctx context.Context, o *outcome.Outcome, started time.Time) {
	tag := ""
	if o.Status() == outcome.StatusPreConditionFailed {
		tag = outcome.Tag(o.OnPreConditionFailed())
	}
	u.report(ctx, o.Status().String(), tag, started)
}

func (u *UseCase) report(ctx context.Context, status, tag string, started time.Time) {
	elapsed := time.Since(started)
	u.logger.Info("execution finished", "status", status, "tag", tag, "duration", elapsed)

	if u.hooks.OnOutcome != nil {
		u.hooks.OnOutcome(ctx, &observability.OutcomeEvent{
			UseCase:  u.name,
			Status:   status,
			Tag:      tag,
			Duration: elapsed,
		})
	}

	if u.journal != nil {
		entry := ports.JournalEntry{UseCase: u.name, Status: status, Tag: tag, At: started}
		if err := u.journal.Record(ctx, entry); err != nil {
			u.logger.Warn("journal record failed", "error", err)
		}
	}
}
