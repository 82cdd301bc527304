package ports

import "context"

// Precondition is a system-level gate check evaluated against the (adapted)
// input before any step runs. Returning false means the condition is not met;
// returning an error means the check itself crashed. Both halt execution.
type Precondition interface {
	Satisfied(ctx context.Context, input any) (bool, error)
}

// Tagger lets a precondition (or any failure cause) report an explicit tag
// for symbolic dispatch, overriding the default derived from its type name.
// An empty string falls back to the derived tag.
type Tagger interface {
	FailureTag() string
}

// Builder transforms a step's input before validation and execution.
type Builder interface {
	Build(ctx context.Context, input any) (any, error)
}

// Command is a unit of business logic. Execute is the preferred capability;
// a value that only implements Callable is invoked through Call instead.
// The choice is resolved once when the step is constructed.
type Command interface {
	Execute(ctx context.Context, input any) (any, error)
}

// Callable is the fallback invocation capability for commands.
type Callable interface {
	Call(ctx context.Context, input any) (any, error)
}

// Validator checks a step's built input and reports field-level errors.
type Validator interface {
	Validate(input any) ValidationResult
}

// ValidationResult is the outcome of a single validator run.
type ValidationResult interface {
	// Valid reports whether the input passed all checks.
	Valid() bool

	// Errors maps field names to ordered failure messages.
	// Empty when Valid is true.
	Errors() map[string][]string
}

// InputAdapter coerces raw input (typically a map) into a typed object before
// the precondition gate runs. Adapter errors are shape errors and propagate
// to the caller rather than being folded into an outcome.
type InputAdapter interface {
	Adapt(raw any) (any, error)
}

// PreconditionFunc adapts a bare function to the Precondition interface.
type PreconditionFunc func(ctx context.Context, input any) (bool, error)

// Satisfied implements Precondition.
func (f PreconditionFunc) Satisfied(ctx context.Context, input any) (bool, error) {
	return f(ctx, input)
}

// BuilderFunc adapts a bare function to the Builder interface.
type BuilderFunc func(ctx context.Context, input any) (any, error)

// Build implements Builder.
func (f BuilderFunc) Build(ctx context.Context, input any) (any, error) {
	return f(ctx, input)
}

// ValidatorFunc adapts a bare function to the Validator interface.
type ValidatorFunc func(input any) ValidationResult

// Validate implements Validator.
func (f ValidatorFunc) Validate(input any) ValidationResult {
	return f(input)
}

// CommandFunc adapts a bare function to the Callable interface.
// A bare callable has no build capability, so it never acts as an implicit
// builder for its step; only an explicit builder applies.
type CommandFunc func(ctx context.Context, input any) (any, error)

// Call implements Callable.
func (f CommandFunc) Call(ctx context.Context, input any) (any, error) {
	return f(ctx, input)
}

// AdapterFunc adapts a bare function to the InputAdapter interface.
type AdapterFunc func(raw any) (any, error)

// Adapt implements InputAdapter.
func (f AdapterFunc) Adapt(raw any) (any, error) {
	return f(raw)
}
