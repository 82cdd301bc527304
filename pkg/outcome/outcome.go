package outcome

import "github.com/cjohansen/use-case/pkg/ports"

// Status identifies the variant of an Outcome.
type Status string

const (
	// StatusNeutral is the default, never-executed state.
	StatusNeutral Status = "neutral"
	// StatusSuccess indicates the pipeline ran to completion.
	StatusSuccess Status = "success"
	// StatusFailed indicates a validator rejected a step's input.
	StatusFailed Status = "failed"
	// StatusPreConditionFailed indicates the gate halted execution, either
	// because a precondition was unmet or because a precondition check or
	// builder returned an error.
	StatusPreConditionFailed Status = "precondition_failed"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// Outcome is the immutable result of one execution. Exactly one variant
// describes any execution; construct instances through Neutral, Success,
// Failed, or PreConditionFailed.
type Outcome struct {
	status         Status
	result         any
	errs           ports.ValidationResult
	precedingInput any
	cause          any
}

// Neutral returns the no-result, no-failure outcome.
func Neutral() *Outcome {
	return &Outcome{status: StatusNeutral}
}

// Success returns a successful outcome carrying the final command output.
func Success(result any) *Outcome {
	return &Outcome{status: StatusSuccess, result: result}
}

// Failed returns a validation-failure outcome. precedingInput is the value
// the failing validator saw (the builder's output for that step).
func Failed(errs ports.ValidationResult, precedingInput any) *Outcome {
	return &Outcome{status: StatusFailed, errs: errs, precedingInput: precedingInput}
}

// PreConditionFailed returns a gate-failure outcome. The cause is either the
// unmet precondition instance or the error a check (or builder) returned;
// callers distinguish the two by inspecting the cause's type.
func PreConditionFailed(cause any) *Outcome {
	return &Outcome{status: StatusPreConditionFailed, cause: cause}
}

// Status returns the variant of this outcome.
func (o *Outcome) Status() Status {
	return o.status
}

// OnSuccess invokes the handler with the result if this outcome is a
// success, and returns the result (nil for any other variant) so
// non-branching callers can pull the value out directly.
func (o *Outcome) OnSuccess(handlers ...func(result any)) any {
	if o.status != StatusSuccess {
		return nil
	}
	for _, h := range handlers {
		h(o.result)
	}
	return o.result
}

// OnFailure invokes the handler with the validation result and the input the
// failing validator saw, if this outcome is a validation failure. It returns
// the validation result (nil for any other variant).
func (o *Outcome) OnFailure(handlers ...func(errs ports.ValidationResult, precedingInput any)) ports.ValidationResult {
	if o.status != StatusFailed {
		return nil
	}
	for _, h := range handlers {
		h(o.errs, o.precedingInput)
	}
	return o.errs
}

// OnPreConditionFailed invokes the handler with a fresh Failure view if this
// outcome is a precondition failure, and returns the raw cause (nil for any
// other variant). Each call opens a new dispatch session.
func (o *Outcome) OnPreConditionFailed(handlers ...func(f *Failure)) any {
	if o.status != StatusPreConditionFailed {
		return nil
	}
	for _, h := range handlers {
		h(newFailure(o.cause))
	}
	return o.cause
}
