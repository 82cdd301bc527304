package outcome

// Failure wraps a precondition-failure cause for symbolic dispatch.
//
// A Failure is a linear matching session: conditional When branches first,
// the unconditional Otherwise last. Registering a When after Otherwise is a
// programming error and panics.
type Failure struct {
	cause   any
	tag     string
	matched bool
	sealed  bool
}

func newFailure(cause any) *Failure {
	return &Failure{cause: cause, tag: Tag(cause)}
}

// Cause returns the raw failure cause: the unmet precondition instance, or
// the error a check or builder returned.
func (f *Failure) Cause() any {
	return f.cause
}

// Tag returns the symbolic tag resolved for this failure's cause.
func (f *Failure) Tag() string {
	return f.tag
}

// When invokes the handler with the cause if tag matches the failure's tag.
// Each When is evaluated independently against the same cause; a match only
// gates the Otherwise fallback. When panics if Otherwise has already been
// registered in this session, whether or not it fired.
func (f *Failure) When(tag string, handler func(cause any)) *Failure {
	if f.sealed {
		panic("outcome: When registered after Otherwise; conditional branches must come first")
	}
	if tag == f.tag {
		f.matched = true
		handler(f.cause)
	}
	return f
}

// Otherwise invokes the handler with the cause if no prior When matched, and
// closes the session for further conditional branches.
func (f *Failure) Otherwise(handler func(cause any)) {
	if f.sealed {
		return
	}
	f.sealed = true
	if !f.matched {
		handler(f.cause)
	}
}
