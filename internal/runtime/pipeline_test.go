package runtime_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cjohansen/use-case/internal/runtime"
	"github.com/cjohansen/use-case/pkg/outcome"
	"github.com/cjohansen/use-case/pkg/ports"
)

type stubResult struct {
	errs map[string][]string
}

func (r *stubResult) Valid() bool                 { return len(r.errs) == 0 }
func (r *stubResult) Errors() map[string][]string { return r.errs }

// countingValidator tracks invocations and fails when errs is non-empty.
type countingValidator struct {
	calls int
	errs  map[string][]string
}

func (v *countingValidator) Validate(input any) ports.ValidationResult {
	v.calls++
	return &stubResult{errs: v.errs}
}

func mustResolve(t *testing.T, command any, builder ports.Builder, validators ...ports.Validator) runtime.Step {
	t.Helper()
	step, err := runtime.ResolveStep(command, builder, validators)
	if err != nil {
		t.Fatalf("ResolveStep failed: %v", err)
	}
	return step
}

func echo(ctx context.Context, input any) (any, error) { return input, nil }

func TestPipeline_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Zero Steps Yield Input Unchanged", func(t *testing.T) {
		o, err := runtime.NewPipeline(nil, discardLogger()).Run(ctx, "raw")
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if got := o.OnSuccess(); got != "raw" {
			t.Errorf("Expected the raw input back, got %v", got)
		}
	})

	t.Run("Output Threads Into Next Step", func(t *testing.T) {
		first := mustResolve(t, ports.CommandFunc(func(ctx context.Context, input any) (any, error) {
			return input.(string) + "-a", nil
		}), nil)
		second := mustResolve(t, ports.CommandFunc(func(ctx context.Context, input any) (any, error) {
			return input.(string) + "-b", nil
		}), nil)

		o, err := runtime.NewPipeline([]runtime.Step{first, second}, discardLogger()).Run(ctx, "in")
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if got := o.OnSuccess(); got != "in-a-b" {
			t.Errorf("Expected 'in-a-b', got %v", got)
		}
	})

	t.Run("Builder Error Reported As Precondition Failure", func(t *testing.T) {
		boom := errors.New("cannot build")
		broken := ports.BuilderFunc(func(ctx context.Context, input any) (any, error) {
			return nil, boom
		})
		step := mustResolve(t, ports.CommandFunc(echo), broken)

		o, err := runtime.NewPipeline([]runtime.Step{step}, discardLogger()).Run(ctx, nil)
		if err != nil {
			t.Fatalf("Builder errors must not propagate, got %v", err)
		}
		if o.Status() != outcome.StatusPreConditionFailed {
			t.Errorf("Expected precondition_failed, got %s", o.Status())
		}
		if cause := o.OnPreConditionFailed(); cause != any(boom) {
			t.Errorf("Expected the builder error as cause, got %v", cause)
		}
	})

	t.Run("First Invalid Validator Aborts", func(t *testing.T) {
		failing := &countingValidator{errs: map[string][]string{"name": {"can't be blank"}}}
		skipped := &countingValidator{}
		executed := false
		cmd := ports.CommandFunc(func(ctx context.Context, input any) (any, error) {
			executed = true
			return input, nil
		})
		built := ports.BuilderFunc(func(ctx context.Context, input any) (any, error) {
			return "built-value", nil
		})
		step := mustResolve(t, cmd, built, failing, skipped)
		later := mustResolve(t, ports.CommandFunc(echo), nil)

		o, err := runtime.NewPipeline([]runtime.Step{step, later}, discardLogger()).Run(ctx, nil)
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if o.Status() != outcome.StatusFailed {
			t.Errorf("Expected failed, got %s", o.Status())
		}
		var gotInput any
		o.OnFailure(func(errs ports.ValidationResult, precedingInput any) {
			gotInput = precedingInput
		})
		if gotInput != "built-value" {
			t.Errorf("Preceding input should be the builder's output, got %v", gotInput)
		}
		if skipped.calls != 0 {
			t.Error("Validators after the first failure must not run")
		}
		if executed {
			t.Error("The command must not run after validation fails")
		}
	})

	t.Run("Command Error Propagates Uncaught", func(t *testing.T) {
		boom := errors.New("payment rejected")
		step := mustResolve(t, ports.CommandFunc(func(ctx context.Context, input any) (any, error) {
			return nil, boom
		}), nil)

		o, err := runtime.NewPipeline([]runtime.Step{step}, discardLogger()).Run(ctx, nil)
		if !errors.Is(err, boom) {
			t.Errorf("Expected the command error to escape, got %v", err)
		}
		if o != nil {
			t.Error("No outcome is produced when a command fails")
		}
	})

	t.Run("Step Observer Fires Around Commands", func(t *testing.T) {
		var events []int
		step := mustResolve(t, ports.CommandFunc(echo), nil)
		p := runtime.NewPipeline([]runtime.Step{step, step}, discardLogger(),
			runtime.WithStepObserver(
				func(ctx context.Context, index int) { events = append(events, index) },
				func(ctx context.Context, index int, err error) { events = append(events, -index - 1) },
			))
		if _, err := p.Run(ctx, nil); err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		want := []int{0, -1, 1, -2}
		if len(events) != len(want) {
			t.Fatalf("Expected %d observer events, got %d", len(want), len(events))
		}
		for i := range want {
			if events[i] != want[i] {
				t.Errorf("Event %d: expected %d, got %d", i, want[i], events[i])
			}
		}
	})
}
