package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	usecase "github.com/cjohansen/use-case"
	"github.com/cjohansen/use-case/pkg/outcome"
	"github.com/cjohansen/use-case/pkg/ports"
	"github.com/cjohansen/use-case/pkg/schema"
)

type UserLoggedIn struct {
	loggedIn bool
}

func (p *UserLoggedIn) Satisfied(ctx context.Context, input any) (bool, error) {
	return p.loggedIn, nil
}

func newSignup(t *testing.T, opts ...usecase.Option) *usecase.UseCase {
	t.Helper()
	u, err := usecase.New(opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return u
}

func TestExecute_ZeroSteps(t *testing.T) {
	u := newSignup(t, usecase.WithName("noop"))

	raw := map[string]any{"name": "Mr"}
	o, err := u.Execute(context.Background(), raw)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if got := o.OnSuccess(); !reflect.DeepEqual(got, raw) {
		t.Errorf("Zero steps and no adapter should yield the raw input, got %v", got)
	}
}

func TestExecute_ValidationFailure(t *testing.T) {
	u := newSignup(t,
		usecase.WithName("create_user"),
		usecase.WithStep(usecase.Step{
			Command: ports.CommandFunc(func(ctx context.Context, input any) (any, error) {
				t.Error("command must not run when validation fails")
				return nil, nil
			}),
			Validators: []ports.Validator{
				schema.Validator(schema.Schema{"name": {schema.NonEmpty()}}),
			},
		}),
	)

	o, err := u.Execute(context.Background(), map[string]any{"name": ""})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if o.Status() != outcome.StatusFailed {
		t.Fatalf("Expected failed, got %s", o.Status())
	}

	errs := o.OnFailure().Errors()
	if len(errs) != 1 {
		t.Errorf("Expected exactly one failing field, got %v", errs)
	}
	if msgs := errs["name"]; len(msgs) != 1 {
		t.Errorf("Expected exactly one error keyed 'name', got %v", errs)
	}
}

func TestExecute_TwoStepPipeline(t *testing.T) {
	fetch := ports.CommandFunc(func(ctx context.Context, input any) (any, error) {
		in := input.(map[string]any)
		return map[string]any{"id": 1349, "name": in["name"]}, nil
	})
	pimp := ports.CommandFunc(func(ctx context.Context, input any) (any, error) {
		user := input.(map[string]any)
		user["name"] = user["name"].(string) + " (Pimped)"
		return user, nil
	})

	u := newSignup(t,
		usecase.WithName("pimp_user"),
		usecase.WithSteps(
			usecase.Step{Command: fetch},
			usecase.Step{Command: pimp},
		),
	)

	o, err := u.Execute(context.Background(), map[string]any{"name": "Mr"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	want := map[string]any{"id": 1349, "name": "Mr (Pimped)"}
	if got := o.OnSuccess(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestExecute_PreconditionDispatch(t *testing.T) {
	u := newSignup(t,
		usecase.WithName("admin_action"),
		usecase.WithPreconditions(&UserLoggedIn{loggedIn: false}),
		usecase.WithCommand(ports.CommandFunc(func(ctx context.Context, input any) (any, error) {
			t.Error("steps must not run when the gate fails")
			return nil, nil
		})),
	)

	o, err := u.Execute(context.Background(), nil)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	dispatched := ""
	o.OnPreConditionFailed(func(f *outcome.Failure) {
		f.When("user_logged_in", func(cause any) { dispatched = "login" }).
			Otherwise(func(cause any) { dispatched = "other" })
	})
	if dispatched != "login" {
		t.Errorf("Expected tag dispatch to hit 'user_logged_in', got %q", dispatched)
	}
}

func TestExecute_CommandErrorPropagates(t *testing.T) {
	boom := errors.New("insert failed")
	u := newSignup(t,
		usecase.WithName("explode"),
		usecase.WithCommand(ports.CommandFunc(func(ctx context.Context, input any) (any, error) {
			return nil, boom
		})),
	)

	o, err := u.Execute(context.Background(), nil)
	if !errors.Is(err, boom) {
		t.Errorf("Expected the command error, got %v", err)
	}
	if o != nil {
		t.Error("No outcome should accompany a command error")
	}
}

func TestExecute_InputAdapter(t *testing.T) {
	type signupInput struct {
		Name string
	}

	adapter := ports.AdapterFunc(func(raw any) (any, error) {
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, errors.New("expected a map")
		}
		name, _ := m["name"].(string)
		return signupInput{Name: name}, nil
	})

	t.Run("Adapted Input Reaches The Pipeline", func(t *testing.T) {
		u := newSignup(t,
			usecase.WithInputAdapter(adapter),
			usecase.WithCommand(ports.CommandFunc(func(ctx context.Context, input any) (any, error) {
				return input.(signupInput).Name, nil
			})),
		)
		o, err := u.Execute(context.Background(), map[string]any{"name": "Jane"})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if got := o.OnSuccess(); got != "Jane" {
			t.Errorf("Expected adapted name, got %v", got)
		}
	})

	t.Run("Adapter Error Propagates", func(t *testing.T) {
		u := newSignup(t, usecase.WithInputAdapter(adapter))
		if _, err := u.Execute(context.Background(), "not a map"); err == nil {
			t.Error("Expected adapter errors to propagate to the caller")
		}
	})
}

func TestExecute_Deterministic(t *testing.T) {
	build := func() *usecase.UseCase {
		return newSignup(t,
			usecase.WithName("deterministic"),
			usecase.WithStep(usecase.Step{
				Command: ports.CommandFunc(func(ctx context.Context, input any) (any, error) {
					return map[string]any{"id": 1349, "name": input.(map[string]any)["name"]}, nil
				}),
				Validators: []ports.Validator{
					schema.Validator(schema.Schema{"name": {schema.NonEmpty()}}),
				},
			}),
		)
	}

	input := func() map[string]any { return map[string]any{"name": "Mr"} }

	first, err := build().Execute(context.Background(), input())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	second, err := build().Execute(context.Background(), input())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if first.Status() != second.Status() {
		t.Errorf("Statuses differ: %s vs %s", first.Status(), second.Status())
	}
	if !reflect.DeepEqual(first.OnSuccess(), second.OnSuccess()) {
		t.Errorf("Results differ: %v vs %v", first.OnSuccess(), second.OnSuccess())
	}
}

func TestNew_RejectsBadCommands(t *testing.T) {
	if _, err := usecase.New(usecase.WithCommand("not callable")); err == nil {
		t.Error("Expected a construction error for a command with no capability")
	}
	if _, err := usecase.New(usecase.WithStep(usecase.Step{})); err == nil {
		t.Error("Expected a construction error for a step without a command")
	}
}
