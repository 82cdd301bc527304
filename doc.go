/*
Package usecase is a small orchestration engine for multi-step business
operations.

A use case gates execution behind an ordered list of preconditions, then runs
an ordered pipeline of steps. Each step optionally transforms its input
through a builder, validates the transformed value, and executes a command;
the command's output becomes the next step's input. Every execution reports
exactly one outcome: Success, Failed (validation), or PreConditionFailed,
which callers branch on declaratively.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		usecase "github.com/cjohansen/use-case"
		"github.com/cjohansen/use-case/pkg/outcome"
		"github.com/cjohansen/use-case/pkg/ports"
		"github.com/cjohansen/use-case/pkg/schema"
	)

	func main() {
		signup, err := usecase.New(
			usecase.WithName("sign_up"),
			usecase.WithStep(usecase.Step{
				Command: ports.CommandFunc(createUser),
				Validators: []ports.Validator{
					schema.Validator(schema.Schema{
						"name": {schema.Required(), schema.NonEmpty()},
					}),
				},
			}),
		)
		if err != nil {
			log.Fatal(err)
		}

		result, err := signup.Execute(context.Background(), map[string]any{"name": "Jane"})
		if err != nil {
			log.Fatal(err) // a command failed
		}

		result.OnSuccess(func(user any) {
			fmt.Println("created", user)
		})
		result.OnFailure(func(errs ports.ValidationResult, _ any) {
			fmt.Println("invalid input", errs.Errors())
		})
		result.OnPreConditionFailed(func(f *outcome.Failure) {
			f.When("user_logged_in", func(any) { fmt.Println("please log in") }).
				Otherwise(func(cause any) { fmt.Println("blocked:", cause) })
		})
	}

# Error handling

Recoverable failures (unmet preconditions, crashed precondition checks,
builder errors, validation failures) are converted to outcomes and returned,
never thrown. Command errors and input adapter errors are the exception: they
escape Execute as its error value, untouched. Callers who need resilience
there wrap the call themselves.
*/
package usecase
