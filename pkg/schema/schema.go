package schema

import (
	"github.com/cjohansen/use-case/pkg/ports"
)

// Schema maps field names to their ordered validation rules.
type Schema map[string][]Rule

// Result implements ports.ValidationResult.
type Result struct {
	fields map[string][]string
}

// Valid reports whether no rule failed.
func (r *Result) Valid() bool {
	return len(r.fields) == 0
}

// Errors maps field names to ordered failure messages.
func (r *Result) Errors() map[string][]string {
	if r.fields == nil {
		return map[string][]string{}
	}
	return r.fields
}

func (r *Result) add(field, message string) {
	if r.fields == nil {
		r.fields = make(map[string][]string)
	}
	r.fields[field] = append(r.fields[field], message)
}

// Validate checks data against the schema. Rules run in declaration order
// per field; all failures are collected.
func Validate(s Schema, data map[string]any) *Result {
	result := &Result{}
	for field, rules := range s {
		value, present := data[field]
		for _, rule := range rules {
			if msg := rule.Check(value, present); msg != "" {
				result.add(field, msg)
			}
		}
	}
	return result
}

// Validator wraps a Schema as a ports.Validator. Input that is not a
// map[string]any fails validation under the "input" key rather than
// crashing the pipeline.
func Validator(s Schema) ports.Validator {
	return ports.ValidatorFunc(func(input any) ports.ValidationResult {
		data, ok := input.(map[string]any)
		if !ok {
			result := &Result{}
			result.add("input", "expected a map")
			return result
		}
		return Validate(s, data)
	})
}
