/*
Package schema provides a small field-validation toolkit producing
ports.ValidationResult values.

A Schema maps field names to ordered rules. schema.Validator wraps a Schema
as a ports.Validator for use inside a step:

	v := schema.Validator(schema.Schema{
		"name":  {schema.Required(), schema.NonEmpty()},
		"email": {schema.Matches(`.+@.+`)},
	})

Validators operate on map[string]any input. Typed structs can be validated
before adaptation, or with Custom rules.
*/
package schema
