package outcome

import (
	"reflect"

	"github.com/iancoleman/strcase"

	"github.com/cjohansen/use-case/pkg/ports"
)

// Tag resolves the symbolic tag for a failure cause. A cause implementing
// ports.Tagger with a non-empty tag wins; otherwise the tag is derived from
// the cause's concrete type name converted to snake_case (pointers are
// dereferenced first). The same derivation applies when the cause is an
// error rather than a precondition.
func Tag(cause any) string {
	if t, ok := cause.(ports.Tagger); ok {
		if tag := t.FailureTag(); tag != "" {
			return tag
		}
	}

	rt := reflect.TypeOf(cause)
	for rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == nil {
		return ""
	}

	name := rt.Name()
	if name == "" {
		// Anonymous types (func values, slices) have no name; fall back to
		// the full type string.
		name = rt.String()
	}
	return strcase.ToSnake(name)
}
