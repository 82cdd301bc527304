package schema

import (
	"fmt"
	"regexp"
)

// Rule checks a single field value. present is false when the field is
// missing from the input entirely. An empty message means the value passed.
type Rule interface {
	Check(value any, present bool) string
}

type ruleFunc func(value any, present bool) string

func (f ruleFunc) Check(value any, present bool) string {
	return f(value, present)
}

// Required fails when the field is missing.
func Required() Rule {
	return ruleFunc(func(value any, present bool) string {
		if !present {
			return "is required"
		}
		return ""
	})
}

// NonEmpty fails when the field is missing, nil, or an empty string.
func NonEmpty() Rule {
	return ruleFunc(func(value any, present bool) string {
		if !present || value == nil {
			return "can't be blank"
		}
		if s, ok := value.(string); ok && s == "" {
			return "can't be blank"
		}
		return ""
	})
}

// MinLen fails when a string value is shorter than n. Missing fields and
// non-string values pass; combine with Required or a type check as needed.
func MinLen(n int) Rule {
	return ruleFunc(func(value any, present bool) string {
		if !present {
			return ""
		}
		if s, ok := value.(string); ok && len(s) < n {
			return fmt.Sprintf("must be at least %d characters", n)
		}
		return ""
	})
}

// Matches fails when a string value does not match the pattern. The pattern
// is compiled eagerly; an invalid pattern panics, like regexp.MustCompile.
func Matches(pattern string) Rule {
	re := regexp.MustCompile(pattern)
	return ruleFunc(func(value any, present bool) string {
		if !present {
			return ""
		}
		s, ok := value.(string)
		if !ok {
			return "must be a string"
		}
		if !re.MatchString(s) {
			return fmt.Sprintf("must match %s", pattern)
		}
		return ""
	})
}

// Custom wraps a bare function as a Rule.
func Custom(fn func(value any, present bool) string) Rule {
	return ruleFunc(fn)
}
