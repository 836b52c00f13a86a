// Package validation checks form input before it is sent to the backend.
//
// A Schema is an ordered list of fields, each with an ordered list of rules.
// Validate trims every value, runs all fields and reports, per field, the
// message of the first rule that fails. All fields are always checked, so a
// single call returns every field error at once.
package validation

import (
	"fmt"
	"sort"
	"strings"
)

// GeneralKey holds the error reported when validation itself breaks.
const GeneralKey = "general"

// Rule is one predicate with the message shown when it fails. Check sees
// the trimmed value of the field and the whole trimmed form.
type Rule struct {
	Check   func(value string, form map[string]string) bool
	Message string
}

// Field binds a form key to its rules.
type Field struct {
	Name  string
	Rules []Rule
}

// Schema is an ordered set of fields.
type Schema struct {
	Name   string
	Fields []Field
}

// Result is the outcome of one Validate call.
type Result struct {
	IsValid bool
	Errors  map[string]string
}

// Validate runs schema against data. It never returns an error for invalid
// input; a rule that panics is reported under GeneralKey.
func Validate(schema Schema, data map[string]string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{IsValid: false, Errors: map[string]string{GeneralKey: "validation error"}}
		}
	}()

	form := Trim(data)
	errs := make(map[string]string)

	for _, f := range schema.Fields {
		value := form[f.Name]
		for _, rule := range f.Rules {
			if !rule.Check(value, form) {
				errs[f.Name] = rule.Message
				break
			}
		}
	}

	return Result{IsValid: len(errs) == 0, Errors: errs}
}

// Trim returns a copy of data with surrounding whitespace removed from
// every value.
func Trim(data map[string]string) map[string]string {
	out := make(map[string]string, len(data))
	for k, v := range data {
		out[k] = strings.TrimSpace(v)
	}
	return out
}

// Error carries a failed Result through error returns.
type Error struct {
	Result Result
}

// NewError wraps res; it should only be used for invalid results.
func NewError(res Result) *Error {
	return &Error{Result: res}
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Result.Errors))
	for k := range e.Result.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Result.Errors[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the per-field messages.
func (e *Error) Fields() map[string]string {
	return e.Result.Errors
}
