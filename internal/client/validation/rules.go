package validation

import (
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the date format the backend accepts for travel dates.
const DateLayout = "2006-01-02"

var validate = validator.New()

func Required(msg string) Rule {
	return Rule{Message: msg, Check: func(v string, _ map[string]string) bool {
		return v != ""
	}}
}

// Email accepts an empty value so that Required alone reports a missing field.
func Email(msg string) Rule {
	return Rule{Message: msg, Check: func(v string, _ map[string]string) bool {
		return v == "" || validate.Var(v, "email") == nil
	}}
}

func MinLen(n int, msg string) Rule {
	return Rule{Message: msg, Check: func(v string, _ map[string]string) bool {
		return utf8.RuneCountInString(v) >= n
	}}
}

func MaxLen(n int, msg string) Rule {
	return Rule{Message: msg, Check: func(v string, _ map[string]string) bool {
		return utf8.RuneCountInString(v) <= n
	}}
}

// EqualsField requires the value to match another field of the form.
func EqualsField(other, msg string) Rule {
	return Rule{Message: msg, Check: func(v string, form map[string]string) bool {
		return v == form[other]
	}}
}

// Date accepts an empty value or a DateLayout date.
func Date(msg string) Rule {
	return Rule{Message: msg, Check: func(v string, _ map[string]string) bool {
		if v == "" {
			return true
		}
		_, err := time.Parse(DateLayout, v)
		return err == nil
	}}
}

// NotBeforeField requires the date not to precede the date in other. It
// passes when either side is missing or malformed; Date reports those.
func NotBeforeField(other, msg string) Rule {
	return Rule{Message: msg, Check: func(v string, form map[string]string) bool {
		this, err := time.Parse(DateLayout, v)
		if err != nil {
			return true
		}
		that, err := time.Parse(DateLayout, form[other])
		if err != nil {
			return true
		}
		return !this.Before(that)
	}}
}
