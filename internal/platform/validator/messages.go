package validator

import (
	"fmt"
	"strconv"
	"strings"
)

// Message keys. Built-in failures use the key as their error code.
const (
	CodeRequired  = "required"
	CodeInvalid   = "invalid"
	CodeMinLength = "min_length"
	CodeMaxLength = "max_length"
	CodeMinValue  = "min_value"
	CodeMaxValue  = "max_value"
	CodeChoices   = "choices"
	CodeChild     = "child"
	CodeURL       = "url"
	CodePattern   = "pattern"
)

var baseMessages = map[string]string{
	CodeRequired: "This field is required.",
	CodeInvalid:  "Invalid value.",
}

var (
	booleanMessages = extend(baseMessages, map[string]string{
		CodeInvalid: "Value must be a boolean.",
	})
	stringMessages = extend(baseMessages, map[string]string{
		CodeInvalid:   "Value must be a string.",
		CodeMinLength: "Ensure this value has at least {min_length} characters.",
		CodeMaxLength: "Ensure this value has at most {max_length} characters.",
	})
	numericMessages = extend(baseMessages, map[string]string{
		CodeMinValue: "Ensure this value is greater than or equal to {min_value}.",
		CodeMaxValue: "Ensure this value is less than or equal to {max_value}.",
	})
	integerMessages = extend(numericMessages, map[string]string{
		CodeInvalid: "Value must be an integer.",
	})
	floatMessages = extend(numericMessages, map[string]string{
		CodeInvalid: "Value must be a number.",
	})
	choiceMessages = extend(baseMessages, map[string]string{
		CodeInvalid: "Value must be one of: {choices}.",
	})
	arrayMessages = extend(baseMessages, map[string]string{
		CodeInvalid:   "Value must be an array.",
		CodeMinLength: "Ensure this array has at least {min_length} items.",
		CodeMaxLength: "Ensure this array has at most {max_length} items.",
		CodeChild:     "Item {index}: {message}",
	})
	multipleChoiceMessages = extend(arrayMessages, map[string]string{
		CodeChoices: "Each item must be one of: {choices}.",
	})
	urlMessages = extend(stringMessages, map[string]string{
		CodeURL: "Enter a valid URL.",
	})
	hostMessages = extend(stringMessages, map[string]string{
		CodePattern: "Enter a valid IPv4 address or host name.",
	})
	mapMessages = extend(baseMessages, map[string]string{
		CodeInvalid: "Value must be an object or a JSON encoded object.",
	})
	slugMessages = extend(stringMessages, map[string]string{
		CodePattern: "Enter a valid slug consisting of letters, numbers, underscores or hyphens.",
	})
)

func extend(base map[string]string, overrides map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// FormatMessage replaces {name} placeholders in tmpl with params. Unknown
// placeholders are left as they are.
func FormatMessage(tmpl string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatChoices(choices []any) string {
	parts := make([]string, len(choices))
	for i, c := range choices {
		parts[i] = fmt.Sprint(c)
	}
	return strings.Join(parts, ", ")
}
