package validator

import (
	"strings"
	"unicode"
)

// NotBlank fails when the value is empty or whitespace-only.
func NotBlank(value string, err error) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Err:   err,
	}
}

// MinLen fails when the value is shorter than min bytes.
func MinLen(value string, min int, err error) Rule {
	return Rule{
		Check: func() bool { return len(value) >= min },
		Err:   err,
	}
}

// NoWhitespace fails when the value contains any whitespace character.
func NoWhitespace(value string, err error) Rule {
	return Rule{
		Check: func() bool { return !strings.ContainsFunc(value, unicode.IsSpace) },
		Err:   err,
	}
}
