package userdata

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

var validate = validator.New()

// ValidateRequest reports whether body is an object carrying every required
// field with a non-blank value. Sequences and all other non-object values
// fail the shape test outright. A field fails when it is absent, nil, or its
// string representation is empty after trimming whitespace. Every field is
// inspected so the outcome never depends on map iteration order.
func ValidateRequest(body any, required []string) bool {
	rec, ok := body.(map[string]any)
	if !ok || rec == nil {
		return false
	}
	valid := true
	for _, field := range required {
		value, present := rec[field]
		if !present || value == nil {
			valid = false
			continue
		}
		if strings.TrimSpace(fmt.Sprint(value)) == "" {
			valid = false
		}
	}
	return valid
}

// IsValidUsername reports whether v is a 3-20 character string of letters,
// digits and underscores. The whole value must match; a qualifying substring
// is not enough.
func IsValidUsername(v any) bool {
	username, ok := v.(string)
	if !ok {
		return false
	}
	return usernamePattern.MatchString(username)
}

// IsValidEmail reports whether v is a string holding a well-formed address.
func IsValidEmail(v any) bool {
	email, ok := v.(string)
	if !ok {
		return false
	}
	return validate.Var(email, "required,email") == nil
}
