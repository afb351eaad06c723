package userdata

import "strings"

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// SanitizeInput trims surrounding whitespace and removes every literal angle
// bracket from string input; any non-string value yields the empty string.
// Characters are removed, not escaped: this is not an HTML or script
// sanitizer and must not be relied on as one.
func SanitizeInput(v any) string {
	text, ok := v.(string)
	if !ok {
		return ""
	}
	return angleBrackets.Replace(strings.TrimSpace(text))
}
