package helper

import "unicode"

// Underscore converts a CamelCase struct field name to its snake_case form,
// matching the JSON/form naming used across the API.
func Underscore(s string) string {
	out := make([]rune, 0, len(s)+4)
	prevUpper := false
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 && !prevUpper {
				out = append(out, '_')
			}
			out = append(out, unicode.ToLower(r))
			prevUpper = true
		} else {
			out = append(out, r)
			prevUpper = false
		}
	}
	return string(out)
}
