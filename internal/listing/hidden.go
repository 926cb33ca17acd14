package listing

import "strings"

// hiddenPrefix marks entries excluded from default listings.
const hiddenPrefix = "."

// IsHidden reports whether name is conventionally hidden.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, hiddenPrefix)
}
