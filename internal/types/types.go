// Package types defines the cross‑package values used by the lsdir CLI.
package types

const (
	FormatRaw  = "raw"
	FormatJSON = "json"
	FormatXML  = "xml"

	// DefaultPath is the directory listed when no positional argument is given.
	DefaultPath = "."
)

// IsSupportedFormat reports whether the provided format is recognized.
func IsSupportedFormat(format string) bool {
	switch format {
	case FormatRaw, FormatJSON, FormatXML:
		return true
	default:
		return false
	}
}
