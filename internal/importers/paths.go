package importers

import "strings"

// splitLocation splits a raw movie-data location into its components.
// Locations come from Windows acquisition machines, so both separator
// styles must be handled.
func splitLocation(location string) []string {
	return strings.FieldsFunc(location, func(r rune) bool {
		return r == '/' || r == '\\'
	})
}

// stem returns the file name without its terminal extension.
func stem(name string) string {
	i := strings.LastIndex(name, ".")
	if i <= 0 {
		return name
	}
	return name[:i]
}
