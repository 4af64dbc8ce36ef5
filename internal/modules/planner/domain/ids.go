package domain

import "strconv"

const placeholderPrefix = "local-"

// PlaceholderID marks an entity that only exists client-side until the
// backend confirms it and hands back a numeric id.
func PlaceholderID(suffix string) string {
	return placeholderPrefix + suffix
}

// IsPersisted reports whether an id came from the backend. Server ids are
// numeric; placeholders never parse.
func IsPersisted(id string) bool {
	_, err := strconv.ParseInt(id, 10, 64)
	return err == nil
}
