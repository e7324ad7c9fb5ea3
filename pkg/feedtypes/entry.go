// Package feedtypes provides shared type definitions used by feed normalization.
package feedtypes

// Entry is the normalized record for a single feed item. Field order matches
// the serialized JSON shape the frontend reads.
type Entry struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`
}

// Valid reports whether the entry carries both required fields. Published is
// optional and may be empty.
func (e Entry) Valid() bool {
	return e.Title != "" && e.Link != ""
}
