package club

import (
	"fmt"
	"strings"
)

// SelectionRecord is one row of the club dataset: a single album
// chosen by a member for a given month.
type SelectionRecord struct {
	Month       string
	Year        int
	YearKnown   bool
	AlbumName   string
	AlbumArtist string

	// Release years in the source are sometimes fractional or
	// string-typed, so this stays a float64. Unknown values are
	// represented by ReleaseYearKnown rather than a zero year.
	ReleaseYear      float64
	ReleaseYearKnown bool

	SelectorMember string

	// Genre holds the raw comma-joined tag string as loaded.
	Genre string

	Score      float64
	ScoreKnown bool
	Blurb      string

	genres []string
}

// Genres returns the parsed genre tags: split on commas, trimmed,
// empties dropped. The result is computed once and cached on the
// record.
func (r *SelectionRecord) Genres() []string {
	if r.genres == nil {
		r.genres = splitGenres(r.Genre)
	}
	return r.genres
}

func splitGenres(raw string) []string {
	genres := []string{}
	for _, g := range strings.Split(raw, ",") {
		g = strings.TrimSpace(g)
		if g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}

// DataFormatError indicates the dataset header is missing columns the
// aggregations cannot run without. It is fatal: no statistics are
// computed after it.
type DataFormatError struct {
	Missing []string
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("dataset is missing required columns: %s", strings.Join(e.Missing, ", "))
}
