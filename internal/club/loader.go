package club

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Column names as they appear in the dataset header, after trimming.
const (
	ColMonth       = "Month"
	ColYear        = "Year"
	ColAlbumName   = "album_name"
	ColAlbumArtist = "album_artist"
	ColReleaseDate = "album_release_date"
	ColSelector    = "select_member"
	ColGenre       = "Genre"
	ColScore       = "score"
	ColBlurb       = "Blurb"

	// Some exports of the sheet misspell the genre column.
	colGenreAlt = "Genera"
)

var requiredColumns = []string{ColSelector, ColAlbumArtist, ColAlbumName}

// Load reads the selection dataset from a CSV file. It returns the
// records in file order plus the number of values that failed numeric
// coercion and were recorded as missing.
func Load(path string) ([]SelectionRecord, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	records, warnings, err := Read(f)
	if err != nil {
		return nil, 0, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, warnings, nil
}

// Read parses the dataset from r. Column names and the Month field
// are whitespace-trimmed, the alternate genre column spelling is
// renamed, and malformed numeric fields become missing values rather
// than zeros or dropped rows.
func Read(r io.Reader) ([]SelectionRecord, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, 0, &DataFormatError{Missing: requiredColumns}
	}
	if err != nil {
		return nil, 0, fmt.Errorf("reading header: %w", err)
	}

	index := make(map[string]int)
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == colGenreAlt {
			name = ColGenre
		}
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, 0, &DataFormatError{Missing: missing}
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []SelectionRecord
	warnings := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("reading row %d: %w", len(records)+2, err)
		}

		rec := SelectionRecord{
			Month:          strings.TrimSpace(field(row, ColMonth)),
			AlbumName:      field(row, ColAlbumName),
			AlbumArtist:    field(row, ColAlbumArtist),
			SelectorMember: field(row, ColSelector),
			Genre:          field(row, ColGenre),
			Blurb:          field(row, ColBlurb),
		}

		if year, ok, warned := coerceInt(field(row, ColYear)); ok {
			rec.Year = year
			rec.YearKnown = true
		} else if warned {
			warnings++
		}

		if y, ok, warned := coerceFloat(field(row, ColReleaseDate)); ok {
			rec.ReleaseYear = y
			rec.ReleaseYearKnown = true
		} else if warned {
			warnings++
		}

		if s, ok, warned := coerceFloat(field(row, ColScore)); ok {
			rec.Score = s
			rec.ScoreKnown = true
		} else if warned {
			warnings++
		}

		// Parse the genre set once, up front.
		rec.Genres()

		records = append(records, rec)
	}

	return records, warnings, nil
}

// coerceFloat parses a numeric field. The second result reports
// whether a value is present; the third reports whether a non-empty
// value failed to parse and was coerced to missing.
func coerceFloat(s string) (value float64, ok bool, warned bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, true
	}
	return v, true, false
}

func coerceInt(s string) (value int, ok bool, warned bool) {
	v, ok, warned := coerceFloat(s)
	if !ok {
		return 0, ok, warned
	}
	return int(v), true, false
}
