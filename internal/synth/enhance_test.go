package synth

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"
)

const testDataset = `Month,Year,album_name,album_artist,album_release_date,select_member,Genre
March,2024,Kind of Blue,Miles Davis,1959,Sam,"Jazz, Modal Jazz"
April,2024,OK Computer,Radiohead,1997,Dana,Rock
May,2024,Discovery,Daft Punk,2001,Steph,Electronic
`

func enhance(t *testing.T, seed int64) [][]string {
	t.Helper()
	var out bytes.Buffer
	if err := Enhance(strings.NewReader(testDataset), &out, seed); err != nil {
		t.Fatalf("Enhance: %v", err)
	}
	rows, err := csv.NewReader(&out).ReadAll()
	if err != nil {
		t.Fatalf("parsing enhanced output: %v", err)
	}
	return rows
}

func TestEnhanceAppendsColumns(t *testing.T) {
	rows := enhance(t, 42)

	header := rows[0]
	if len(header) != 7+len(enhancedColumns) {
		t.Fatalf("expected %d columns, got %d", 7+len(enhancedColumns), len(header))
	}
	for i, name := range enhancedColumns {
		if header[7+i] != name {
			t.Errorf("column %d = %q, want %q", 7+i, header[7+i], name)
		}
	}

	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(rows))
	}
	for _, row := range rows[1:] {
		if len(row) != len(header) {
			t.Errorf("row has %d fields, want %d", len(row), len(header))
		}
	}
}

func TestEnhanceDeterministic(t *testing.T) {
	first := enhance(t, 42)
	second := enhance(t, 42)

	for i := range first {
		if strings.Join(first[i], "|") != strings.Join(second[i], "|") {
			t.Errorf("row %d differs between runs with the same seed", i)
		}
	}
}

func TestEnhanceValueRanges(t *testing.T) {
	rows := enhance(t, 7)
	header := rows[0]

	col := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		t.Fatalf("missing column %q", name)
		return -1
	}

	lengthIdx := col("album_length_minutes")
	trackIdx := col("track_count")
	ratingIdx := col("avg_member_rating")
	recommendIdx := col("would_recommend")
	genreIdx := col("Genre")

	for _, row := range rows[1:] {
		length, err := strconv.Atoi(row[lengthIdx])
		if err != nil {
			t.Fatalf("album_length_minutes %q: %v", row[lengthIdx], err)
		}
		jazzy := strings.Contains(row[genreIdx], "Jazz") || strings.Contains(row[genreIdx], "Classical")
		if jazzy && (length < 40 || length > 74) {
			t.Errorf("jazz/classical length %d out of range", length)
		}
		if !jazzy && (length < 25 || length > 54) {
			t.Errorf("length %d out of range", length)
		}

		tracks, _ := strconv.Atoi(row[trackIdx])
		if tracks < 8 || tracks > 19 {
			t.Errorf("track count %d out of range", tracks)
		}

		rating, err := strconv.ParseFloat(row[ratingIdx], 64)
		if err != nil {
			t.Fatalf("avg_member_rating %q: %v", row[ratingIdx], err)
		}
		if rating < 6.0 || rating > 9.5 {
			t.Errorf("rating %v out of range", rating)
		}

		recommend := row[recommendIdx]
		switch {
		case rating >= 7.5 && recommend != "Yes":
			t.Errorf("rating %v should recommend Yes, got %q", rating, recommend)
		case rating < 7.5 && rating >= 6.5 && recommend != "Maybe":
			t.Errorf("rating %v should recommend Maybe, got %q", rating, recommend)
		case rating < 6.5 && recommend != "No":
			t.Errorf("rating %v should recommend No, got %q", rating, recommend)
		}
	}
}

func TestEnhanceRecognizesAltGenreColumn(t *testing.T) {
	dataset := "Month,album_name,album_artist,select_member,Genera\nMarch,A,B,Sam,Jazz\n"
	var out bytes.Buffer
	if err := Enhance(strings.NewReader(dataset), &out, 1); err != nil {
		t.Fatalf("Enhance: %v", err)
	}
	rows, err := csv.NewReader(&out).ReadAll()
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}

	lengthIdx := -1
	for i, h := range rows[0] {
		if h == "album_length_minutes" {
			lengthIdx = i
		}
	}
	length, _ := strconv.Atoi(rows[1][lengthIdx])
	if length < 40 {
		t.Errorf("Genera column should trigger the jazz length range, got %d", length)
	}
}
