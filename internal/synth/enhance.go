package synth

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strings"
)

// Columns appended to the dataset by Enhance, in output order.
var enhancedColumns = []string{
	"album_length_minutes",
	"track_count",
	"avg_member_rating",
	"discussion_attendance_count",
	"standout_tracks",
	"discussion_themes",
	"new_discovery_for_most",
	"selector_familiarity",
	"would_recommend",
	"discussion_duration",
}

var discussionThemes = []string{
	"production, nostalgia",
	"lyrics, melody",
	"innovation, energy",
	"emotion, storytelling",
	"rhythm, atmosphere",
	"cultural impact, history",
	"instrumentation, vocals",
}

var familiarityLevels = []string{"New to me", "Heard before", "Familiar", "Old favorite"}
var familiarityWeights = []float64{0.3, 0.3, 0.25, 0.15}

// Enhance copies the dataset from r to w, appending synthetic
// discussion and rating columns. The same seed always produces the
// same output, so enhanced fixtures are reproducible.
func Enhance(r io.Reader, w io.Writer, seed int64) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("reading header: %w", err)
	}

	genreIdx := -1
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "Genre" || name == "Genera" {
			genreIdx = i
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(append(append([]string{}, header...), enhancedColumns...)); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading row: %w", err)
		}

		genre := ""
		if genreIdx >= 0 && genreIdx < len(row) {
			genre = row[genreIdx]
		}

		out := append(append([]string{}, row...), enhanceRow(rng, genre)...)
		if err := cw.Write(out); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}

func enhanceRow(rng *rand.Rand, genre string) []string {
	// Jazz and classical albums run longer.
	var length int
	if strings.Contains(genre, "Jazz") || strings.Contains(genre, "Classical") {
		length = 40 + rng.Intn(35)
	} else {
		length = 25 + rng.Intn(30)
	}

	trackCount := 8 + rng.Intn(12)

	rating := clip(rng.NormFloat64()+7.5, 6.0, 9.5)
	rating = math.Round(rating*10) / 10

	attendance := 3 + rng.Intn(3)

	standout := fmt.Sprintf("Track %d, Track %d", 1+rng.Intn(trackCount), 1+rng.Intn(trackCount))

	themes := discussionThemes[rng.Intn(len(discussionThemes))]

	discovery := "No"
	if rng.Float64() < 0.6 {
		discovery = "Yes"
	}

	familiarity := weightedChoice(rng, familiarityLevels, familiarityWeights)

	recommend := "No"
	switch {
	case rating >= 7.5:
		recommend = "Yes"
	case rating >= 6.5:
		recommend = "Maybe"
	}

	duration := int(20+(rating-6)*15) + rng.Intn(20) - 10

	return []string{
		fmt.Sprintf("%d", length),
		fmt.Sprintf("%d", trackCount),
		fmt.Sprintf("%.1f", rating),
		fmt.Sprintf("%d", attendance),
		standout,
		themes,
		discovery,
		familiarity,
		recommend,
		fmt.Sprintf("%d", duration),
	}
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func weightedChoice(rng *rand.Rand, options []string, weights []float64) string {
	roll := rng.Float64()
	var cumulative float64
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return options[i]
		}
	}
	return options[len(options)-1]
}
