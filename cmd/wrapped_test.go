package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const testDataset = `Month,Year,album_name,album_artist,album_release_date,select_member,Genera
March ,2024,Kind of Blue,Miles Davis,1959,Sam,"Jazz, Modal Jazz"
March,2024,OK Computer,Radiohead,1997,Sam,Rock
April,2024,In Rainbows,Radiohead,2007,Dana,Rock
`

func setupWrappedRun(t *testing.T, dataset string) (statsPath, summaryPath string) {
	t.Helper()
	dir := t.TempDir()

	datasetPath := filepath.Join(dir, "album_club.csv")
	if err := os.WriteFile(datasetPath, []byte(dataset), 0644); err != nil {
		t.Fatalf("writing dataset: %v", err)
	}

	statsPath = filepath.Join(dir, "stats.out")
	summaryPath = filepath.Join(dir, "summary.txt")

	viper.Set("dataset", datasetPath)
	viper.Set("stats_out", statsPath)
	viper.Set("summary_out", summaryPath)
	viper.Set("format", "json")
	viper.Set("current_year", 2025)
	t.Cleanup(viper.Reset)

	return statsPath, summaryPath
}

func TestRunWrappedJSON(t *testing.T) {
	statsPath, summaryPath := setupWrappedRun(t, testDataset)

	var out bytes.Buffer
	if err := runWrapped(&out); err != nil {
		t.Fatalf("runWrapped: %v", err)
	}
	if !strings.Contains(out.String(), "Wrote") {
		t.Errorf("expected status line, got %q", out.String())
	}

	data, err := os.ReadFile(statsPath)
	if err != nil {
		t.Fatalf("reading stats document: %v", err)
	}

	var doc struct {
		MemberStats struct {
			SelectionCounts map[string]int `json:"selection_counts"`
		} `json:"member_stats"`
		GenreStats struct {
			TotalUniqueGenres int `json:"total_unique_genres"`
		} `json:"genre_stats"`
		DecadeStats map[string]int `json:"decade_stats"`
		ArtistStats struct {
			RepeatArtists map[string]int `json:"repeat_artists"`
		} `json:"artist_stats"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parsing stats document: %v", err)
	}

	if doc.MemberStats.SelectionCounts["Sam"] != 2 || doc.MemberStats.SelectionCounts["Dana"] != 1 {
		t.Errorf("selection counts = %v", doc.MemberStats.SelectionCounts)
	}
	if doc.GenreStats.TotalUniqueGenres != 3 {
		t.Errorf("total unique genres = %d, want 3", doc.GenreStats.TotalUniqueGenres)
	}
	if doc.DecadeStats["1950s"] != 1 || doc.DecadeStats["1990s"] != 1 || doc.DecadeStats["2000s"] != 1 {
		t.Errorf("decade stats = %v", doc.DecadeStats)
	}
	if doc.ArtistStats.RepeatArtists["Radiohead"] != 2 {
		t.Errorf("repeat artists = %v", doc.ArtistStats.RepeatArtists)
	}

	summary, err := os.ReadFile(summaryPath)
	if err != nil {
		t.Fatalf("reading summary: %v", err)
	}
	if !strings.Contains(string(summary), "MEMBER HIGHLIGHTS") {
		t.Errorf("summary missing sections:\n%s", summary)
	}
	if !strings.Contains(string(summary), "Sam: 2 albums selected") {
		t.Errorf("summary missing member line:\n%s", summary)
	}
}

func TestRunWrappedYAML(t *testing.T) {
	statsPath, _ := setupWrappedRun(t, testDataset)
	viper.Set("format", "yaml")

	var out bytes.Buffer
	if err := runWrapped(&out); err != nil {
		t.Fatalf("runWrapped: %v", err)
	}

	data, err := os.ReadFile(statsPath)
	if err != nil {
		t.Fatalf("reading stats document: %v", err)
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parsing yaml document: %v", err)
	}
	if _, ok := doc["member_stats"]; !ok {
		t.Errorf("yaml document missing member_stats: %v", doc)
	}
}

func TestRunWrappedUnknownFormat(t *testing.T) {
	setupWrappedRun(t, testDataset)
	viper.Set("format", "toml")

	var out bytes.Buffer
	err := runWrapped(&out)
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "toml") {
		t.Errorf("error should name the format: %v", err)
	}
}

func TestRunWrappedMissingColumns(t *testing.T) {
	_, summaryPath := setupWrappedRun(t, "Month,Year,Genre\nMarch,2024,Jazz\n")

	var out bytes.Buffer
	err := runWrapped(&out)
	if err == nil {
		t.Fatal("expected error for missing required columns")
	}
	if !strings.Contains(err.Error(), "select_member") {
		t.Errorf("error should name the missing column: %v", err)
	}

	// A fatal load means no artifacts at all.
	if _, err := os.Stat(summaryPath); !os.IsNotExist(err) {
		t.Error("no summary should be written on fatal failure")
	}
}

func TestRunWrappedReportsCoercionWarnings(t *testing.T) {
	dataset := strings.Replace(testDataset, "1959", "unknown", 1)
	setupWrappedRun(t, dataset)

	var out bytes.Buffer
	if err := runWrapped(&out); err != nil {
		t.Fatalf("runWrapped: %v", err)
	}
	if !strings.Contains(out.String(), "Coerced 1 malformed") {
		t.Errorf("expected coercion warning line, got %q", out.String())
	}
}
