package wrapped

// Document is the top-level statistics document for a wrapped run.
// It serializes to JSON or YAML with plain numeric literals only.
type Document struct {
	MemberStats     MemberStats      `json:"member_stats" yaml:"member_stats"`
	GenreStats      GenreStats       `json:"genre_stats" yaml:"genre_stats"`
	DecadeStats     map[string]int   `json:"decade_stats" yaml:"decade_stats"`
	AlbumAgeStats   *AlbumAgeStats   `json:"album_age_stats,omitempty" yaml:"album_age_stats,omitempty"`
	MonthlyPatterns MonthlyPatterns  `json:"monthly_patterns" yaml:"monthly_patterns"`
	ArtistStats     ArtistStats      `json:"artist_stats" yaml:"artist_stats"`
	Superlatives    Superlatives     `json:"superlatives" yaml:"superlatives"`
	ClubEvolution   []EvolutionPoint `json:"club_evolution" yaml:"club_evolution"`
}

type MemberStats struct {
	SelectionCounts  map[string]int             `json:"selection_counts" yaml:"selection_counts"`
	GenrePreferences map[string]GenrePreference `json:"genre_preferences" yaml:"genre_preferences"`
	EraPreferences   map[string]EraStats        `json:"era_preferences" yaml:"era_preferences"`
}

type GenrePreference struct {
	TopGenre       GenreCount `json:"top_genre" yaml:"top_genre"`
	GenreDiversity int        `json:"genre_diversity" yaml:"genre_diversity"`
}

type GenreCount struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

type EraStats struct {
	AvgReleaseYear float64 `json:"avg_release_year" yaml:"avg_release_year"`
	OldestPick     float64 `json:"oldest_pick" yaml:"oldest_pick"`
	NewestPick     float64 `json:"newest_pick" yaml:"newest_pick"`
	YearSpan       float64 `json:"year_span" yaml:"year_span"`
}

type GenreStats struct {
	TopGenres         []GenreCount   `json:"top_genres" yaml:"top_genres"`
	TotalUniqueGenres int            `json:"total_unique_genres" yaml:"total_unique_genres"`
	MonthlyDiversity  map[string]int `json:"monthly_diversity" yaml:"monthly_diversity"`
}

type AlbumAgeStats struct {
	AvgAlbumAge    float64  `json:"avg_album_age" yaml:"avg_album_age"`
	MedianAlbumAge float64  `json:"median_album_age" yaml:"median_album_age"`
	OldestAlbum    AlbumRef `json:"oldest_album" yaml:"oldest_album"`
	NewestAlbum    AlbumRef `json:"newest_album" yaml:"newest_album"`
}

type AlbumRef struct {
	Name   string `json:"name" yaml:"name"`
	Artist string `json:"artist" yaml:"artist"`
	Year   int    `json:"year" yaml:"year"`
}

type MonthlyPatterns struct {
	AlbumsPerMonth         map[string]int     `json:"albums_per_month" yaml:"albums_per_month"`
	AvgSelectionsPerPerson map[string]float64 `json:"avg_selections_per_person" yaml:"avg_selections_per_person"`
}

type ArtistStats struct {
	TotalUniqueArtists int            `json:"total_unique_artists" yaml:"total_unique_artists"`
	RepeatArtists      map[string]int `json:"repeat_artists" yaml:"repeat_artists"`
}

// Superlatives are derived awards, one winner each. A category is
// omitted when no member qualifies for it.
type Superlatives struct {
	MostEclectic     *Award `json:"most_eclectic,omitempty" yaml:"most_eclectic,omitempty"`
	TimeTraveler     *Award `json:"time_traveler,omitempty" yaml:"time_traveler,omitempty"`
	VintageCollector *Award `json:"vintage_collector,omitempty" yaml:"vintage_collector,omitempty"`
	Trendsetter      *Award `json:"trendsetter,omitempty" yaml:"trendsetter,omitempty"`
}

type Award struct {
	Member string  `json:"member" yaml:"member"`
	Value  float64 `json:"value" yaml:"value"`
}

type EvolutionPoint struct {
	Date         string   `json:"date" yaml:"date"`
	Participants []string `json:"participants" yaml:"participants"`
	NumAlbums    int      `json:"num_albums" yaml:"num_albums"`
}
