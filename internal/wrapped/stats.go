package wrapped

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/ademuri/album-club-tools/internal/club"
)

// Config holds the injected inputs aggregation depends on besides the
// dataset itself.
type Config struct {
	// CurrentYear is the reference year for album-age computations.
	CurrentYear int
}

// BuildDocument computes the full statistics document from the loaded
// dataset. Each category is a pure function of the record slice; the
// records are never mutated.
func BuildDocument(records []club.SelectionRecord, cfg Config) *Document {
	return &Document{
		MemberStats:     memberStats(records),
		GenreStats:      genreStats(records),
		DecadeStats:     decadeStats(records),
		AlbumAgeStats:   albumAgeStats(records, cfg.CurrentYear),
		MonthlyPatterns: monthlyPatterns(records),
		ArtistStats:     artistStats(records),
		Superlatives:    superlatives(records),
		ClubEvolution:   clubEvolution(records),
	}
}

// counter counts string keys while remembering first-seen order, so
// that ties always break toward the earlier-encountered key instead
// of map iteration order.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// mostCommon returns up to n entries by descending count, ties broken
// by first-seen order.
func (c *counter) mostCommon(n int) []GenreCount {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})
	if n >= 0 && len(keys) > n {
		keys = keys[:n]
	}
	out := make([]GenreCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, GenreCount{Name: k, Count: c.counts[k]})
	}
	return out
}

func (c *counter) distinct() int {
	return len(c.order)
}

// selectors returns the distinct non-empty selector members in
// first-encountered order.
func selectors(records []club.SelectionRecord) []string {
	c := newCounter()
	for i := range records {
		if records[i].SelectorMember != "" {
			c.add(records[i].SelectorMember)
		}
	}
	return c.order
}

func memberStats(records []club.SelectionRecord) MemberStats {
	counts := make(map[string]int)
	for i := range records {
		if records[i].SelectorMember != "" {
			counts[records[i].SelectorMember]++
		}
	}

	genrePrefs := make(map[string]GenrePreference)
	eraPrefs := make(map[string]EraStats)
	for _, member := range selectors(records) {
		genres := newCounter()
		var years []float64
		for i := range records {
			if records[i].SelectorMember != member {
				continue
			}
			for _, g := range records[i].Genres() {
				genres.add(g)
			}
			if records[i].ReleaseYearKnown {
				years = append(years, records[i].ReleaseYear)
			}
		}

		if genres.distinct() > 0 {
			genrePrefs[member] = GenrePreference{
				TopGenre:       genres.mostCommon(1)[0],
				GenreDiversity: genres.distinct(),
			}
		}

		if len(years) > 0 {
			oldest, newest := minMax(years)
			eraPrefs[member] = EraStats{
				AvgReleaseYear: mean(years),
				OldestPick:     oldest,
				NewestPick:     newest,
				YearSpan:       newest - oldest,
			}
		}
	}

	return MemberStats{
		SelectionCounts:  counts,
		GenrePreferences: genrePrefs,
		EraPreferences:   eraPrefs,
	}
}

func genreStats(records []club.SelectionRecord) GenreStats {
	all := newCounter()
	for i := range records {
		for _, g := range records[i].Genres() {
			all.add(g)
		}
	}

	monthly := make(map[string]int)
	for _, month := range distinctMonths(records) {
		c := newCounter()
		for i := range records {
			if records[i].Month != month {
				continue
			}
			for _, g := range records[i].Genres() {
				c.add(g)
			}
		}
		monthly[month] = c.distinct()
	}

	return GenreStats{
		TopGenres:         all.mostCommon(10),
		TotalUniqueGenres: all.distinct(),
		MonthlyDiversity:  monthly,
	}
}

func decadeStats(records []club.SelectionRecord) map[string]int {
	decades := make(map[string]int)
	for i := range records {
		if !records[i].ReleaseYearKnown {
			continue
		}
		decades[decadeLabel(records[i].ReleaseYear)]++
	}
	return decades
}

func decadeLabel(year float64) string {
	return fmt.Sprintf("%ds", int(math.Floor(year/10))*10)
}

func albumAgeStats(records []club.SelectionRecord, currentYear int) *AlbumAgeStats {
	var ages []float64
	var oldest, newest *club.SelectionRecord
	for i := range records {
		if !records[i].ReleaseYearKnown {
			continue
		}
		ages = append(ages, float64(currentYear)-records[i].ReleaseYear)
		if oldest == nil || records[i].ReleaseYear < oldest.ReleaseYear {
			oldest = &records[i]
		}
		if newest == nil || records[i].ReleaseYear > newest.ReleaseYear {
			newest = &records[i]
		}
	}
	if len(ages) == 0 {
		return nil
	}

	return &AlbumAgeStats{
		AvgAlbumAge:    mean(ages),
		MedianAlbumAge: median(ages),
		OldestAlbum:    albumRef(oldest),
		NewestAlbum:    albumRef(newest),
	}
}

func albumRef(r *club.SelectionRecord) AlbumRef {
	return AlbumRef{
		Name:   r.AlbumName,
		Artist: r.AlbumArtist,
		Year:   int(r.ReleaseYear),
	}
}

func monthlyPatterns(records []club.SelectionRecord) MonthlyPatterns {
	perMonth := make(map[string]int)
	for i := range records {
		perMonth[records[i].Month]++
	}

	avg := make(map[string]float64)
	for _, month := range distinctMonths(records) {
		members := newCounter()
		albums := 0
		for i := range records {
			if records[i].Month != month {
				continue
			}
			albums++
			if records[i].SelectorMember != "" {
				members.add(records[i].SelectorMember)
			}
		}
		if members.distinct() > 0 {
			avg[month] = float64(albums) / float64(members.distinct())
		} else {
			avg[month] = 0
		}
	}

	return MonthlyPatterns{
		AlbumsPerMonth:         perMonth,
		AvgSelectionsPerPerson: avg,
	}
}

func artistStats(records []club.SelectionRecord) ArtistStats {
	artists := newCounter()
	for i := range records {
		if records[i].AlbumArtist != "" {
			artists.add(records[i].AlbumArtist)
		}
	}

	repeats := make(map[string]int)
	for artist, count := range artists.counts {
		if count > 1 {
			repeats[artist] = count
		}
	}

	return ArtistStats{
		TotalUniqueArtists: artists.distinct(),
		RepeatArtists:      repeats,
	}
}

func superlatives(records []club.SelectionRecord) Superlatives {
	members := selectors(records)

	var sup Superlatives

	// Most eclectic: highest genre diversity. Every member with a
	// selector qualifies, even at zero genres.
	sup.MostEclectic = pickMax(members, func(member string) (float64, bool) {
		genres := newCounter()
		for i := range records {
			if records[i].SelectorMember != member {
				continue
			}
			for _, g := range records[i].Genres() {
				genres.add(g)
			}
		}
		return float64(genres.distinct()), true
	})

	memberYears := func(member string) []float64 {
		var years []float64
		for i := range records {
			if records[i].SelectorMember == member && records[i].ReleaseYearKnown {
				years = append(years, records[i].ReleaseYear)
			}
		}
		return years
	}

	sup.TimeTraveler = pickMax(members, func(member string) (float64, bool) {
		years := memberYears(member)
		if len(years) == 0 {
			return 0, false
		}
		oldest, newest := minMax(years)
		return newest - oldest, true
	})

	meanYear := func(member string) (float64, bool) {
		years := memberYears(member)
		if len(years) == 0 {
			return 0, false
		}
		return mean(years), true
	}

	sup.VintageCollector = pickMin(members, meanYear)
	sup.Trendsetter = pickMax(members, meanYear)

	return sup
}

// pickMax selects the member with the strictly largest metric value.
// Members are visited in first-encountered order, and only a strictly
// greater value displaces the current winner.
func pickMax(members []string, metric func(string) (float64, bool)) *Award {
	var winner *Award
	for _, member := range members {
		value, ok := metric(member)
		if !ok {
			continue
		}
		if winner == nil || value > winner.Value {
			winner = &Award{Member: member, Value: value}
		}
	}
	return winner
}

func pickMin(members []string, metric func(string) (float64, bool)) *Award {
	var winner *Award
	for _, member := range members {
		value, ok := metric(member)
		if !ok {
			continue
		}
		if winner == nil || value < winner.Value {
			winner = &Award{Member: member, Value: value}
		}
	}
	return winner
}

func clubEvolution(records []club.SelectionRecord) []EvolutionPoint {
	type monthGroup struct {
		date         time.Time
		participants *counter
		albums       int
	}

	groups := make(map[time.Time]*monthGroup)
	var order []time.Time
	for i := range records {
		if !records[i].YearKnown {
			continue
		}
		date, err := time.Parse("2006-January", fmt.Sprintf("%d-%s", records[i].Year, records[i].Month))
		if err != nil {
			// Unparseable month names drop the entry, not the run.
			continue
		}
		g, ok := groups[date]
		if !ok {
			g = &monthGroup{date: date, participants: newCounter()}
			groups[date] = g
			order = append(order, date)
		}
		g.albums++
		if records[i].SelectorMember != "" {
			g.participants.add(records[i].SelectorMember)
		}
	}

	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j]) })

	points := make([]EvolutionPoint, 0, len(order))
	for _, date := range order {
		g := groups[date]
		participants := g.participants.order
		if participants == nil {
			participants = []string{}
		}
		points = append(points, EvolutionPoint{
			Date:         date.Format("January 2006"),
			Participants: participants,
			NumAlbums:    g.albums,
		})
	}
	return points
}

func distinctMonths(records []club.SelectionRecord) []string {
	c := newCounter()
	for i := range records {
		c.add(records[i].Month)
	}
	return c.order
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

func minMax(values []float64) (min float64, max float64) {
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
