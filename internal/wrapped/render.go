package wrapped

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// RenderSummary writes the human-readable wrapped summary. Section
// order and formatting are fixed so the output is stable for a given
// document.
func RenderSummary(w io.Writer, doc *Document) {
	fmt.Fprintf(w, "=== ALBUM CLUB WRAPPED ===\n\n")

	fmt.Fprintln(w, "MEMBER HIGHLIGHTS")
	for _, member := range MembersByCount(doc.MemberStats.SelectionCounts) {
		fmt.Fprintf(w, "  %s: %d albums selected\n", member, doc.MemberStats.SelectionCounts[member])
		if pref, ok := doc.MemberStats.GenrePreferences[member]; ok {
			fmt.Fprintf(w, "    Favorite genre: %s (%d picks)\n", pref.TopGenre.Name, pref.TopGenre.Count)
		}
		if era, ok := doc.MemberStats.EraPreferences[member]; ok {
			fmt.Fprintf(w, "    Average release year: %.0f\n", era.AvgReleaseYear)
		}
	}

	fmt.Fprintln(w, "\nGENRE INSIGHTS")
	fmt.Fprintf(w, "  Total unique genres explored: %d\n", doc.GenreStats.TotalUniqueGenres)
	fmt.Fprintln(w, "  Top 5 genres:")
	top := doc.GenreStats.TopGenres
	if len(top) > 5 {
		top = top[:5]
	}
	for _, g := range top {
		fmt.Fprintf(w, "    - %s: %d\n", g.Name, g.Count)
	}

	fmt.Fprintln(w, "\nDECADE BREAKDOWN")
	for _, decade := range DecadesAscending(doc.DecadeStats) {
		fmt.Fprintf(w, "  %s: %d albums\n", decade, doc.DecadeStats[decade])
	}

	fmt.Fprintln(w, "\nSUPERLATIVES")
	sup := doc.Superlatives
	if sup.MostEclectic != nil {
		fmt.Fprintf(w, "  Most Eclectic Taste: %s (%.0f different genres)\n", sup.MostEclectic.Member, sup.MostEclectic.Value)
	}
	if sup.TimeTraveler != nil {
		fmt.Fprintf(w, "  Time Traveler: %s (%.0f year span)\n", sup.TimeTraveler.Member, sup.TimeTraveler.Value)
	}
	if sup.VintageCollector != nil {
		fmt.Fprintf(w, "  Vintage Collector: %s (avg year: %.0f)\n", sup.VintageCollector.Member, sup.VintageCollector.Value)
	}
	if sup.Trendsetter != nil {
		fmt.Fprintf(w, "  Trendsetter: %s (avg year: %.0f)\n", sup.Trendsetter.Member, sup.Trendsetter.Value)
	}

	fmt.Fprintln(w, "\nARTIST LOVE")
	fmt.Fprintf(w, "  Total unique artists: %d\n", doc.ArtistStats.TotalUniqueArtists)
	if len(doc.ArtistStats.RepeatArtists) > 0 {
		fmt.Fprintln(w, "  Artists we couldn't get enough of:")
		for _, artist := range ArtistsByCount(doc.ArtistStats.RepeatArtists) {
			fmt.Fprintf(w, "    - %s: %d albums\n", artist, doc.ArtistStats.RepeatArtists[artist])
		}
	}
}

// MembersByCount orders members by selection count descending, ties
// alphabetical, so the rendering is stable given only the document.
func MembersByCount(counts map[string]int) []string {
	members := make([]string, 0, len(counts))
	for member := range counts {
		members = append(members, member)
	}
	sort.Slice(members, func(i, j int) bool {
		if counts[members[i]] != counts[members[j]] {
			return counts[members[i]] > counts[members[j]]
		}
		return members[i] < members[j]
	})
	return members
}

func ArtistsByCount(counts map[string]int) []string {
	return MembersByCount(counts)
}

// DecadesAscending sorts decade labels by their numeric value, not
// lexically, so "990s" would still sort before "1970s".
func DecadesAscending(decades map[string]int) []string {
	labels := make([]string, 0, len(decades))
	for label := range decades {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return decadeValue(labels[i]) < decadeValue(labels[j])
	})
	return labels
}

func decadeValue(label string) int {
	v, err := strconv.Atoi(strings.TrimSuffix(label, "s"))
	if err != nil {
		return 0
	}
	return v
}
