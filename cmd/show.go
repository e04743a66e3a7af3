package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ademuri/album-club-tools/internal/club"
	"github.com/ademuri/album-club-tools/internal/wrapped"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Displays the club's wrapped statistics as tables",
	Long:  `Computes the wrapped statistics from the selection dataset and renders them as tables on stdout instead of writing artifacts.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printShow(os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

var sectionHeader = color.New(color.FgCyan, color.Bold)

func printShow(out io.Writer) error {
	records, warnings, err := club.Load(viper.GetString("dataset"))
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}
	if warnings > 0 {
		fmt.Fprintf(out, "Coerced %d malformed values to missing\n\n", warnings)
	}

	doc := wrapped.BuildDocument(records, wrapped.Config{
		CurrentYear: viper.GetInt("current_year"),
	})

	sectionHeader.Fprintln(out, "Members")
	if err := renderMembers(out, doc); err != nil {
		return err
	}

	sectionHeader.Fprintln(out, "Top Genres")
	if err := renderTopGenres(out, doc); err != nil {
		return err
	}

	sectionHeader.Fprintln(out, "Decades")
	if err := renderDecades(out, doc); err != nil {
		return err
	}

	sectionHeader.Fprintln(out, "Repeat Artists")
	if err := renderRepeatArtists(out, doc); err != nil {
		return err
	}

	sectionHeader.Fprintln(out, "Timeline")
	return renderTimeline(out, doc)
}

func renderMembers(out io.Writer, doc *wrapped.Document) error {
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Member", "Albums", "Top Genre", "Genre Diversity", "Avg Release Year"})
	for _, member := range wrapped.MembersByCount(doc.MemberStats.SelectionCounts) {
		topGenre := ""
		diversity := ""
		if pref, ok := doc.MemberStats.GenrePreferences[member]; ok {
			topGenre = fmt.Sprintf("%s (%d)", pref.TopGenre.Name, pref.TopGenre.Count)
			diversity = strconv.Itoa(pref.GenreDiversity)
		}
		avgYear := ""
		if era, ok := doc.MemberStats.EraPreferences[member]; ok {
			avgYear = fmt.Sprintf("%.0f", era.AvgReleaseYear)
		}
		row := []string{
			member,
			strconv.Itoa(doc.MemberStats.SelectionCounts[member]),
			topGenre,
			diversity,
			avgYear,
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("rendering members: %w", err)
		}
	}
	return table.Render()
}

func renderTopGenres(out io.Writer, doc *wrapped.Document) error {
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Genre", "Count"})
	for _, g := range doc.GenreStats.TopGenres {
		if err := table.Append([]string{g.Name, strconv.Itoa(g.Count)}); err != nil {
			return fmt.Errorf("rendering genres: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Total unique genres: %d\n\n", doc.GenreStats.TotalUniqueGenres)
	return nil
}

func renderDecades(out io.Writer, doc *wrapped.Document) error {
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Decade", "Albums"})
	for _, decade := range wrapped.DecadesAscending(doc.DecadeStats) {
		if err := table.Append([]string{decade, strconv.Itoa(doc.DecadeStats[decade])}); err != nil {
			return fmt.Errorf("rendering decades: %w", err)
		}
	}
	return table.Render()
}

func renderRepeatArtists(out io.Writer, doc *wrapped.Document) error {
	if len(doc.ArtistStats.RepeatArtists) == 0 {
		fmt.Fprintf(out, "No repeat artists among %d unique artists\n\n", doc.ArtistStats.TotalUniqueArtists)
		return nil
	}
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Artist", "Albums"})
	for _, artist := range wrapped.MembersByCount(doc.ArtistStats.RepeatArtists) {
		if err := table.Append([]string{artist, strconv.Itoa(doc.ArtistStats.RepeatArtists[artist])}); err != nil {
			return fmt.Errorf("rendering artists: %w", err)
		}
	}
	return table.Render()
}

func renderTimeline(out io.Writer, doc *wrapped.Document) error {
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Month", "Albums", "Participants"})
	for _, point := range doc.ClubEvolution {
		row := []string{
			point.Date,
			strconv.Itoa(point.NumAlbums),
			strings.Join(point.Participants, ", "),
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("rendering timeline: %w", err)
		}
	}
	return table.Render()
}
