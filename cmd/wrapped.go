package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ademuri/album-club-tools/internal/club"
	"github.com/ademuri/album-club-tools/internal/wrapped"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var wrappedCmd = &cobra.Command{
	Use:   "wrapped",
	Short: "Generates the club's wrapped statistics artifacts",
	Long:  `Aggregates the selection dataset into per-member, per-genre, per-decade, and superlative statistics, then writes a structured statistics document and a formatted text summary.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := runWrapped(os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating wrapped report: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(wrappedCmd)
}

func runWrapped(out io.Writer) error {
	records, warnings, err := club.Load(viper.GetString("dataset"))
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	doc := wrapped.BuildDocument(records, wrapped.Config{
		CurrentYear: viper.GetInt("current_year"),
	})

	statsPath := viper.GetString("stats_out")
	data, defaultPath, err := marshalDocument(doc, viper.GetString("format"))
	if err != nil {
		return err
	}
	if statsPath == "" {
		statsPath = defaultPath
	}

	// Each artifact is marshaled fully before anything touches disk,
	// so a failed run never leaves a partial file behind.
	if err := os.WriteFile(statsPath, data, 0644); err != nil {
		return fmt.Errorf("writing statistics document: %w", err)
	}

	var summary bytes.Buffer
	wrapped.RenderSummary(&summary, doc)
	if err := os.WriteFile(viper.GetString("summary_out"), summary.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	if warnings > 0 {
		fmt.Fprintf(out, "Coerced %d malformed values to missing\n", warnings)
	}
	fmt.Fprintf(out, "Wrote %s and %s\n", statsPath, viper.GetString("summary_out"))
	return nil
}

func marshalDocument(doc *wrapped.Document, format string) (data []byte, defaultPath string, err error) {
	switch format {
	case "json":
		data, err = json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, "", fmt.Errorf("encoding statistics: %w", err)
		}
		return data, "./wrapped_stats.json", nil

	case "yaml":
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return nil, "", fmt.Errorf("encoding statistics: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return nil, "", fmt.Errorf("encoding statistics: %w", err)
		}
		return buf.Bytes(), "./wrapped_stats.yaml", nil

	default:
		return nil, "", fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}
