/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string
var datasetPath string
var statsOutPath string
var summaryOutPath string
var outputFormat string
var currentYear int

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "album-club-tools",
	Short: "Computes year-in-review statistics for an album club",
	Long:  `Analyzes the club's selection dataset to produce "wrapped"-style statistics and summaries.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.album-club-tools.yaml)")

	rootCmd.PersistentFlags().StringVarP(
		&datasetPath, "dataset", "d", "./album_club.csv", "Path to the selection dataset CSV")
	viper.BindPFlag("dataset", rootCmd.PersistentFlags().Lookup("dataset"))

	rootCmd.PersistentFlags().StringVar(
		&statsOutPath, "stats_out", "", "Path for the statistics document (default wrapped_stats.json or .yaml)")
	viper.BindPFlag("stats_out", rootCmd.PersistentFlags().Lookup("stats_out"))

	rootCmd.PersistentFlags().StringVar(
		&summaryOutPath, "summary_out", "./wrapped_summary.txt", "Path for the text summary")
	viper.BindPFlag("summary_out", rootCmd.PersistentFlags().Lookup("summary_out"))

	rootCmd.PersistentFlags().StringVar(
		&outputFormat, "format", "json", "Statistics document format: json or yaml")
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))

	rootCmd.PersistentFlags().IntVar(
		&currentYear, "current_year", 2025, "Reference year for album age computations")
	viper.BindPFlag("current_year", rootCmd.PersistentFlags().Lookup("current_year"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".album-club-tools" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".album-club-tools")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// See https://github.com/spf13/viper/pull/852
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}
