package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "gusp",
	Short: "AI planning assistant for Guides and Späher leaders",
	Long: `GuSp Planungs-Assistent is an AI-backed helper for scout leaders
working with Guides und Späher (ages 10-13). It answers questions in a
chat loop, searches a game catalog with hybrid semantic and lexical
ranking, and builds structured Heimstunde plans.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".gusp.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
