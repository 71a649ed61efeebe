package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/safwanpaleri/roundtable/logger"
	_ "github.com/safwanpaleri/roundtable/providers/all"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "roundtable",
	Short:         "Roundtable - multi-agent group conversation simulator",
	SilenceUsage:  true,  // Don't print usage on error
	SilenceErrors: false, // Do print errors
	Long: `Roundtable orchestrates a simulated group conversation between LLM-backed
characters. A moderator opens and closes the session, a priority scheduler
decides who speaks next, ties become simulated interruptions, and finished
transcripts are scored by a judge model.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// API keys may come from a local .env file; a missing file is fine.
		_ = godotenv.Load()

		if cmd.Flags().Changed("verbose") {
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error getting verbose flag: %v\n", err)
				return
			}
			logger.SetVerbose(verbose)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "roundtable.yaml", "path to the session config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Error already printed by cobra
		os.Exit(1)
	}
}

func main() {
	Execute()
}
