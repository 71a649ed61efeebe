package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/safwanpaleri/roundtable/config"
	"github.com/safwanpaleri/roundtable/evaluation"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "List saved evaluation records, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		records, err := evaluation.NewStore(cfg.ResultsPath).List()
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("no evaluation records found")
			return nil
		}

		for _, r := range records {
			fmt.Printf("%s %s  coherence=%.1f relevance=%.1f naturalness=%.1f engagement=%.1f contextual=%.1f\n",
				r.Date, r.Time,
				r.Scores.Coherence, r.Scores.Relevance, r.Scores.Naturalness,
				r.Scores.Engagement, r.Scores.ContextualAccuracy)

			pairs := make([]string, 0, len(r.Participants))
			for i, name := range r.Participants {
				if i < len(r.AvgLatencySeconds) {
					pairs = append(pairs, fmt.Sprintf("%s=%.2fs", name, r.AvgLatencySeconds[i]))
				}
			}
			if len(pairs) > 0 {
				fmt.Printf("  avg latency: %s\n", strings.Join(pairs, " "))
			}
		}
		return nil
	},
}

var resultsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every saved evaluation record",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := evaluation.NewStore(cfg.ResultsPath).DeleteAll(); err != nil {
			return err
		}
		fmt.Println("evaluation records deleted")
		return nil
	},
}

func init() {
	resultsCmd.AddCommand(resultsClearCmd)
	rootCmd.AddCommand(resultsCmd)
}
