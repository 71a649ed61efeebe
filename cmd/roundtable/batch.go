package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/safwanpaleri/roundtable/batch"
	"github.com/safwanpaleri/roundtable/config"
	"github.com/safwanpaleri/roundtable/evaluation"
	"github.com/safwanpaleri/roundtable/logger"
)

var (
	batchCasesPath string
	batchStart     int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run a queue of test cases without audio or player input",
	Long: `Batch loads a JSON file of test cases, each overriding the base config's
topic and participant descriptions, and runs them back to back. Every case
produces one evaluation record.

An interrupt signal stops the queue between cases; the case in flight runs
to completion first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cases, err := batch.LoadTestCases(batchCasesPath)
		if err != nil {
			return err
		}

		startMetricsExporter(cfg)

		judgeProvider, err := cfg.BuildJudge()
		if err != nil {
			return err
		}
		defer judgeProvider.Close()

		runner := &batch.Runner{
			Base:  cfg,
			Cases: cases,
			Start: batchStart,
			Judge: &evaluation.Judge{Provider: judgeProvider},
			Store: evaluation.NewStore(cfg.ResultsPath),
		}

		interrupts := make(chan os.Signal, 1)
		signal.Notify(interrupts, os.Interrupt)
		defer signal.Stop(interrupts)
		go func() {
			<-interrupts
			logger.Info("interrupt received, stopping after current case")
			runner.Stop()
		}()

		return runner.Run(cmd.Context())
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchCasesPath, "cases", "testcases.json", "path to the JSON test-case file")
	batchCmd.Flags().IntVar(&batchStart, "start", 0, "index of the first case to run")
	rootCmd.AddCommand(batchCmd)
}
