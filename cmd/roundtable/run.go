package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/safwanpaleri/roundtable/config"
	"github.com/safwanpaleri/roundtable/conversation"
	"github.com/safwanpaleri/roundtable/evaluation"
	"github.com/safwanpaleri/roundtable/logger"
	metrics "github.com/safwanpaleri/roundtable/metrics/prometheus"
	"github.com/safwanpaleri/roundtable/stt"
	"github.com/safwanpaleri/roundtable/tts"
)

var (
	runAudioDir string
	runNoJudge  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one conversation session",
	Long: `Run loads the session config, runs the conversation to completion,
prints the transcript, and saves an evaluation record.

With --audio-dir set, every utterance is synthesized to a PCM file and
player turns read from standard input.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		return runSession(cmd.Context(), cfg)
	},
}

func init() {
	runCmd.Flags().StringVar(&runAudioDir, "audio-dir", "", "directory for synthesized utterance audio (enables speech output)")
	runCmd.Flags().BoolVar(&runNoJudge, "no-judge", false, "skip judge scoring and result persistence")
	rootCmd.AddCommand(runCmd)
}

func runSession(ctx context.Context, cfg *config.Config) error {
	startMetricsExporter(cfg)

	roster, err := cfg.BuildRoster()
	if err != nil {
		return err
	}
	defer closeRoster(roster)

	hook, err := buildHook(cfg)
	if err != nil {
		return err
	}

	sessionCfg := conversation.NewSessionConfig(cfg.Topic, cfg.DialogueBudget, roster)
	collector := evaluation.NewCollector(cfg.Names())
	scheduler := conversation.NewScheduler(rand.New(rand.NewSource(time.Now().UnixNano())))
	orch := conversation.NewOrchestrator(sessionCfg, scheduler, hook, collector)

	if err := orch.Run(ctx); err != nil {
		return err
	}

	for _, line := range orch.History().Lines() {
		fmt.Println(line)
	}

	if runNoJudge {
		return nil
	}

	judgeProvider, err := cfg.BuildJudge()
	if err != nil {
		return err
	}
	defer judgeProvider.Close()

	judge := &evaluation.Judge{Provider: judgeProvider}
	store := evaluation.NewStore(cfg.ResultsPath)
	if err := collector.Finish(ctx, judge, orch.History().Lines(), store); err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	return nil
}

func buildHook(cfg *config.Config) (conversation.PresentationHook, error) {
	if runAudioDir == "" {
		return conversation.NopHook{}, nil
	}

	if err := os.MkdirAll(runAudioDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audio directory: %w", err)
	}

	return &conversation.StageHook{
		Speech:    tts.NewGeminiService(cfg.Speech.Model, ""),
		Voice:     cfg.Speech.Voice,
		Capture:   stt.NewReaderCapture("stdin", os.Stdin),
		OutputDir: runAudioDir,
	}, nil
}

func startMetricsExporter(cfg *config.Config) {
	if cfg.MetricsAddr == "" {
		return
	}
	exporter := metrics.NewExporter(cfg.MetricsAddr)
	go func() {
		if err := exporter.Start(); err != nil {
			logger.Warn("metrics exporter stopped", "error", err)
		}
	}()
	logger.Info("metrics exporter started", "addr", cfg.MetricsAddr)
}

func closeRoster(roster []*conversation.Participant) {
	for _, p := range roster {
		if p.Provider != nil {
			if err := p.Provider.Close(); err != nil {
				logger.Warn("failed to close provider", "participant", p.Name, "error", err)
			}
		}
	}
}
