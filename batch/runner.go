package batch

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/safwanpaleri/roundtable/config"
	"github.com/safwanpaleri/roundtable/conversation"
	"github.com/safwanpaleri/roundtable/evaluation"
	"github.com/safwanpaleri/roundtable/logger"
)

// Runner executes test cases sequentially. Each case runs a full
// session and waits for its evaluation record to be saved before the
// next case starts.
type Runner struct {
	Base  *config.Config
	Cases []TestCase
	// Start skips forward to this case index before running.
	Start int

	Judge *evaluation.Judge
	Store *evaluation.Store

	stop atomic.Bool
}

// Stop requests cancellation. The flag is checked between cases only;
// a session already in flight runs to completion, including its
// evaluation save.
func (r *Runner) Stop() {
	r.stop.Store(true)
}

// Run executes the queue from the start index. Per-case failures are
// logged and do not stop the queue.
func (r *Runner) Run(ctx context.Context) error {
	if r.Start < 0 || r.Start >= len(r.Cases) {
		return fmt.Errorf("start index %d out of range for %d cases", r.Start, len(r.Cases))
	}

	for i := r.Start; i < len(r.Cases); i++ {
		if r.stop.Load() {
			logger.Info("batch stopped", "completed", i-r.Start, "remaining", len(r.Cases)-i)
			return nil
		}

		logger.Info("batch case starting", "case", i+1, "total", len(r.Cases), "topic", r.Cases[i].Topic)
		if err := r.runCase(ctx, r.Cases[i]); err != nil {
			logger.Error("batch case failed", "case", i+1, "error", err)
		}
	}

	logger.Info("batch complete", "cases", len(r.Cases)-r.Start)
	return nil
}

func (r *Runner) runCase(ctx context.Context, tc TestCase) error {
	roster, err := r.Base.BuildRoster()
	if err != nil {
		return err
	}
	defer closeRoster(roster)

	// The case overrides the base topic and the per-participant
	// descriptions, in roster order.
	topic := tc.Topic
	if topic == "" {
		topic = r.Base.Topic
	}
	for i, desc := range tc.Descriptions {
		if i >= len(roster) {
			break
		}
		if desc != "" {
			roster[i].Description = desc
		}
	}

	sessionCfg := conversation.NewSessionConfig(topic, r.Base.DialogueBudget, roster)
	collector := evaluation.NewCollector(r.Base.Names())

	scheduler := conversation.NewScheduler(rand.New(rand.NewSource(time.Now().UnixNano())))
	orch := conversation.NewOrchestrator(sessionCfg, scheduler, conversation.NopHook{}, collector)

	if err := orch.Run(ctx); err != nil {
		return err
	}

	return collector.Finish(ctx, r.Judge, orch.History().Lines(), r.Store)
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
