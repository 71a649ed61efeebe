package evaluation

import (
	"context"
	"sync"
	"time"

	"github.com/safwanpaleri/roundtable/logger"
	metrics "github.com/safwanpaleri/roundtable/metrics/prometheus"
)

// Collector accumulates per-participant latency samples during a
// session and finalizes them into a persisted evaluation record.
// Safe for concurrent use.
type Collector struct {
	mu           sync.Mutex
	participants []string
	latencies    [][]time.Duration
}

// NewCollector creates a collector for the given participant names,
// in roster order.
func NewCollector(participants []string) *Collector {
	return &Collector{
		participants: participants,
		latencies:    make([][]time.Duration, len(participants)),
	}
}

// RecordLatency attributes one completion latency sample to a
// participant. Out-of-range indexes are ignored.
func (c *Collector) RecordLatency(participant int, latency time.Duration) {
	if participant < 0 || participant >= len(c.latencies) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.latencies[participant] = append(c.latencies[participant], latency)
}

// Averages returns each participant's arithmetic mean latency in
// seconds. A participant with zero samples reports 0.
func (c *Collector) Averages() []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]float64, len(c.latencies))
	for i, samples := range c.latencies {
		if len(samples) == 0 {
			continue
		}
		var total time.Duration
		for _, s := range samples {
			total += s
		}
		out[i] = total.Seconds() / float64(len(samples))
	}
	return out
}

// Finish scores the transcript with the judge and persists one record.
// The record is written even when judging fails, carrying zero scores,
// so latency data is never lost. The judge error, if any, is returned
// after persistence.
func (c *Collector) Finish(ctx context.Context, judge *Judge, transcript []string, store *Store) error {
	scores, judgeErr := judge.Score(ctx, transcript)
	if judgeErr != nil {
		logger.Warn("judge scoring failed, saving zero scores", "error", judgeErr)
	}

	metrics.RecordJudgeScore("coherence", scores.Coherence)
	metrics.RecordJudgeScore("relevance", scores.Relevance)
	metrics.RecordJudgeScore("naturalness", scores.Naturalness)
	metrics.RecordJudgeScore("engagement", scores.Engagement)
	metrics.RecordJudgeScore("contextual_accuracy", scores.ContextualAccuracy)

	now := time.Now()
	record := Record{
		Date:              now.Format("2006-01-02"),
		Time:              now.Format("15:04:05"),
		Scores:            scores,
		Participants:      c.participants,
		AvgLatencySeconds: c.Averages(),
	}

	if err := store.Append(record); err != nil {
		return err
	}
	return judgeErr
}
