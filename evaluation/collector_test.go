package evaluation

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safwanpaleri/roundtable/providers/mock"
)

func TestCollectorAverages(t *testing.T) {
	c := NewCollector([]string{"Mod", "Alice", "Bob"})

	c.RecordLatency(0, 2*time.Second)
	c.RecordLatency(0, 4*time.Second)
	c.RecordLatency(1, 500*time.Millisecond)

	avgs := c.Averages()
	require.Len(t, avgs, 3)
	assert.Equal(t, 3.0, avgs[0])
	assert.Equal(t, 0.5, avgs[1])
	// Zero samples reports 0, not NaN.
	assert.Equal(t, 0.0, avgs[2])
}

func TestCollectorIgnoresOutOfRangeIndex(t *testing.T) {
	c := NewCollector([]string{"Mod"})

	c.RecordLatency(-1, time.Second)
	c.RecordLatency(5, time.Second)

	assert.Equal(t, []float64{0}, c.Averages())
}

func TestFinishPersistsRecord(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "results.json"))
	judge := &Judge{Provider: mock.NewProvider("judge", mock.WithScript("Coherence:4.0, Relevance:5.0"))}

	c := NewCollector([]string{"Mod", "Alice"})
	c.RecordLatency(1, time.Second)

	err := c.Finish(context.Background(), judge, []string{"Mod : hello"}, store)
	require.NoError(t, err)

	records, err := store.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 4.0, records[0].Scores.Coherence)
	assert.Equal(t, []string{"Mod", "Alice"}, records[0].Participants)
	assert.Equal(t, []float64{0, 1}, records[0].AvgLatencySeconds)
}

func TestFinishPersistsEvenWhenJudgeFails(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "results.json"))
	judge := &Judge{Provider: mock.NewProvider("judge", mock.WithError(errors.New("timeout")))}

	c := NewCollector([]string{"Mod"})
	c.RecordLatency(0, 2*time.Second)

	err := c.Finish(context.Background(), judge, []string{"Mod : hello"}, store)
	require.Error(t, err)

	// The record lands with zero scores so the latency data survives.
	records, listErr := store.List()
	require.NoError(t, listErr)
	require.Len(t, records, 1)
	assert.Equal(t, Scores{}, records[0].Scores)
	assert.Equal(t, []float64{2}, records[0].AvgLatencySeconds)
}
