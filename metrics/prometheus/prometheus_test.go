package prometheus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExporterRegistersMetrics(t *testing.T) {
	exporter := NewExporter("127.0.0.1:0")
	require.NotNil(t, exporter.Registry())

	RecordProviderRequest("mock", "success", 0.42)
	RecordTurn("primary")
	RecordTurn("interruption")
	RecordSessionStart()
	RecordSessionEnd("success", 12.5)
	RecordJudgeScore("coherence", 4.0)

	families, err := exporter.Registry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["roundtable_provider_requests_total"])
	assert.True(t, names["roundtable_turns_total"])
	assert.True(t, names["roundtable_session_duration_seconds"])
	assert.True(t, names["roundtable_judge_score"])
}

func TestExporterShutdownBeforeStart(t *testing.T) {
	exporter := NewExporter("127.0.0.1:0")
	assert.NoError(t, exporter.Shutdown(context.Background()))
}
