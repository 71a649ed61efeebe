package evaluation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safwanpaleri/roundtable/providers/mock"
)

func TestParseScores(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Scores
	}{
		{
			name: "full well-formed line",
			line: "Coherence:4.0, Relevance:5.0, Naturalness:3.0, Engagement: 4.5, Contextual-Accuracy: 3.5",
			want: Scores{Coherence: 4.0, Relevance: 5.0, Naturalness: 3.0, Engagement: 4.5, ContextualAccuracy: 3.5},
		},
		{
			name: "malformed entries are skipped, not fatal",
			line: "Coherence:4.0, Relevance:5.0, BadField, Engagement: 4.5",
			want: Scores{Coherence: 4.0, Relevance: 5.0, Engagement: 4.5},
		},
		{
			name: "unparseable value is skipped",
			line: "Coherence:four, Naturalness:2.5",
			want: Scores{Naturalness: 2.5},
		},
		{
			name: "unknown keys are ignored",
			line: "Sentiment:3.0, Relevance:1.5",
			want: Scores{Relevance: 1.5},
		},
		{
			name: "empty response leaves defaults",
			line: "",
			want: Scores{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseScores(tt.line))
		})
	}
}

func TestJudgeScoreSendsRubricAndTranscript(t *testing.T) {
	provider := mock.NewProvider("judge", mock.WithScript("Coherence:4.0, Relevance:3.0"))
	judge := &Judge{Provider: provider}

	transcript := []string{"Mod : welcome", "Alice : Say happy: great to be here"}
	scores, err := judge.Score(context.Background(), transcript)
	require.NoError(t, err)

	assert.Equal(t, 4.0, scores.Coherence)
	assert.Equal(t, 3.0, scores.Relevance)

	require.Equal(t, 1, provider.CallCount())
	content := provider.Requests()[0].Messages[0].Content
	assert.Contains(t, content, "CONVERSATION FOR ANALYSIS")
	assert.Contains(t, content, "Alice : Say happy: great to be here")
	assert.Contains(t, content, "Contextual-Accuracy")
}

func TestJudgeScoreFailure(t *testing.T) {
	provider := mock.NewProvider("judge", mock.WithError(errors.New("rate limited")))
	judge := &Judge{Provider: provider}

	scores, err := judge.Score(context.Background(), []string{"Mod : hi"})
	require.Error(t, err)
	assert.Equal(t, Scores{}, scores)
}
