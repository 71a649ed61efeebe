package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityScoreIsPlainSum(t *testing.T) {
	p := &Participant{
		Knowledge:          3.5,
		SpeakingCapability: 2.0,
		EmotionalScore:     0.8,
		LastSpoken:         4,
	}
	assert.Equal(t, 10.3, p.PriorityScore())
}

func TestApplyEmotionalKeywords(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		initial   float64
		want      float64
	}{
		{
			name:      "angry tier",
			utterance: "Say Angrily: this is frustrating, I am angry",
			want:      1.0,
		},
		{
			name:      "worried tier",
			utterance: "Say worried: hmm, not sure",
			want:      0.8,
		},
		{
			name:      "confused tier",
			utterance: "Say Confused: wait, what",
			want:      0.5,
		},
		{
			name:      "happy tier",
			utterance: "Say Happy: great news everyone",
			want:      0.2,
		},
		{
			name:      "case insensitive",
			utterance: "SAY WORRIED: LOUD",
			want:      0.8,
		},
		{
			// The ladder has no early exit, so the tier checked last
			// among the matches wins even when an earlier tier also
			// matched.
			name:      "later tier overwrites earlier match",
			utterance: "Say angry: I am angry but also happy about it",
			want:      0.2,
		},
		{
			name:      "worried overwrites angry",
			utterance: "angry and worried at once",
			want:      0.8,
		},
		{
			name:      "no match keeps previous score",
			utterance: "Say calmly: nothing to see here",
			initial:   0.5,
			want:      0.5,
		},
		{
			name:      "empty utterance keeps previous score",
			utterance: "",
			initial:   1.0,
			want:      1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Participant{EmotionalScore: tt.initial}
			p.ApplyEmotionalKeywords(tt.utterance)
			assert.Equal(t, tt.want, p.EmotionalScore)
		})
	}
}

func TestResetTurnTimer(t *testing.T) {
	p := &Participant{LastSpoken: 3}

	p.ResetTurnTimer(false)
	assert.Equal(t, 4.0, p.LastSpoken)

	p.ResetTurnTimer(true)
	assert.Equal(t, 0.0, p.LastSpoken)

	p.ResetTurnTimer(false)
	assert.Equal(t, 1.0, p.LastSpoken)
}
