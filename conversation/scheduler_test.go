package conversation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler() *Scheduler {
	return NewScheduler(rand.New(rand.NewSource(1)))
}

func TestNextOutrightWinner(t *testing.T) {
	roster := []*Participant{
		{Name: "mod", Knowledge: 1},
		{Name: "alice", Knowledge: 5},
		{Name: "bob", Knowledge: 3},
	}

	outcome := newTestScheduler().Next(roster, -1, "")

	assert.False(t, outcome.Interruption)
	assert.Equal(t, 1, outcome.Winner)
}

func TestNextTieBecomesInterruptionSet(t *testing.T) {
	// Scores [5,5,3]: the two leaders tie, the third stays out.
	roster := []*Participant{
		{Name: "alice", Knowledge: 3, SpeakingCapability: 2},
		{Name: "bob", Knowledge: 1, SpeakingCapability: 4},
		{Name: "carol", Knowledge: 3},
	}

	outcome := newTestScheduler().Next(roster, -1, "")

	require.True(t, outcome.Interruption)
	require.Len(t, outcome.Tied, 2)
	assert.Equal(t, 0, outcome.Tied[0].ID)
	assert.Equal(t, 1, outcome.Tied[1].ID)
}

func TestNextFullTieIncludesEveryone(t *testing.T) {
	roster := []*Participant{
		{Name: "a", Knowledge: 2},
		{Name: "b", Knowledge: 2},
		{Name: "c", Knowledge: 2},
		{Name: "d", Knowledge: 2},
	}

	outcome := newTestScheduler().Next(roster, -1, "")

	require.True(t, outcome.Interruption)
	assert.Len(t, outcome.Tied, 4)
}

func TestNextMarksPlayersIneligible(t *testing.T) {
	roster := []*Participant{
		{Name: "alice", Knowledge: 2},
		{Name: "human", Knowledge: 2, Player: true},
	}

	outcome := newTestScheduler().Next(roster, -1, "")

	require.True(t, outcome.Interruption)
	assert.True(t, outcome.Tied[0].Eligible)
	assert.False(t, outcome.Tied[1].Eligible)
}

func TestNextAttributesEmotionToLastSpeaker(t *testing.T) {
	roster := []*Participant{
		{Name: "alice", Knowledge: 5},
		{Name: "bob", Knowledge: 3},
	}

	outcome := newTestScheduler().Next(roster, 1, "Say angry: enough of this")

	// The keyword scan lands on bob, the previous speaker, and lifts
	// his score before the decision.
	assert.Equal(t, 1.0, roster[1].EmotionalScore)
	assert.Equal(t, 0.0, roster[0].EmotionalScore)
	assert.False(t, outcome.Interruption)
	assert.Equal(t, 0, outcome.Winner)
}

func TestInterruptionWinner(t *testing.T) {
	tests := []struct {
		name   string
		roster []*Participant
		tied   []TiedSpeaker
		want   int
	}{
		{
			name: "highest speaking capability wins",
			roster: []*Participant{
				{Name: "a", SpeakingCapability: 5},
				{Name: "b", SpeakingCapability: 3},
			},
			tied: []TiedSpeaker{{ID: 0, Eligible: true}, {ID: 1, Eligible: true}},
			want: 0,
		},
		{
			name: "equal capability resolves to highest index",
			roster: []*Participant{
				{Name: "a", SpeakingCapability: 4},
				{Name: "b", SpeakingCapability: 4},
				{Name: "c", SpeakingCapability: 4},
			},
			tied: []TiedSpeaker{{ID: 0, Eligible: true}, {ID: 1, Eligible: true}, {ID: 2, Eligible: true}},
			want: 2,
		},
		{
			name: "ineligible players are skipped",
			roster: []*Participant{
				{Name: "human", SpeakingCapability: 9, Player: true},
				{Name: "b", SpeakingCapability: 2},
			},
			tied: []TiedSpeaker{{ID: 0, Eligible: false}, {ID: 1, Eligible: true}},
			want: 1,
		},
		{
			name: "no eligible participant",
			roster: []*Participant{
				{Name: "p1", Player: true},
				{Name: "p2", Player: true},
			},
			tied: []TiedSpeaker{{ID: 0, Eligible: false}, {ID: 1, Eligible: false}},
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InterruptionWinner(tt.roster, tt.tied))
		})
	}
}
