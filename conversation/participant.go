// Package conversation implements multi-participant turn scheduling and
// orchestration for group dialogue sessions.
package conversation

import (
	"strings"

	"github.com/safwanpaleri/roundtable/providers"
)

// Participant is one speaker in a session. Scoring fields feed the
// turn scheduler; role flags change how turns are produced.
type Participant struct {
	Name        string
	Description string
	// Angle is the world-space facing direction used by presentation
	// hooks when focusing the speaker.
	Angle float64

	Knowledge          float64
	SpeakingCapability float64
	EmotionalScore     float64
	LastSpoken         float64

	Moderator bool
	Player    bool

	// AdditionalPrompt is appended to the character system prompt.
	AdditionalPrompt string

	Provider providers.Provider
}

// emotionTiers is evaluated in order with no early exit, so when an
// utterance matches several tiers the LAST matching tier wins. This
// overwrite order is load-bearing for scheduling behavior; do not
// reorder or short-circuit it.
var emotionTiers = []struct {
	keywords []string
	score    float64
}{
	{[]string{"angry", "frustrated"}, 1.0},
	{[]string{"worried"}, 0.8},
	{[]string{"confused", "determined"}, 0.5},
	{[]string{"happy", "neutral"}, 0.2},
}

// ApplyEmotionalKeywords scans the utterance case-insensitively and
// updates EmotionalScore from the tier ladder. No match leaves the
// previous score in place.
func (p *Participant) ApplyEmotionalKeywords(utterance string) {
	lowered := strings.ToLower(utterance)
	for _, tier := range emotionTiers {
		for _, kw := range tier.keywords {
			if strings.Contains(lowered, kw) {
				p.EmotionalScore = tier.score
				break
			}
		}
	}
}

// ResetTurnTimer zeroes LastSpoken for the participant who just spoke
// and increments it for everyone else.
func (p *Participant) ResetTurnTimer(wasSpeaker bool) {
	if wasSpeaker {
		p.LastSpoken = 0
	} else {
		p.LastSpoken++
	}
}

// PriorityScore is the plain sum of the four scoring attributes,
// recomputed on every call.
func (p *Participant) PriorityScore() float64 {
	return p.Knowledge + p.SpeakingCapability + p.EmotionalScore + p.LastSpoken
}
