package conversation

import "math/rand"

// TiedSpeaker is one member of an interruption set. Eligible is false
// for player-controlled participants, who can neither win the floor
// nor be given an apology turn.
type TiedSpeaker struct {
	ID       int
	Eligible bool
}

// TurnOutcome is a single scheduling decision: either an outright
// winner or an interruption set of tied participants.
type TurnOutcome struct {
	Winner       int
	Interruption bool
	Tied         []TiedSpeaker
}

// Scheduler decides who speaks next from participant priority scores.
type Scheduler struct {
	rng *rand.Rand
}

// NewScheduler creates a scheduler. The rng is only used by the
// unreachable no-maximum fallback.
func NewScheduler(rng *rand.Rand) *Scheduler {
	return &Scheduler{rng: rng}
}

// Next computes the next speaker. The emotional-keyword scan is
// attributed to the previous turn's winner before scores are computed;
// pass lastSpeaker < 0 when no one has spoken yet.
//
// Ties use exact floating-point equality. A tie at the maximum becomes
// an interruption set containing every tied participant in roster
// order.
func (s *Scheduler) Next(roster []*Participant, lastSpeaker int, lastUtterance string) TurnOutcome {
	if lastSpeaker >= 0 && lastSpeaker < len(roster) {
		roster[lastSpeaker].ApplyEmotionalKeywords(lastUtterance)
	}

	scores := make([]float64, len(roster))
	for i, p := range roster {
		scores[i] = p.PriorityScore()
	}

	best := -1
	for i, score := range scores {
		if best < 0 || score > scores[best] {
			best = i
		}
	}
	if best < 0 {
		// Unreachable with a non-empty roster of well-formed floats,
		// kept as a fallback.
		return TurnOutcome{Winner: s.rng.Intn(len(roster))}
	}

	var tied []TiedSpeaker
	for i, score := range scores {
		if score == scores[best] {
			tied = append(tied, TiedSpeaker{ID: i, Eligible: !roster[i].Player})
		}
	}

	if len(tied) == 1 {
		return TurnOutcome{Winner: tied[0].ID}
	}
	return TurnOutcome{Winner: -1, Interruption: true, Tied: tied}
}

// InterruptionWinner picks the eligible tied participant with the
// highest speaking capability. Equal capabilities resolve to the
// highest roster index. Returns -1 when no tied participant is
// eligible.
func InterruptionWinner(roster []*Participant, tied []TiedSpeaker) int {
	winner := -1
	for _, t := range tied {
		if !t.Eligible {
			continue
		}
		if winner < 0 || roster[t.ID].SpeakingCapability >= roster[winner].SpeakingCapability {
			winner = t.ID
		}
	}
	return winner
}
