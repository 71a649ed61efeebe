package conversation

import "github.com/google/uuid"

// SessionConfig fixes the parameters of one conversation session. It is
// immutable for the session's duration; a new session builds a fresh
// roster from fresh configuration.
type SessionConfig struct {
	ID             uuid.UUID
	Topic          string
	DialogueBudget int
	Roster         []*Participant
}

// NewSessionConfig assigns a fresh session ID.
func NewSessionConfig(topic string, budget int, roster []*Participant) SessionConfig {
	return SessionConfig{
		ID:             uuid.New(),
		Topic:          topic,
		DialogueBudget: budget,
		Roster:         roster,
	}
}

// ModeratorIndex returns the roster index of the first participant
// flagged as moderator, or -1 when none is flagged. When more than one
// participant carries the flag, the lowest roster index wins.
func (c SessionConfig) ModeratorIndex() int {
	for i, p := range c.Roster {
		if p.Moderator {
			return i
		}
	}
	return -1
}

// OtherNames returns the names of every participant except the one at
// the given index, in roster order.
func (c SessionConfig) OtherNames(except int) []string {
	names := make([]string, 0, len(c.Roster))
	for i, p := range c.Roster {
		if i == except {
			continue
		}
		names = append(names, p.Name)
	}
	return names
}

// OtherDescriptions returns "name description" pairs for every
// participant except the one at the given index.
func (c SessionConfig) OtherDescriptions(except int) []string {
	descs := make([]string, 0, len(c.Roster))
	for i, p := range c.Roster {
		if i == except {
			continue
		}
		descs = append(descs, p.Name+" "+p.Description)
	}
	return descs
}
