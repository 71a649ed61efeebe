package conversation

import "github.com/safwanpaleri/roundtable/types"

// History is the append-only session transcript. Insertion order is
// the transcript order and is never rearranged.
type History struct {
	entries []types.Utterance
}

// Append adds one utterance to the transcript.
func (h *History) Append(speaker, text string) {
	h.entries = append(h.entries, types.Utterance{Speaker: speaker, Text: text})
}

// Len returns the number of transcript entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Last returns the most recent entry, or a zero Utterance when empty.
func (h *History) Last() types.Utterance {
	if len(h.entries) == 0 {
		return types.Utterance{}
	}
	return h.entries[len(h.entries)-1]
}

// Lines renders every entry in transcript order, one string per entry.
func (h *History) Lines() []string {
	lines := make([]string, len(h.entries))
	for i, e := range h.entries {
		lines[i] = e.String()
	}
	return lines
}

// Entries returns a copy of the transcript.
func (h *History) Entries() []types.Utterance {
	out := make([]types.Utterance, len(h.entries))
	copy(out, h.entries)
	return out
}
