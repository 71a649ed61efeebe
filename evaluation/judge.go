// Package evaluation scores finished conversations with a judge model
// and persists the results alongside per-participant latency averages.
package evaluation

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/safwanpaleri/roundtable/logger"
	"github.com/safwanpaleri/roundtable/prompt"
	"github.com/safwanpaleri/roundtable/providers"
	"github.com/safwanpaleri/roundtable/types"
)

// Scores holds the five judge sub-scores, each in [1.0, 5.0]. Fields
// left at zero mean the judge did not return that metric.
type Scores struct {
	Coherence          float64
	Relevance          float64
	Naturalness        float64
	Engagement         float64
	ContextualAccuracy float64
}

// Judge asks a single designated model to score a transcript.
type Judge struct {
	Provider providers.Provider
}

// Score sends the rubric plus transcript to the judge model and parses
// its one-line response. On a failed call the zero Scores value is
// returned along with the error.
func (j *Judge) Score(ctx context.Context, transcript []string) (Scores, error) {
	if j.Provider == nil {
		return Scores{}, fmt.Errorf("no judge provider configured")
	}

	req := providers.ChatRequest{
		Messages: []types.Message{
			{Role: "user", Content: prompt.JudgeRubric(transcript)},
		},
	}

	resp, err := j.Provider.Chat(ctx, req)
	if err != nil {
		logger.LLMError(j.Provider.ID(), "judge", err)
		return Scores{}, fmt.Errorf("judge scoring failed: %w", err)
	}

	return ParseScores(resp.Content), nil
}

// ParseScores parses the judge's "Key:Value, Key:Value" line. Parsing
// is permissive: malformed entries are skipped with a warning and the
// corresponding score stays at its 0.0 default.
func ParseScores(line string) Scores {
	var scores Scores

	for _, part := range strings.Split(line, ",") {
		kv := strings.SplitN(part, ":", 2)
		if len(kv) != 2 {
			logger.Warn("skipping malformed judge score entry", "entry", strings.TrimSpace(part))
			continue
		}

		key := strings.TrimSpace(kv[0])
		value, err := strconv.ParseFloat(strings.TrimSpace(kv[1]), 64)
		if err != nil {
			logger.Warn("skipping unparseable judge score value", "entry", strings.TrimSpace(part))
			continue
		}

		switch {
		case strings.Contains(key, "Coherence"):
			scores.Coherence = value
		case strings.Contains(key, "Relevance"):
			scores.Relevance = value
		case strings.Contains(key, "Naturalness"):
			scores.Naturalness = value
		case strings.Contains(key, "Engagement"):
			scores.Engagement = value
		case strings.Contains(key, "Contextual"):
			scores.ContextualAccuracy = value
		default:
			logger.Warn("skipping unknown judge score key", "key", key)
		}
	}

	return scores
}
