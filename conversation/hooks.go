package conversation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/safwanpaleri/roundtable/logger"
	"github.com/safwanpaleri/roundtable/stt"
	"github.com/safwanpaleri/roundtable/tts"
)

// PresentationHook receives presentation events from the orchestrator.
// Interactive sessions use a hook backed by speech services; batch runs
// use NopHook. Hook errors never fail a session.
type PresentationHook interface {
	// FocusSpeaker is called before a participant's turn.
	FocusSpeaker(p *Participant)

	// Utterance presents one generated line. It returns after the
	// line has been fully presented.
	Utterance(ctx context.Context, p *Participant, text string) error

	// PlayerInput collects one line from a player-controlled
	// participant. ok is false when no input was produced.
	PlayerInput(ctx context.Context, p *Participant) (text string, ok bool)
}

// NopHook ignores every presentation event. Used in batch mode.
type NopHook struct{}

func (NopHook) FocusSpeaker(*Participant) {}

func (NopHook) Utterance(context.Context, *Participant, string) error { return nil }

func (NopHook) PlayerInput(context.Context, *Participant) (string, bool) { return "", false }

// StageHook synthesizes each utterance to audio and captures player
// input through a speech-to-text service. Audio is written as raw PCM
// files under OutputDir, one file per utterance.
type StageHook struct {
	Speech    tts.Service
	Voice     string
	Capture   stt.Capture
	OutputDir string

	sequence int
}

// FocusSpeaker logs the camera target. The angle comes from the
// participant's stage placement.
func (h *StageHook) FocusSpeaker(p *Participant) {
	logger.Debug("focusing speaker", "name", p.Name, "angle", p.Angle)
}

// Utterance synthesizes the line and writes the PCM audio to disk.
func (h *StageHook) Utterance(ctx context.Context, p *Participant, text string) error {
	if h.Speech == nil || text == "" {
		return nil
	}

	audio, err := h.Speech.Synthesize(ctx, text, tts.SynthesisConfig{Voice: h.Voice})
	if err != nil {
		return fmt.Errorf("failed to synthesize utterance for %s: %w", p.Name, err)
	}
	defer audio.Close()

	h.sequence++
	path := filepath.Join(h.OutputDir, fmt.Sprintf("%03d_%s.pcm", h.sequence, p.Name))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create audio file: %w", err)
	}
	defer f.Close()

	if _, err := f.ReadFrom(audio); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	logger.Debug("utterance audio written", "speaker", p.Name, "path", path)
	return nil
}

// PlayerInput blocks on the capture service for one utterance.
func (h *StageHook) PlayerInput(ctx context.Context, p *Participant) (string, bool) {
	if h.Capture == nil {
		return "", false
	}

	text, ok, err := h.Capture.Listen(ctx)
	if err != nil {
		logger.Warn("player input capture failed", "participant", p.Name, "error", err)
		return "", false
	}
	return text, ok
}
