// Package tts provides text-to-speech synthesis services for spoken
// conversation output.
package tts

import (
	"context"
	"io"
)

// SynthesisConfig controls how text is rendered to audio.
type SynthesisConfig struct {
	// Voice is the provider-specific voice name.
	Voice string
	// SampleRate is the output sample rate in Hz. Providers that only
	// support a fixed rate ignore this and report their own.
	SampleRate int
}

// Service converts text into an audio stream.
type Service interface {
	// Name returns the service identifier for logging.
	Name() string

	// Synthesize renders text to audio. The caller owns the returned
	// reader and must close it.
	Synthesize(ctx context.Context, text string, cfg SynthesisConfig) (io.ReadCloser, error)
}
