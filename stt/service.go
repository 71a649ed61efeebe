// Package stt provides speech-to-text capture for player turns.
package stt

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// Capture obtains one utterance of player input. Implementations may
// record from a microphone and transcribe, or read typed text.
type Capture interface {
	// Name returns the capture identifier for logging.
	Name() string

	// Listen blocks until one utterance is available. It returns the
	// transcribed text, or ok=false when no input was produced before
	// the context was cancelled.
	Listen(ctx context.Context) (text string, ok bool, err error)
}

// ReaderCapture reads line-delimited input from a reader. It serves as
// the terminal-based capture and as a scripted capture in tests.
type ReaderCapture struct {
	name    string
	scanner *bufio.Scanner
}

// NewReaderCapture creates a capture that reads lines from r.
func NewReaderCapture(name string, r io.Reader) *ReaderCapture {
	return &ReaderCapture{
		name:    name,
		scanner: bufio.NewScanner(r),
	}
}

// Name returns the capture identifier
func (c *ReaderCapture) Name() string {
	return c.name
}

// Listen reads the next non-empty line.
func (c *ReaderCapture) Listen(ctx context.Context) (string, bool, error) {
	for {
		select {
		case <-ctx.Done():
			return "", false, ctx.Err()
		default:
		}

		if !c.scanner.Scan() {
			if err := c.scanner.Err(); err != nil {
				return "", false, err
			}
			return "", false, nil
		}

		line := strings.TrimSpace(c.scanner.Text())
		if line != "" {
			return line, true, nil
		}
	}
}
