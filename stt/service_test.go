package stt

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderCaptureListen(t *testing.T) {
	capture := NewReaderCapture("test", strings.NewReader("first line\n\n  \nsecond line\n"))

	text, ok, err := capture.Listen(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "first line", text)

	// Blank lines are skipped.
	text, ok, err = capture.Listen(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second line", text)

	// Exhausted input reports no utterance rather than an error.
	_, ok, err = capture.Listen(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReaderCaptureCancelledContext(t *testing.T) {
	capture := NewReaderCapture("test", strings.NewReader("pending\n"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := capture.Listen(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
}
