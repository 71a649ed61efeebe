// Package mock provides a scriptable in-memory Provider for tests.
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/safwanpaleri/roundtable/providers"
)

// Provider implements the Provider interface with canned responses.
// It records every request it receives so tests can assert on prompts
// and message ordering.
type Provider struct {
	id      string
	mu      sync.Mutex
	scripts []string
	next    int
	err     error
	latency time.Duration

	// RespondFunc, when set, overrides the scripted responses entirely.
	RespondFunc func(req providers.ChatRequest) (string, error)

	requests []providers.ChatRequest
}

// Option configures the mock provider.
type Option func(*Provider)

// WithScript sets the ordered list of responses to play back.
// When the script is exhausted the provider repeats the last entry.
func WithScript(responses ...string) Option {
	return func(p *Provider) {
		p.scripts = responses
	}
}

// WithError makes every call fail with the given error.
func WithError(err error) Option {
	return func(p *Provider) {
		p.err = err
	}
}

// WithLatency adds a simulated latency reported on each response.
// The provider does not actually sleep; the latency is only reported.
func WithLatency(d time.Duration) Option {
	return func(p *Provider) {
		p.latency = d
	}
}

// NewProvider creates a new mock provider
func NewProvider(id string, opts ...Option) *Provider {
	p := &Provider{id: id}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID returns the provider ID
func (p *Provider) ID() string {
	return p.id
}

// Close is a no-op for the mock provider
func (p *Provider) Close() error {
	return nil
}

// Chat returns the next scripted response, recording the request.
func (p *Provider) Chat(_ context.Context, req providers.ChatRequest) (providers.ChatResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.requests = append(p.requests, req)

	if p.RespondFunc != nil {
		content, err := p.RespondFunc(req)
		if err != nil {
			return providers.ChatResponse{Latency: p.latency}, err
		}
		return providers.ChatResponse{Content: content, Latency: p.latency}, nil
	}

	if p.err != nil {
		return providers.ChatResponse{Latency: p.latency}, p.err
	}

	if len(p.scripts) == 0 {
		return providers.ChatResponse{
			Content: fmt.Sprintf("mock response %d from %s", p.next, p.id),
			Latency: p.latency,
		}, nil
	}

	idx := p.next
	if idx >= len(p.scripts) {
		idx = len(p.scripts) - 1
	}
	p.next++

	return providers.ChatResponse{Content: p.scripts[idx], Latency: p.latency}, nil
}

// Requests returns a copy of every request received so far.
func (p *Provider) Requests() []providers.ChatRequest {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]providers.ChatRequest, len(p.requests))
	copy(out, p.requests)
	return out
}

// CallCount returns the number of Chat calls received.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}
