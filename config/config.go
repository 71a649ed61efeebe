// Package config loads session configuration from YAML and assembles
// the participant roster from it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/safwanpaleri/roundtable/conversation"
	"github.com/safwanpaleri/roundtable/providers"
)

// ProviderConfig selects and tunes one LLM backend.
type ProviderConfig struct {
	ID          string  `yaml:"id"`
	Type        string  `yaml:"type"`
	Model       string  `yaml:"model"`
	BaseURL     string  `yaml:"base_url"`
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// ToSpec converts the config into a provider spec.
func (p ProviderConfig) ToSpec() providers.ProviderSpec {
	id := p.ID
	if id == "" {
		id = p.Type
	}
	return providers.ProviderSpec{
		ID:      id,
		Type:    p.Type,
		Model:   p.Model,
		BaseURL: p.BaseURL,
		Defaults: providers.ProviderDefaults{
			Temperature: p.Temperature,
			MaxTokens:   p.MaxTokens,
		},
	}
}

// ParticipantConfig describes one roster member.
type ParticipantConfig struct {
	Name               string         `yaml:"name"`
	Description        string         `yaml:"description"`
	Angle              float64        `yaml:"angle"`
	Knowledge          float64        `yaml:"knowledge"`
	SpeakingCapability float64        `yaml:"speaking_capability"`
	Moderator          bool           `yaml:"moderator"`
	Player             bool           `yaml:"player"`
	AdditionalPrompt   string         `yaml:"additional_prompt"`
	Provider           ProviderConfig `yaml:"provider"`
}

// SpeechConfig tunes the text-to-speech service.
type SpeechConfig struct {
	Model string `yaml:"model"`
	Voice string `yaml:"voice"`
}

// Config is the top-level session configuration.
type Config struct {
	Topic          string              `yaml:"topic"`
	DialogueBudget int                 `yaml:"dialogue_budget"`
	ResultsPath    string              `yaml:"results_path"`
	Participants   []ParticipantConfig `yaml:"participants"`
	Judge          ProviderConfig      `yaml:"judge"`
	Speech         SpeechConfig        `yaml:"speech"`
	MetricsAddr    string              `yaml:"metrics_addr"`
}

const (
	defaultDialogueBudget = 10
	defaultResultsPath    = "results.json"
)

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.DialogueBudget <= 0 {
		cfg.DialogueBudget = defaultDialogueBudget
	}
	if cfg.ResultsPath == "" {
		cfg.ResultsPath = defaultResultsPath
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Topic == "" {
		return fmt.Errorf("config: topic is required")
	}
	if len(c.Participants) < 2 {
		return fmt.Errorf("config: at least two participants are required, got %d", len(c.Participants))
	}

	moderators := 0
	for i, p := range c.Participants {
		if p.Name == "" {
			return fmt.Errorf("config: participant %d has no name", i)
		}
		if !p.Player && p.Provider.Type == "" {
			return fmt.Errorf("config: participant %q has no provider type", p.Name)
		}
		if p.Moderator {
			moderators++
		}
	}
	if moderators != 1 {
		return fmt.Errorf("config: exactly one moderator is required, got %d", moderators)
	}
	return nil
}

// BuildRoster creates the participant roster, instantiating a provider
// for every non-player participant.
func (c *Config) BuildRoster() ([]*conversation.Participant, error) {
	roster := make([]*conversation.Participant, 0, len(c.Participants))
	for _, pc := range c.Participants {
		p := &conversation.Participant{
			Name:               pc.Name,
			Description:        pc.Description,
			Angle:              pc.Angle,
			Knowledge:          pc.Knowledge,
			SpeakingCapability: pc.SpeakingCapability,
			Moderator:          pc.Moderator,
			Player:             pc.Player,
			AdditionalPrompt:   pc.AdditionalPrompt,
		}

		if !pc.Player {
			provider, err := providers.CreateProviderFromSpec(pc.Provider.ToSpec())
			if err != nil {
				return nil, fmt.Errorf("failed to create provider for %s: %w", pc.Name, err)
			}
			p.Provider = provider
		}

		roster = append(roster, p)
	}
	return roster, nil
}

// BuildJudge creates the judge provider.
func (c *Config) BuildJudge() (providers.Provider, error) {
	if c.Judge.Type == "" {
		return nil, fmt.Errorf("config: judge provider type is required")
	}
	provider, err := providers.CreateProviderFromSpec(c.Judge.ToSpec())
	if err != nil {
		return nil, fmt.Errorf("failed to create judge provider: %w", err)
	}
	return provider, nil
}

// Names returns the participant names in roster order.
func (c *Config) Names() []string {
	names := make([]string, len(c.Participants))
	for i, p := range c.Participants {
		names[i] = p.Name
	}
	return names
}
