package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/safwanpaleri/roundtable/providers/all"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roundtable.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
topic: the future of public libraries
dialogue_budget: 4
results_path: out/results.json
judge:
  type: mock
participants:
  - name: Mod
    description: a tv host
    moderator: true
    provider:
      type: mock
  - name: Alice
    description: an architect
    knowledge: 5
    speaking_capability: 3
    provider:
      id: alice-gpt
      type: mock
      model: gpt-4o-mini
      temperature: 0.7
      max_tokens: 256
  - name: Player
    player: true
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "the future of public libraries", cfg.Topic)
	assert.Equal(t, 4, cfg.DialogueBudget)
	assert.Equal(t, "out/results.json", cfg.ResultsPath)
	assert.Equal(t, []string{"Mod", "Alice", "Player"}, cfg.Names())

	alice := cfg.Participants[1]
	assert.Equal(t, "alice-gpt", alice.Provider.ID)
	assert.Equal(t, float32(0.7), alice.Provider.Temperature)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
topic: anything
participants:
  - name: Mod
    moderator: true
    provider: {type: mock}
  - name: Alice
    provider: {type: mock}
`))
	require.NoError(t, err)
	assert.Equal(t, defaultDialogueBudget, cfg.DialogueBudget)
	assert.Equal(t, defaultResultsPath, cfg.ResultsPath)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing topic",
			content: "participants:\n  - name: Mod\n    moderator: true\n    provider: {type: mock}\n  - name: A\n    provider: {type: mock}\n",
			wantErr: "topic",
		},
		{
			name:    "too few participants",
			content: "topic: t\nparticipants:\n  - name: Mod\n    moderator: true\n    provider: {type: mock}\n",
			wantErr: "two participants",
		},
		{
			name:    "no moderator",
			content: "topic: t\nparticipants:\n  - name: A\n    provider: {type: mock}\n  - name: B\n    provider: {type: mock}\n",
			wantErr: "moderator",
		},
		{
			name:    "missing provider type",
			content: "topic: t\nparticipants:\n  - name: Mod\n    moderator: true\n    provider: {type: mock}\n  - name: A\n",
			wantErr: "provider type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildRoster(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	roster, err := cfg.BuildRoster()
	require.NoError(t, err)
	require.Len(t, roster, 3)

	assert.True(t, roster[0].Moderator)
	assert.NotNil(t, roster[0].Provider)
	assert.Equal(t, 5.0, roster[1].Knowledge)

	// Player participants get no provider.
	assert.True(t, roster[2].Player)
	assert.Nil(t, roster[2].Provider)
}

func TestBuildRosterUnknownProvider(t *testing.T) {
	cfg := &Config{
		Topic: "t",
		Participants: []ParticipantConfig{
			{Name: "Mod", Moderator: true, Provider: ProviderConfig{Type: "smoke-signal"}},
			{Name: "A", Provider: ProviderConfig{Type: "mock"}},
		},
	}
	_, err := cfg.BuildRoster()
	assert.Error(t, err)
}

func TestBuildJudgeRequiresType(t *testing.T) {
	cfg := &Config{}
	_, err := cfg.BuildJudge()
	assert.Error(t, err)
}
