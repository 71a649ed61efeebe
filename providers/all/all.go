// Package all registers every built-in provider factory.
// Import it for side effects:
//
//	import _ "github.com/safwanpaleri/roundtable/providers/all"
package all

import (
	"github.com/safwanpaleri/roundtable/providers"
	"github.com/safwanpaleri/roundtable/providers/claude"
	"github.com/safwanpaleri/roundtable/providers/deepseek"
	"github.com/safwanpaleri/roundtable/providers/gemini"
	"github.com/safwanpaleri/roundtable/providers/mistral"
	"github.com/safwanpaleri/roundtable/providers/mock"
	"github.com/safwanpaleri/roundtable/providers/openai"
)

func init() {
	providers.RegisterProviderFactory("openai", func(spec providers.ProviderSpec) (providers.Provider, error) {
		return openai.NewProvider(spec.ID, spec.Model, spec.BaseURL, spec.Defaults), nil
	})
	providers.RegisterProviderFactory("claude", func(spec providers.ProviderSpec) (providers.Provider, error) {
		return claude.NewProvider(spec.ID, spec.Model, spec.BaseURL, spec.Defaults), nil
	})
	providers.RegisterProviderFactory("gemini", func(spec providers.ProviderSpec) (providers.Provider, error) {
		return gemini.NewProvider(spec.ID, spec.Model, spec.BaseURL, spec.Defaults), nil
	})
	providers.RegisterProviderFactory("deepseek", func(spec providers.ProviderSpec) (providers.Provider, error) {
		return deepseek.NewProvider(spec.ID, spec.Model, spec.BaseURL, spec.Defaults), nil
	})
	providers.RegisterProviderFactory("mistral", func(spec providers.ProviderSpec) (providers.Provider, error) {
		return mistral.NewProvider(spec.ID, spec.Model, spec.BaseURL, spec.Defaults), nil
	})
	providers.RegisterProviderFactory("mock", func(spec providers.ProviderSpec) (providers.Provider, error) {
		return mock.NewProvider(spec.ID), nil
	})
}
