package providers

import "fmt"

// UnsupportedProviderError indicates that a provider spec named a type
// for which no factory has been registered.
type UnsupportedProviderError struct {
	ProviderType string
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("unsupported provider type: %s (did you import providers/all?)", e.ProviderType)
}
