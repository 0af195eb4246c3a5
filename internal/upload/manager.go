package upload

import (
	"fmt"
	"sort"
)

// ProviderFactory creates a new, unconfigured provider
type ProviderFactory func() Provider

// Registry holds all available upload providers
var Registry = make(map[string]ProviderFactory)

func RegisterProvider(name string, factory ProviderFactory) {
	Registry[name] = factory
}

// NewProvider creates a new provider instance by name
func NewProvider(name string) (Provider, error) {
	factory, ok := Registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown upload provider: %s (available: %v)", name, Names())
	}
	return factory(), nil
}

// Names lists registered providers in sorted order.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterProvider("minio", func() Provider {
		return NewMinioProvider()
	})
}
