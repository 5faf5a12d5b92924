// Package provider hands out icon drawables by name.
package provider

import (
	"errors"
	"fmt"
	"sort"

	"go-flat-icons/internal/sun"
)

// ErrUnknownIcon is returned by Get for a name nobody registered.
var ErrUnknownIcon = errors.New("unknown icon")

// Factory creates a fresh icon. Each Get call gets its own instance, since
// icons carry bounds and alpha.
type Factory func() sun.Icon

// Provider is a registry of icon factories.
type Provider struct {
	factories map[string]Factory
}

func New() *Provider {
	return &Provider{factories: make(map[string]Factory)}
}

// Default returns a provider with the sun registered under "sun" and "clear_day".
func Default() *Provider {
	p := New()
	newSun := func() sun.Icon { return sun.New() }
	p.Register("sun", newSun)
	p.Register("clear_day", newSun)
	return p
}

// Register adds or replaces the factory for name.
func (p *Provider) Register(name string, f Factory) {
	p.factories[name] = f
}

// Get creates the icon registered under name.
func (p *Provider) Get(name string) (sun.Icon, error) {
	f, ok := p.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIcon, name)
	}
	return f(), nil
}

// Names returns registered names in sorted order.
func (p *Provider) Names() []string {
	names := make([]string, 0, len(p.factories))
	for name := range p.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
