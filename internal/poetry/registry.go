package poetry

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Registry is the static list of poets served when the remote catalogue is unavailable.
//
// # Invariants
//
//   - Poet ids are unique.
//   - Every poet has a non-empty name.
//   - Every era is recognized or [EraUnspecified].
type Registry struct {
	poets []Poet
	index map[string]int
}

// NewRegistry loads the embedded poet list.
func NewRegistry() (*Registry, error) {
	raw, err := dataFS.ReadFile("data/poets.yaml")
	if err != nil {
		return nil, fmt.Errorf("registry: read embedded poets: %w", err)
	}
	return LoadRegistry(raw)
}

// LoadRegistry decodes and validates a YAML poet list of the form {poets: [...]}.
func LoadRegistry(raw []byte) (*Registry, error) {
	var document struct {
		Poets []Poet `yaml:"poets"`
	}
	if err := yaml.Unmarshal(raw, &document); err != nil {
		return nil, fmt.Errorf("registry: decode poets: %w", err)
	}

	registry := &Registry{
		poets: make([]Poet, 0, len(document.Poets)),
		index: make(map[string]int, len(document.Poets)),
	}

	for position, poet := range document.Poets {
		poet.ID = strings.TrimSpace(poet.ID)
		poet.Name = strings.TrimSpace(poet.Name)

		if poet.ID == "" || poet.Name == "" {
			return nil, fmt.Errorf("registry: poet at position %d is missing an id or name", position)
		}
		if _, exists := registry.index[poet.ID]; exists {
			return nil, fmt.Errorf("registry: duplicate poet id %q", poet.ID)
		}

		poet.Era = ParseEra(string(poet.Era))
		registry.index[poet.ID] = len(registry.poets)
		registry.poets = append(registry.poets, poet)
	}

	return registry, nil
}

// Poets returns a copy of the registry in declaration order.
func (registry *Registry) Poets() []Poet {
	out := make([]Poet, len(registry.poets))
	copy(out, registry.poets)
	return out
}

// Poet returns the poet with the given id.
func (registry *Registry) Poet(id string) (Poet, bool) {
	position, ok := registry.index[id]
	if !ok {
		return Poet{}, false
	}
	return registry.poets[position], true
}

// Len reports the number of registered poets.
func (registry *Registry) Len() int {
	return len(registry.poets)
}
