package poetry

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/diwan/internal/platform/apperr"
	"github.com/taibuivan/diwan/internal/platform/constants"
)

// MemoryRepository serves curated poems decoded from embedded YAML.
type MemoryRepository struct {
	poems []Poem
}

// NewMemoryRepository loads the embedded curated library.
func NewMemoryRepository() (*MemoryRepository, error) {
	raw, err := dataFS.ReadFile("data/library.yaml")
	if err != nil {
		return nil, fmt.Errorf("library: read embedded poems: %w", err)
	}
	return LoadMemoryRepository(raw)
}

// LoadMemoryRepository decodes a YAML document of the form {poems: [...]}.
func LoadMemoryRepository(raw []byte) (*MemoryRepository, error) {
	var document struct {
		Poems []Poem `yaml:"poems"`
	}
	if err := yaml.Unmarshal(raw, &document); err != nil {
		return nil, fmt.Errorf("library: decode poems: %w", err)
	}

	poems := make([]Poem, 0, len(document.Poems))
	for _, poem := range document.Poems {
		if poem.ID == "" || cleanText(poem.Content) == "" {
			return nil, fmt.Errorf("library: poem %q is missing an id or content", poem.ID)
		}
		poem.Content = cleanText(poem.Content)
		poem.Era = ParseEra(string(poem.Era))
		poem.Source = constants.SourceLibrary
		poem.Origin = OriginLocal
		poems = append(poems, poem)
	}

	return &MemoryRepository{poems: poems}, nil
}

func (repository *MemoryRepository) List(_ context.Context) ([]Poem, error) {
	out := make([]Poem, len(repository.poems))
	copy(out, repository.poems)
	return out, nil
}

func (repository *MemoryRepository) Get(_ context.Context, id string) (Poem, error) {
	for _, poem := range repository.poems {
		if poem.ID == id {
			return poem, nil
		}
	}
	return Poem{}, apperr.NotFound("Poem")
}
