package poetry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/sourcegraph/conc/iter"
	"gopkg.in/yaml.v3"

	"github.com/taibuivan/diwan/internal/platform/constants"
)

// Synthesis bounds and fallbacks.
const (
	// maxSynthesizedPerPoet caps placeholder poems per poet regardless of poem_count.
	maxSynthesizedPerPoet = 8
	// defaultSynthesizedPerPoet is used when a poet has no poem_count.
	defaultSynthesizedPerPoet = 5

	fallbackContent = "محتوى شعري تمثيلي"
	descriptionText = "قصيدة من روائع %s في العصر %s، تظهر براعته الشعرية وإبداعه في التعبير"
)

// EraTemplate is the material used for one era.
type EraTemplate struct {
	Titles  []string `yaml:"titles"`
	Themes  []string `yaml:"themes"`
	Content string   `yaml:"content"`
}

// Templates holds every era template plus the shared meter and rhyme lists.
type Templates struct {
	Eras   map[Era]EraTemplate `yaml:"eras"`
	Meters []string            `yaml:"meters"`
	Rhymes []string            `yaml:"rhymes"`
}

// Synthesizer produces placeholder poems for registry poets.
//
// # Determinism
//
// Title, theme and rhyme are positional. Meter, the contemporary form and
// the composition year are derived from an xxhash of (poet id, index, field),
// so the same poet always yields the same poems.
type Synthesizer struct {
	templates Templates
}

// NewSynthesizer loads the embedded templates.
func NewSynthesizer() (*Synthesizer, error) {
	raw, err := dataFS.ReadFile("data/templates.yaml")
	if err != nil {
		return nil, fmt.Errorf("synthesizer: read embedded templates: %w", err)
	}
	return LoadSynthesizer(raw)
}

// LoadSynthesizer decodes a YAML template document.
func LoadSynthesizer(raw []byte) (*Synthesizer, error) {
	var templates Templates
	if err := yaml.Unmarshal(raw, &templates); err != nil {
		return nil, fmt.Errorf("synthesizer: decode templates: %w", err)
	}
	if len(templates.Meters) == 0 || len(templates.Rhymes) == 0 {
		return nil, fmt.Errorf("synthesizer: meters and rhymes must not be empty")
	}
	return &Synthesizer{templates: templates}, nil
}

// Meters returns the candidate meters.
func (synth *Synthesizer) Meters() []string {
	return append([]string(nil), synth.templates.Meters...)
}

// Poems synthesizes between 1 and 8 poems for the poet.
func (synth *Synthesizer) Poems(poet Poet) []Poem {
	count := poet.PoemCount
	if count <= 0 {
		count = defaultSynthesizedPerPoet
	}
	count = min(count, maxSynthesizedPerPoet)

	template := synth.templates.Eras[poet.Era]
	poems := make([]Poem, 0, count)

	for index := 1; index <= count; index++ {
		poems = append(poems, Poem{
			ID:          fmt.Sprintf("dct-%s-%d", poet.ID, index),
			Title:       pick(template.Titles, index, fmt.Sprintf("قصيدة %d", index)),
			Poet:        poet.Name,
			Content:     orDefault(template.Content, fallbackContent),
			Source:      constants.SourceDCT,
			Origin:      OriginSynthesized,
			Era:         poet.Era,
			Theme:       pick(template.Themes, index, DefaultTheme),
			Type:        synth.poemType(poet, index),
			Meter:       synth.templates.Meters[hashIndex(poet.ID, index, "meter", len(synth.templates.Meters))],
			Rhyme:       synth.templates.Rhymes[(index-1)%len(synth.templates.Rhymes)],
			Year:        synthesizedYear(poet, index),
			Description: fmt.Sprintf(descriptionText, poet.Name, poet.Era),
		})
	}

	return poems
}

// Corpus synthesizes poems for every poet, preserving poet order.
func (synth *Synthesizer) Corpus(poets []Poet) []Poem {
	perPoet := iter.Map(poets, func(poet *Poet) []Poem {
		return synth.Poems(*poet)
	})

	total := 0
	for _, poems := range perPoet {
		total += len(poems)
	}

	corpus := make([]Poem, 0, total)
	for _, poems := range perPoet {
		corpus = append(corpus, poems...)
	}
	return corpus
}

// poemType is classical for every era except the contemporary one.
func (synth *Synthesizer) poemType(poet Poet, index int) PoemType {
	if poet.Era != EraContemporary {
		return TypeClassical
	}
	if hashIndex(poet.ID, index, "type", 2) == 0 {
		return TypeFreeVerse
	}
	return TypeProse
}

// synthesizedYear returns a year in [birth, death) with the م suffix,
// or "" when either bound is unknown.
func synthesizedYear(poet Poet, index int) string {
	birth, errBirth := strconv.Atoi(strings.TrimSpace(poet.BirthYear))
	death, errDeath := strconv.Atoi(strings.TrimSpace(poet.DeathYear))
	if errBirth != nil || errDeath != nil {
		return ""
	}

	year := birth
	if span := death - birth; span > 0 {
		year += hashIndex(poet.ID, index, "year", span)
	}
	return fmt.Sprintf("%dم", year)
}

// hashIndex maps (poet id, index, field) onto [0, size).
func hashIndex(poetID string, index int, field string, size int) int {
	sum := xxhash.Sum64String(poetID + "/" + strconv.Itoa(index) + "/" + field)
	return int(sum % uint64(size))
}

// pick returns list[(index-1) mod len], or fallback for an empty list.
func pick(list []string, index int, fallback string) string {
	if len(list) == 0 {
		return fallback
	}
	return list[(index-1)%len(list)]
}
