package poetry

import (
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/text/unicode/norm"

	"github.com/taibuivan/diwan/internal/platform/constants"
	"github.com/taibuivan/diwan/pkg/convert"
	"github.com/taibuivan/diwan/pkg/uuid"
)

// remoteIDPrefix namespaces remote ids away from curated ("lib-") and
// synthesized ("dct-{poet}-{i}") ones.
const remoteIDPrefix = "dct-r-"

// cleanText trims and composes text to NFC so that equal strings compare equal.
func cleanText(raw string) string {
	return norm.NFC.String(strings.TrimSpace(raw))
}

// normalizePoets maps raw records into poets.
// Records without a name are dropped; duplicate ids keep the first occurrence.
func normalizePoets(records []gjson.Result) []Poet {
	poets := make([]Poet, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for _, record := range records {
		poet, ok := poetFromRecord(record)
		if !ok {
			continue
		}
		if _, duplicate := seen[poet.ID]; duplicate {
			continue
		}
		seen[poet.ID] = struct{}{}
		poets = append(poets, poet)
	}
	return poets
}

func poetFromRecord(record gjson.Result) (Poet, bool) {
	if !record.IsObject() {
		return Poet{}, false
	}

	name := cleanText(poetFields.lookup(record, fieldName))
	if name == "" {
		return Poet{}, false
	}

	id := cleanText(poetFields.lookup(record, fieldID))
	if id == "" {
		id = uuid.Stable(record.Raw)
	}

	return Poet{
		ID:          id,
		Name:        name,
		Era:         ParseEra(cleanText(poetFields.lookup(record, fieldEra))),
		BirthYear:   cleanText(poetFields.lookup(record, fieldBirthYear)),
		DeathYear:   cleanText(poetFields.lookup(record, fieldDeathYear)),
		Description: cleanText(poetFields.lookup(record, fieldDescription)),
		PoemCount:   convert.ToInt(poetFields.lookup(record, fieldPoemCount)),
	}, true
}

// normalizePoems maps raw records into poems.
// Records without content are dropped; duplicate ids keep the first occurrence.
func normalizePoems(records []gjson.Result) []Poem {
	poems := make([]Poem, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for _, record := range records {
		poem, ok := poemFromRecord(record)
		if !ok {
			continue
		}
		if _, duplicate := seen[poem.ID]; duplicate {
			continue
		}
		seen[poem.ID] = struct{}{}
		poems = append(poems, poem)
	}
	return poems
}

func poemFromRecord(record gjson.Result) (Poem, bool) {
	if !record.IsObject() {
		return Poem{}, false
	}

	content := cleanText(poemFields.lookup(record, fieldContent))
	if content == "" {
		return Poem{}, false
	}

	rawID := cleanText(poemFields.lookup(record, fieldID))
	if rawID == "" {
		rawID = uuid.Stable(record.Raw)
	}

	return Poem{
		ID:          remoteIDPrefix + rawID,
		Title:       orDefault(cleanText(poemFields.lookup(record, fieldTitle)), DefaultTitle),
		Poet:        orDefault(cleanText(poemFields.lookup(record, fieldPoet)), DefaultPoet),
		Content:     content,
		Source:      constants.SourceDCT,
		Origin:      OriginExternal,
		Era:         ParseEra(cleanText(poemFields.lookup(record, fieldEra))),
		Theme:       orDefault(cleanText(poemFields.lookup(record, fieldTheme)), DefaultTheme),
		Type:        PoemType(orDefault(cleanText(poemFields.lookup(record, fieldType)), string(TypeClassical))),
		Meter:       cleanText(poemFields.lookup(record, fieldMeter)),
		Rhyme:       cleanText(poemFields.lookup(record, fieldRhyme)),
		Year:        cleanText(poemFields.lookup(record, fieldYear)),
		Description: cleanText(poemFields.lookup(record, fieldDescription)),
	}, true
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
