package poetry

import (
	"strings"

	"github.com/tidwall/gjson"
)

// field is a normalized attribute probed on remote records.
type field string

const (
	fieldID          field = "id"
	fieldName        field = "name"
	fieldTitle       field = "title"
	fieldPoet        field = "poet"
	fieldContent     field = "content"
	fieldEra         field = "era"
	fieldTheme       field = "theme"
	fieldType        field = "type"
	fieldMeter       field = "meter"
	fieldRhyme       field = "rhyme"
	fieldYear        field = "year"
	fieldBirthYear   field = "birth_year"
	fieldDeathYear   field = "death_year"
	fieldDescription field = "description"
	fieldPoemCount   field = "poem_count"
)

// fieldTable lists candidate source keys per field, tried in order.
// Keys are plain identifiers, so they are safe to use as gjson paths.
type fieldTable map[field][]string

var poetFields = fieldTable{
	fieldID:          {"id", "_id", "poet_id"},
	fieldName:        {"name", "poet_name", "title"},
	fieldEra:         {"era", "period", "time_period"},
	fieldBirthYear:   {"birth_year", "born"},
	fieldDeathYear:   {"death_year", "died"},
	fieldDescription: {"description", "bio", "biography"},
	fieldPoemCount:   {"poem_count", "poems_count"},
}

var poemFields = fieldTable{
	fieldID:          {"id", "_id", "poem_id"},
	fieldTitle:       {"title", "poem_title", "name"},
	fieldPoet:        {"poet_name", "poet", "author"},
	fieldContent:     {"content", "text", "verses", "body"},
	fieldEra:         {"era", "period", "time_period"},
	fieldTheme:       {"theme", "category", "genre", "subject"},
	fieldType:        {"type", "form", "style"},
	fieldMeter:       {"meter", "bahr", "rhythm"},
	fieldRhyme:       {"rhyme", "qafiya", "rhyme_scheme"},
	fieldYear:        {"year", "date", "composed_year"},
	fieldDescription: {"description", "summary", "notes"},
}

// lookup returns the first truthy value among the candidate keys.
//
// Empty strings, zero, false and null are skipped. Arrays of strings
// (verse lists) are joined with newlines. Objects never match.
func (table fieldTable) lookup(record gjson.Result, name field) string {
	for _, key := range table[name] {
		if value := truthy(record.Get(key)); value != "" {
			return value
		}
	}
	return ""
}

func truthy(value gjson.Result) string {
	switch value.Type {
	case gjson.String:
		return strings.TrimSpace(value.Str)
	case gjson.Number:
		if value.Num == 0 {
			return ""
		}
		return value.String()
	case gjson.True:
		return value.String()
	case gjson.JSON:
		if !value.IsArray() {
			return ""
		}
		lines := make([]string, 0)
		for _, item := range value.Array() {
			if item.Type == gjson.String && strings.TrimSpace(item.Str) != "" {
				lines = append(lines, strings.TrimSpace(item.Str))
			}
		}
		return strings.Join(lines, "\n")
	default:
		return ""
	}
}
