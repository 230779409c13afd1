package poetry

import "strings"

// Era is a literary period label.
type Era string

// Recognized eras, in chronological order.
const (
	EraPreIslamic   Era = "جاهلي"
	EraMukhadram    Era = "جاهلي-إسلامي"
	EraIslamic      Era = "إسلامي"
	EraUmayyad      Era = "أموي"
	EraAbbasid      Era = "عباسي"
	EraAndalusian   Era = "أندلسي"
	EraMamluk       Era = "مملوكي"
	EraOttoman      Era = "عثماني"
	EraModern       Era = "حديث"
	EraContemporary Era = "معاصر"
)

// EraUnspecified collects records whose era is missing or unknown.
const EraUnspecified Era = "غير محدد"

var eras = []Era{
	EraPreIslamic, EraMukhadram, EraIslamic, EraUmayyad, EraAbbasid,
	EraAndalusian, EraMamluk, EraOttoman, EraModern, EraContemporary,
}

// Eras returns the recognized eras in chronological order.
func Eras() []Era {
	out := make([]Era, len(eras))
	copy(out, eras)
	return out
}

// ParseEra maps a raw label onto a recognized era, or [EraUnspecified].
func ParseEra(raw string) Era {
	candidate := Era(strings.TrimSpace(raw))
	for _, era := range eras {
		if candidate == era {
			return era
		}
	}
	return EraUnspecified
}

// Recognized reports whether the era is one of [Eras].
func (era Era) Recognized() bool {
	return ParseEra(string(era)) == era && era != EraUnspecified
}
