// Copyright (c) 2026 Diwan. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package analysis inspects a pasted poem and reports what can be measured from
the text alone: its verses, its dominant end rhyme and a guess at its form.

The analyzer is a heuristic. It does not scan meter and makes no claim of
prosodic correctness; the meter is always reported as undetected.
*/
package analysis

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/taibuivan/diwan/internal/platform/validate"
	"github.com/taibuivan/diwan/internal/poetry"
)

// MaxTextLength bounds the analyzed text in characters.
const MaxTextLength = 20000

// MeterUndetected is reported in place of a scanned meter.
const MeterUndetected = "غير محدد"

// classicalConsistency is the share of verses that must share the dominant
// rhyme for a paired poem to be called classical.
const classicalConsistency = 0.7

// hemistichSeparator matches the marks commonly placed between the two halves of a verse.
var hemistichSeparator = regexp.MustCompile(`\s*(?:\||\*|…|\.{3}|\t|\s{3,})\s*`)

// Result is the outcome of analyzing one text.
type Result struct {
	Lines            int             `json:"lines"`
	Verses           int             `json:"verses"`
	Words            int             `json:"words"`
	Hemistichs       bool            `json:"hemistichs"`
	RhymeLetter      string          `json:"rhyme_letter"`
	Rhyme            string          `json:"rhyme"`
	RhymeConsistency float64         `json:"rhyme_consistency"`
	Form             poetry.PoemType `json:"form"`
	Meter            string          `json:"meter"`
}

// Request is the body of POST /analysis.
type Request struct {
	Text string `json:"text"`
}

// # Analyzer

// Analyzer runs the text heuristics.
type Analyzer struct{}

// NewAnalyzer constructs an [Analyzer].
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

/*
Analyze measures text.

Description: Lines that carry a hemistich separator are verses on their own.
Without separators, an even number of lines is read as hemistich pairs and
an odd number as one verse per line. The rhyme of a verse is the last letter
of its final word with diacritics and a trailing vowel letter removed.

Returns:
  - Result: Measurements and the form guess
  - error: VALIDATION_ERROR for empty, oversized or non-Arabic text
*/
func (analyzer *Analyzer) Analyze(text string) (Result, error) {
	v := &validate.Validator{}
	v.Required("text", text).MaxLen("text", text, MaxTextLength).Arabic("text", text)
	if err := v.Err(); err != nil {
		return Result{}, err
	}

	lines := splitLines(text)
	verses, paired := versesOf(lines)

	result := Result{
		Lines:      len(lines),
		Verses:     len(verses),
		Words:      len(strings.Fields(text)),
		Hemistichs: paired,
		Meter:      MeterUndetected,
	}

	letter, consistency := dominantRhyme(verses)
	result.RhymeLetter = string(letter)
	result.Rhyme = rhymeName(letter)
	result.RhymeConsistency = math.Round(consistency*100) / 100

	result.Form = poetry.TypeFreeVerse
	if paired && len(verses) >= 2 && consistency >= classicalConsistency {
		result.Form = poetry.TypeClassical
	}

	return result, nil
}

func splitLines(text string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// versesOf groups lines into verses and reports whether every verse has two halves.
func versesOf(lines []string) ([]string, bool) {
	separated := 0
	for _, line := range lines {
		if hemistichSeparator.MatchString(line) {
			separated++
		}
	}

	if separated > 0 {
		return lines, separated == len(lines)
	}

	if len(lines) >= 2 && len(lines)%2 == 0 {
		verses := make([]string, 0, len(lines)/2)
		for i := 0; i < len(lines); i += 2 {
			verses = append(verses, lines[i]+" "+lines[i+1])
		}
		return verses, true
	}

	return lines, false
}

// dominantRhyme returns the most frequent rhyme letter and its share of
// the verses that end in a letter. Ties go to the letter seen first.
func dominantRhyme(verses []string) (rune, float64) {
	counts := make(map[rune]int)
	order := make([]rune, 0)
	total := 0

	for _, verse := range verses {
		letter, ok := rhymeLetter(verse)
		if !ok {
			continue
		}
		if counts[letter] == 0 {
			order = append(order, letter)
		}
		counts[letter]++
		total++
	}

	if total == 0 {
		return 0, 0
	}

	best := order[0]
	for _, letter := range order[1:] {
		if counts[letter] > counts[best] {
			best = letter
		}
	}
	return best, float64(counts[best]) / float64(total)
}

// rhymeLetter extracts the rhyme letter from the end of a verse.
func rhymeLetter(verse string) (rune, bool) {
	words := strings.Fields(fold(verse))
	for i := len(words) - 1; i >= 0; i-- {
		letters := []rune(strings.TrimFunc(words[i], func(r rune) bool {
			return !unicode.Is(unicode.Arabic, r) || !unicode.IsLetter(r)
		}))
		if len(letters) == 0 {
			continue
		}

		last := letters[len(letters)-1]
		if len(letters) >= 3 && strings.ContainsRune(trailingVowels, last) {
			last = letters[len(letters)-2]
		}
		return last, true
	}
	return 0, false
}
