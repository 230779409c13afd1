package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestFold verifies diacritics, tatweel and hamza seats are removed.
*/
func TestFold(t *testing.T) {
	assert.Equal(t, "كبارا", fold("كِباراً"))
	assert.Equal(t, "جميل", fold("جميـــل"))
	assert.Equal(t, "الاجسام", fold("الأَجسامُ"))
}

/*
TestRhymeLetter verifies the rhyme letter of a verse ending.
*/
func TestRhymeLetter(t *testing.T) {
	tests := []struct {
		verse  string
		letter rune
		ok     bool
	}{
		{"تعبت في مرادها الأجسامُ", 'م', true},
		{"بكيت على ليلى", 'ل', true},
		{"ما أجمل السماء", 'ء', true},
		{"قال هو", 'و', true},
		{"نسيم الصبا 123 !", 'ب', true},
		{"123 !", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.verse, func(t *testing.T) {
			letter, ok := rhymeLetter(tt.verse)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.letter, letter)
		})
	}
}
