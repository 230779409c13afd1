package analysis

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// tatweel is the Arabic elongation mark.
const tatweel = 'ـ'

// trailingVowels are letters that lengthen a rhyme without being its letter.
const trailingVowels = "اىويهة"

// fold removes diacritics, tatweel and hamza seats so that letters compare by skeleton.
func fold(text string) string {
	folder := transform.Chain(
		norm.NFD,
		runes.Remove(runes.Predicate(func(r rune) bool {
			return unicode.Is(unicode.Mn, r) || r == tatweel
		})),
		norm.NFC,
	)

	folded, _, err := transform.String(folder, text)
	if err != nil {
		return text
	}
	return folded
}

var letterNames = map[rune]string{
	'ء': "الهمزة", 'ا': "الألف", 'ب': "الباء", 'ت': "التاء", 'ث': "الثاء",
	'ج': "الجيم", 'ح': "الحاء", 'خ': "الخاء", 'د': "الدال", 'ذ': "الذال",
	'ر': "الراء", 'ز': "الزاي", 'س': "السين", 'ش': "الشين", 'ص': "الصاد",
	'ض': "الضاد", 'ط': "الطاء", 'ظ': "الظاء", 'ع': "العين", 'غ': "الغين",
	'ف': "الفاء", 'ق': "القاف", 'ك': "الكاف", 'ل': "اللام", 'م': "الميم",
	'ن': "النون", 'ه': "الهاء", 'و': "الواو", 'ي': "الياء", 'ى': "الألف",
	'ة': "التاء",
}

// rhymeName returns the traditional name of a rhyme letter, or "" when unknown.
func rhymeName(letter rune) string {
	return letterNames[letter]
}
