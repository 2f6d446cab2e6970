// Package kana holds the character tables the highlighter is built on:
// script conversion, character classes, sound changes and mora.
package kana

import (
	"strings"
	"unicode"
)

const (
	// Repeater is the kanji iteration mark, read as a copy of the kanji before it.
	Repeater = '々'
	// SmallTsu marks gemination of the following consonant.
	SmallTsu = 'っ'

	katakanaOffset = 0x60
)

// IsHiragana reports whether r is in the basic hiragana range ぁ..ん.
func IsHiragana(r rune) bool {
	return r >= 'ぁ' && r <= 'ん'
}

// IsKatakana reports whether r is in the katakana range ァ..ヶ.
func IsKatakana(r rune) bool {
	return r >= 'ァ' && r <= 'ヶ'
}

// IsKana returns true if rune is Hiragana or Katakana
func IsKana(r rune) bool {
	return (r >= 0x3040 && r <= 0x309F) || (r >= 0x30A0 && r <= 0x30FF)
}

// IsKanji reports whether r is a CJK ideograph (unified or extension A) or the repeater.
func IsKanji(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FAF) || (r >= 0x3400 && r <= 0x4DBF) || r == Repeater
}

// IsFuriganaBase reports whether r can carry furigana. Digits count, since
// readings like ７[なな] are common.
func IsFuriganaBase(r rune) bool {
	return IsKanji(r) || unicode.IsDigit(r)
}

// ToKatakana converts every hiragana rune in s to katakana. Other runes pass through.
func ToKatakana(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'ぁ' && r <= 'ゖ') || r == 'ゝ' || r == 'ゞ' {
			return r + katakanaOffset
		}
		return r
	}, s)
}

// ToHiragana converts every katakana rune in s to hiragana. Other runes pass through.
func ToHiragana(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'ァ' && r <= 'ヶ') || r == 'ヽ' || r == 'ヾ' {
			return r - katakanaOffset
		}
		return r
	}, s)
}

// ContainsKanji reports whether any rune of s is a kanji.
func ContainsKanji(s string) bool {
	return strings.IndexFunc(s, IsKanji) >= 0
}
