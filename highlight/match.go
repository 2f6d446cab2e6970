package highlight

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"kanahighlight/kana"
	"kanahighlight/readings"
)

// Edge is where the target kanji sits in its word.
type Edge int

const (
	// EdgeWhole: the word is the kanji, or the kanji and 々.
	EdgeWhole Edge = iota
	EdgeLeft
	EdgeRight
	EdgeMiddle
)

func (e Edge) String() string {
	switch e {
	case EdgeWhole:
		return "whole"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeMiddle:
		return "middle"
	}
	return fmt.Sprintf("Edge(%d)", int(e))
}

// ClassifyEdge finds kanji in word. pos is the rune index of its first
// occurrence, or -1 when the word doesn't contain it.
func ClassifyEdge(word string, kanji rune) (edge Edge, pos int) {
	k := string(kanji)
	if word == k || word == k+string(kana.Repeater) {
		return EdgeWhole, 0
	}
	i := strings.IndexRune(word, kanji)
	if i < 0 {
		return EdgeWhole, -1
	}
	pos = utf8.RuneCountInString(word[:i])
	switch pos {
	case 0:
		return EdgeLeft, pos
	case utf8.RuneCountInString(word) - 1:
		return EdgeRight, pos
	}
	return EdgeMiddle, pos
}

// sectionBounds returns the byte range of furigana a reading for edge may
// occupy: a left kanji can't take the last kana, a right one can't take
// the first, a middle one neither.
func sectionBounds(furigana string, edge Edge) (start, end int, ok bool) {
	if furigana == "" {
		return 0, 0, edge >= EdgeWhole && edge <= EdgeMiddle
	}
	_, first := utf8.DecodeRuneInString(furigana)
	_, last := utf8.DecodeLastRuneInString(furigana)
	switch edge {
	case EdgeWhole:
		return 0, len(furigana), true
	case EdgeLeft:
		return 0, len(furigana) - last, true
	case EdgeRight:
		return first, len(furigana), true
	case EdgeMiddle:
		end = len(furigana) - last
		if end < first {
			end = first
		}
		return first, end, true
	}
	return 0, len(furigana), false
}

// TargetSection returns the part of furigana that is searched for a
// reading of a kanji on edge. For an unknown edge it returns furigana
// unchanged and false.
func TargetSection(furigana string, edge Edge) (string, bool) {
	start, end, ok := sectionBounds(furigana, edge)
	return furigana[start:end], ok
}

// ReadingKind says which list a matched reading came from.
type ReadingKind int

const (
	NoReading ReadingKind = iota
	Onyomi
	Kunyomi
)

func (k ReadingKind) String() string {
	switch k {
	case Onyomi:
		return "onyomi"
	case Kunyomi:
		return "kunyomi"
	}
	return "none"
}

// Match is a reading located in the furigana of a word. Before, Text and
// After concatenate back to the furigana; Text is what gets highlighted.
type Match struct {
	Kind   ReadingKind
	Before string
	Text   string
	After  string
}

// Render returns the match text the way it is highlighted: katakana for
// onyomi, as written otherwise.
func (m Match) Render() string {
	if m.Kind == Onyomi {
		return kana.ToKatakana(m.Text)
	}
	return m.Text
}

// candidates returns the forms a reading may take in furigana: itself,
// its rendaku forms, then its geminated form.
func candidates(reading string, rendaku bool) []string {
	out := []string{reading}
	if rendaku {
		out = append(out, kana.RendakuForms(reading)...)
	}
	if g, ok := kana.Geminate(reading); ok {
		out = append(out, g)
	}
	return out
}

// sortedOnyomi orders onyomi longest first, so クウ is tried before ク.
// Length is taken over the entry as written.
func sortedOnyomi(onyomi []readings.Reading) []readings.Reading {
	sorted := make([]readings.Reading, len(onyomi))
	copy(sorted, onyomi)
	sort.SliceStable(sorted, func(i, j int) bool {
		return utf8.RuneCountInString(sorted[i].Raw) > utf8.RuneCountInString(sorted[j].Raw)
	})
	return sorted
}

// findReading returns the first reading form found in section. Onyomi are
// tried before kunyomi. A one-kana onyomi is never voiced.
func findReading(section string, onyomi, kunyomi []readings.Reading) (ReadingKind, string) {
	for _, r := range sortedOnyomi(onyomi) {
		h := r.Hiragana()
		if h == "" {
			continue
		}
		for _, c := range candidates(h, utf8.RuneCountInString(h) > 1) {
			if strings.Contains(section, c) {
				return Onyomi, c
			}
		}
	}
	for _, r := range kunyomi {
		stem := kana.ToHiragana(r.Stem)
		if stem == "" {
			continue
		}
		for _, c := range candidates(stem, true) {
			if strings.Contains(section, c) {
				return Kunyomi, c
			}
		}
	}
	return NoReading, ""
}

// MatchReading locates a reading of the kanji in furigana, searching only
// the section edge allows. A left kanji takes the first occurrence, a
// right one the last.
func MatchReading(furigana string, edge Edge, onyomi, kunyomi []readings.Reading) (Match, bool) {
	start, end, ok := sectionBounds(furigana, edge)
	if !ok {
		return Match{}, false
	}
	section := furigana[start:end]
	kind, text := findReading(section, onyomi, kunyomi)
	if kind == NoReading {
		return Match{}, false
	}
	i := strings.Index(section, text)
	if edge == EdgeRight {
		i = strings.LastIndex(section, text)
	}
	i += start
	return Match{
		Kind:   kind,
		Before: furigana[:i],
		Text:   furigana[i : i+len(text)],
		After:  furigana[i+len(text):],
	}, true
}

// MatchKind only answers which list matched somewhere in furigana. A
// whole-word kanji needs no more than that.
func MatchKind(furigana string, onyomi, kunyomi []readings.Reading) ReadingKind {
	kind, _ := findReading(furigana, onyomi, kunyomi)
	return kind
}
