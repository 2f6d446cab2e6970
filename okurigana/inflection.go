package okurigana

import (
	"fmt"
	"strings"
)

// Type classifies how much of a text was recognised as okurigana.
type Type int

const (
	NoOkuri Type = iota
	// FullOkuri: the match ends on a complete conjugated form.
	FullOkuri
	// PartialOkuri: the text ran out or diverged part way through a form.
	PartialOkuri
	// EmptyOkuri: nothing was consumed, but a bare stem is valid.
	EmptyOkuri
	// DetectedOkuri: found by a morphological Detector rather than the table.
	DetectedOkuri
)

var typeNames = [...]string{
	NoOkuri:       "no_okuri",
	FullOkuri:     "full_okuri",
	PartialOkuri:  "partial_okuri",
	EmptyOkuri:    "empty_okuri",
	DetectedOkuri: "detected_okuri",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// MarshalText writes the snake_case name used on the wire.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText accepts the snake_case names.
func (t *Type) UnmarshalText(b []byte) error {
	for i, n := range typeNames {
		if n == string(b) {
			*t = Type(i)
			return nil
		}
	}
	return fmt.Errorf("unknown okurigana result %q", string(b))
}

// Result is the outcome of one okurigana check.
type Result struct {
	Okurigana    string       `json:"okurigana"`
	Rest         string       `json:"rest_kana"`
	Type         Type         `json:"result"`
	PartOfSpeech PartOfSpeech `json:"part_of_speech,omitempty"`
}

func noOkuri(rest string) Result {
	return Result{Rest: rest, Type: NoOkuri}
}

// MatchConjugation finds the longest conjugated ending at the start of text
// for a word whose dictionary okurigana is okuri. text must already have the
// conjugation stem removed.
func MatchConjugation(text, okuri string, kanji rune, reading string) Result {
	if text == "" || okuri == "" {
		return noOkuri(text)
	}
	pos, ok := Classify(okuri, kanji, reading)
	if !ok {
		return noOkuri(text)
	}
	return matchPartOfSpeech(text, pos)
}

func matchPartOfSpeech(text string, pos PartOfSpeech) Result {
	t := trieFor(pos)
	if t == nil {
		// a class the table has no endings for
		return noOkuri(text)
	}
	res := t.walk(text)
	res.PartOfSpeech = pos
	return res
}

// conjugatableEndings are the final kana a dictionary form conjugates on.
const conjugatableEndings = "うくぐすつぬぶむるい"

// ConjugatableStem returns okuri without its final kana when that kana is
// a verb or i-adjective ending. The stem is empty for single-kana okurigana.
func ConjugatableStem(okuri string) (string, bool) {
	runes := []rune(okuri)
	if len(runes) == 0 {
		return "", false
	}
	if !strings.ContainsRune(conjugatableEndings, runes[len(runes)-1]) {
		return "", false
	}
	return string(runes[:len(runes)-1]), true
}

// CheckInflection decides whether text, the kana found after a kanji, starts
// with a form of readingOkuri, the okurigana of one of the kanji's kunyomi
// (the る of とな.る). reading is that kunyomi's stem. A non-empty override
// is used instead of classifying the okurigana.
func CheckInflection(readingOkuri, reading, text string, kanji rune, override PartOfSpeech) Result {
	if readingOkuri == "" || text == "" {
		return Result{Type: NoOkuri}
	}
	if readingOkuri == text {
		return Result{Okurigana: readingOkuri, Type: FullOkuri}
	}

	stem, ok := ConjugatableStem(readingOkuri)
	if ok && stem != "" && stem == text {
		return Result{Okurigana: stem, Type: FullOkuri}
	}
	if !ok || !strings.HasPrefix(text, stem) {
		// not conjugatable this way, only a verbatim okurigana counts
		if strings.HasPrefix(text, readingOkuri) {
			return Result{Okurigana: readingOkuri, Rest: text[len(readingOkuri):], Type: FullOkuri}
		}
		return noOkuri(text)
	}

	var res Result
	if override != "" {
		res = matchPartOfSpeech(text[len(stem):], override)
	} else {
		res = MatchConjugation(text[len(stem):], readingOkuri, kanji, reading)
	}
	if res.Type == NoOkuri {
		return noOkuri(text)
	}
	res.Okurigana = stem + res.Okurigana
	return res
}
