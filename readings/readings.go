// Package readings parses kanji reading lists as kanjidic and most decks
// write them: 、-separated entries, an optional (annotation) after each, and
// a '.' splitting a kunyomi into stem and okurigana, e.g. "とな.る、となり".
package readings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"golang.org/x/text/width"

	"kanahighlight/kana"
)

// Separator joins readings of one kanji.
const Separator = "、"

// Reading is one parsed entry of a reading list.
type Reading struct {
	// Raw is the entry as written, annotation included.
	Raw string
	// Stem is the part before '.', or the whole reading when there is no '.'.
	Stem string
	// Okurigana is the dictionary-form kana after '.'.
	Okurigana string
	// Note is the text of a trailing (annotation), without parentheses.
	Note string
	// Prefix and Suffix mark kanjidic's leading or trailing '-'.
	Prefix bool
	Suffix bool
}

// Kana returns the reading without markers, stem and okurigana joined.
func (r Reading) Kana() string {
	return r.Stem + r.Okurigana
}

// Hiragana returns Kana converted to hiragana, the form furigana is written in.
func (r Reading) Hiragana() string {
	return kana.ToHiragana(r.Kana())
}

// String writes the reading back in list form, without the annotation.
func (r Reading) String() string {
	var b strings.Builder
	if r.Prefix {
		b.WriteByte('-')
	}
	b.WriteString(r.Stem)
	if r.Okurigana != "" {
		b.WriteByte('.')
		b.WriteString(r.Okurigana)
	}
	if r.Suffix {
		b.WriteByte('-')
	}
	return b.String()
}

var readingLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Note", Pattern: `\([^)]*\)`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Kana", Pattern: `[^.()\s-]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type entry struct {
	Prefix bool   `parser:"@Dash?"`
	Stem   string `parser:"@Kana"`
	Okuri  string `parser:"( Dot @Kana )?"`
	Suffix bool   `parser:"@Dash?"`
	Note   string `parser:"@Note?"`
}

var entryParser = participle.MustBuild[entry](
	participle.Lexer(readingLexer),
	participle.Elide("Whitespace"),
)

// ErrMalformed is wrapped by Parse for entries it had to skip.
var ErrMalformed = errors.New("malformed reading")

// Parse splits a reading list and parses every entry. Entries that don't
// parse (two dots, stray parentheses) are skipped; the readings that did
// parse are returned together with an error naming the skipped ones.
// Full-width ASCII such as （漢） is folded first.
func Parse(list string) ([]Reading, error) {
	list = width.Fold.String(list)
	var out []Reading
	var errs []error
	for _, raw := range split(list) {
		e, err := entryParser.ParseString("", raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w %q: %v", ErrMalformed, raw, err))
			continue
		}
		out = append(out, Reading{
			Raw:       raw,
			Stem:      e.Stem,
			Okurigana: e.Okuri,
			Note:      strings.Trim(e.Note, "()"),
			Prefix:    e.Prefix,
			Suffix:    e.Suffix,
		})
	}
	return out, errors.Join(errs...)
}

// MustParse is Parse for readings known to be well formed, as in tests and tables.
func MustParse(list string) []Reading {
	r, err := Parse(list)
	if err != nil {
		panic(err)
	}
	return r
}

// Join writes readings back as a 、-separated list.
func Join(rs []Reading) string {
	parts := make([]string, 0, len(rs))
	for _, r := range rs {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, Separator)
}

// split cuts on the Japanese and ASCII list separators and drops empty entries.
func split(list string) []string {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == '、' || r == ','
	})
	out := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
