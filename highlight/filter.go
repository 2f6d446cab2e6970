package highlight

import (
	"regexp"
	"strings"

	"kanahighlight/kana"
)

var (
	// kanjiFuriganaRE is a kanji run with its reading, and the space that
	// separates it from the word before
	kanjiFuriganaRE = regexp.MustCompile(` ?([\p{Nd}々\x{3400}-\x{4DBF}\x{4E00}-\x{9FAF}]+)\[(.+?)\]`)

	// ankiFuriganaRE is Anki's own furigana pattern, any base up to a space or tag
	ankiFuriganaRE = regexp.MustCompile(` ?([^ >]+?)\[(.+?)\]`)

	soundTagRE = regexp.MustCompile(`\[sound:[^\]]*\]`)

	highlightReplacer = strings.NewReplacer("<b>", "", "</b>", "")
	nbspReplacer      = strings.NewReplacer("&nbsp;", " ")
)

// StripHighlight removes <b> and </b> tags.
func StripHighlight(text string) string {
	return highlightReplacer.Replace(text)
}

// KanaFilter turns bracket notation into plain reading, like Anki's kana
// filter: 日記[にっき]を 書[か]いた → にっきをかいた. Sound tags are kept
// and kanji or digits left without a reading are dropped.
func KanaFilter(text string) string {
	text = nbspReplacer.Replace(text)
	text = replaceSubmatch(kanjiFuriganaRE, text, func(whole, _, furigana string) string {
		if strings.HasPrefix(furigana, soundTag) {
			return whole
		}
		return furigana
	})
	var b strings.Builder
	last := 0
	for _, loc := range soundTagRE.FindAllStringIndex(text, -1) {
		b.WriteString(dropBases(text[last:loc[0]]))
		b.WriteString(text[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(dropBases(text[last:]))
	return b.String()
}

func dropBases(s string) string {
	return strings.Map(func(r rune) rune {
		if kana.IsFuriganaBase(r) {
			return -1
		}
		return r
	}, s)
}

// ReverseFurigana swaps every base and reading: 漢字[かんじ] → かんじ[漢字].
// The separating space is kept.
func ReverseFurigana(text string) string {
	text = nbspReplacer.Replace(text)
	return replaceSubmatch(ankiFuriganaRE, text, func(whole, base, furigana string) string {
		if strings.HasPrefix(furigana, soundTag) {
			return whole
		}
		lead := ""
		if strings.HasPrefix(whole, " ") {
			lead = " "
		}
		return lead + furigana + "[" + base + "]"
	})
}

// replaceSubmatch is ReplaceAllStringFunc with the two groups handed over.
func replaceSubmatch(re *regexp.Regexp, text string, fn func(whole, base, furigana string) string) string {
	var b strings.Builder
	last := 0
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		b.WriteString(text[last:m[0]])
		b.WriteString(fn(text[m[0]:m[1]], text[m[2]:m[3]], text[m[4]:m[5]]))
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}
