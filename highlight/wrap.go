package highlight

import (
	"regexp"
	"strings"

	"kanahighlight/kana"
)

// Tag says how a kanji was read: onyomi, kunyomi or as part of a
// jukujikun reading of the whole word.
type Tag string

const (
	TagOn  Tag = "on"
	TagKun Tag = "kun"
	TagJuk Tag = "juk"
)

// A tagged segment: <b>? <on|kun|juk> kana </same tag> </b>?
// RE2 has no backreferences, so the closing tag is checked by hand.
var tagRE = regexp.MustCompile(`(<b>)?<(on|kun|juk)>(.*?)</(on|kun|juk)>(</b>)?`)

// Segment is one tagged piece of furigana, paired with its kanji by
// WrapWord.
type Segment struct {
	Kanji       string
	Tag         Tag
	Highlighted bool
	Kana        string
}

// ParseTags reads the tagged segments of furigana in order. Segments whose
// closing tag doesn't match the opening one are skipped.
func ParseTags(furigana string) []Segment {
	var segs []Segment
	for _, m := range tagRE.FindAllStringSubmatch(furigana, -1) {
		if m[2] != m[4] {
			continue
		}
		segs = append(segs, Segment{
			Tag:         Tag(m[2]),
			Highlighted: m[1] != "",
			Kana:        m[3],
		})
	}
	return segs
}

// pairKanji gives each segment its kanji. A kanji followed by itself or by
// 々 is one unit, and a juk segment takes the whole word. Segments beyond
// the last kanji are dropped.
func pairKanji(word string, segs []Segment) []Segment {
	runes := []rune(word)
	var out []Segment
	i := 0
	for _, s := range segs {
		if s.Tag == TagJuk {
			s.Kanji = word
			out = append(out, s)
			break
		}
		if i >= len(runes) {
			break
		}
		if i+1 < len(runes) && (runes[i+1] == runes[i] || runes[i+1] == kana.Repeater) {
			s.Kanji = string(runes[i : i+2])
			i += 2
		} else {
			s.Kanji = string(runes[i])
			i++
		}
		out = append(out, s)
	}
	return out
}

// WrapWord renders word with furigana carrying <on>, <kun> or <juk> tags
// per kanji, keeping the tags in the output:
//
//	WrapWord("友達", "<kun>とも</kun><on>だち</on>", Furigana, true)
//	  → <kun> 友[とも]</kun><on> 達[だち]</on>
//
// With merge, neighbouring segments of the same tag and highlight are
// joined into one: <on>ジ</on><on>カン</on> → <on> 時間[ジカン]</on>.
func WrapWord(word, furigana string, mode Mode, merge bool) string {
	if mode == KanaOnly && !merge {
		return furigana
	}
	segs := pairKanji(word, ParseTags(furigana))
	var b strings.Builder
	for i := 0; i < len(segs); i++ {
		cur := segs[i]
		for merge && i+1 < len(segs) && segs[i+1].Tag == cur.Tag && segs[i+1].Highlighted == cur.Highlighted {
			cur.Kanji += segs[i+1].Kanji
			cur.Kana += segs[i+1].Kana
			i++
		}
		var s string
		switch mode {
		case Furigana:
			s = "<" + string(cur.Tag) + "> " + cur.Kanji + "[" + cur.Kana + "]</" + string(cur.Tag) + ">"
		case Furikanji:
			s = "<" + string(cur.Tag) + "> " + cur.Kana + "[" + cur.Kanji + "]</" + string(cur.Tag) + ">"
		default:
			s = "<" + string(cur.Tag) + ">" + cur.Kana + "</" + string(cur.Tag) + ">"
		}
		if cur.Highlighted {
			s = "<b>" + s + "</b>"
		}
		b.WriteString(s)
	}
	return b.String()
}
