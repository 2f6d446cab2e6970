package kana

import "strings"

// moraList is tried in order at each position; the first entry that matches
// wins. Digraphs come first so きゃ isn't split into き + ゃ.
var moraList = []string{
	"くぃ", "きゃ", "きゅ", "きぇ", "きょ", "ぐぃ", "ご",
	"ぎゃ", "ぎゅ", "ぎぇ", "ぎょ", "すぃ", "しゃ", "しゅ", "しぇ", "しょ",
	"ずぃ", "じゃ", "じゅ", "じぇ", "じょ", "てぃ", "とぅ",
	"ちゃ", "ちゅ", "ちぇ", "ちょ", "でぃ", "どぅ", "ぢゃ", "でゅ",
	"ぢゅ", "ぢぇ", "ぢょ", "つぁ", "つぃ", "つぇ", "つぉ", "づぁ", "づぃ", "づぇ", "づぉ",
	"ひぃ", "ほぅ", "ひゃ", "ひゅ", "ひぇ", "ひょ", "びぃ", "ぼ",
	"びゃ", "びゅ", "びぇ", "びょ", "ぴぃ", "ぴゃ", "ぴゅ", "ぴぇ", "ぴょ",
	"ふぁ", "ふぃ", "ふぇ", "ふぉ", "ゔぁ", "ゔぃ", "ゔ", "ゔぇ", "ゔぉ", "ぬぃ", "の",
	"にゃ", "にゅ", "にぇ", "にょ", "むぃ", "みゃ", "みゅ", "みぇ", "みょ",
	"るぃ", "りゃ", "りゅ", "りぇ", "りょ",
	"いぇ",

	"か", "く", "け", "こ", "き", "が", "ぐ", "げ", "ご",
	"ぎ", "さ", "す", "せ", "そ", "し",
	"ざ", "ず", "づ", "ぜ", "ぞ", "じ", "ぢ", "た", "とぅ",
	"て", "と", "ち", "だ", "で", "ど", "ぢ",
	"つ", "づ", "は",
	"へ", "ほ", "ひ", "ば", "ぶ", "べ", "ぼ", "ぼ",
	"び", "ぱ", "ぷ", "べ", "ぽ", "ぴ",
	"ふ", "ゔぃ", "ゔ", "な", "ぬ", "ね", "の",
	"に", "ま", "む", "め", "も", "み",
	"ら", "る", "れ", "ろ", "り", "あ", "い", "う", "え", "お", "や",
	"ゆ", "よ", "わ", "ゐ", "ゑ", "を",
}

// SplitMora segments hiragana into mora. A rune no table entry starts with
// (っ, ん, a stray small kana) becomes a mora of its own, so joining the
// result always gives back s.
func SplitMora(s string) []string {
	var out []string
	for len(s) > 0 {
		m := matchMora(s)
		if m == "" {
			// unknown rune, keep it whole
			r := []rune(s)[0]
			m = string(r)
		}
		out = append(out, m)
		s = s[len(m):]
	}
	return out
}

func matchMora(s string) string {
	for _, m := range moraList {
		if strings.HasPrefix(s, m) {
			return m
		}
	}
	return ""
}
