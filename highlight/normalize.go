package highlight

import (
	"strings"

	"kanahighlight/kana"
)

// Normalize rewrites furigana that spans kanji with kana between them into
// one bracket per kanji run, so every bracket belongs to a single run:
//
//	消え去[きえさ]る          → 消[き]え去[さ]る
//	隣り合わせ[となりあわせ]  → 隣[とな]り合[あ]わせ
//	歯止め[はどめ]            → 歯止[はど]め
//
// The kana between the runs must also appear, unchanged, inside the
// bracket; that is where the reading gets split. Text that doesn't follow
// the pattern is left alone.
func Normalize(text string) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(runes); {
		if kana.IsFuriganaBase(runes[i]) {
			if out, end, ok := splitMixed(runes, i); ok {
				b.WriteString(out)
				i = end
				continue
			}
		}
		b.WriteRune(runes[i])
		i++
	}
	// the split leaves 秘蔵っ子[ひぞっこ] as 秘蔵[ひぞ]っ子[こ]; the っ is 蔵's
	return strings.ReplaceAll(b.String(), "秘蔵[ひぞ]っ", "秘蔵[ひぞっ]")
}

// splitMixed tries the rewrite for a kanji run starting at i. It returns
// the replacement and the index just past the closing bracket.
//
// The pieces, named as in 隣り合わせ[となりあわせ]:
//
//	kanji1 隣, kana1 り, kanji2 合, kana2 わせ, furi1 とな, furi2 あ
func splitMixed(r []rune, i int) (string, int, bool) {
	k1End := runEnd(r, i, kana.IsFuriganaBase)
	hEnd := runEnd(r, k1End, kana.IsHiragana)
	if hEnd == k1End {
		return "", 0, false
	}
	kanji1 := r[i:k1End]
	kanaRun := r[k1End:hEnd]

	// Longest middle kana first. Only the full run can be followed by a
	// second kanji run; a shorter one leaves kana2 as the rest of the run.
	for k := len(kanaRun); k >= 1; k-- {
		kana1 := kanaRun[:k]
		var kanji2, kana2 []rune
		open := hEnd
		if k == len(kanaRun) {
			k2End := runEnd(r, hEnd, kana.IsFuriganaBase)
			h2End := runEnd(r, k2End, kana.IsHiragana)
			kanji2, kana2 = r[hEnd:k2End], r[k2End:h2End]
			open = h2End
		} else {
			kana2 = kanaRun[k:]
		}
		if open >= len(r) || r[open] != '[' {
			continue
		}
		closing := indexRune(r, open+1, ']')
		if closing < 0 {
			continue
		}
		content := r[open+1 : closing]

		// furi1 is as short as possible, at least one kana
		for a := 1; a+len(kana1)+len(kana2) <= len(content); a++ {
			if !hasPrefix(content[a:], kana1) {
				continue
			}
			mid := content[a+len(kana1):]
			if !hasSuffix(mid, kana2) {
				continue
			}
			furi2 := mid[:len(mid)-len(kana2)]
			// a second run needs its own reading and a reading needs a run
			if (len(furi2) == 0) != (len(kanji2) == 0) {
				continue
			}
			var b strings.Builder
			b.WriteString(string(kanji1))
			b.WriteByte('[')
			b.WriteString(string(content[:a]))
			b.WriteByte(']')
			b.WriteString(string(kana1))
			if len(kanji2) > 0 {
				b.WriteString(string(kanji2))
				b.WriteByte('[')
				b.WriteString(string(furi2))
				b.WriteByte(']')
			}
			b.WriteString(string(kana2))
			return b.String(), closing + 1, true
		}
	}
	return "", 0, false
}

func runEnd(r []rune, i int, in func(rune) bool) int {
	for i < len(r) && in(r[i]) {
		i++
	}
	return i
}

func indexRune(r []rune, from int, c rune) int {
	for j := from; j < len(r); j++ {
		if r[j] == c {
			return j
		}
	}
	return -1
}

func hasPrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}

func hasSuffix(s, suffix []rune) bool {
	if len(suffix) > len(s) {
		return false
	}
	return hasPrefix(s[len(s)-len(suffix):], suffix)
}
