package highlight

import (
	"strings"

	"kanahighlight/kana"
)

// Apportion splits total mora over count kanji: each gets total/count,
// and the first total%count get one more.
func Apportion(total, count int) []int {
	if count <= 0 {
		return nil
	}
	shares := make([]int, count)
	for i := range shares {
		shares[i] = total / count
		if i < total%count {
			shares[i]++
		}
	}
	return shares
}

// Jukujikun guesses the share of a reading belonging to the kanji at pos
// when none of its readings appear, as in 大人[おとな]. The furigana is
// split into mora and dealt out by Apportion. Any of the three parts may
// come back empty when there are fewer mora than kanji. The match has
// no reading kind, since no reading was found.
func Jukujikun(furigana string, count, pos int) Match {
	mora := kana.SplitMora(furigana)
	shares := Apportion(len(mora), count)
	if shares == nil || pos < 0 || pos >= count {
		return Match{Before: furigana}
	}
	var before, match, after strings.Builder
	i := 0
	for k, n := range shares {
		seg := strings.Join(mora[i:i+n], "")
		i += n
		switch {
		case k < pos:
			before.WriteString(seg)
		case k == pos:
			match.WriteString(seg)
		default:
			after.WriteString(seg)
		}
	}
	return Match{Before: before.String(), Text: match.String(), After: after.String()}
}
