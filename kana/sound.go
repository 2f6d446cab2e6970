package kana

// voiced maps an unvoiced hiragana to the forms it takes under rendaku.
// は-row kana have both the voiced and the half-voiced variant.
var voiced = map[rune][]rune{
	'か': {'が'},
	'き': {'ぎ'},
	'く': {'ぐ'},
	'け': {'げ'},
	'こ': {'ご'},
	'さ': {'ざ'},
	'し': {'じ'},
	'す': {'ず'},
	'せ': {'ぜ'},
	'そ': {'ぞ'},
	'た': {'だ'},
	'ち': {'ぢ'},
	'つ': {'づ'},
	'て': {'で'},
	'と': {'ど'},
	'は': {'ば', 'ぱ'},
	'ひ': {'び', 'ぴ'},
	'ふ': {'ぶ', 'ぷ'},
	'へ': {'べ', 'ぺ'},
	'ほ': {'ぼ', 'ぽ'},
}

// smallTsuCandidates are the final kana that can collapse into っ before
// another consonant, as in いち→いっ in 一見. う covers 秘蔵っ子.
const smallTsuCandidates = "つちくきうりん"

// Voiced returns the rendaku counterparts of r, or nil when r has none.
func Voiced(r rune) []rune {
	return voiced[r]
}

// RendakuForms returns s with its first kana swapped for each voiced
// counterpart. It returns nil when the first kana doesn't voice.
func RendakuForms(s string) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}
	var forms []string
	for _, v := range Voiced(runes[0]) {
		forms = append(forms, string(v)+string(runes[1:]))
	}
	return forms
}

// Geminate replaces the last kana of s with っ when that kana is one that
// geminates. ok is false when s doesn't end in such a kana.
func Geminate(s string) (string, bool) {
	runes := []rune(s)
	if len(runes) == 0 {
		return "", false
	}
	last := runes[len(runes)-1]
	for _, c := range smallTsuCandidates {
		if c == last {
			runes[len(runes)-1] = SmallTsu
			return string(runes), true
		}
	}
	return "", false
}
