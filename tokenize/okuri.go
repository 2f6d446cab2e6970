package tokenize

import (
	"context"
	"strings"

	"kanahighlight/okurigana"
)

// Detector finds okurigana by tokenizing the word with its trailing kana and
// keeping the conjugated part of the first token plus the auxiliaries that
// attach to it. It implements okurigana.Detector.
type Detector struct {
	tok *Tokenizer
}

var _ okurigana.Detector = (*Detector)(nil)

// NewDetector returns a Detector using t.
func NewDetector(t *Tokenizer) *Detector {
	return &Detector{tok: t}
}

// Words the analyzer attaches to a conjugation that still end it.
var okuriStops = map[string]bool{
	"だろう":  true,
	"でしょう": true,
	"なら":   true,
	"から":   true,
}

type wordClass int

const (
	classNone wordClass = iota
	classVerb
	classAdjI
	classAdjNa
	classAdverb
)

func classifyToken(tk Token) wordClass {
	switch {
	case strings.HasPrefix(tk.POS, "動詞"):
		return classVerb
	case strings.HasPrefix(tk.POS, "形容詞"):
		return classAdjI
	case strings.HasPrefix(tk.POS, "名詞,形容動詞語幹"), strings.HasPrefix(tk.POS, "形状詞"):
		return classAdjNa
	case strings.HasPrefix(tk.POS, "副詞"):
		return classAdverb
	}
	return classNone
}

// attaches reports whether tk continues the conjugation of a word of class c.
func attaches(c wordClass, tk Token) bool {
	if okuriStops[tk.Text] {
		return false
	}
	switch c {
	case classVerb:
		return strings.HasPrefix(tk.POS, "助動詞") || strings.HasPrefix(tk.POS, "助詞,接続助詞")
	case classAdjI:
		return strings.HasPrefix(tk.POS, "助動詞") ||
			strings.HasPrefix(tk.POS, "助詞,接続助詞") ||
			strings.HasPrefix(tk.POS, "形容詞,非自立") ||
			strings.HasPrefix(tk.POS, "名詞,接尾,特殊")
	case classAdjNa:
		return tk.Text == "な"
	case classAdverb:
		return strings.HasPrefix(tk.POS, "動詞") && tk.Lemma == "する"
	}
	return false
}

// override handles words the analyzer splits badly.
func override(word, reading, text string) (okurigana.Result, bool) {
	switch {
	case word == "久" && reading == "ひさ" && strings.HasPrefix(text, "しぶり"):
		return okurigana.Result{Okurigana: "し", Rest: strings.TrimPrefix(text, "し"), Type: okurigana.DetectedOkuri, PartOfSpeech: okurigana.AdjI}, true
	case word == "仄々" && reading == "ほのぼの":
		for _, o := range []struct {
			okuri string
			pos   okurigana.PartOfSpeech
		}{{"した", ""}, {"しい", okurigana.AdjI}, {"し", ""}} {
			if strings.HasPrefix(text, o.okuri) {
				return okurigana.Result{Okurigana: o.okuri, Rest: text[len(o.okuri):], Type: okurigana.DetectedOkuri, PartOfSpeech: o.pos}, true
			}
		}
	}
	return okurigana.Result{}, false
}

// Detect implements okurigana.Detector. The word is tried first as
// written, then with its reading in place of the kanji.
func (d *Detector) Detect(ctx context.Context, word, okuriText string, _ rune, reading string) (okurigana.Result, error) {
	if okuriText == "" {
		return okurigana.Result{Type: okurigana.NoOkuri}, nil
	}
	if res, ok := override(word, reading, okuriText); ok {
		return res, nil
	}
	prefixes := []string{word}
	if reading != "" && reading != word {
		prefixes = append(prefixes, reading)
	}
	for _, prefix := range prefixes {
		res, ok, err := d.detect(ctx, prefix, okuriText)
		if err != nil {
			return okurigana.Result{}, err
		}
		if ok {
			return res, nil
		}
	}
	d.tok.log.Debug("no okurigana detected", "word", word, "text", okuriText)
	return okurigana.Result{Rest: okuriText, Type: okurigana.NoOkuri}, nil
}

func (d *Detector) detect(ctx context.Context, prefix, okuriText string) (okurigana.Result, bool, error) {
	toks, err := d.tok.Tokenize(ctx, prefix+okuriText)
	if err != nil {
		return okurigana.Result{}, false, err
	}
	if len(toks) == 0 || !strings.HasPrefix(toks[0].Text, prefix) {
		return okurigana.Result{}, false, nil
	}
	class := classifyToken(toks[0])
	if class == classNone {
		return okurigana.Result{}, false, nil
	}
	okuri := toks[0].Text[len(prefix):]
	for _, tk := range toks[1:] {
		if !attaches(class, tk) {
			break
		}
		okuri += tk.Text
	}
	if !strings.HasPrefix(okuriText, okuri) {
		return okurigana.Result{}, false, nil
	}
	res := okurigana.Result{
		Okurigana: okuri,
		Rest:      okuriText[len(okuri):],
		Type:      okurigana.DetectedOkuri,
	}
	if class == classAdjI {
		res.PartOfSpeech = okurigana.AdjI
	}
	return res, true, nil
}
