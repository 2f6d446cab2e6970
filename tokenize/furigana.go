package tokenize

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"kanahighlight/kana"
	"kanahighlight/kanji"
	"kanahighlight/readings"
)

// AnnotateOption configures an Annotator.
type AnnotateOption func(*Annotator)

// WithReadings replaces the per-kanji reading source used by
// WithSplitKanji. The default is kanji.GetKanjiReadings.
func WithReadings(fn func(rune) []string) AnnotateOption {
	return func(a *Annotator) {
		if fn != nil {
			a.readings = fn
		}
	}
}

// WithSplitKanji gives every kanji of a word its own bracket when its
// readings line up with the word's reading: 視聴者[しちょうしゃ] becomes
// 視[し] 聴[ちょう] 者[しゃ].
func WithSplitKanji() AnnotateOption {
	return func(a *Annotator) { a.split = true }
}

// Annotator turns plain text into bracket furigana notation, the input the
// highlighter expects.
type Annotator struct {
	tok      *Tokenizer
	readings func(rune) []string
	split    bool
}

// NewAnnotator builds an Annotator on top of t.
func NewAnnotator(t *Tokenizer, opts ...AnnotateOption) *Annotator {
	a := &Annotator{tok: t, readings: kanji.GetKanjiReadings}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Annotate tokenizes text and returns it in bracket notation together with
// the tokens, verb forms merged, each carrying its own Furigana.
func (a *Annotator) Annotate(ctx context.Context, text string) (string, []Token, error) {
	toks, err := a.tok.Tokenize(ctx, text)
	if err != nil {
		return "", nil, err
	}
	toks = a.Furigana(MergeVerbAuxiliaries(toks))
	return Render(toks), toks, nil
}

// Furigana fills in Token.Furigana for every token.
func (a *Annotator) Furigana(toks []Token) []Token {
	for i := range toks {
		toks[i].Furigana = a.furigana(toks[i].Text, toks[i].Reading)
	}
	return toks
}

// Render joins the tokens' furigana, putting a space before a bracketed
// word unless it starts the text or follows whitespace.
func Render(toks []Token) string {
	var b strings.Builder
	for _, tk := range toks {
		f := tk.Furigana
		if f == "" {
			f = tk.Text
		}
		if r, _ := utf8.DecodeRuneInString(f); b.Len() > 0 && kana.IsFuriganaBase(r) && strings.Contains(f, "[") {
			out := b.String()
			if last, _ := utf8.DecodeLastRuneInString(out); last != ' ' && last != '\n' {
				b.WriteByte(' ')
			}
		}
		b.WriteString(f)
	}
	return b.String()
}

type run struct {
	text string
	base bool
}

func splitRuns(s string) []run {
	var runs []run
	for _, r := range s {
		base := kana.IsFuriganaBase(r)
		if n := len(runs); n > 0 && runs[n-1].base == base {
			runs[n-1].text += string(r)
			continue
		}
		runs = append(runs, run{text: string(r), base: base})
	}
	return runs
}

// furigana aligns reading with surface: every kanji run becomes a lazy
// group, every kana run a literal. A surface without kanji, or one the
// reading doesn't fit, is returned as is.
func (a *Annotator) furigana(surface, reading string) string {
	if !kana.ContainsKanji(surface) || reading == "" {
		return surface
	}
	reading = kana.ToHiragana(reading)
	runs := splitRuns(surface)

	var pat strings.Builder
	pat.WriteByte('^')
	for _, r := range runs {
		if r.base {
			pat.WriteString("(.+?)")
		} else {
			pat.WriteString(regexp.QuoteMeta(kana.ToHiragana(r.text)))
		}
	}
	pat.WriteByte('$')
	re, err := regexp.Compile(pat.String())
	if err != nil {
		a.tok.log.Debug("bad alignment pattern", "surface", surface, "err", err)
		return surface
	}
	m := re.FindStringSubmatch(reading)
	if m == nil {
		a.tok.log.Debug("reading doesn't fit surface", "surface", surface, "reading", reading)
		return surface
	}

	var b strings.Builder
	group := 1
	for _, r := range runs {
		if !r.base {
			b.WriteString(r.text)
			continue
		}
		furi := m[group]
		group++
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		if a.split {
			if pairs, ok := a.AlignKanji(r.text, furi); ok {
				for i, p := range pairs {
					if i > 0 {
						b.WriteByte(' ')
					}
					b.WriteString(p[0] + "[" + p[1] + "]")
				}
				continue
			}
		}
		b.WriteString(r.text + "[" + furi + "]")
	}
	return b.String()
}

func (a *Annotator) candidates(k rune, first, last bool) []string {
	var out []string
	for _, raw := range a.readings(k) {
		parsed, err := readings.Parse(raw)
		if err != nil {
			continue
		}
		for _, p := range parsed {
			forms := []string{p.Hiragana()}
			if stem := kana.ToHiragana(p.Stem); stem != forms[0] {
				forms = append(forms, stem)
			}
			for _, f := range forms {
				if f == "" {
					continue
				}
				out = append(out, f)
				if !first {
					out = append(out, kana.RendakuForms(f)...)
				}
				if g, ok := kana.Geminate(f); ok && !last {
					out = append(out, g)
				}
			}
		}
	}
	return out
}

// AlignKanji splits the reading of a kanji run across its kanji using their
// dictionary readings, taking the longest reading that fits at each step.
// 々 reads like the kanji before it. The last kanji may take whatever is
// left. ok is false when the readings don't cover the run.
func (a *Annotator) AlignKanji(word, reading string) ([][2]string, bool) {
	runes := []rune(word)
	rest := reading
	pairs := make([][2]string, 0, len(runes))
	for i, r := range runes {
		src := r
		if r == kana.Repeater && i > 0 {
			src = runes[i-1]
		}
		last := i == len(runes)-1
		best := ""
		for _, c := range a.candidates(src, i == 0, last) {
			if len(c) > len(best) && strings.HasPrefix(rest, c) {
				best = c
			}
		}
		if best == "" || (last && best != rest) {
			if !last || rest == "" {
				return nil, false
			}
			best = rest
		}
		pairs = append(pairs, [2]string{string(r), best})
		rest = rest[len(best):]
	}
	return pairs, rest == ""
}

// Stream annotates each Sentence from in, in order.
func (a *Annotator) Stream(ctx context.Context, in <-chan Sentence) <-chan Tokenized {
	out := make(chan Tokenized, 16)
	go func() {
		defer close(out)
		for res := range a.tok.Start(ctx, in) {
			if res.Err == nil {
				res.Tokens = a.Furigana(MergeVerbAuxiliaries(res.Tokens))
			}
			select {
			case <-ctx.Done():
				return
			case out <- res:
			}
		}
	}()
	return out
}
