// Package tokenize runs kagome over Japanese text. Its tokens feed the
// furigana annotator and the okurigana detector.
package tokenize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"kanahighlight/logger"
	"kanahighlight/model"
)

// Token represents a token / morpheme produced by the tokenizer.
type Token = model.Token

// DictByName returns the kagome dictionary for name: ipa (the default)
// or uni.
func DictByName(name string) (*dict.Dict, error) {
	switch strings.ToLower(name) {
	case "", "ipa":
		return ipa.Dict(), nil
	case "uni":
		return uni.Dict(), nil
	}
	return nil, fmt.Errorf("unknown tokenizer dictionary %q", name)
}

// modes are kagome's segmentation modes by name.
var modes = map[string]tokenizer.TokenizeMode{
	"normal":   tokenizer.Normal,
	"search":   tokenizer.Search,
	"extended": tokenizer.Extended,
}

// ModeByName returns the kagome segmentation mode for name: normal (the
// default), search or extended.
func ModeByName(name string) (tokenizer.TokenizeMode, error) {
	if name == "" {
		return tokenizer.Normal, nil
	}
	if m, ok := modes[strings.ToLower(name)]; ok {
		return m, nil
	}
	return tokenizer.Normal, fmt.Errorf("unknown tokenizer mode %q", name)
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithDict sets the kagome dictionary. The default is IPA.
func WithDict(d *dict.Dict) Option {
	return func(t *Tokenizer) { t.dict = d }
}

// WithMode sets the segmentation mode used by Tokenize.
func WithMode(m tokenizer.TokenizeMode) Option {
	return func(t *Tokenizer) { t.mode = m }
}

// WithLogger sets where diagnostics go.
func WithLogger(l logger.Logger) Option {
	return func(t *Tokenizer) {
		if l != nil {
			t.log = l
		}
	}
}

// Tokenizer wraps a kagome tokenizer. It is safe for concurrent use.
type Tokenizer struct {
	kg   *tokenizer.Tokenizer
	dict *dict.Dict
	mode tokenizer.TokenizeMode
	log  logger.Logger
}

// New builds a Tokenizer. BOS and EOS tokens are omitted.
func New(opts ...Option) (*Tokenizer, error) {
	t := &Tokenizer{mode: tokenizer.Normal, log: logger.Nop}
	for _, opt := range opts {
		opt(t)
	}
	if t.dict == nil {
		t.dict = ipa.Dict()
	}
	kg, err := tokenizer.New(t.dict, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("creating tokenizer: %w", err)
	}
	t.kg = kg
	return t, nil
}

func convertKagomeTokens(ktoks []tokenizer.Token) []Token {
	out := make([]Token, 0, len(ktoks))
	for _, kt := range ktoks {
		lemma, _ := kt.BaseForm()
		if lemma == "" || lemma == "*" {
			lemma = kt.Surface
		}
		reading, ok := kt.Reading()
		if !ok || reading == "*" {
			reading = ""
		}
		pron, ok := kt.Pronunciation()
		if !ok || pron == "*" {
			pron = ""
		}
		infType, _ := kt.InflectionalType()
		infForm, _ := kt.InflectionalForm()
		out = append(out, Token{
			Text:           kt.Surface,
			Lemma:          lemma,
			POS:            strings.Join(kt.POS(), ","),
			Start:          kt.Start,
			End:            kt.End,
			Reading:        reading,
			Pronunciation:  pron,
			TokenID:        kt.ID,
			InflectionType: infType,
			InflectionForm: infForm,
		})
	}
	return out
}

// Tokenize splits text in the tokenizer's mode, normal unless WithMode
// says otherwise.
func (t *Tokenizer) Tokenize(ctx context.Context, text string) ([]Token, error) {
	if text == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return convertKagomeTokens(t.kg.Analyze(text, t.mode)), nil
}

// TokenizeModes runs kagome in Normal, Search and Extended modes and returns
// the tokens keyed by mode name. Useful to compare segmentations.
func (t *Tokenizer) TokenizeModes(ctx context.Context, text string) (map[string][]Token, error) {
	res := make(map[string][]Token)
	if text == "" {
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for name, m := range modes {
		res[name] = convertKagomeTokens(t.kg.Analyze(text, m))
	}
	return res, nil
}

// MergeVerbAuxiliaries scans tokens and merges verb+auxiliary sequences into a single token.
func MergeVerbAuxiliaries(tokens []Token) []Token {
	var out []Token
	i := 0
	for i < len(tokens) {
		tk := tokens[i]
		if strings.HasPrefix(tk.POS, "動詞") {
			auxs := []Token{}
			indices := []int{tk.Start}
			j := i + 1
			for j < len(tokens) && (strings.HasPrefix(tokens[j].POS, "助動詞") ||
				strings.HasPrefix(tokens[j].POS, "動詞,非自立") ||
				strings.HasPrefix(tokens[j].POS, "動詞,接尾")) {
				auxs = append(auxs, tokens[j])
				indices = append(indices, tokens[j].Start)
				j++
			}
			if len(auxs) > 0 {
				merged := tk
				conjugation := []string{}
				for _, aux := range auxs {
					merged.Text += aux.Text
					merged.Reading += aux.Reading
					merged.Pronunciation += aux.Pronunciation
					conjugation = append(conjugation, aux.Lemma)
				}
				merged.End = auxs[len(auxs)-1].End
				merged.Conjugation = conjugation
				merged.Auxiliaries = auxs
				merged.MergedIndices = indices
				merged.ConjugationLabel = getConjugationLabel(conjugation)
				out = append(out, merged)
				i = j
				continue
			}
		}
		out = append(out, tk)
		i++
	}
	return out
}

// getConjugationLabel maps auxiliary lemma sequences to a human-readable conjugation label.
func getConjugationLabel(auxs []string) string {
	switch strings.Join(auxs, "+") {
	case "ます":
		return "polite"
	case "た":
		return "past"
	case "ます+た":
		return "polite past"
	case "ない":
		return "negative"
	case "ない+た":
		return "negative past"
	}
	return ""
}

// Sentence is one unit of text fed to Start.
type Sentence struct {
	ID   string
	Text string
}

// Tokenized pairs a Sentence with the tokens produced for it.
type Tokenized struct {
	Sentence Sentence
	Tokens   []Token
	Err      error
}

// Start launches a goroutine that tokenizes every Sentence from in and
// publishes the results in order. The output channel is closed when in is
// closed or ctx is done.
func (t *Tokenizer) Start(ctx context.Context, in <-chan Sentence) <-chan Tokenized {
	out := make(chan Tokenized, 16)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case s, ok := <-in:
				if !ok {
					return
				}
				toks, err := t.Tokenize(ctx, s.Text)
				if err != nil && !errors.Is(err, context.Canceled) {
					t.log.Warning("tokenize failed", "id", s.ID, "err", err)
				}
				t.log.Debug("tokenized", "id", s.ID, "tokens", len(toks))
				select {
				case <-ctx.Done():
					return
				case out <- Tokenized{Sentence: s, Tokens: toks, Err: err}:
				}
			}
		}
	}()
	return out
}
