// Package highlight marks the part of a furigana reading that belongs to
// one kanji. Text comes in Anki's bracket notation, 漢字[かんじ], and goes
// out in one of three renderings with the kanji's share wrapped in <b>.
package highlight

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"kanahighlight/kana"
	"kanahighlight/logger"
	"kanahighlight/okurigana"
	"kanahighlight/readings"
)

// Mode is the output rendering.
type Mode int

const (
	// KanaOnly drops the kanji: <b>シ</b>ちょうしゃ
	KanaOnly Mode = iota
	// Furigana keeps bracket notation: <b> 視[シ]</b> 聴者[ちょうしゃ]
	Furigana
	// Furikanji swaps base and reading: <b> シ[視]</b> ちょうしゃ[聴者]
	Furikanji
)

var modeNames = [...]string{"kana_only", "furigana", "furikanji"}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts kana_only, furigana and furikanji.
func ParseMode(s string) (Mode, error) {
	for i, n := range modeNames {
		if strings.EqualFold(s, n) {
			return Mode(i), nil
		}
	}
	return KanaOnly, fmt.Errorf("unknown mode %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// wordRE matches a kanji run, its furigana and the hiragana that follows.
var wordRE = regexp.MustCompile(`([\p{Nd}々\x{3400}-\x{4DBF}\x{4E00}-\x{9FAF}]+)\[(.+?)\]([ぁ-ん]*)`)

const soundTag = "sound:"

// Option configures a Highlighter.
type Option func(*Highlighter)

// WithLogger sets where diagnostics go. The default is logger.Nop.
func WithLogger(l logger.Logger) Option {
	return func(h *Highlighter) {
		if l != nil {
			h.log = l
		}
	}
}

// WithOkurigana extends a kunyomi highlight on the right edge over the
// conjugated okurigana after the word: <b>かなしく</b>すぎる.
func WithOkurigana() Option {
	return func(h *Highlighter) { h.extendOkuri = true }
}

// WithDetector sets a fallback for okurigana the conjugation table can't
// place. It implies WithOkurigana.
func WithDetector(d okurigana.Detector) Option {
	return func(h *Highlighter) {
		h.detector = d
		h.extendOkuri = d != nil || h.extendOkuri
	}
}

// Highlighter is safe for concurrent use.
type Highlighter struct {
	log         logger.Logger
	extendOkuri bool
	detector    okurigana.Detector
}

// TargetSection is the package TargetSection with an unknown edge logged.
func (h *Highlighter) TargetSection(furigana string, edge Edge) string {
	s, ok := TargetSection(furigana, edge)
	if !ok {
		h.log.Error("unknown edge, searching the whole furigana", "edge", edge, "furigana", furigana)
	}
	return s
}

// New returns a Highlighter. Without options it logs nothing and leaves
// okurigana out of the highlight.
func New(opts ...Option) *Highlighter {
	h := &Highlighter{log: logger.Nop}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

var defaultHighlighter = New()

// Highlight runs the default Highlighter.
func Highlight(kanji rune, onyomi, kunyomi, text string, mode Mode) string {
	return defaultHighlighter.Highlight(kanji, onyomi, kunyomi, text, mode)
}

// Highlight marks the reading of kanji in every bracketed word of text.
// onyomi and kunyomi are reading lists as kanjidic writes them, e.g.
// "シ(漢)、ジ(呉)" and "み.る". Existing <b> tags are dropped first, so
// highlighting twice gives the same result.
func (h *Highlighter) Highlight(kanji rune, onyomi, kunyomi, text string, mode Mode) string {
	return h.HighlightContext(context.Background(), kanji, onyomi, kunyomi, text, mode)
}

// HighlightContext is Highlight with a context for the okurigana detector.
func (h *Highlighter) HighlightContext(ctx context.Context, kanji rune, onyomi, kunyomi, text string, mode Mode) string {
	ons, err := readings.Parse(onyomi)
	if err != nil {
		h.log.Warning("skipping onyomi", "kanji", string(kanji), "err", err)
	}
	kuns, err := readings.Parse(kunyomi)
	if err != nil {
		h.log.Warning("skipping kunyomi", "kanji", string(kanji), "err", err)
	}
	w := &wordHighlighter{Highlighter: h, ctx: ctx, kanji: kanji, onyomi: ons, kunyomi: kuns}

	text = Normalize(StripHighlight(text))
	var b strings.Builder
	last := 0
	for _, m := range wordRE.FindAllStringSubmatchIndex(text, -1) {
		b.WriteString(text[last:m[0]])
		word, furigana, trailing := text[m[2]:m[3]], text[m[4]:m[5]], text[m[6]:m[7]]
		if strings.HasPrefix(furigana, soundTag) {
			b.WriteString(text[m[0]:m[1]])
		} else {
			b.WriteString(w.word(word, furigana, trailing).render(mode))
		}
		last = m[1]
	}
	b.WriteString(text[last:])

	out := strings.ReplaceAll(b.String(), "  ", " ")
	return strings.ReplaceAll(out, " <b> ", "<b> ")
}

type wordHighlighter struct {
	*Highlighter
	ctx     context.Context
	kanji   rune
	onyomi  []readings.Reading
	kunyomi []readings.Reading
}

// result is one word ready to render. For a partial highlight the word and
// furigana are split in three around the kanji; parts that don't exist on
// an edge are empty.
type result struct {
	word, furigana string
	edge           Edge
	highlighted    bool

	leftWord, midWord, rightWord string
	leftFuri, midFuri, rightFuri string

	// okuri joins the highlight, rest follows it
	okuri, rest string

	// hit is the matched reading inside the highlighted part's furigana;
	// pre and post are the kana around it that the reading didn't cover
	pre, hit, post string
}

func (w *wordHighlighter) word(word, furigana, trailing string) result {
	edge, pos := ClassifyEdge(word, w.kanji)
	if pos < 0 {
		return result{word: word, furigana: furigana, rest: trailing}
	}
	if edge == EdgeWhole {
		return w.whole(word, furigana, trailing)
	}

	m, ok := MatchReading(furigana, edge, w.onyomi, w.kunyomi)
	if !ok {
		m = Jukujikun(furigana, utf8.RuneCountInString(word), pos)
		w.log.Debug("no reading matched, splitting by mora", "word", word, "furigana", furigana, "share", m.Text)
	} else {
		w.log.Debug("reading matched", "word", word, "kind", m.Kind, "edge", edge, "match", m.Text)
	}

	res := result{word: word, furigana: furigana, edge: edge, highlighted: true, rest: trailing}
	runes := []rune(word)
	text := m.Render()
	switch edge {
	case EdgeLeft:
		// kana ahead of the match have no kanji of their own to go to
		res.leftWord, res.rightWord = string(runes[:1]), string(runes[1:])
		res.leftFuri, res.rightFuri = m.Before+text, m.After
		res.pre, res.hit = m.Before, text
	case EdgeRight:
		res.leftWord, res.rightWord = string(runes[:pos]), string(runes[pos:])
		res.leftFuri, res.rightFuri = m.Before, text+m.After
		res.hit, res.post = text, m.After
		// okurigana only joins a match that ends the furigana
		if m.Kind == Kunyomi && m.After == "" {
			res.okuri, res.rest = w.matchOkurigana(word, trailing, m.Text)
		}
	case EdgeMiddle:
		res.leftWord, res.midWord, res.rightWord = string(runes[:pos]), string(runes[pos]), string(runes[pos+1:])
		res.leftFuri, res.midFuri, res.rightFuri = m.Before, text, m.After
		res.hit = text
	}
	if !res.complete() {
		// too few mora to go round; better unmarked than with a kanji missing
		w.log.Debug("cannot split furigana over word", "word", word, "furigana", furigana)
		return result{word: word, furigana: furigana, rest: trailing}
	}
	return res
}

func (w *wordHighlighter) whole(word, furigana, trailing string) result {
	res := result{word: word, furigana: furigana, edge: EdgeWhole, highlighted: true, rest: trailing}
	switch MatchKind(furigana, w.onyomi, w.kunyomi) {
	case Onyomi:
		res.furigana = kana.ToKatakana(furigana)
	case Kunyomi:
		res.okuri, res.rest = w.matchOkurigana(word, trailing, furigana)
	}
	return res
}

// matchOkurigana finds how much of trailing conjugates the kunyomi the word
// was matched with. Without WithOkurigana nothing does.
func (w *wordHighlighter) matchOkurigana(word, trailing, reading string) (okuri, rest string) {
	if !w.extendOkuri || trailing == "" {
		return "", trailing
	}
	var partial okurigana.Result
	for _, r := range w.kunyomi {
		if r.Okurigana == "" {
			continue
		}
		res := okurigana.CheckInflection(r.Okurigana, r.Stem, trailing, w.kanji, "")
		switch res.Type {
		case okurigana.FullOkuri:
			return res.Okurigana, res.Rest
		case okurigana.PartialOkuri, okurigana.EmptyOkuri:
			partial = res
		}
	}
	if partial.Okurigana != "" {
		return partial.Okurigana, partial.Rest
	}
	if w.detector == nil {
		return "", trailing
	}
	res, err := w.detector.Detect(w.ctx, word, trailing, w.kanji, reading)
	if err != nil {
		w.log.Warning("okurigana detection failed", "word", word, "err", err)
		return "", trailing
	}
	if res.Type != okurigana.DetectedOkuri || res.Okurigana == "" {
		return "", trailing
	}
	w.log.Debug("okurigana detected", "word", word, "okurigana", res.Okurigana)
	return res.Okurigana, res.Rest
}

func (r result) complete() bool {
	parts := [][2]string{{r.leftWord, r.leftFuri}, {r.midWord, r.midFuri}, {r.rightWord, r.rightFuri}}
	for _, p := range parts {
		if (p[0] == "") != (p[1] == "") {
			return false
		}
	}
	switch r.edge {
	case EdgeLeft:
		return r.leftFuri != ""
	case EdgeRight:
		return r.rightFuri != ""
	case EdgeMiddle:
		return r.midFuri != ""
	}
	return true
}

func (r result) render(mode Mode) string {
	if !r.highlighted {
		return wrapPart(r.word, r.furigana, mode) + r.rest
	}
	if r.edge == EdgeWhole {
		return "<b>" + wrapPart(r.word, r.furigana, mode) + r.okuri + "</b>" + r.rest
	}

	var b strings.Builder
	parts := []struct {
		word, furi string
		edge       Edge
	}{
		{r.leftWord, r.leftFuri, EdgeLeft},
		{r.midWord, r.midFuri, EdgeMiddle},
		{r.rightWord, r.rightFuri, EdgeRight},
	}
	for _, p := range parts {
		if p.word == "" || p.furi == "" {
			continue
		}
		var s string
		switch {
		case p.edge == r.edge:
			s = r.highlightPart(p.word, mode)
		case p.edge == EdgeRight:
			s = wrapPart(p.word, p.furi, mode) + r.okuri
		default:
			s = wrapPart(p.word, p.furi, mode)
		}
		b.WriteString(s)
	}
	b.WriteString(r.rest)
	return b.String()
}

// highlightPart renders the part holding the kanji. When the match covers
// all of its furigana the kanji is marked with it; otherwise only the
// matched kana are.
func (r result) highlightPart(word string, mode Mode) string {
	okuri := ""
	if r.edge == EdgeRight {
		okuri = r.okuri
	}
	if r.pre == "" && r.post == "" {
		return "<b>" + wrapPart(word, r.hit, mode) + okuri + "</b>"
	}
	if mode == KanaOnly {
		return r.pre + "<b>" + r.hit + okuri + "</b>" + r.post
	}
	s := wrapPart(word, r.pre+"<b>"+r.hit+"</b>"+r.post, mode)
	if okuri != "" {
		s += "<b>" + okuri + "</b>"
	}
	return s
}

func wrapPart(word, furi string, mode Mode) string {
	switch mode {
	case Furigana:
		return " " + word + "[" + furi + "]"
	case Furikanji:
		return " " + furi + "[" + word + "]"
	}
	return furi
}
