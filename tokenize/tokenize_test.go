package tokenize

import (
	"context"
	"reflect"
	"testing"

	"kanahighlight/okurigana"
)

func newTokenizer(t *testing.T) *Tokenizer {
	t.Helper()
	tok, err := New()
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

func TestDictByName(t *testing.T) {
	for _, name := range []string{"", "ipa", "IPA", "uni"} {
		if _, err := DictByName(name); err != nil {
			t.Errorf("DictByName(%q): %v", name, err)
		}
	}
	if _, err := DictByName("jumandic"); err == nil {
		t.Error("expected an error for an unknown dictionary")
	}
}

func TestTokenize(t *testing.T) {
	tok := newTokenizer(t)
	toks, err := tok.Tokenize(context.Background(), "日記を書いた。")
	if err != nil {
		t.Fatal(err)
	}
	var text string
	for _, tk := range toks {
		text += tk.Text
	}
	if text != "日記を書いた。" {
		t.Errorf("tokens don't cover the input: %q", text)
	}
	if toks[0].Text != "日記" || toks[0].Reading != "ニッキ" {
		t.Errorf("first token = %+v", toks[0])
	}

	if toks, err := tok.Tokenize(context.Background(), ""); err != nil || toks != nil {
		t.Errorf("empty input: %v, %v", toks, err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := tok.Tokenize(ctx, "日記"); err == nil {
		t.Error("expected an error from a cancelled context")
	}
}

func TestTokenizeModes(t *testing.T) {
	modes, err := newTokenizer(t).TokenizeModes(context.Background(), "関西国際空港")
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range []string{"normal", "search", "extended"} {
		if len(modes[m]) == 0 {
			t.Errorf("mode %s has no tokens", m)
		}
	}
}

func TestWithMode(t *testing.T) {
	for _, name := range []string{"", "normal", "Search", "extended"} {
		if _, err := ModeByName(name); err != nil {
			t.Errorf("ModeByName(%q): %v", name, err)
		}
	}
	if _, err := ModeByName("fast"); err == nil {
		t.Error("ModeByName(fast) should fail")
	}

	search, _ := ModeByName("search")
	tok, err := New(WithMode(search))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	normal, err := newTokenizer(t).Tokenize(ctx, "関西国際空港")
	if err != nil {
		t.Fatal(err)
	}
	split, err := tok.Tokenize(ctx, "関西国際空港")
	if err != nil {
		t.Fatal(err)
	}
	if len(split) <= len(normal) {
		t.Errorf("search mode gave %d tokens, normal %d", len(split), len(normal))
	}
}

func TestMergeVerbAuxiliaries(t *testing.T) {
	toks := []Token{
		{Text: "書き", Lemma: "書く", POS: "動詞,自立,*,*", Start: 0, End: 2, Reading: "カキ"},
		{Text: "まし", Lemma: "ます", POS: "助動詞,*,*,*", Start: 2, End: 4, Reading: "マシ"},
		{Text: "た", Lemma: "た", POS: "助動詞,*,*,*", Start: 4, End: 5, Reading: "タ"},
		{Text: "。", Lemma: "。", POS: "記号,句点,*,*", Start: 5, End: 6},
	}
	got := MergeVerbAuxiliaries(toks)
	if len(got) != 2 {
		t.Fatalf("got %d tokens: %+v", len(got), got)
	}
	v := got[0]
	if v.Text != "書きました" || v.Reading != "カキマシタ" || v.End != 5 {
		t.Errorf("merged = %+v", v)
	}
	if v.ConjugationLabel != "polite past" || !reflect.DeepEqual(v.MergedIndices, []int{0, 2, 4}) {
		t.Errorf("label %q, indices %v", v.ConjugationLabel, v.MergedIndices)
	}
	if len(v.Auxiliaries) != 2 {
		t.Errorf("auxiliaries = %+v", v.Auxiliaries)
	}
}

func TestGetConjugationLabel(t *testing.T) {
	tests := map[string][]string{
		"polite":        {"ます"},
		"past":          {"た"},
		"negative past": {"ない", "た"},
		"":              {"れる"},
	}
	for want, auxs := range tests {
		if got := getConjugationLabel(auxs); got != want {
			t.Errorf("getConjugationLabel(%v) = %q, want %q", auxs, got, want)
		}
	}
}

func TestStart(t *testing.T) {
	tok := newTokenizer(t)
	in := make(chan Sentence)
	out := tok.Start(context.Background(), in)
	go func() {
		in <- Sentence{ID: "1", Text: "猫が好き"}
		in <- Sentence{ID: "2", Text: "犬"}
		close(in)
	}()
	var ids []string
	for res := range out {
		if res.Err != nil || len(res.Tokens) == 0 {
			t.Errorf("sentence %s: %+v", res.Sentence.ID, res)
		}
		ids = append(ids, res.Sentence.ID)
	}
	if !reflect.DeepEqual(ids, []string{"1", "2"}) {
		t.Errorf("order = %v", ids)
	}
}

func TestDetector(t *testing.T) {
	d := NewDetector(newTokenizer(t))
	tests := []struct {
		word, reading, text string
		okuri, rest         string
		typ                 okurigana.Type
	}{
		{"死", "し", "んでいない", "んで", "いない", okurigana.DetectedOkuri},
		{"高", "たか", "ければたかくなる", "ければ", "たかくなる", okurigana.DetectedOkuri},
		{"久", "ひさ", "しぶりに", "し", "ぶりに", okurigana.DetectedOkuri},
		{"仄々", "ほのぼの", "しいね", "しい", "ね", okurigana.DetectedOkuri},
		{"猫", "ねこ", "がいる", "", "がいる", okurigana.NoOkuri},
		{"猫", "ねこ", "", "", "", okurigana.NoOkuri},
	}
	for _, tt := range tests {
		res, err := d.Detect(context.Background(), tt.word, tt.text, []rune(tt.word)[0], tt.reading)
		if err != nil {
			t.Fatal(err)
		}
		if res.Okurigana != tt.okuri || res.Rest != tt.rest || res.Type != tt.typ {
			t.Errorf("Detect(%s, %s) = %+v, want %q %q %s", tt.word, tt.text, res, tt.okuri, tt.rest, tt.typ)
		}
	}
}

func TestAttaches(t *testing.T) {
	tests := []struct {
		class wordClass
		tok   Token
		want  bool
	}{
		{classVerb, Token{Text: "た", POS: "助動詞,*,*,*"}, true},
		{classVerb, Token{Text: "て", POS: "助詞,接続助詞,*,*"}, true},
		{classVerb, Token{Text: "い", POS: "動詞,非自立,*,*"}, false},
		{classVerb, Token{Text: "から", POS: "助詞,接続助詞,*,*"}, false},
		{classAdjI, Token{Text: "さ", POS: "名詞,接尾,特殊,*"}, true},
		{classAdjNa, Token{Text: "な", POS: "助動詞,*,*,*"}, true},
		{classAdjNa, Token{Text: "だ", POS: "助動詞,*,*,*"}, false},
		{classAdverb, Token{Text: "し", Lemma: "する", POS: "動詞,自立,*,*"}, true},
	}
	for _, tt := range tests {
		if got := attaches(tt.class, tt.tok); got != tt.want {
			t.Errorf("attaches(%d, %s) = %v", tt.class, tt.tok.Text, got)
		}
	}
}
