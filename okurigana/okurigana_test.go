package okurigana

import (
	"context"
	"encoding/json"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		okuri   string
		kanji   rune
		reading string
		want    PartOfSpeech
		ok      bool
	}{
		{"", '無', "な", "", false},
		{"く", '行', "い", GodanIku, true},
		{"る", '為', "す", SuruIncluded, true},
		{"れる", '呉', "く", IchidanKureru, true},
		{"る", '有', "あ", GodanRuIrregular, true},
		{"る", '在', "あ", GodanRuIrregular, true},
		{"する", '察', "さっ", SuruSpecial, true},
		{"す", '愛', "あい", SuruIncluded, true},
		{"い", '良', "よ", AdjIx, true},
		{"い", '無', "な", AdjI, true},
		{"しい", '悲', "かな", AdjI, true},
		{"らか", '柔', "やわ", AdjNa, true},
		{"こえる", '聞', "き", Ichidan, true},
		{"る", '去', "さ", GodanRu, true},
		{"ぐ", '泳', "およ", GodanGu, true},
		{"ぬ", '死', "し", GodanNu, true},
		{"つ", '待', "ま", GodanTsu, true},
		{"み", '試', "こころ", "", false},
	}
	for _, tt := range tests {
		got, ok := Classify(tt.okuri, tt.kanji, tt.reading)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Classify(%q, %c, %q) = %q, %v; want %q, %v", tt.okuri, tt.kanji, tt.reading, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMatchConjugation(t *testing.T) {
	tests := []struct {
		text, okuri string
		kanji       rune
		reading     string
		want        Result
	}{
		{"かったら", "い", '無', "な", Result{"かったら", "", FullOkuri, AdjI}},
		{"ったか", "る", '去', "さ", Result{"った", "か", FullOkuri, GodanRu}},
		{"ないで", "る", '在', "あ", Result{"ないで", "", FullOkuri, GodanRuIrregular}},
		{"んでくれ", "ぬ", '死', "し", Result{"んで", "くれ", FullOkuri, GodanNu}},
		{"くない", "きい", '大', "おお", Result{"くない", "", FullOkuri, AdjI}},
		{"くないよ", "さい", '小', "ちい", Result{"くない", "よ", FullOkuri, AdjI}},
		{"している", "る", '為', "す", Result{"して", "いる", FullOkuri, SuruIncluded}},
		{"してた", "する", '動', "どう", Result{"してた", "", FullOkuri, SuruIncluded}},
		{"いでる", "ぐ", '泳', "およ", Result{"いで", "る", FullOkuri, GodanGu}},
		{"いです", "い", '良', "よ", Result{"い", "です", FullOkuri, AdjIx}},
		{"つ", "つ", '待', "ま", Result{"つ", "", FullOkuri, GodanTsu}},
		{"いてたか", "く", '聞', "き", Result{"いて", "たか", FullOkuri, GodanKu}},
		{"げな", "ずかしい", '恥', "は", Result{"", "げな", EmptyOkuri, AdjI}},
		{"", "る", '去', "さ", Result{"", "", NoOkuri, ""}},
		{"ったか", "", '去', "さ", Result{"", "ったか", NoOkuri, ""}},
		{"ほげ", "み", '試', "こころ", Result{"", "ほげ", NoOkuri, ""}},
	}
	for _, tt := range tests {
		got := MatchConjugation(tt.text, tt.okuri, tt.kanji, tt.reading)
		if got != tt.want {
			t.Errorf("MatchConjugation(%q, %q, %c, %q) = %+v, want %+v", tt.text, tt.okuri, tt.kanji, tt.reading, got, tt.want)
		}
	}
}

// Every ending listed in the table must be recognised in full on its own.
func TestTableEndingsAreFullMatches(t *testing.T) {
	for _, pos := range PartsOfSpeech() {
		tr := trieFor(pos)
		if tr == nil {
			t.Fatalf("no trie for %s", pos)
		}
		for _, ending := range Endings(pos) {
			res := tr.walk(ending)
			if res.Type != FullOkuri || res.Okurigana != ending || res.Rest != "" {
				t.Errorf("%s: walk(%q) = %+v, want a full match", pos, ending, res)
			}
		}
	}
}

func TestEveryClassAcceptsBareStem(t *testing.T) {
	for _, pos := range PartsOfSpeech() {
		res := matchPartOfSpeech("ゑ", pos)
		if res.Type != EmptyOkuri || res.Rest != "ゑ" {
			t.Errorf("%s: got %+v, want empty_okuri", pos, res)
		}
	}
}

func TestConjugatableStem(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"る", "", true},
		{"こえる", "こえ", true},
		{"しい", "し", true},
		{"らか", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ConjugatableStem(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ConjugatableStem(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCheckInflection(t *testing.T) {
	tests := []struct {
		name                    string
		readingOkuri, reading   string
		text                    string
		kanji                   rune
		override                PartOfSpeech
		wantOkuri, wantRest     string
		wantType                Type
	}{
		{"no text", "る", "とな", "", '隣', "", "", "", NoOkuri},
		{"no okurigana", "", "くに", "の", '国', "", "", "", NoOkuri},
		{"exact", "つ", "ま", "つ", '待', "", "つ", "", FullOkuri},
		{"stem equals text", "しい", "かな", "し", '悲', "", "し", "", FullOkuri},
		{"conjugated verb", "る", "はし", "ろう", '走', "", "ろう", "", FullOkuri},
		{"conjugated with rest", "く", "か", "いた", '書', "", "いた", "", FullOkuri},
		{"ichidan stem", "こえる", "き", "こえたか", '聞', "", "こえた", "か", FullOkuri},
		{"adjective", "しい", "かな", "しくすぎる", '悲', "", "しく", "すぎる", FullOkuri},
		{"adjective bare stem", "ずかしい", "は", "ずかしげな", '恥', "", "ずかし", "げな", EmptyOkuri},
		{"verbatim fallback", "らか", "やわ", "らかな", '柔', "", "らか", "な", FullOkuri},
		{"no match", "める", "と", "まる", '止', "", "", "まる", NoOkuri},
		{"override", "る", "す", "してる", '為', SuruIncluded, "して", "る", FullOkuri},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckInflection(tt.readingOkuri, tt.reading, tt.text, tt.kanji, tt.override)
			if got.Okurigana != tt.wantOkuri || got.Rest != tt.wantRest || got.Type != tt.wantType {
				t.Errorf("got %+v, want okurigana %q rest %q type %s", got, tt.wantOkuri, tt.wantRest, tt.wantType)
			}
		})
	}
}

func TestTableDetector(t *testing.T) {
	res, err := TableDetector{}.Detect(context.Background(), "話", "していた", '話', "はな")
	if err != nil {
		t.Fatal(err)
	}
	if res.Type != DetectedOkuri || res.Okurigana == "" {
		t.Errorf("Detect = %+v, want a detected okurigana", res)
	}
	res, _ = TableDetector{}.Detect(context.Background(), "本", "ゑゑ", '本', "ほん")
	if res.Type != NoOkuri || res.Rest != "ゑゑ" {
		t.Errorf("Detect = %+v, want no_okuri", res)
	}
}

func TestResultJSON(t *testing.T) {
	b, err := json.Marshal(Result{Okurigana: "った", Rest: "か", Type: FullOkuri, PartOfSpeech: GodanRu})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"okurigana":"った","rest_kana":"か","result":"full_okuri","part_of_speech":"v5r"}`
	if string(b) != want {
		t.Errorf("json = %s, want %s", b, want)
	}
	var back Result
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back.Type != FullOkuri {
		t.Errorf("round trip type = %s", back.Type)
	}
}
