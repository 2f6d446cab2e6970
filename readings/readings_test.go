package readings

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Reading
	}{
		{
			name: "onyomi with annotations",
			in:   "シ(漢)、ジ(呉)",
			want: []Reading{
				{Raw: "シ(漢)", Stem: "シ", Note: "漢"},
				{Raw: "ジ(呉)", Stem: "ジ", Note: "呉"},
			},
		},
		{
			name: "kunyomi with okurigana",
			in:   "とな.る、となり",
			want: []Reading{
				{Raw: "とな.る", Stem: "とな", Okurigana: "る"},
				{Raw: "となり", Stem: "となり"},
			},
		},
		{
			name: "kanjidic affix markers",
			in:   "-がわ、つ.む-",
			want: []Reading{
				{Raw: "-がわ", Stem: "がわ", Prefix: true},
				{Raw: "つ.む-", Stem: "つ", Okurigana: "む", Suffix: true},
			},
		},
		{
			name: "full-width parentheses and spaces",
			in:   " ソ（呉）、 ゾ ",
			want: []Reading{
				{Raw: "ソ(呉)", Stem: "ソ", Note: "呉"},
				{Raw: "ゾ", Stem: "ゾ"},
			},
		},
		{
			name: "empty list",
			in:   "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("reading %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseSkipsMalformed(t *testing.T) {
	got, err := Parse("あ.い.う、かな")
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if len(got) != 1 || got[0].Stem != "かな" {
		t.Errorf("Parse kept %+v, want only かな", got)
	}
}

func TestReadingForms(t *testing.T) {
	r := MustParse("キョウ(呉)")[0]
	if r.Hiragana() != "きょう" {
		t.Errorf("Hiragana() = %q", r.Hiragana())
	}
	k := MustParse("おお.きい")[0]
	if k.Kana() != "おおきい" || k.String() != "おお.きい" {
		t.Errorf("Kana() = %q, String() = %q", k.Kana(), k.String())
	}
}

func TestJoin(t *testing.T) {
	in := "き.く、き.こえる、-がわ"
	if got := Join(MustParse(in)); got != in {
		t.Errorf("Join = %q, want %q", got, in)
	}
}
