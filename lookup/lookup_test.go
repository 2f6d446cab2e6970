package lookup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"kanahighlight/kanji"
	"kanahighlight/model"
)

type mapSource map[string][2]string

func (m mapSource) Readings(_ context.Context, k string) (string, string, error) {
	rd, ok := m[k]
	if !ok {
		return "", "", ErrNotFound
	}
	return rd[0], rd[1], nil
}

type failingSource struct{}

func (failingSource) Readings(context.Context, string) (string, string, error) {
	return "", "", errors.New("disk on fire")
}

func TestChain(t *testing.T) {
	ctx := context.Background()
	c := Chain{mapSource{"視": {"シ", "み.る"}}, mapSource{"視": {"ジ", ""}, "隣": {"リン", "となり"}}}

	tests := []struct {
		kanji, on, kun string
	}{
		{"視", "シ", "み.る"},
		{"隣", "リン", "となり"},
	}
	for _, tt := range tests {
		on, kun, err := c.Readings(ctx, tt.kanji)
		if err != nil || on != tt.on || kun != tt.kun {
			t.Errorf("Readings(%s) = %q, %q, %v", tt.kanji, on, kun, err)
		}
	}
	if _, _, err := c.Readings(ctx, "猫"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown kanji: %v", err)
	}
	broken := Chain{failingSource{}, mapSource{"猫": {"ビョウ", "ねこ"}}}
	if _, _, err := broken.Readings(ctx, "猫"); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("a failing source must stop the chain, got %v", err)
	}
}

func TestLookup(t *testing.T) {
	src := mapSource{"日": {"ニチ、ジツ", "ひ、か"}, "記": {"キ", "しる.す"}}
	toks := []model.Token{{Text: "日記"}, {Text: "を"}, {Text: "日々"}, {Text: "猫"}}
	got, err := Lookup(context.Background(), toks, src)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(toks) {
		t.Fatalf("got %d entries", len(got))
	}
	want := []int{2, 0, 1, 0}
	for i, e := range got {
		if len(e.Readings) != want[i] {
			t.Errorf("%s: %d readings, want %d", e.Text, len(e.Readings), want[i])
		}
	}
	if got[0].Readings[1].Kunyomi != "しる.す" {
		t.Errorf("readings of 記 = %+v", got[0].Readings[1])
	}
	if out, err := Lookup(context.Background(), nil, src); out != nil || err != nil {
		t.Errorf("nil tokens: %v, %v", out, err)
	}
	if _, err := Lookup(context.Background(), toks, failingSource{}); err == nil {
		t.Error("expected the source error")
	}
}

func TestKanjidic(t *testing.T) {
	ctx := context.Background()
	if _, _, err := (Kanjidic{}).Readings(ctx, "隣"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("before loading: %v", err)
	}
	path := filepath.Join(t.TempDir(), "kanjidic2.xml")
	xml := `<kanjidic2><character><literal>隣</literal><reading_meaning><rmgroup>
<reading r_type="ja_on">リン</reading><reading r_type="ja_kun">とな.る</reading>
</rmgroup></reading_meaning></character></kanjidic2>`
	if err := os.WriteFile(path, []byte(xml), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := kanji.InitKanjidic2(path); err != nil {
		t.Fatal(err)
	}
	on, kun, err := (Kanjidic{}).Readings(ctx, "隣")
	if err != nil || on != "リン" || kun != "とな.る" {
		t.Errorf("Readings = %q, %q, %v", on, kun, err)
	}
	for _, k := range []string{"猫", "隣人", ""} {
		if _, _, err := (Kanjidic{}).Readings(ctx, k); !errors.Is(err, ErrNotFound) {
			t.Errorf("Readings(%q): %v", k, err)
		}
	}
}
