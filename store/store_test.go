package store

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"kanahighlight/kanji"
	"kanahighlight/model"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "kanahighlight.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestReadings(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	if _, _, err := s.Readings(ctx, "視"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Readings of a missing kanji: %v", err)
	}
	if err := s.PutReadings(ctx, "視", "シ", "み.る"); err != nil {
		t.Fatal(err)
	}
	if err := s.PutReadings(ctx, "視", "シ(漢)、ジ(呉)", "み.る"); err != nil {
		t.Fatal(err)
	}
	on, kun, err := s.Readings(ctx, "視")
	if err != nil {
		t.Fatal(err)
	}
	if on != "シ(漢)、ジ(呉)" || kun != "み.る" {
		t.Errorf("Readings = %q, %q", on, kun)
	}
}

func TestImportKanjidic(t *testing.T) {
	const xml = `<kanjidic2>
<character><literal>隣</literal><reading_meaning><rmgroup>
<reading r_type="ja_on">リン</reading>
<reading r_type="ja_kun">とな.る</reading>
<reading r_type="ja_kun">となり</reading>
</rmgroup></reading_meaning></character>
<character><literal>猫</literal><reading_meaning><rmgroup>
<reading r_type="ja_on">ビョウ</reading>
<reading r_type="ja_kun">ねこ</reading>
</rmgroup></reading_meaning></character>
</kanjidic2>`
	d, err := kanji.Parse(strings.NewReader(xml))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	s := openStore(t)
	n, err := s.ImportKanjidic(ctx, d)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("imported %d, want 2", n)
	}
	on, kun, err := s.Readings(ctx, "隣")
	if err != nil {
		t.Fatal(err)
	}
	if on != "リン" || kun != "とな.る、となり" {
		t.Errorf("Readings = %q, %q", on, kun)
	}
}

func TestHighlightCache(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	req := model.HighlightRequest{Kanji: "隣", Kunyomi: "とな.る", Text: "隣[とな]る", Mode: "kana_only"}
	key := Key(req)
	if _, err := s.CachedHighlight(ctx, key); !errors.Is(err, ErrNotFound) {
		t.Fatalf("empty cache: %v", err)
	}
	if err := s.PutHighlight(ctx, key, "<b>となる</b>"); err != nil {
		t.Fatal(err)
	}
	got, err := s.CachedHighlight(ctx, key)
	if err != nil || got != "<b>となる</b>" {
		t.Errorf("CachedHighlight = %q, %v", got, err)
	}
}

func TestKey(t *testing.T) {
	base := model.HighlightRequest{Kanji: "隣", Kunyomi: "とな.る", Text: "隣[とな]る"}
	withID := base
	withID.ID = "abc"
	if Key(base) != Key(withID) {
		t.Error("the request id must not change the key")
	}
	okuri := base
	okuri.Okurigana = true
	if Key(base) == Key(okuri) {
		t.Error("the okurigana flag must change the key")
	}
	// fields are delimited, so moving text between them changes the key
	shifted := model.HighlightRequest{Kanji: "隣と", Kunyomi: "な.る", Text: "隣[とな]る"}
	if Key(base) == Key(shifted) {
		t.Error("keys of different requests collide")
	}
	if len(Key(base)) != 64 {
		t.Errorf("key length %d", len(Key(base)))
	}
}
