package kanji

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"
)

const fixture = `<?xml version="1.0" encoding="UTF-8"?>
<kanjidic2>
<header><file_version>4</file_version></header>
<character>
<literal>視</literal>
<reading_meaning><rmgroup>
<reading r_type="pinyin">shi4</reading>
<reading r_type="ja_on">シ</reading>
<reading r_type="ja_kun">み.る</reading>
<meaning>inspection</meaning>
</rmgroup></reading_meaning>
</character>
<character>
<literal>隣</literal>
<reading_meaning><rmgroup>
<reading r_type="ja_on">リン</reading>
<reading r_type="ja_kun">とな.る</reading>
<reading r_type="ja_kun">となり</reading>
</rmgroup></reading_meaning>
</character>
<character>
<literal>ab</literal>
</character>
</kanjidic2>
`

func writeFixture(t *testing.T, compress bool) string {
	t.Helper()
	dir := t.TempDir()
	if !compress {
		path := filepath.Join(dir, "kanjidic2.xml")
		if err := os.WriteFile(path, []byte(fixture), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}
	path := filepath.Join(dir, "kanjidic2.xml.xz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w, err := xz.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(fixture)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse(t *testing.T) {
	d, err := Parse(strings.NewReader(fixture))
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 2 {
		t.Fatalf("Len = %d, want 2", d.Len())
	}
	e, ok := d.Lookup('隣')
	if !ok {
		t.Fatal("隣 missing")
	}
	if e.OnyomiString() != "リン" || e.KunyomiString() != "とな.る、となり" {
		t.Errorf("entry = %+v", e)
	}
	if got := d.Entries(); got[0].Literal != '視' || got[1].Literal != '隣' {
		t.Errorf("entries out of order: %+v", got)
	}
}

func TestLoadCompressed(t *testing.T) {
	for _, compress := range []bool{false, true} {
		d, err := Load(writeFixture(t, compress))
		if err != nil {
			t.Fatalf("compress=%v: %v", compress, err)
		}
		e, ok := d.Lookup('視')
		if !ok || !reflect.DeepEqual(e.Kunyomi, []string{"み.る"}) {
			t.Errorf("compress=%v: entry = %+v", compress, e)
		}
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.xml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestPackageDictionary(t *testing.T) {
	if _, err := Lookup('視'); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("Lookup before init: %v", err)
	}
	if Count() != 0 || GetKanjiReadings('視') != nil {
		t.Fatal("nothing should be loaded yet")
	}
	if err := InitKanjidic2(writeFixture(t, false)); err != nil {
		t.Fatal(err)
	}
	if Count() != 2 {
		t.Errorf("Count = %d", Count())
	}
	if got := GetKanjiReadings('隣'); !reflect.DeepEqual(got, []string{"リン", "とな.る", "となり"}) {
		t.Errorf("GetKanjiReadings = %v", got)
	}
	if _, err := Lookup('猫'); !errors.Is(err, ErrUnknown) {
		t.Errorf("Lookup unknown: %v", err)
	}
}
