// Package kanji loads onyomi and kunyomi from KANJIDIC2, so callers can
// highlight a kanji without spelling out its readings.
package kanji

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/antchfx/xmlquery"
	"github.com/ulikunitz/xz"

	"kanahighlight/readings"
)

// ErrNotLoaded is returned by lookups made before InitKanjidic2.
var ErrNotLoaded = errors.New("kanjidic2 not loaded")

// Entry holds the readings of one kanji in kanjidic order.
type Entry struct {
	Literal rune     `json:"literal"`
	Onyomi  []string `json:"onyomi"`
	Kunyomi []string `json:"kunyomi"`
}

// OnyomiString joins the onyomi as a reading list.
func (e Entry) OnyomiString() string { return strings.Join(e.Onyomi, readings.Separator) }

// KunyomiString joins the kunyomi as a reading list.
func (e Entry) KunyomiString() string { return strings.Join(e.Kunyomi, readings.Separator) }

// Dict is a loaded kanjidic.
type Dict struct {
	entries map[rune]Entry
}

// Load reads a kanjidic2 file, plain or xz-compressed (.xz).
func Load(path string) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening kanjidic2: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".xz") {
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening xz stream %s: %w", path, err)
		}
		r = xr
	}
	return Parse(r)
}

// Parse streams <character> elements from r. Characters whose literal
// isn't a single rune are skipped.
func Parse(r io.Reader) (*Dict, error) {
	p, err := xmlquery.CreateStreamParser(r, "/kanjidic2/character")
	if err != nil {
		return nil, fmt.Errorf("parsing kanjidic2: %w", err)
	}
	d := &Dict{entries: make(map[rune]Entry)}
	for {
		n, err := p.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing kanjidic2: %w", err)
		}
		lit := n.SelectElement("literal")
		if lit == nil {
			continue
		}
		text := strings.TrimSpace(lit.InnerText())
		if utf8.RuneCountInString(text) != 1 {
			continue
		}
		e := Entry{}
		e.Literal, _ = utf8.DecodeRuneInString(text)
		for _, rd := range xmlquery.Find(n, "reading_meaning/rmgroup/reading") {
			switch rd.SelectAttr("r_type") {
			case "ja_on":
				e.Onyomi = append(e.Onyomi, rd.InnerText())
			case "ja_kun":
				e.Kunyomi = append(e.Kunyomi, rd.InnerText())
			}
		}
		d.entries[e.Literal] = e
	}
	return d, nil
}

// Lookup returns the entry for r.
func (d *Dict) Lookup(r rune) (Entry, bool) {
	e, ok := d.entries[r]
	return e, ok
}

// Len is the number of kanji loaded.
func (d *Dict) Len() int { return len(d.entries) }

// Entries returns every entry ordered by code point.
func (d *Dict) Entries() []Entry {
	out := make([]Entry, 0, len(d.entries))
	for _, e := range d.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Literal < out[j].Literal })
	return out
}

var (
	mu          sync.RWMutex
	defaultDict *Dict
)

// InitKanjidic2 loads path as the package dictionary. Once a dictionary is
// loaded later calls do nothing.
func InitKanjidic2(path string) error {
	mu.Lock()
	defer mu.Unlock()
	if defaultDict != nil {
		return nil
	}
	d, err := Load(path)
	if err != nil {
		return err
	}
	defaultDict = d
	return nil
}

// Default returns the package dictionary.
func Default() (*Dict, error) {
	mu.RLock()
	defer mu.RUnlock()
	if defaultDict == nil {
		return nil, ErrNotLoaded
	}
	return defaultDict, nil
}

// Lookup finds r in the package dictionary.
func Lookup(r rune) (Entry, error) {
	d, err := Default()
	if err != nil {
		return Entry{}, err
	}
	e, ok := d.Lookup(r)
	if !ok {
		return Entry{}, fmt.Errorf("kanji %c: %w", r, ErrUnknown)
	}
	return e, nil
}

// ErrUnknown is returned for a kanji kanjidic doesn't list.
var ErrUnknown = errors.New("unknown kanji")

// GetKanjiReadings returns every onyomi and kunyomi of r, or nil when the
// dictionary isn't loaded or doesn't know r.
func GetKanjiReadings(r rune) []string {
	e, err := Lookup(r)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(e.Onyomi)+len(e.Kunyomi))
	out = append(out, e.Onyomi...)
	return append(out, e.Kunyomi...)
}

// Count returns the number of kanji in the package dictionary.
func Count() int {
	d, err := Default()
	if err != nil {
		return 0
	}
	return d.Len()
}
