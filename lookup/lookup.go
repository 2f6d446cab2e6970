// Package lookup resolves the reading lists of kanji from the configured
// sources, the store first and kanjidic after it.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"kanahighlight/kana"
	"kanahighlight/kanji"
	"kanahighlight/model"
	"kanahighlight/store"
)

// ErrNotFound is returned when no source knows a kanji.
var ErrNotFound = store.ErrNotFound

// Source supplies the reading lists of one kanji. *store.Store is a Source.
type Source interface {
	Readings(ctx context.Context, kanji string) (onyomi, kunyomi string, err error)
}

// Kanjidic reads from the package dictionary loaded by kanji.InitKanjidic2.
type Kanjidic struct{}

// Readings implements Source.
func (Kanjidic) Readings(_ context.Context, k string) (string, string, error) {
	r, size := utf8.DecodeRuneInString(k)
	if size != len(k) || r == utf8.RuneError {
		return "", "", fmt.Errorf("readings of %q: %w", k, ErrNotFound)
	}
	e, err := kanji.Lookup(r)
	if errors.Is(err, kanji.ErrNotLoaded) || errors.Is(err, kanji.ErrUnknown) {
		return "", "", fmt.Errorf("readings of %s: %w", k, ErrNotFound)
	}
	if err != nil {
		return "", "", err
	}
	return e.OnyomiString(), e.KunyomiString(), nil
}

// Chain asks each source in turn. A source that doesn't know the kanji is
// skipped; any other error stops the search.
type Chain []Source

// Readings implements Source.
func (c Chain) Readings(ctx context.Context, k string) (string, string, error) {
	for _, src := range c {
		if src == nil {
			continue
		}
		on, kun, err := src.Readings(ctx, k)
		if err == nil {
			return on, kun, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return "", "", err
		}
	}
	return "", "", fmt.Errorf("readings of %s: %w", k, ErrNotFound)
}

// LexEntry is a token with the readings of its kanji.
type LexEntry = model.LexEntry

// Lookup attaches to every token the readings of the kanji it contains.
// Kanji no source knows are left out.
func Lookup(ctx context.Context, tokens []model.Token, src Source) ([]LexEntry, error) {
	if tokens == nil {
		return nil, nil
	}
	// nil marks a kanji no source knows
	seen := make(map[rune]*model.ReadingsResponse)
	out := make([]LexEntry, 0, len(tokens))
	for _, t := range tokens {
		entry := LexEntry{Token: t}
		for _, r := range t.Text {
			if !kana.IsKanji(r) || r == kana.Repeater {
				continue
			}
			rd, ok := seen[r]
			if !ok {
				on, kun, err := src.Readings(ctx, string(r))
				switch {
				case err == nil:
					rd = &model.ReadingsResponse{Kanji: string(r), Onyomi: on, Kunyomi: kun}
				case !errors.Is(err, ErrNotFound):
					return nil, err
				}
				seen[r] = rd
			}
			if rd != nil {
				entry.Readings = append(entry.Readings, *rd)
			}
		}
		out = append(out, entry)
	}
	return out, nil
}
