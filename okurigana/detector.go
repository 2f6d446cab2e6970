package okurigana

import "context"

// Detector finds the okurigana of a word when its dictionary form isn't
// known, typically by morphological analysis. word is the kanji run,
// okuriText the kana after it, reading the furigana of the kanji.
type Detector interface {
	Detect(ctx context.Context, word, okuriText string, kanji rune, reading string) (Result, error)
}

// TableDetector tries every class in the conjugation table and keeps the
// longest full match. It needs no dictionary form, so it is a cheap
// stand-in where no analyzer is available.
type TableDetector struct{}

// Detect implements Detector.
func (TableDetector) Detect(_ context.Context, _ string, okuriText string, _ rune, _ string) (Result, error) {
	best := noOkuri(okuriText)
	for _, pos := range PartsOfSpeech() {
		res := matchPartOfSpeech(okuriText, pos)
		if res.Type != FullOkuri {
			continue
		}
		if len(res.Okurigana) > len(best.Okurigana) {
			best = res
		}
	}
	if best.Type == FullOkuri {
		best.Type = DetectedOkuri
	}
	return best, nil
}
