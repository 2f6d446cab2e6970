// Package model holds the types shared between the tokenizer, the store and
// the API.
package model

import (
	"github.com/google/uuid"

	"kanahighlight/okurigana"
)

// Token represents a token / morpheme produced by the tokenizer.
type Token struct {
	Text             string   `json:"text"`
	Lemma            string   `json:"lemma,omitempty"`
	POS              string   `json:"pos,omitempty"`
	Start            int      `json:"start"`
	End              int      `json:"end"`
	Reading          string   `json:"reading,omitempty"`
	Pronunciation    string   `json:"pronunciation,omitempty"`
	TokenID          int      `json:"token_id,omitempty"`
	Conjugation      []string `json:"conjugation,omitempty"`
	Auxiliaries      []Token  `json:"auxiliaries,omitempty"`
	MergedIndices    []int    `json:"merged_indices,omitempty"`
	ConjugationLabel string   `json:"conjugation_label,omitempty"`
	InflectionType   string   `json:"inflection_type,omitempty"`
	InflectionForm   string   `json:"inflection_form,omitempty"`
	// Furigana is the token in bracket notation, 漢字[かんじ].
	Furigana string `json:"furigana,omitempty"`
}

// HighlightRequest asks for one kanji to be highlighted in text. Empty
// reading lists are filled in from the store or kanjidic.
type HighlightRequest struct {
	ID        string `json:"id,omitempty"`
	Kanji     string `json:"kanji"`
	Onyomi    string `json:"onyomi,omitempty"`
	Kunyomi   string `json:"kunyomi,omitempty"`
	Text      string `json:"text"`
	Mode      string `json:"mode,omitempty"`
	Okurigana bool   `json:"okurigana,omitempty"`
}

// HighlightResponse carries the rendered text.
type HighlightResponse struct {
	ID     string `json:"id"`
	Result string `json:"result"`
	Cached bool   `json:"cached,omitempty"`
}

// TextRequest is the body of the plain text endpoints.
type TextRequest struct {
	ID   string `json:"id,omitempty"`
	Text string `json:"text"`
}

// TextResponse answers a TextRequest.
type TextResponse struct {
	ID     string `json:"id"`
	Result string `json:"result"`
}

// OkuriRequest asks which part of Text conjugates a kunyomi.
type OkuriRequest struct {
	ID        string `json:"id,omitempty"`
	Kanji     string `json:"kanji"`
	Reading   string `json:"reading"`
	Okurigana string `json:"okurigana"`
	Text      string `json:"text"`
	// PartOfSpeech overrides the classifier when set.
	PartOfSpeech okurigana.PartOfSpeech `json:"part_of_speech,omitempty"`
}

// OkuriResponse answers an OkuriRequest.
type OkuriResponse struct {
	ID string `json:"id"`
	okurigana.Result
}

// LexEntry is a token with the readings of the kanji in it.
type LexEntry struct {
	Token
	Readings []ReadingsResponse `json:"readings,omitempty"`
}

// AnnotateResponse is TextResponse plus the tokens behind it.
type AnnotateResponse struct {
	ID     string     `json:"id"`
	Result string     `json:"result"`
	Tokens []LexEntry `json:"tokens"`
}

// ReadingsResponse lists the readings known for a kanji.
type ReadingsResponse struct {
	Kanji   string `json:"kanji"`
	Onyomi  string `json:"onyomi"`
	Kunyomi string `json:"kunyomi"`
}

// NewRequestID returns a fresh id for a request that came without one.
func NewRequestID() string {
	return uuid.NewString()
}

// EnsureID returns id, or a new one when it is empty.
func EnsureID(id string) string {
	if id == "" {
		return NewRequestID()
	}
	return id
}
