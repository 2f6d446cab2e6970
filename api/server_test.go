package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"kanahighlight/model"
	"kanahighlight/okurigana"
	"kanahighlight/store"
	"kanahighlight/tokenize"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decoding %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHighlight(t *testing.T) {
	h := New().Handler()
	rec := do(t, h, http.MethodPost, "/api/highlight",
		`{"id":"r1","kanji":"隣","kunyomi":"とな.る、となり","text":"隣[とな]りあわせの町[まち]。","mode":"kana_only"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}
	resp := decodeBody[model.HighlightResponse](t, rec)
	if resp.ID != "r1" || resp.Result != "<b>とな</b>りあわせのまち。" {
		t.Errorf("response = %+v", resp)
	}
}

func TestHighlightErrors(t *testing.T) {
	h := New().Handler()
	tests := []struct {
		name, method, path, body string
		status                   int
	}{
		{"not json", http.MethodPost, "/api/highlight", `{`, http.StatusBadRequest},
		{"two kanji", http.MethodPost, "/api/highlight", `{"kanji":"漢字","text":"x"}`, http.StatusBadRequest},
		{"bad mode", http.MethodPost, "/api/highlight", `{"kanji":"漢","text":"x","mode":"bold"}`, http.StatusBadRequest},
		{"wrong method", http.MethodGet, "/api/highlight", ``, http.StatusMethodNotAllowed},
		{"unknown readings", http.MethodGet, "/api/readings/視", ``, http.StatusNotFound},
		{"readings of a word", http.MethodGet, "/api/readings/視聴", ``, http.StatusBadRequest},
		{"no annotator", http.MethodPost, "/api/annotate", `{"text":"日記"}`, http.StatusNotImplemented},
	}
	for _, tt := range tests {
		rec := do(t, h, tt.method, tt.path, tt.body)
		if rec.Code != tt.status {
			t.Errorf("%s: status %d, want %d (%s)", tt.name, rec.Code, tt.status, rec.Body)
		}
	}
}

func TestHighlightFromStore(t *testing.T) {
	st := newStore(t)
	if err := st.PutReadings(context.Background(), "隣", "リン", "とな.る、となり"); err != nil {
		t.Fatal(err)
	}
	h := New(WithStore(st)).Handler()
	body := `{"kanji":"隣","text":"隣[とな]りあわせの町[まち]。"}`

	first := decodeBody[model.HighlightResponse](t, do(t, h, http.MethodPost, "/api/highlight", body))
	if first.Result != "<b>とな</b>りあわせのまち。" || first.Cached {
		t.Errorf("first = %+v", first)
	}
	if first.ID == "" {
		t.Error("a request without id must get one")
	}
	second := decodeBody[model.HighlightResponse](t, do(t, h, http.MethodPost, "/api/highlight", body))
	if second.Result != first.Result || !second.Cached {
		t.Errorf("second = %+v", second)
	}
	for _, mode := range []string{"kana_only", "KANA_ONLY"} {
		body := `{"kanji":"隣","text":"隣[とな]りあわせの町[まち]。","mode":"` + mode + `"}`
		again := decodeBody[model.HighlightResponse](t, do(t, h, http.MethodPost, "/api/highlight", body))
		if again.Result != first.Result || !again.Cached {
			t.Errorf("mode %s: %+v", mode, again)
		}
	}

	rec := do(t, h, http.MethodGet, "/api/readings/隣", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("readings status %d", rec.Code)
	}
	rd := decodeBody[model.ReadingsResponse](t, rec)
	if rd.Onyomi != "リン" || rd.Kunyomi != "とな.る、となり" {
		t.Errorf("readings = %+v", rd)
	}
}

func TestTextEndpoints(t *testing.T) {
	h := New().Handler()
	tests := []struct {
		path, text, want string
	}{
		{"/api/filter", "日記[にっき]を 書[か]いた", "にっきをかいた"},
		{"/api/reverse", "日記[にっき]を 書[か]いた", "にっき[日記]を か[書]いた"},
	}
	for _, tt := range tests {
		body, _ := json.Marshal(model.TextRequest{Text: tt.text})
		rec := do(t, h, http.MethodPost, tt.path, string(body))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status %d", tt.path, rec.Code)
		}
		if got := decodeBody[model.TextResponse](t, rec); got.Result != tt.want {
			t.Errorf("%s = %q, want %q", tt.path, got.Result, tt.want)
		}
	}
}

func TestOkuri(t *testing.T) {
	h := New().Handler()
	rec := do(t, h, http.MethodPost, "/api/okuri",
		`{"kanji":"隣","reading":"とな","okurigana":"る","text":"りあわせ"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}
	resp := decodeBody[model.OkuriResponse](t, rec)
	if resp.Type != okurigana.FullOkuri || resp.Okurigana != "り" || resp.Rest != "あわせ" {
		t.Errorf("response = %+v", resp)
	}
}

type fixedDetector struct{ res okurigana.Result }

func (d fixedDetector) Detect(context.Context, string, string, rune, string) (okurigana.Result, error) {
	return d.res, nil
}

func TestOkuriDetectorFallback(t *testing.T) {
	det := fixedDetector{okurigana.Result{Okurigana: "し", Rest: "ぶり", Type: okurigana.DetectedOkuri}}
	s := New(WithDetector(det))
	resp, err := s.Okuri(context.Background(), model.OkuriRequest{Kanji: "久", Reading: "ひさ", Okurigana: "しい", Text: "ぶり"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Type != okurigana.DetectedOkuri || resp.Okurigana != "し" {
		t.Errorf("response = %+v", resp)
	}
}

func TestAnnotate(t *testing.T) {
	tok, err := tokenize.New()
	if err != nil {
		t.Fatal(err)
	}
	h := New(WithAnnotator(tokenize.NewAnnotator(tok))).Handler()
	rec := do(t, h, http.MethodPost, "/api/annotate", `{"text":"日記を書いた。"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}
	resp := decodeBody[model.AnnotateResponse](t, rec)
	if resp.Result != "日記[にっき]を 書[か]いた。" || len(resp.Tokens) == 0 {
		t.Errorf("response = %+v", resp)
	}
}

func TestHealthAndCORS(t *testing.T) {
	h := New(WithOrigins("https://ankiweb.net")).Handler()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://ankiweb.net")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://ankiweb.net" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestWebSocket(t *testing.T) {
	ts := httptest.NewServer(New().Handler())
	defer ts.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(model.HighlightRequest{
		ID: "42", Kanji: "隣", Kunyomi: "とな.る、となり", Text: "隣[とな]りあわせの町[まち]。",
	}); err != nil {
		t.Fatal(err)
	}
	var reply wsReply
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatal(err)
	}
	if reply.ID != "42" || reply.Result != "<b>とな</b>りあわせのまち。" || reply.Error != "" {
		t.Errorf("reply = %+v", reply)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatal(err)
	}
	reply = wsReply{}
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatal(err)
	}
	if reply.Error == "" {
		t.Errorf("expected an error reply, got %+v", reply)
	}

	if err := conn.WriteJSON(model.HighlightRequest{ID: "43", Kanji: "", Text: "x"}); err != nil {
		t.Fatal(err)
	}
	reply = wsReply{}
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatal(err)
	}
	if reply.ID != "43" || reply.Error == "" {
		t.Errorf("reply = %+v", reply)
	}
}
