package highlight

import "testing"

func TestWrapWord(t *testing.T) {
	type want struct {
		mode  Mode
		merge bool
		out   string
	}
	tests := []struct {
		name     string
		word     string
		furigana string
		want     []want
	}{
		{
			name: "one part highlighted", word: "漢字", furigana: "<b><on>かん</on></b><on>じ</on>",
			want: []want{
				{KanaOnly, false, "<b><on>かん</on></b><on>じ</on>"},
				{KanaOnly, true, "<b><on>かん</on></b><on>じ</on>"},
				{Furigana, false, "<b><on> 漢[かん]</on></b><on> 字[じ]</on>"},
				{Furigana, true, "<b><on> 漢[かん]</on></b><on> 字[じ]</on>"},
				{Furikanji, false, "<b><on> かん[漢]</on></b><on> じ[字]</on>"},
				{Furikanji, true, "<b><on> かん[漢]</on></b><on> じ[字]</on>"},
			},
		},
		{
			name: "jukujikun", word: "大人", furigana: "<juk>おとな</juk>",
			want: []want{
				{KanaOnly, true, "<juk>おとな</juk>"},
				{Furigana, false, "<juk> 大人[おとな]</juk>"},
				{Furikanji, true, "<juk> おとな[大人]</juk>"},
			},
		},
		{
			name: "different tags", word: "友達", furigana: "<kun>とも</kun><on>だち</on>",
			want: []want{
				{KanaOnly, true, "<kun>とも</kun><on>だち</on>"},
				{Furigana, true, "<kun> 友[とも]</kun><on> 達[だち]</on>"},
				{Furikanji, false, "<kun> とも[友]</kun><on> だち[達]</on>"},
			},
		},
		{
			name: "repeater", word: "悠々", furigana: "<on>ゆうゆう</on>",
			want: []want{
				{Furigana, false, "<on> 悠々[ゆうゆう]</on>"},
				{Furikanji, true, "<on> ゆうゆう[悠々]</on>"},
			},
		},
		{
			name: "merge two", word: "時間", furigana: "<on>ジ</on><on>カン</on>",
			want: []want{
				{KanaOnly, false, "<on>ジ</on><on>カン</on>"},
				{KanaOnly, true, "<on>ジカン</on>"},
				{Furigana, false, "<on> 時[ジ]</on><on> 間[カン]</on>"},
				{Furigana, true, "<on> 時間[ジカン]</on>"},
				{Furikanji, false, "<on> ジ[時]</on><on> カン[間]</on>"},
				{Furikanji, true, "<on> ジカン[時間]</on>"},
			},
		},
		{
			name: "merge three", word: "不自然", furigana: "<on>ふ</on><on>じ</on><on>ぜん</on>",
			want: []want{
				{KanaOnly, true, "<on>ふじぜん</on>"},
				{Furigana, false, "<on> 不[ふ]</on><on> 自[じ]</on><on> 然[ぜん]</on>"},
				{Furigana, true, "<on> 不自然[ふじぜん]</on>"},
				{Furikanji, true, "<on> ふじぜん[不自然]</on>"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, w := range tt.want {
				if got := WrapWord(tt.word, tt.furigana, w.mode, w.merge); got != w.out {
					t.Errorf("%s merge=%v: got %s, want %s", w.mode, w.merge, got, w.out)
				}
			}
		})
	}
}

func TestParseTags(t *testing.T) {
	segs := ParseTags("<b><kun>とも</kun></b><on>だち</kun><on>ち</on>")
	if len(segs) != 2 {
		t.Fatalf("got %d segments: %+v", len(segs), segs)
	}
	if segs[0].Tag != TagKun || !segs[0].Highlighted || segs[0].Kana != "とも" {
		t.Errorf("first segment = %+v", segs[0])
	}
	if segs[1].Tag != TagOn || segs[1].Highlighted || segs[1].Kana != "ち" {
		t.Errorf("second segment = %+v", segs[1])
	}
}
