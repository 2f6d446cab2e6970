// Command kanahighlight highlights the reading of a kanji in furigana text,
// and serves the same engine over HTTP.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"kanahighlight/api"
	"kanahighlight/highlight"
	"kanahighlight/kanji"
	"kanahighlight/logger"
	"kanahighlight/model"
	"kanahighlight/okurigana"
	"kanahighlight/store"
	"kanahighlight/tokenize"
)

// Globals are the flags every command shares.
type Globals struct {
	LogLevel  string `name:"log-level" default:"warning" enum:"error,warning,info,debug" env:"KANAHIGHLIGHT_LOG_LEVEL" help:"Minimum log level (error, warning, info, debug)"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" env:"KANAHIGHLIGHT_LOG_FORMAT" help:"Log output format (text, json)"`
	Kanjidic  string `name:"kanjidic" type:"path" env:"KANAHIGHLIGHT_KANJIDIC" help:"kanjidic2.xml or kanjidic2.xml.xz to look up readings in"`
	DB        string `name:"db" type:"path" env:"KANAHIGHLIGHT_DB" help:"SQLite store of readings and cached highlights"`
	Dict      string `name:"dict" default:"ipa" enum:"ipa,uni" env:"KANAHIGHLIGHT_DICT" help:"Tokenizer dictionary (ipa, uni)"`

	log logger.Logger `kong:"-"`
}

func (g *Globals) logger() logger.Logger {
	if g.log != nil {
		return g.log
	}
	level, err := logger.ParseLevel(g.LogLevel)
	if err != nil {
		level = logger.LevelWarning
	}
	format, err := logger.ParseFormat(g.LogFormat)
	if err != nil {
		format = logger.FormatText
	}
	g.log = logger.NewSlog(os.Stderr, level, format)
	return g.log
}

// openStore opens --db, or returns nil when it isn't set.
func (g *Globals) openStore() (*store.Store, error) {
	if g.DB == "" {
		return nil, nil
	}
	return store.Open(g.DB)
}

func (g *Globals) loadKanjidic() error {
	if g.Kanjidic == "" {
		return nil
	}
	if err := kanji.InitKanjidic2(g.Kanjidic); err != nil {
		return err
	}
	g.logger().Info("kanjidic loaded", "kanji", kanji.Count())
	return nil
}

func (g *Globals) tokenizer(extra ...tokenize.Option) (*tokenize.Tokenizer, error) {
	d, err := tokenize.DictByName(g.Dict)
	if err != nil {
		return nil, err
	}
	opts := append([]tokenize.Option{tokenize.WithDict(d), tokenize.WithLogger(g.logger())}, extra...)
	return tokenize.New(opts...)
}

// server wires the store, kanjidic and, when asked, the kagome detector
// and annotator into an api.Server. cleanup releases the store.
func (g *Globals) server(detect, annotate bool, extra ...api.Option) (srv *api.Server, cleanup func(), err error) {
	if err := g.loadKanjidic(); err != nil {
		return nil, nil, err
	}
	st, err := g.openStore()
	if err != nil {
		return nil, nil, err
	}
	cleanup = func() {
		if st != nil {
			st.Close()
		}
	}
	opts := []api.Option{api.WithLogger(g.logger())}
	if st != nil {
		opts = append(opts, api.WithStore(st))
	}
	if detect || annotate {
		tok, err := g.tokenizer()
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		if detect {
			opts = append(opts, api.WithDetector(tokenize.NewDetector(tok)))
		}
		if annotate {
			opts = append(opts, api.WithAnnotator(tokenize.NewAnnotator(tok)))
		}
	}
	return api.New(append(opts, extra...)...), cleanup, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// HighlightCmd highlights one kanji in a text.
type HighlightCmd struct {
	Kanji     string `name:"kanji" short:"k" required:"" help:"Kanji to highlight"`
	Onyomi    string `name:"onyomi" help:"Onyomi list, e.g. 'シ(漢)、ジ(呉)'; looked up when both lists are empty"`
	Kunyomi   string `name:"kunyomi" help:"Kunyomi list, e.g. 'み.る'"`
	Mode      string `name:"mode" short:"m" default:"kana_only" enum:"kana_only,furigana,furikanji" help:"Output mode"`
	Okurigana bool   `name:"okurigana" help:"Extend kunyomi highlights over conjugated okurigana"`
	Detect    bool   `name:"detect" help:"Fall back to the kagome okurigana detector (implies --okurigana)"`
	Text      string `arg:"" help:"Text in furigana notation, 漢字[かんじ]"`
}

func (c *HighlightCmd) Run(g *Globals) error {
	srv, closeSrv, err := g.server(c.Detect, false)
	if err != nil {
		return err
	}
	defer closeSrv()
	resp, err := srv.Highlight(context.Background(), model.HighlightRequest{
		Kanji:     c.Kanji,
		Onyomi:    c.Onyomi,
		Kunyomi:   c.Kunyomi,
		Text:      c.Text,
		Mode:      c.Mode,
		Okurigana: c.Okurigana || c.Detect,
	})
	if err != nil {
		return err
	}
	fmt.Println(resp.Result)
	return nil
}

// FilterCmd prints the text with every kanji replaced by its reading.
type FilterCmd struct {
	Text string `arg:"" help:"Text in furigana notation"`
}

func (c *FilterCmd) Run() error {
	fmt.Println(highlight.KanaFilter(c.Text))
	return nil
}

// ReverseCmd swaps kanji and reading, 漢字[かんじ] → かんじ[漢字].
type ReverseCmd struct {
	Text string `arg:"" help:"Text in furigana notation"`
}

func (c *ReverseCmd) Run() error {
	fmt.Println(highlight.ReverseFurigana(c.Text))
	return nil
}

// WrapCmd pairs tagged furigana with the kanji of a word.
type WrapCmd struct {
	Word     string `name:"word" short:"w" required:"" help:"The kanji word"`
	Mode     string `name:"mode" short:"m" default:"furigana" enum:"kana_only,furigana,furikanji" help:"Output mode"`
	Merge    bool   `name:"merge" help:"Merge consecutive segments with the same tag"`
	Furigana string `arg:"" help:"Tagged furigana, e.g. '<on>かん</on><on>じ</on>'"`
}

func (c *WrapCmd) Run() error {
	mode, err := highlight.ParseMode(c.Mode)
	if err != nil {
		return err
	}
	fmt.Println(highlight.WrapWord(c.Word, c.Furigana, mode, c.Merge))
	return nil
}

// OkuriCmd reports which part of a text is the okurigana of a kunyomi.
type OkuriCmd struct {
	Kanji     string `name:"kanji" short:"k" required:"" help:"The kanji"`
	Reading   string `name:"reading" short:"r" required:"" help:"Kunyomi stem, e.g. とな"`
	Okurigana string `name:"okurigana" short:"o" help:"Dictionary okurigana, e.g. る"`
	POS       string `name:"pos" help:"Force a conjugation class, e.g. v5r or adj-i"`
	Detect    bool   `name:"detect" help:"Fall back to the kagome detector"`
	Text      string `arg:"" help:"Kana following the kanji"`
}

func (c *OkuriCmd) Run(g *Globals) error {
	srv, closeSrv, err := g.server(c.Detect, false)
	if err != nil {
		return err
	}
	defer closeSrv()
	resp, err := srv.Okuri(context.Background(), model.OkuriRequest{
		Kanji:        c.Kanji,
		Reading:      c.Reading,
		Okurigana:    c.Okurigana,
		Text:         c.Text,
		PartOfSpeech: okurigana.PartOfSpeech(c.POS),
	})
	if err != nil {
		return err
	}
	return printJSON(resp)
}

// AnnotateCmd adds furigana to plain text with kagome.
type AnnotateCmd struct {
	Split bool   `name:"split" help:"One bracket per kanji where kanjidic readings line up (needs --kanjidic)"`
	Mode  string `name:"mode" enum:"normal,search,extended" default:"normal" help:"kagome segmentation mode"`
	Dump  string `name:"dump" type:"path" help:"Directory to write the tokens of every line, and its segmentation in every mode, to as JSON"`
	Text  string `arg:"" optional:"" help:"Text to annotate; lines from stdin when omitted"`
}

func (c *AnnotateCmd) Run(g *Globals) error {
	if err := g.loadKanjidic(); err != nil {
		return err
	}
	mode, err := tokenize.ModeByName(c.Mode)
	if err != nil {
		return err
	}
	tok, err := g.tokenizer(tokenize.WithMode(mode))
	if err != nil {
		return err
	}
	var opts []tokenize.AnnotateOption
	if c.Split {
		opts = append(opts, tokenize.WithSplitKanji())
	}
	a := tokenize.NewAnnotator(tok, opts...)
	if c.Dump != "" {
		if err := logger.InitLogs(c.Dump); err != nil {
			return fmt.Errorf("preparing %s: %w", c.Dump, err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in := make(chan tokenize.Sentence)
	go func() {
		defer close(in)
		if c.Text != "" {
			in <- tokenize.Sentence{ID: model.NewRequestID(), Text: c.Text}
			return
		}
		sc := bufio.NewScanner(os.Stdin)
		for n := 1; sc.Scan(); n++ {
			select {
			case in <- tokenize.Sentence{ID: strconv.Itoa(n), Text: sc.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			g.logger().Error("reading stdin", "err", err)
		}
	}()

	for res := range a.Stream(ctx, in) {
		if res.Err != nil {
			return res.Err
		}
		fmt.Println(tokenize.Render(res.Tokens))
		if c.Dump != "" {
			if err := logger.LogJSON(c.Dump, res.Sentence.ID+"_tokens", res.Tokens); err != nil {
				g.logger().Warning("failed to write token log", "err", err)
			}
			modes, err := tok.TokenizeModes(ctx, res.Sentence.Text)
			if err != nil {
				return err
			}
			if err := logger.LogJSON(c.Dump, res.Sentence.ID+"_modes", modes); err != nil {
				g.logger().Warning("failed to write segmentation log", "err", err)
			}
		}
	}
	return ctx.Err()
}

// ImportKanjidicCmd copies kanjidic readings into the store.
type ImportKanjidicCmd struct {
	Path string `arg:"" type:"existingfile" help:"kanjidic2.xml or kanjidic2.xml.xz"`
}

func (c *ImportKanjidicCmd) Run(g *Globals) error {
	if g.DB == "" {
		return errors.New("import-kanjidic needs --db")
	}
	d, err := kanji.Load(c.Path)
	if err != nil {
		return err
	}
	st, err := g.openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	n, err := st.ImportKanjidic(context.Background(), d)
	if err != nil {
		return err
	}
	fmt.Printf("imported %d kanji into %s\n", n, g.DB)
	return nil
}

// ServeCmd starts the HTTP API.
type ServeCmd struct {
	Addr    string   `name:"addr" default:":8080" env:"KANAHIGHLIGHT_ADDR" help:"Listen address"`
	Origins []string `name:"origins" env:"KANAHIGHLIGHT_ORIGINS" help:"Allowed CORS and websocket origins; any when empty"`
	Detect  bool     `name:"detect" default:"true" negatable:"" help:"Use the kagome okurigana detector"`
}

func (c *ServeCmd) Run(g *Globals) error {
	srv, closeSrv, err := g.server(c.Detect, true, api.WithOrigins(c.Origins...))
	if err != nil {
		return err
	}
	defer closeSrv()

	httpSrv := &http.Server{
		Addr:              c.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		g.logger().Info("listening", "addr", c.Addr)
		errc <- httpSrv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdown)
}

// CLI is the command tree.
type CLI struct {
	Globals

	Highlight      HighlightCmd      `cmd:"" help:"Highlight the reading of a kanji"`
	Filter         FilterCmd         `cmd:"" help:"Replace furigana notation by its reading"`
	Reverse        ReverseCmd        `cmd:"" help:"Swap kanji and reading in furigana notation"`
	Wrap           WrapCmd           `cmd:"" help:"Pair <on>/<kun>/<juk> furigana with the kanji of a word"`
	Okuri          OkuriCmd          `cmd:"" help:"Find the okurigana of a kunyomi in a text"`
	Annotate       AnnotateCmd       `cmd:"" help:"Add furigana to plain text"`
	ImportKanjidic ImportKanjidicCmd `cmd:"" name:"import-kanjidic" help:"Load kanjidic readings into the store"`
	Serve          ServeCmd          `cmd:"" help:"Start the HTTP API"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("kanahighlight"),
		kong.Description("Highlight kanji readings in furigana text"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
