package okurigana

import "sync"

// conjugation is one row of the conjugation table. euphonic, when set, is a
// prefix the ending may also appear behind (し+てた for 察してた).
type conjugation struct {
	pos      PartOfSpeech
	okuri    string
	euphonic string
}

type node struct {
	children map[rune]*node
	last     bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

func (n *node) insert(s string) {
	cur := n
	for _, r := range s {
		next, ok := cur.children[r]
		if !ok {
			next = newNode()
			cur.children[r] = next
		}
		cur = next
	}
	// an empty string marks nothing here; the root's empty ending is tracked separately
	if cur != n {
		cur.last = true
	}
}

// trie holds every ending of one part of speech. acceptsEmpty is set for
// every class: a stem with no ending at all (恥ずかし+げ) is valid.
type trie struct {
	root         *node
	acceptsEmpty bool
}

var (
	tries     map[PartOfSpeech]*trie
	triesOnce sync.Once
)

func buildTries() {
	tries = make(map[PartOfSpeech]*trie)
	for _, c := range conjugations {
		t, ok := tries[c.pos]
		if !ok {
			t = &trie{root: newNode()}
			tries[c.pos] = t
		}
		t.root.insert(c.okuri)
		t.acceptsEmpty = true
		if c.euphonic != "" {
			t.root.insert(c.euphonic + c.okuri)
		}
	}
}

func trieFor(pos PartOfSpeech) *trie {
	triesOnce.Do(buildTries)
	return tries[pos]
}

// Endings returns every inflected ending listed for pos, euphonic forms
// included. Used to check the trie against its own table.
func Endings(pos PartOfSpeech) []string {
	var out []string
	for _, c := range conjugations {
		if c.pos != pos {
			continue
		}
		if c.okuri != "" {
			out = append(out, c.okuri)
		}
		if c.euphonic != "" {
			out = append(out, c.euphonic+c.okuri)
		}
	}
	return out
}

// PartsOfSpeech lists the classes the table has endings for.
func PartsOfSpeech() []PartOfSpeech {
	seen := make(map[PartOfSpeech]bool)
	var out []PartOfSpeech
	for _, c := range conjugations {
		if !seen[c.pos] {
			seen[c.pos] = true
			out = append(out, c.pos)
		}
	}
	return out
}

// walk consumes the longest prefix of text the trie has a path for. It
// doesn't backtrack: a path that dead-ends on a non-final node is partial.
func (t *trie) walk(text string) Result {
	cur := t.root
	consumed := 0
	for i, r := range text {
		next, ok := cur.children[r]
		if !ok {
			break
		}
		cur = next
		consumed = i + len(string(r))
	}
	res := Result{Okurigana: text[:consumed], Rest: text[consumed:]}
	switch {
	case consumed == 0 && t.acceptsEmpty:
		res.Type = EmptyOkuri
	case cur.last:
		res.Type = FullOkuri
	default:
		res.Type = PartialOkuri
	}
	return res
}
