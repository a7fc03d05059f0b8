// Package lexicon provides the word list membership check used by the
// move validator. The teacher's dictionary is a DAWG built for move
// generation; since search is explicitly out of scope here, a flat set
// is the grounded substitute for the one operation that survives:
// membership testing.
package lexicon

import (
	"bufio"
	"io"
	"strings"
)

// Lexicon is an immutable, case-normalized set of valid words.
type Lexicon struct {
	words map[string]struct{}
}

// New builds a Lexicon from an in-memory word list.
func New(words []string) *Lexicon {
	l := &Lexicon{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		l.add(w)
	}
	return l
}

func (l *Lexicon) add(w string) {
	w = strings.ToUpper(strings.TrimSpace(w))
	if w == "" {
		return
	}
	l.words[w] = struct{}{}
}

// Load reads one word per line from r, skipping blank lines and
// normalizing case, and returns the resulting Lexicon.
func Load(r io.Reader) (*Lexicon, error) {
	l := &Lexicon{words: make(map[string]struct{})}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l.add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return l, nil
}

// Contains reports whether word (case-insensitively) is in the lexicon.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.words[strings.ToUpper(word)]
	return ok
}

// Len returns the number of distinct words in the lexicon.
func (l *Lexicon) Len() int {
	return len(l.words)
}
