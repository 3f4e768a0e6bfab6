// Package symbols implements the non-linguistic symbol set and the
// symbol-aware scan that segments raw text into symbol spans and plain
// characters before grapheme-to-phoneme conversion.
package symbols

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"
)

// Set holds the configured non-linguistic symbols (multi-character markers
// such as "<space>" or "<noise>"). It is immutable after construction.
//
// Symbols are indexed by descending length so that the scan always selects
// the longest matching symbol at a position. Overlapping symbols like "<a>"
// and "<ab>" therefore resolve deterministically regardless of the order
// they were supplied in.
type Set struct {
	ordered []string // unique symbols, longest first
}

// NewSet builds a Set from an explicit list of symbols.
// Duplicates and empty strings are discarded.
func NewSet(symbols []string) *Set {
	seen := make(map[string]struct{}, len(symbols))
	ordered := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		ordered = append(ordered, s)
	}

	// Longest first; equal lengths keep lexical order so the index is
	// stable across constructions.
	sort.SliceStable(ordered, func(i, j int) bool {
		if len(ordered[i]) != len(ordered[j]) {
			return len(ordered[i]) > len(ordered[j])
		}
		return ordered[i] < ordered[j]
	})

	return &Set{ordered: ordered}
}

// LoadSet reads a newline-delimited symbol file (one symbol per line,
// trailing newline stripped) and builds a Set from its contents.
func LoadSet(path string) (*Set, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open symbol file: %w", err)
	}
	defer fh.Close()

	var list []string
	s := bufio.NewScanner(fh)
	for s.Scan() {
		list = append(list, strings.TrimRight(s.Text(), "\r\n"))
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read symbol file %q: %w", path, err)
	}

	return NewSet(list), nil
}

// Len returns the number of distinct symbols in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ordered)
}

// Symbols returns the symbols in scan order (longest first).
func (s *Set) Symbols() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.ordered...)
}

// Contains reports whether sym is a configured symbol.
func (s *Set) Contains(sym string) bool {
	if s == nil {
		return false
	}
	for _, w := range s.ordered {
		if w == sym {
			return true
		}
	}
	return false
}

// match returns the longest configured symbol that is a prefix of text,
// or "" when none matches.
func (s *Set) match(text string) string {
	if s == nil {
		return ""
	}
	for _, w := range s.ordered {
		if strings.HasPrefix(text, w) {
			return w
		}
	}
	return ""
}

// Scan segments text into a flat token sequence in a single left-to-right
// greedy pass. At each position the longest matching configured symbol is
// emitted as one token (or skipped entirely when drop is true) and the
// cursor advances past it; otherwise the next rune is emitted and the
// cursor advances by one rune. Every step advances the cursor, so the scan
// always terminates.
func (s *Set) Scan(text string, drop bool) []string {
	tokens := make([]string, 0, utf8.RuneCountInString(text))
	for len(text) > 0 {
		if w := s.match(text); w != "" {
			if !drop {
				tokens = append(tokens, w)
			}
			text = text[len(w):]
			continue
		}
		_, size := utf8.DecodeRuneInString(text)
		tokens = append(tokens, text[:size])
		text = text[size:]
	}
	return tokens
}

// Reassemble joins scan output back into a single string. Combined with
// Scan it yields the literal text handed to a G2P backend.
func Reassemble(tokens []string) string {
	return strings.Join(tokens, "")
}
