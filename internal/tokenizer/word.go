package tokenizer

import (
	"fmt"
	"strings"

	"github.com/example/go-phonemizer/internal/symbols"
)

// WordTokenizer splits a line on a delimiter (whitespace by default) and
// optionally removes tokens that exactly match a non-linguistic symbol.
type WordTokenizer struct {
	delimiter string
	remove    bool
	syms      *symbols.Set
}

// WordConfig holds the construction parameters of a WordTokenizer.
type WordConfig struct {
	// Delimiter separates words; empty means any whitespace run.
	Delimiter                  string
	NonLinguisticSymbols       []string
	NonLinguisticSymbolsPath   string
	RemoveNonLinguisticSymbols bool
}

// NewWordTokenizer loads the symbol set used for exact-match removal.
func NewWordTokenizer(cfg WordConfig) (*WordTokenizer, error) {
	syms := symbols.NewSet(cfg.NonLinguisticSymbols)
	if cfg.NonLinguisticSymbolsPath != "" {
		if len(cfg.NonLinguisticSymbols) > 0 {
			return nil, fmt.Errorf("non-linguistic symbols given both inline and as file %q", cfg.NonLinguisticSymbolsPath)
		}
		var err error
		syms, err = symbols.LoadSet(cfg.NonLinguisticSymbolsPath)
		if err != nil {
			return nil, err
		}
	}

	return &WordTokenizer{
		delimiter: cfg.Delimiter,
		remove:    cfg.RemoveNonLinguisticSymbols,
		syms:      syms,
	}, nil
}

func (t *WordTokenizer) String() string {
	return fmt.Sprintf("WordTokenizer(delimiter=%q)", t.delimiter)
}

// Text2Tokens splits the line and optionally filters symbol tokens.
func (t *WordTokenizer) Text2Tokens(line string) ([]string, error) {
	var words []string
	if t.delimiter == "" {
		words = strings.Fields(line)
	} else {
		words = strings.Split(line, t.delimiter)
	}

	if !t.remove {
		return words, nil
	}
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if t.syms.Contains(w) {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens, nil
}

// Tokens2Text joins tokens with the delimiter (space when unset).
func (t *WordTokenizer) Tokens2Text(tokens []string) string {
	delim := t.delimiter
	if delim == "" {
		delim = " "
	}
	return strings.Join(tokens, delim)
}
