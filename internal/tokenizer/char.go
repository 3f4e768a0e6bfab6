package tokenizer

import (
	"fmt"
	"strings"

	"github.com/example/go-phonemizer/internal/symbols"
)

// CharTokenizer emits the symbol scan output directly: one token per rune
// plus atomic non-linguistic symbols, with plain spaces replaced by the
// configured space symbol. Unlike the phoneme tokenizer it is invertible.
type CharTokenizer struct {
	spaceSymbol string
	remove      bool
	syms        *symbols.Set
}

// CharConfig holds the construction parameters of a CharTokenizer.
type CharConfig struct {
	NonLinguisticSymbols       []string
	NonLinguisticSymbolsPath   string
	SpaceSymbol                string
	RemoveNonLinguisticSymbols bool
}

// NewCharTokenizer loads the symbol set and fixes the space symbol.
func NewCharTokenizer(cfg CharConfig) (*CharTokenizer, error) {
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

	spaceSymbol := cfg.SpaceSymbol
	if spaceSymbol == "" {
		spaceSymbol = "<space>"
	}

	return &CharTokenizer{
		spaceSymbol: spaceSymbol,
		remove:      cfg.RemoveNonLinguisticSymbols,
		syms:        syms,
	}, nil
}

func (t *CharTokenizer) String() string {
	return fmt.Sprintf("CharTokenizer(space_symbol=%q, non_linguistic_symbols=%v)",
		t.spaceSymbol, t.syms.Symbols())
}

// Text2Tokens scans line and maps each plain space to the space symbol.
func (t *CharTokenizer) Text2Tokens(line string) ([]string, error) {
	scanned := t.syms.Scan(line, t.remove)
	tokens := make([]string, 0, len(scanned))
	for _, tok := range scanned {
		if tok == " " {
			tok = t.spaceSymbol
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// Tokens2Text joins tokens, mapping the space symbol back to a space.
func (t *CharTokenizer) Tokens2Text(tokens []string) string {
	var sb strings.Builder
	for _, tok := range tokens {
		if tok == t.spaceSymbol {
			sb.WriteString(" ")
			continue
		}
		sb.WriteString(tok)
	}
	return sb.String()
}
