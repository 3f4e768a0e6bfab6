package tokenizer

import (
	"fmt"
	"strings"

	"github.com/example/go-phonemizer/internal/g2p"
	"github.com/example/go-phonemizer/internal/symbols"
)

// PhonemeConfig holds the construction parameters of a PhonemeTokenizer.
type PhonemeConfig struct {
	// G2PType selects the grapheme-to-phoneme backend. Required; an
	// unrecognized key fails construction with g2p.ErrUnsupportedG2P.
	G2PType string

	// NonLinguisticSymbols is an explicit symbol list. Mutually exclusive
	// with NonLinguisticSymbolsPath; both absent means an empty set.
	NonLinguisticSymbols []string

	// NonLinguisticSymbolsPath points at a newline-delimited symbol file.
	NonLinguisticSymbolsPath string

	// SpaceSymbol is stored for callers that read it. The phoneme scan
	// and join attach no semantics to it.
	SpaceSymbol string

	// RemoveNonLinguisticSymbols drops matched symbols from the text
	// handed to the backend instead of keeping them.
	RemoveNonLinguisticSymbols bool

	// G2P carries backend settings not encoded in the key.
	G2P g2p.Options
}

// PhonemeTokenizer segments non-linguistic symbols out of a line, then
// hands the reassembled text to a G2P backend and returns the backend's
// token sequence verbatim.
type PhonemeTokenizer struct {
	g2pType     string
	spaceSymbol string
	remove      bool
	syms        *symbols.Set
	backend     g2p.Backend
}

// NewPhonemeTokenizer resolves the backend and loads the symbol set.
// Both happen exactly once here; the returned tokenizer is reused across
// many Text2Tokens calls.
func NewPhonemeTokenizer(cfg PhonemeConfig) (*PhonemeTokenizer, error) {
	backend, err := g2p.NewWithOptions(cfg.G2PType, cfg.G2P)
	if err != nil {
		return nil, err
	}

	syms := symbols.NewSet(cfg.NonLinguisticSymbols)
	if cfg.NonLinguisticSymbolsPath != "" {
		if len(cfg.NonLinguisticSymbols) > 0 {
			return nil, fmt.Errorf("non-linguistic symbols given both inline and as file %q", cfg.NonLinguisticSymbolsPath)
		}
		syms, err = symbols.LoadSet(cfg.NonLinguisticSymbolsPath)
		if err != nil {
			return nil, err
		}
	}

	spaceSymbol := cfg.SpaceSymbol
	if spaceSymbol == "" {
		spaceSymbol = "<space>"
	}

	return &PhonemeTokenizer{
		g2pType:     cfg.G2PType,
		spaceSymbol: spaceSymbol,
		remove:      cfg.RemoveNonLinguisticSymbols,
		syms:        syms,
		backend:     backend,
	}, nil
}

// G2PType returns the backend key the tokenizer was configured with.
func (t *PhonemeTokenizer) G2PType() string { return t.g2pType }

// SpaceSymbol returns the configured space symbol. It is not consumed by
// the scan or join logic; it exists for callers that read it.
func (t *PhonemeTokenizer) SpaceSymbol() string { return t.spaceSymbol }

func (t *PhonemeTokenizer) String() string {
	return fmt.Sprintf("PhonemeTokenizer(g2p_type=%q, space_symbol=%q, non_linguistic_symbols=%v)",
		t.g2pType, t.spaceSymbol, t.syms.Symbols())
}

// Text2Tokens scans line for non-linguistic symbols, reassembles the
// retained spans into a single string, and forwards that string to the
// G2P backend. The backend's tokens are returned unmodified.
func (t *PhonemeTokenizer) Text2Tokens(line string) ([]string, error) {
	filtered := symbols.Reassemble(t.syms.Scan(line, t.remove))
	return t.backend.Phonemize(filtered)
}

// Tokens2Text concatenates tokens with no separator. Phoneme-level
// tokenization is not invertible, so the result is generally not the
// original input text.
func (t *PhonemeTokenizer) Tokens2Text(tokens []string) string {
	return strings.Join(tokens, "")
}
