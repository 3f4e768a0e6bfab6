package tokenizer

import (
	"fmt"

	"github.com/example/go-phonemizer/internal/config"
	"github.com/example/go-phonemizer/internal/g2p"
)

// FromConfig builds the tokenizer selected by cfg.Tokenizer.Type.
func FromConfig(cfg config.Config) (Tokenizer, error) {
	tc := cfg.Tokenizer
	switch tc.Type {
	case "", "phoneme":
		return NewPhonemeTokenizer(PhonemeConfig{
			G2PType:                    tc.G2PType,
			NonLinguisticSymbolsPath:   tc.SymbolFile,
			SpaceSymbol:                tc.SpaceSymbol,
			RemoveNonLinguisticSymbols: tc.RemoveSymbols,
			G2P:                        g2p.Options{EspeakCommand: cfg.Espeak.Command},
		})
	case "char":
		return NewCharTokenizer(CharConfig{
			NonLinguisticSymbolsPath:   tc.SymbolFile,
			SpaceSymbol:                tc.SpaceSymbol,
			RemoveNonLinguisticSymbols: tc.RemoveSymbols,
		})
	case "word":
		return NewWordTokenizer(WordConfig{
			Delimiter:                  tc.Delimiter,
			NonLinguisticSymbolsPath:   tc.SymbolFile,
			RemoveNonLinguisticSymbols: tc.RemoveSymbols,
		})
	case "sentencepiece":
		return NewSentencePieceTokenizer(tc.ModelPath)
	default:
		return nil, fmt.Errorf("unknown tokenizer type %q (want phoneme|char|word|sentencepiece)", tc.Type)
	}
}
