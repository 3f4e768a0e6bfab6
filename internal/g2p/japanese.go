package g2p

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// japaneseBackend performs rule-based Japanese G2P: a morphological
// analysis pass produces katakana readings, which are then expanded into
// phonemes (or returned rune-by-rune in kana mode).
//
// The analyzer embeds a full dictionary, so like the English model it is
// constructed lazily on first use and owned per backend instance.
type japaneseBackend struct {
	kana bool

	once    sync.Once
	initErr error
	tok     *tokenizer.Tokenizer
}

func newJapaneseBackend(kana bool) *japaneseBackend {
	return &japaneseBackend{kana: kana}
}

func (b *japaneseBackend) Phonemize(text string) ([]string, error) {
	b.once.Do(func() {
		t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
		if err != nil {
			b.initErr = fmt.Errorf("build japanese analyzer: %w", err)
			return
		}
		b.tok = t
	})
	if b.initErr != nil {
		return nil, b.initErr
	}

	kana := b.reading(text)
	if b.kana {
		// One token per kana character.
		tokens := make([]string, 0, len(kana))
		for _, r := range kana {
			tokens = append(tokens, string(r))
		}
		return tokens, nil
	}
	return kanaToPhonemes(kana), nil
}

// reading concatenates the katakana readings of all morphemes. Morphemes
// without a dictionary reading (unknown words, symbols) contribute their
// surface form unchanged.
func (b *japaneseBackend) reading(text string) string {
	var sb strings.Builder
	for _, tok := range b.tok.Tokenize(text) {
		if r, ok := tok.Reading(); ok && r != "" && r != "*" {
			sb.WriteString(r)
			continue
		}
		sb.WriteString(tok.Surface)
	}
	return sb.String()
}
