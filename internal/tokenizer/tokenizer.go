// Package tokenizer converts raw text into token sequences for
// speech-processing pipelines and joins token sequences back into flat
// text. The phoneme tokenizer is the primary implementation; character,
// word, and sentencepiece tokenizers share the same interface.
package tokenizer

// Tokenizer converts a line of text into an ordered token sequence and
// back. Implementations are stateless per call and safe to reuse across
// many lines.
type Tokenizer interface {
	// Text2Tokens tokenizes a single line of text.
	Text2Tokens(line string) ([]string, error)

	// Tokens2Text joins tokens into flat text. The mapping is not
	// guaranteed to invert Text2Tokens; phoneme-level tokenization in
	// particular is lossy.
	Tokens2Text(tokens []string) string
}
