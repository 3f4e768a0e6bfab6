package tokenizer

import (
	"errors"
	"fmt"
	"strings"

	gosp "github.com/vikesh-raj/go-sentencepiece-encoder/sentencepiece"
)

// ErrEmptyModelPath is returned when NewSentencePieceTokenizer is called
// with an empty path.
var ErrEmptyModelPath = errors.New("sentencepiece model path must not be empty")

// spaceGlyph is SentencePiece's word-boundary marker (U+2581).
const spaceGlyph = "▁"

// SentencePieceTokenizer tokenizes text into SentencePiece subword pieces
// using a pure-Go UNIGRAM model.
type SentencePieceTokenizer struct {
	modelPath string
	proc      gosp.Sentencepiece
}

// NewSentencePieceTokenizer loads a SentencePiece model from the given path.
func NewSentencePieceTokenizer(modelPath string) (*SentencePieceTokenizer, error) {
	if modelPath == "" {
		return nil, ErrEmptyModelPath
	}

	proc, err := gosp.NewSentencepieceFromFile(modelPath, false)
	if err != nil {
		return nil, fmt.Errorf("load sentencepiece model %q: %w", modelPath, err)
	}

	return &SentencePieceTokenizer{modelPath: modelPath, proc: proc}, nil
}

func (t *SentencePieceTokenizer) String() string {
	return fmt.Sprintf("SentencePieceTokenizer(model=%q)", t.modelPath)
}

// Text2Tokens returns the piece strings for a line of text.
func (t *SentencePieceTokenizer) Text2Tokens(line string) ([]string, error) {
	if line == "" {
		return []string{}, nil
	}

	toks := t.proc.Tokenize(line)
	pieces := make([]string, 0, len(toks))
	for _, tok := range toks {
		pieces = append(pieces, tok.Text)
	}
	return pieces, nil
}

// Tokens2Text concatenates pieces and restores word boundaries from the
// SentencePiece space glyph.
func (t *SentencePieceTokenizer) Tokens2Text(tokens []string) string {
	joined := strings.Join(tokens, "")
	joined = strings.ReplaceAll(joined, spaceGlyph, " ")
	return strings.TrimPrefix(joined, " ")
}
