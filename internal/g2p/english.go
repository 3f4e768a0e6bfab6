package g2p

import (
	"sync"

	"github.com/neurlang/goruut/lib"
	"github.com/neurlang/goruut/models/requests"
)

// wordPhonemizer yields the phonetic form of each word of a sentence,
// in sentence order.
type wordPhonemizer interface {
	PhoneticWords(text string) []string
}

// englishBackend runs the learned English G2P model. The underlying
// phonemizer loads model weights and is not safely shareable across
// independently-scheduled worker processes, so it is built lazily on the
// first Phonemize call rather than at configuration time: each worker
// that re-creates the backend ends up with its own private model handle.
type englishBackend struct {
	noSpace bool

	// newModel builds the model on first use; tests substitute a fake.
	newModel func() wordPhonemizer

	once  sync.Once
	model wordPhonemizer
}

func newEnglishBackend(noSpace bool) *englishBackend {
	return &englishBackend{noSpace: noSpace, newModel: newGoruutModel}
}

func (b *englishBackend) Phonemize(text string) ([]string, error) {
	b.once.Do(func() {
		b.model = b.newModel()
	})

	// One phone token per rune of each word's phonetic form. A literal
	// " " token separates words; g2p_en_no_space filters those out.
	var tokens []string
	for i, word := range b.model.PhoneticWords(text) {
		if i > 0 && !b.noSpace {
			tokens = append(tokens, " ")
		}
		for _, r := range word {
			tokens = append(tokens, string(r))
		}
	}
	return tokens, nil
}

// goruutModel adapts the goruut phonemizer to wordPhonemizer.
type goruutModel struct {
	p *lib.Phonemizer
}

func newGoruutModel() wordPhonemizer {
	return goruutModel{p: lib.NewPhonemizer(nil)}
}

func (m goruutModel) PhoneticWords(text string) []string {
	resp := m.p.Sentence(requests.PhonemizeSentence{
		Language: "English",
		Sentence: text,
	})

	words := make([]string, len(resp.Words))
	for i, word := range resp.Words {
		words[i] = word.Phonetic
	}
	return words
}
