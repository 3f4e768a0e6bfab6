package g2p

import (
	"strings"

	pinyin "github.com/mozillazg/go-pinyin"
)

// pinyinBackend converts Chinese text to pinyin syllables with numeric
// tone marks (Tone3 style, e.g. "zhong1"). In phone mode each syllable is
// further split into its initial and final, dropping empty parts.
type pinyinBackend struct {
	splitPhone bool
	args       pinyin.Args
}

func newPinyinBackend(splitPhone bool) *pinyinBackend {
	args := pinyin.NewArgs()
	args.Style = pinyin.Tone3
	// Keep non-Han runes as-is instead of silently dropping them.
	args.Fallback = func(r rune, _ pinyin.Args) []string {
		return []string{string(r)}
	}
	return &pinyinBackend{splitPhone: splitPhone, args: args}
}

func (b *pinyinBackend) Phonemize(text string) ([]string, error) {
	var tokens []string
	for _, readings := range pinyin.Pinyin(text, b.args) {
		if len(readings) == 0 {
			continue
		}
		syllable := readings[0]
		if !b.splitPhone {
			tokens = append(tokens, syllable)
			continue
		}
		for _, part := range splitInitialFinal(syllable) {
			if part != "" {
				tokens = append(tokens, part)
			}
		}
	}
	return tokens, nil
}

// pinyinInitials are the syllable onsets recognized when splitting a
// syllable, two-letter initials before their one-letter prefixes. y and w
// are not initials under the strict interpretation, so syllables like
// "yu4" split into an empty initial and a whole final.
var pinyinInitials = []string{
	"zh", "ch", "sh",
	"b", "p", "m", "f", "d", "t", "n", "l",
	"g", "k", "h", "j", "q", "x", "r", "z", "c", "s",
}

// splitInitialFinal splits one tone-numbered syllable into [initial, final].
// Either part may be empty.
func splitInitialFinal(syllable string) [2]string {
	for _, initial := range pinyinInitials {
		if strings.HasPrefix(syllable, initial) {
			return [2]string{initial, syllable[len(initial):]}
		}
	}
	return [2]string{"", syllable}
}
