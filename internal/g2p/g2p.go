// Package g2p provides grapheme-to-phoneme backends behind a single
// Phonemize capability. A backend is selected once from a configuration
// key; the key may embed backend-specific parameters such as a language
// code for the espeak family.
package g2p

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedG2P is wrapped by New when the g2p type key matches no
// known backend.
var ErrUnsupportedG2P = errors.New("unsupported g2p type")

// ErrBackendExec is wrapped by process-based backends when the external
// phonemizer exits with a non-zero status or cannot be spawned.
var ErrBackendExec = errors.New("g2p backend execution failed")

// Backend converts text into an ordered sequence of token strings
// (phonemes, syllables, or kana depending on the backend).
type Backend interface {
	// Phonemize converts text into tokens. The call blocks until the
	// backend finishes; process-based backends block for the lifetime
	// of the spawned process.
	Phonemize(text string) ([]string, error)
}

// defaultEspeakLang is used when an espeak key carries no language suffix.
const defaultEspeakLang = "fr-fr"

// Supported returns the recognized g2p type keys. Keys ending in "_<lang>"
// stand for the prefix-matched espeak family.
func Supported() []string {
	return []string{
		"g2p_en",
		"g2p_en_no_space",
		"pyopenjtalk",
		"pyopenjtalk_kana",
		"pypinyin_g2p",
		"pypinyin_g2p_phone",
		"espeak_arpabet[_<lang>]",
		"espeak[_<lang>]",
	}
}

// Options carries optional backend settings that are not encoded in the
// g2p type key itself.
type Options struct {
	// EspeakCommand overrides the executable name used by the espeak
	// family of backends. Empty means "espeak-ng" from PATH.
	EspeakCommand string
}

// New resolves a g2p type key to a Backend. Key matching is exact except
// for the espeak family, which is prefix-matched with an optional language
// suffix. An unrecognized key fails immediately with ErrUnsupportedG2P;
// no text is ever processed by a misconfigured dispatcher.
func New(g2pType string) (Backend, error) {
	return NewWithOptions(g2pType, Options{})
}

// NewWithOptions is New with explicit backend settings.
func NewWithOptions(g2pType string, opts Options) (Backend, error) {
	switch g2pType {
	case "g2p_en":
		return newEnglishBackend(false), nil
	case "g2p_en_no_space":
		return newEnglishBackend(true), nil
	case "pyopenjtalk":
		return newJapaneseBackend(false), nil
	case "pyopenjtalk_kana":
		return newJapaneseBackend(true), nil
	case "pypinyin_g2p":
		return newPinyinBackend(false), nil
	case "pypinyin_g2p_phone":
		return newPinyinBackend(true), nil
	}

	// espeak_arpabet must be tested before the plain espeak prefix.
	if strings.HasPrefix(g2pType, "espeak_arpabet") {
		lang := defaultEspeakLang
		// The entire remaining suffix is the language code, so region
		// codes like en-us or en_us pass through whole.
		if parts := strings.SplitN(g2pType, "_", 3); len(parts) > 2 {
			lang = parts[2]
		}
		return applyOptions(newEspeakBackend(lang, true), opts), nil
	}
	if strings.HasPrefix(g2pType, "espeak") {
		lang := defaultEspeakLang
		if rest := strings.TrimPrefix(g2pType, "espeak"); strings.HasPrefix(rest, "_") {
			lang = rest[1:]
		}
		return applyOptions(newEspeakBackend(lang, false), opts), nil
	}

	return nil, fmt.Errorf("%w: g2p_type=%q", ErrUnsupportedG2P, g2pType)
}

func applyOptions(b *espeakBackend, opts Options) *espeakBackend {
	if opts.EspeakCommand != "" {
		b.exe = opts.EspeakCommand
	}
	return b
}
