package g2p

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// espeakSeparator is passed to espeak-ng via --sep and used to split its
// stdout back into individual phone tokens.
const espeakSeparator = "_"

// espeakBackend shells out to the espeak-ng phonemizer. Text is written to
// the process's stdin and phones are read from its captured stdout. Each
// Phonemize call runs one process to completion; a non-zero exit status is
// fatal for that call and is never retried.
type espeakBackend struct {
	exe     string
	lang    string
	arpabet bool
}

func newEspeakBackend(lang string, arpabet bool) *espeakBackend {
	return &espeakBackend{exe: "espeak-ng", lang: lang, arpabet: arpabet}
}

func (b *espeakBackend) args() []string {
	args := []string{"-q", "-x", "-v", b.lang, "--sep=" + espeakSeparator}
	if b.arpabet {
		args = append(args, "--ipa")
	}
	return args
}

func (b *espeakBackend) Phonemize(text string) ([]string, error) {
	cmd := exec.Command(b.exe, b.args()...)
	cmd.Stdin = strings.NewReader(text)

	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	// Run waits for the process on every path, so the handle is released
	// on success, non-zero exit, and spawn failure alike.
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("%w: %s: %v (%s)", ErrBackendExec, b.exe, err, msg)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrBackendExec, b.exe, err)
	}

	if b.arpabet {
		return ipaToArpabet(out.String()), nil
	}
	return splitPhones(out.String()), nil
}

// splitPhones splits espeak output on the configured separator, treating
// whitespace between words as separators too. Empty fields are dropped.
func splitPhones(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		switch r {
		case '_', ' ', '\t', '\n', '\r':
			return true
		}
		return false
	})
	tokens := make([]string, 0, len(fields))
	tokens = append(tokens, fields...)
	return tokens
}
