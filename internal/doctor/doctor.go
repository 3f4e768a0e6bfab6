// Package doctor provides environment preflight checks for phonemize.
package doctor

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// PassMark and FailMark are the prefix symbols printed for each check result.
const (
	PassMark = "✓"
	FailMark = "✗"
)

// VersionFunc returns a version string or an error if the component is unavailable.
type VersionFunc func() (string, error)

// Config holds injectable dependencies for each doctor check.
type Config struct {
	// EspeakVersion returns the output of `espeak-ng --version`.
	EspeakVersion VersionFunc
	// SkipEspeak skips the espeak-ng check (no espeak backend configured).
	SkipEspeak bool
	// SymbolFiles is the list of non-linguistic symbol files to verify on disk.
	SymbolFiles []string
}

// Result collects the outcome of all checks.
type Result struct {
	failures []string
}

// Failed returns true if any check failed.
func (r *Result) Failed() bool { return len(r.failures) > 0 }

// Failures returns the list of failure messages.
func (r *Result) Failures() []string { return append([]string(nil), r.failures...) }

func (r *Result) fail(msg string) { r.failures = append(r.failures, msg) }

// Run executes all configured checks and writes human-readable output to w.
// Each check line is prefixed with PassMark or FailMark.
func Run(cfg Config, w io.Writer) Result {
	var res Result

	if cfg.SkipEspeak {
		fmt.Fprintf(w, "%s espeak-ng binary: skipped\n", PassMark)
	} else {
		ver, err := cfg.EspeakVersion()
		if err != nil {
			res.fail(fmt.Sprintf("espeak-ng binary: %v", err))
			fmt.Fprintf(w, "%s espeak-ng binary: not found (%v)\n", FailMark, err)
		} else if verErr := checkEspeakVersion(ver); verErr != nil {
			res.fail(fmt.Sprintf("espeak-ng version: %v", verErr))
			fmt.Fprintf(w, "%s espeak-ng version %s: %v\n", FailMark, ver, verErr)
		} else {
			fmt.Fprintf(w, "%s espeak-ng binary: %s\n", PassMark, ver)
		}
	}

	for _, path := range cfg.SymbolFiles {
		if _, err := os.Stat(path); err != nil {
			res.fail(fmt.Sprintf("symbol file %q: %v", path, err))
			fmt.Fprintf(w, "%s symbol file %s: not found\n", FailMark, path)
		} else {
			fmt.Fprintf(w, "%s symbol file: %s\n", PassMark, path)
		}
	}

	return res
}

// checkEspeakVersion accepts any banner that identifies an eSpeak NG
// build; the classic espeak lacks the flags the backend relies on.
func checkEspeakVersion(ver string) error {
	lower := strings.ToLower(ver)
	if strings.Contains(lower, "espeak ng") || strings.Contains(lower, "espeak-ng") {
		return nil
	}
	return fmt.Errorf("not an eSpeak NG build: %q", ver)
}
