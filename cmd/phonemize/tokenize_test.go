package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// upperTokenizer splits on whitespace and upper-cases each token.
type upperTokenizer struct {
	err error
}

func (u *upperTokenizer) Text2Tokens(line string) ([]string, error) {
	if u.err != nil {
		return nil, u.err
	}
	return strings.Fields(strings.ToUpper(line)), nil
}

func (u *upperTokenizer) Tokens2Text(tokens []string) string {
	return strings.Join(tokens, "")
}

func TestReadTokenizeInput(t *testing.T) {
	t.Run("arguments win", func(t *testing.T) {
		got, err := readTokenizeInput([]string{"a b", "c"}, "ignored", strings.NewReader("stdin"))
		if err != nil {
			t.Fatal(err)
		}
		if got != "a b\nc" {
			t.Errorf("got %q, want %q", got, "a b\nc")
		}
	})

	t.Run("input file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "in.txt")
		if err := os.WriteFile(path, []byte("from file\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		got, err := readTokenizeInput(nil, path, strings.NewReader("stdin"))
		if err != nil {
			t.Fatal(err)
		}
		if got != "from file\n" {
			t.Errorf("got %q, want file contents", got)
		}
	})

	t.Run("missing input file", func(t *testing.T) {
		_, err := readTokenizeInput(nil, filepath.Join(t.TempDir(), "missing.txt"), nil)
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("stdin fallback", func(t *testing.T) {
		got, err := readTokenizeInput(nil, "", strings.NewReader("from stdin"))
		if err != nil {
			t.Fatal(err)
		}
		if got != "from stdin" {
			t.Errorf("got %q, want stdin contents", got)
		}
	})
}

func TestRunTokenize(t *testing.T) {
	var out bytes.Buffer
	if err := runTokenize(&upperTokenizer{}, "hello world\nsecond line\n", &out); err != nil {
		t.Fatal(err)
	}

	want := "HELLO WORLD\nSECOND LINE\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRunTokenizeEmptyInput(t *testing.T) {
	if err := runTokenize(&upperTokenizer{}, "  \n ", &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestRunTokenizePropagatesBackendError(t *testing.T) {
	backendErr := errors.New("backend down")
	err := runTokenize(&upperTokenizer{err: backendErr}, "hello", &bytes.Buffer{})
	if !errors.Is(err, backendErr) {
		t.Fatalf("error = %v, want wrapped backend error", err)
	}
}
