package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	textpkg "github.com/example/go-phonemizer/internal/text"
	"github.com/example/go-phonemizer/internal/tokenizer"
	"github.com/spf13/cobra"
)

func newTokenizeCmd() *cobra.Command {
	var input string
	var join bool

	cmd := &cobra.Command{
		Use:   "tokenize [text...]",
		Short: "Tokenize text lines into phoneme tokens",
		Long: "Tokenize reads text from arguments, --input, or stdin, runs each line\n" +
			"through the configured tokenizer, and prints one space-joined token\n" +
			"sequence per line. With --join the arguments are treated as tokens and\n" +
			"joined back into flat text instead (lossy for phoneme tokenizers).",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := tokenizer.FromConfig(activeCfg)
			if err != nil {
				return err
			}

			if join {
				if len(args) == 0 {
					return fmt.Errorf("--join requires token arguments")
				}
				_, err = fmt.Fprintln(os.Stdout, tok.Tokens2Text(args))
				return err
			}

			raw, err := readTokenizeInput(args, input, os.Stdin)
			if err != nil {
				return err
			}
			return runTokenize(tok, raw, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Read text from file instead of arguments/stdin")
	cmd.Flags().BoolVar(&join, "join", false, "Join token arguments back into text")

	return cmd
}

// readTokenizeInput resolves the text source: explicit arguments win, then
// --input, then stdin.
func readTokenizeInput(args []string, inputPath string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, "\n"), nil
	}
	if inputPath != "" {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// runTokenize tokenizes each normalized line and writes one space-joined
// token sequence per line.
func runTokenize(tok tokenizer.Tokenizer, raw string, w io.Writer) error {
	lines, err := textpkg.Lines(raw)
	if err != nil {
		return err
	}

	for _, line := range lines {
		tokens, err := tok.Text2Tokens(line)
		if err != nil {
			return fmt.Errorf("tokenize %q: %w", line, err)
		}
		if _, err := fmt.Fprintln(w, strings.Join(tokens, " ")); err != nil {
			return err
		}
	}
	return nil
}
