package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/example/go-phonemizer/internal/doctor"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment for tokenization prerequisites",
		RunE: func(cmd *cobra.Command, _ []string) error {
			exe := activeCfg.Espeak.Command
			if exe == "" {
				exe = "espeak-ng"
			}

			cfg := doctor.Config{
				EspeakVersion: func() (string, error) {
					return probeEspeakVersion(cmd.Context(), exe)
				},
				// Non-espeak backends run in process and need no probe.
				SkipEspeak: !strings.HasPrefix(activeCfg.Tokenizer.G2PType, "espeak"),
			}
			if activeCfg.Tokenizer.SymbolFile != "" {
				cfg.SymbolFiles = []string{activeCfg.Tokenizer.SymbolFile}
			}

			res := doctor.Run(cfg, os.Stdout)
			if res.Failed() {
				return fmt.Errorf("doctor found %d problem(s)", len(res.Failures()))
			}
			return nil
		},
	}
}

// probeEspeakVersion runs `espeak-ng --version` and returns its output.
func probeEspeakVersion(ctx context.Context, exe string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	out, err := exec.CommandContext(ctx, exe, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("%s --version failed: %w", exe, err)
	}

	return strings.TrimSpace(string(out)), nil
}
