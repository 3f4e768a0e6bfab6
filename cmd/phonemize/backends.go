package main

import (
	"fmt"
	"os"

	"github.com/example/go-phonemizer/internal/g2p"
	"github.com/spf13/cobra"
)

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List supported g2p backend keys",
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, key := range g2p.Supported() {
				if _, err := fmt.Fprintln(os.Stdout, key); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
