package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/example/go-phonemizer/internal/server"
	"github.com/example/go-phonemizer/internal/tokenizer"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the tokenization HTTP server",
		RunE: func(_ *cobra.Command, _ []string) error {
			tok, err := tokenizer.FromConfig(activeCfg)
			if err != nil {
				return err
			}

			srv := server.New(activeCfg, tok)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return srv.Start(ctx)
		},
	}
}
