package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"loginflow/internal/domain"
	"loginflow/internal/platform/logging"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		addr       string
		signingKey string
		tokenTTL   time.Duration
		logLevel   string
	)
	cmd := &cobra.Command{
		Use:          "authstub",
		Short:        "In-memory credential-exchange server for development",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(logLevel, "console")
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			srv := newServer(serverConfig{
				SigningKey: []byte(signingKey),
				TokenTTL:   tokenTTL,
				Accounts:   demoAccounts(),
				Clock:      clockwork.NewRealClock(),
				Logger:     log,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() {
				log.Info("authstub listening", zap.String("addr", addr))
				errc <- srv.e.Start(addr)
			}()

			select {
			case err := <-errc:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.e.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&signingKey, "signing-key", "authstub-dev-key", "HS256 key for access tokens")
	cmd.Flags().DurationVar(&tokenTTL, "token-ttl", time.Hour, "access token lifetime")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	return cmd
}

func demoAccounts() []account {
	return []account{
		{
			User:     domain.User{ID: 1, Name: "Alice", Email: "alice@example.com"},
			Password: "password",
		},
		{
			User:       domain.User{ID: 2, Name: "Bob", Email: "bob@example.com"},
			Password:   "password",
			StepUpCode: "123456",
		},
	}
}
