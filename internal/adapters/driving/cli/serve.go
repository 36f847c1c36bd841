package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/adapters/driving/httpapi"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/logger"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the raglab API server",
	Long: `Start the HTTP API server. The server exposes the question answering
endpoint consumed by the ask command and the read endpoints consumed by
the dashboard. The retrieval index is rebuilt from stored chunks on boot.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	b, err := newBackend()
	if err != nil {
		return err
	}
	defer b.close()

	logger.Info("starting raglab API server", zap.String("version", version))

	if err := b.reindex(cmd.Context()); err != nil {
		return err
	}

	srv := httpapi.NewServer(
		httpapi.Config{
			ReadTimeout:  time.Duration(b.cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(b.cfg.Server.WriteTimeout) * time.Second,
			BodyLimit:    b.cfg.Server.BodyLimit,
		},
		b.overview, b.logs, b.query, b.ingest,
	)

	port := b.cfg.Server.Port
	if servePort != 0 {
		port = servePort
	}
	addr := fmt.Sprintf("%s:%d", b.cfg.Server.Host, port)
	logger.Info("server listening", zap.String("address", addr))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-quit:
		logger.Info("shutting down gracefully")
		if err := srv.Shutdown(); err != nil {
			logger.Warn("shutdown error", zap.Error(err))
		}
	}

	logger.Info("server stopped")
	return nil
}
