package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zhubert/songbook/internal/config"
	"github.com/zhubert/songbook/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the booklet and catalog over HTTP",
	Long: `Starts an HTTP server that exposes the printable booklet and a read-only
JSON view of the catalog. Open /booklet in a browser and print it.

Routes:
  GET /booklet         HTML booklet
  GET /booklet.txt     Plain text booklet
  GET /api/songs       Catalog as JSON
  GET /api/songs/:id   One song
  GET /health          Liveness check`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, else "+config.DefaultServerAddr+")")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	book, err := loadBook(cfg)
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = cfg.GetServerAddr()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Serving %q (%d songs) on http://%s\n", book.Metadata.Title, book.Catalog.Len(), addr)
	return server.Run(ctx, addr, book)
}
