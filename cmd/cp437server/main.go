package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cp437term/cp437term/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		addr     string
		watchDir string
		shell    string
		bps      int
	)

	cmd := &cobra.Command{
		Use:   "cp437server",
		Short: "Serve CP437 ANSI art playback and live PTY sessions over websockets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), addr, watchDir, shell, bps)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8437", "HTTP listen address")
	cmd.Flags().StringVar(&watchDir, "watch-dir", "", "directory of .ans files to serve and watch")
	cmd.Flags().StringVar(&shell, "shell", "/bin/sh", "shell command spawned under the PTY endpoint")
	cmd.Flags().IntVar(&bps, "bps", 0, "default baud rate for file playback (0 uses the config default; immediate if none)")
	return cmd
}

func serve(ctx context.Context, addr, watchDir, shell string, bps int) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "cp437server"})

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if bps == 0 {
		bps = cfg.DefaultBPS
	}

	srv, err := NewServer(logger, watchDir, shell, bps)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		<-ctx.Done()
		close(done)
	}()
	go func() {
		if err := srv.Watch(done); err != nil {
			logger.Warn("watch loop exited", "err", err)
		}
	}()

	httpSrv := &http.Server{Addr: addr, Handler: srv.Router()}
	go func() {
		<-ctx.Done()
		_ = httpSrv.Close()
	}()

	logger.Info("listening", "addr", addr, "watch_dir", watchDir)
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
