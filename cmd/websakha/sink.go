package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"websakha/internal/archive"
	"websakha/internal/contactsink"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newSinkCmd(a *app) *cobra.Command {
	var (
		addr       string
		failWith   int
		archiveDir string
	)
	cmd := &cobra.Command{
		Use:   "sink",
		Short: "Run a local contact API that records submissions",
		Long: `Run a local stand-in for the hosted contact API. Point the UI at it with
  websakha --endpoint http://127.0.0.1:8787/api/contact/submit-contact`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = a.cfg.SinkAddr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", addr, err)
			}
			sink := contactsink.NewServer(addr, a.logger.Named("sink"))
			if failWith != 0 {
				sink.FailWith(failWith)
			}
			if archiveDir != "" || os.Getenv(archive.DirEnv) != "" {
				store, err := archive.NewStore(archiveDir)
				if err != nil {
					return fmt.Errorf("open archive: %w", err)
				}
				n, err := sink.Restore(store)
				if err != nil {
					return fmt.Errorf("read archive: %w", err)
				}
				sink.SetArchive(store)
				a.logger.Info("archiving submissions",
					zap.String("dir", store.BaseDir()),
					zap.Int("restored", n))
			}

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return sink.Serve(ctx, ln)
			})
			g.Go(func() error {
				<-ctx.Done()
				a.logger.Info("shutting down", zap.Int("received", len(sink.Submissions())))
				return nil
			})
			a.logger.Info("contact sink listening",
				zap.String("url", "http://"+ln.Addr().String()+contactsink.SubmitPath))
			return g.Wait()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default $WEBSAKHA_SINK_ADDR)")
	cmd.Flags().StringVar(&archiveDir, "archive", "", "also write each submission as JSON under this directory (default $WEBSAKHA_ARCHIVE_DIR)")
	cmd.Flags().IntVar(&failWith, "fail-with", 0, fmt.Sprintf("answer every submission with this status, e.g. %d", http.StatusServiceUnavailable))
	return cmd
}
