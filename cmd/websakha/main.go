// Command websakha is the Web Sakha site as a terminal app: a splash
// screen, a scroll-revealed onboarding page, the terms page and the
// contact form.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"websakha/internal/config"
	"websakha/internal/contact"
	"websakha/internal/content"
	"websakha/internal/logging"
	"websakha/internal/reveal"
	"websakha/internal/trace"
	"websakha/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what PersistentPreRunE prepared for the subcommands.
type app struct {
	cfg    config.Config
	site   content.Site
	logger *zap.Logger
	tracer *trace.Provider
}

func main() {
	if err := execute(context.Background(), &app{}, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "websakha: %v\n", err)
		os.Exit(1)
	}
}

// execute runs the command line, then flushes logs and spans. Cobra skips
// post-run hooks when RunE fails, so the flush happens here instead.
func execute(ctx context.Context, a *app, args []string, out io.Writer) error {
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(out)
	err := root.ExecuteContext(ctx)
	return errors.Join(err, a.close())
}

// close syncs the logger and shuts the tracer down. Safe to call when
// setup never ran.
func (a *app) close() error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.tracer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := a.tracer.Shutdown(ctx)
	a.tracer = nil
	return err
}

func newRootCmd(a *app) *cobra.Command {
	var (
		route      string
		skipSplash bool
		verbose    bool
		logFile    string
		endpoint   string
		contentArg string
	)

	root := &cobra.Command{
		Use:           "websakha",
		Short:         "Browse the Web Sakha site in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			flags := cmd.Flags()
			if flags.Changed("route") {
				cfg.StartRoute = route
			}
			if flags.Changed("skip-splash") {
				cfg.SkipSplash = skipSplash
			}
			if flags.Changed("verbose") {
				cfg.Verbose = verbose
			}
			if flags.Changed("log-file") {
				cfg.LogFile = logFile
			}
			if flags.Changed("endpoint") {
				cfg.ContactEndpoint = endpoint
			}
			if flags.Changed("content") {
				cfg.ContentFile = contentArg
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			a.cfg = cfg

			if a.site, err = content.Load(cfg.ContentFile); err != nil {
				return err
			}
			// Only the full-screen UI needs stdout to itself.
			if cmd.Name() == "websakha" {
				a.logger, err = logging.ToFile(cfg.LogFile, cfg.Verbose)
			} else {
				a.logger, err = logging.ToStderr(cfg.Verbose)
			}
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			a.tracer, err = trace.NewProvider(cmd.Context(), cfg.OTLPEndpoint, cfg.ServiceName)
			if err != nil {
				return fmt.Errorf("init tracing: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI()
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	pf.StringVar(&logFile, "log-file", "", "log file for the interactive UI (empty disables logging)")
	pf.StringVar(&endpoint, "endpoint", "", "contact API endpoint")
	pf.StringVar(&contentArg, "content", "", "YAML file overriding the site content")
	root.Flags().StringVarP(&route, "route", "r", "/", "start page: /, /terms-and-conditions or /contact-us")
	root.Flags().BoolVar(&skipSplash, "skip-splash", false, "skip the loading screen")

	root.AddCommand(newContactCmd(a), newTermsCmd(a), newSinkCmd(a))
	return root
}

func (a *app) newClient() *contact.Client {
	return contact.NewClient(a.cfg.ContactEndpoint,
		contact.WithTimeout(a.cfg.RequestTimeout),
		contact.WithLogger(a.logger.Named("contact")),
		contact.WithTracer(a.tracer.Tracer("websakha/contact")),
	)
}

func (a *app) runTUI() error {
	start, ok := ui.ParseRoute(a.cfg.StartRoute)
	if !ok {
		return fmt.Errorf("unknown route %q", a.cfg.StartRoute)
	}
	a.logger.Info("starting",
		zap.String("route", start.Path()),
		zap.String("endpoint", a.cfg.ContactEndpoint),
		zap.Bool("tracing", a.tracer.Enabled()))

	model := ui.NewAppModel(ui.Options{
		Site:      a.site,
		Submitter: a.newClient(),
		Clock:     reveal.RealClock(),
		Timing: ui.Timing{
			SplashMail:     a.cfg.SplashMail,
			SplashLogo:     a.cfg.SplashLogo,
			TypingDelay:    a.cfg.TypingDelay,
			TypingInterval: a.cfg.TypingInterval,
			StaggerStep:    a.cfg.StaggerStep,
		},
		StartRoute: start,
		SkipSplash: a.cfg.SkipSplash,
		Logger:     a.logger.Named("ui"),
	})
	defer model.Close()

	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
