// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable of the app. Command-line flags override it.
type Config struct {
	ContactEndpoint string        `env:"WEBSAKHA_CONTACT_ENDPOINT" envDefault:"https://server-web-sakha-on-board-contact-u.vercel.app/api/contact/submit-contact"`
	RequestTimeout  time.Duration `env:"WEBSAKHA_REQUEST_TIMEOUT"  envDefault:"15s"`

	// Splash screen phase holds.
	SplashMail time.Duration `env:"WEBSAKHA_SPLASH_MAIL" envDefault:"2500ms"`
	SplashLogo time.Duration `env:"WEBSAKHA_SPLASH_LOGO" envDefault:"2s"`
	SkipSplash bool          `env:"WEBSAKHA_SKIP_SPLASH"`

	TypingDelay    time.Duration `env:"WEBSAKHA_TYPING_DELAY"    envDefault:"150ms"`
	TypingInterval time.Duration `env:"WEBSAKHA_TYPING_INTERVAL" envDefault:"20ms"`
	StaggerStep    time.Duration `env:"WEBSAKHA_STAGGER_STEP"    envDefault:"100ms"`

	StartRoute  string `env:"WEBSAKHA_START_ROUTE"  envDefault:"/"`
	ContentFile string `env:"WEBSAKHA_CONTENT_FILE"`

	LogFile string `env:"WEBSAKHA_LOG_FILE"`
	Verbose bool   `env:"WEBSAKHA_VERBOSE"`

	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"websakha"`

	SinkAddr string `env:"WEBSAKHA_SINK_ADDR" envDefault:"127.0.0.1:8787"`
}

// Load parses the environment into a Config. It does not validate:
// callers apply flag overrides first, then call Validate.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFile()
	}
	return cfg, nil
}

// Validate checks values env parsing cannot.
func (c Config) Validate() error {
	var errs []error
	u, err := url.Parse(c.ContactEndpoint)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("contact endpoint: %w", err))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, fmt.Errorf("contact endpoint %q: scheme must be http or https", c.ContactEndpoint))
	case u.Host == "":
		errs = append(errs, fmt.Errorf("contact endpoint %q: missing host", c.ContactEndpoint))
	}
	for name, d := range map[string]time.Duration{
		"splash mail":     c.SplashMail,
		"splash logo":     c.SplashLogo,
		"typing delay":    c.TypingDelay,
		"typing interval": c.TypingInterval,
		"stagger step":    c.StaggerStep,
	} {
		if d < 0 {
			errs = append(errs, fmt.Errorf("%s: negative duration %s", name, d))
		}
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout))
	}
	return errors.Join(errs...)
}

// DefaultLogFile is websakha.log in the user cache dir, or the temp dir
// when there is none.
func DefaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "websakha", "websakha.log")
}
