// Package config reads the suite settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mstoykov/envconfig"
	"github.com/spf13/afero"
	"github.com/tebeka/selenium/sauce"

	"github.com/wanmail/pom"
	pomlog "github.com/wanmail/pom/log"
)

// ErrMissingConfiguration is matched by every *MissingError.
var ErrMissingConfiguration = errors.New("missing configuration")

// MissingError reports a required variable that is unset or empty.
type MissingError struct {
	Key string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s environment variable is required", e.Key)
}

func (e *MissingError) Unwrap() error { return ErrMissingConfiguration }

// Config holds the suite settings. Read credentials through Username,
// Password, APIKey and APIToken, which fail when the value is not set.
type Config struct {
	BaseURL         string `envconfig:"BASE_URL" default:"https://the-internet.herokuapp.com"`
	Browser         string `envconfig:"BROWSER" default:"chrome"`
	Headless        bool   `envconfig:"HEADLESS"`
	Environment     string `envconfig:"ENVIRONMENT" default:"staging"`
	DefaultTimeout  int    `envconfig:"DEFAULT_TIMEOUT" default:"10000"`
	APIBaseURL      string `envconfig:"API_BASE_URL" default:"https://api.example.com"`
	SaveScreenshots bool   `envconfig:"SAVE_SCREENSHOTS"`
	ReportPath      string `envconfig:"REPORT_PATH" default:"./reports"`
	Debug           bool   `envconfig:"DEBUG"`

	DriverPath string `envconfig:"DRIVER_PATH"`
	DriverPort int    `envconfig:"DRIVER_PORT" default:"4444"`
	RemoteURL  string `envconfig:"REMOTE_URL"`

	SauceUsername  string `envconfig:"SAUCE_USERNAME"`
	SauceAccessKey string `envconfig:"SAUCE_ACCESS_KEY"`

	TestUsername   string `envconfig:"TEST_USERNAME"`
	TestPassword   string `envconfig:"TEST_PASSWORD"`
	APIKeySecret   string `envconfig:"API_KEY"`
	APITokenSecret string `envconfig:"API_TOKEN"`
}

// Load reads .env from the working directory if present and then the
// process environment. Variables already set win over the file.
func Load() (Config, error) {
	_ = godotenv.Load()
	return LoadFrom(os.LookupEnv)
}

// LoadFrom reads the settings through lookup.
func LoadFrom(lookup func(string) (string, bool)) (Config, error) {
	var c Config
	if err := envconfig.Process("", &c, lookup); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	return c, nil
}

func required(key, v string) (string, error) {
	if v == "" {
		return "", &MissingError{Key: key}
	}
	return v, nil
}

// Username returns TEST_USERNAME.
func (c Config) Username() (string, error) { return required("TEST_USERNAME", c.TestUsername) }

// Password returns TEST_PASSWORD.
func (c Config) Password() (string, error) { return required("TEST_PASSWORD", c.TestPassword) }

// APIKey returns API_KEY.
func (c Config) APIKey() (string, error) { return required("API_KEY", c.APIKeySecret) }

// APIToken returns API_TOKEN.
func (c Config) APIToken() (string, error) { return required("API_TOKEN", c.APITokenSecret) }

// Timeout returns DEFAULT_TIMEOUT as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.DefaultTimeout) * time.Millisecond
}

// ScreenshotDir is where failure screenshots go, below the report path.
func (c Config) ScreenshotDir() string {
	return filepath.Join(c.ReportPath, "screenshots")
}

// ReportDir creates the report directory on fs and returns its path.
func (c Config) ReportDir(fs afero.Fs) (string, error) {
	if err := fs.MkdirAll(c.ReportPath, 0755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}
	return c.ReportPath, nil
}

// LaunchOptions translates the settings into options for pom.Launch.
func (c Config) LaunchOptions() []pom.LaunchOption {
	opts := []pom.LaunchOption{
		pom.Browser(c.Browser),
		pom.HeadlessIf(c.Headless),
		pom.Configure(
			pom.WithLogger(pomlog.New(pomlog.Options{Debug: c.Debug})),
			pom.WithBaseURL(c.BaseURL),
			pom.WithWaitTimeout(c.Timeout()),
			pom.WithScreenshotDir(c.ScreenshotDir()),
		),
	}
	switch {
	case c.SauceUsername != "" && c.SauceAccessKey != "":
		opts = append(opts, pom.Sauce(c.SauceUsername, c.SauceAccessKey, sauce.Capabilities{}))
	case c.RemoteURL != "":
		opts = append(opts, pom.Remote(c.RemoteURL))
	default:
		if c.DriverPath != "" {
			opts = append(opts, pom.DriverPath(c.DriverPath))
		}
		opts = append(opts, pom.Port(c.DriverPort))
	}
	return opts
}
