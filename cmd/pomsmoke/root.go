package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/wanmail/pom"
	"github.com/wanmail/pom/config"
	"github.com/wanmail/pom/fixtures"
)

type globalFlags struct {
	browser  string
	headless bool
	baseURL  string
	fixtures string
}

func rootCmd() *cobra.Command {
	var gf globalFlags
	cmd := &cobra.Command{
		Use:   "pomsmoke",
		Short: "Run page object smoke scenarios against the-internet",
		Long: `Run page object smoke scenarios against a live browser.

Settings come from the environment and an optional .env file:
BASE_URL, BROWSER, HEADLESS, DRIVER_PATH, DRIVER_PORT, REMOTE_URL,
SAUCE_USERNAME, SAUCE_ACCESS_KEY, TEST_USERNAME, TEST_PASSWORD.
Flags override the environment.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&gf.browser, "browser", "", "browser to launch, chrome or firefox")
	cmd.PersistentFlags().BoolVar(&gf.headless, "headless", false, "run the browser without a window")
	cmd.PersistentFlags().StringVar(&gf.baseURL, "base-url", "", "URL relative page paths resolve against")
	cmd.PersistentFlags().StringVar(&gf.fixtures, "fixtures", "", "YAML file overriding the built-in test data")

	cmd.AddCommand(addRemoveCmd(&gf), loginCmd(&gf), screenshotCmd(&gf))
	return cmd
}

// env is what every scenario needs: settings, test data and a session.
type env struct {
	cfg     config.Config
	data    fixtures.Data
	session *pom.Session
}

// setup loads the settings, applies flag overrides and launches a browser.
// The caller must call close.
func setup(cmd *cobra.Command, gf *globalFlags) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("browser") {
		cfg.Browser = gf.browser
	}
	if flags.Changed("headless") {
		cfg.Headless = gf.headless
	}
	if flags.Changed("base-url") {
		cfg.BaseURL = gf.baseURL
	}

	data := fixtures.Default()
	if gf.fixtures != "" {
		if data, err = fixtures.Load(afero.NewOsFs(), gf.fixtures); err != nil {
			return nil, fmt.Errorf("load fixtures: %w", err)
		}
	}

	if _, err := cfg.ReportDir(afero.NewOsFs()); err != nil {
		return nil, err
	}
	s, err := pom.Launch(cfg.LaunchOptions()...)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, data: data, session: s}, nil
}

// close saves a screenshot when the scenario failed and SAVE_SCREENSHOTS is
// set, then quits the browser.
func (e *env) close(cmd *cobra.Command, failed error) error {
	if failed != nil && e.cfg.SaveScreenshots {
		if path, err := e.session.SaveScreenshot(""); err == nil {
			cmd.PrintErrf("Screenshot saved to %s\n", path)
		}
	}
	if err := e.session.Quit(); err != nil && failed == nil {
		return err
	}
	return failed
}

// run wraps a scenario with setup and teardown.
func run(gf *globalFlags, scenario func(cmd *cobra.Command, e *env) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		e, err := setup(cmd, gf)
		if err != nil {
			return err
		}
		return e.close(cmd, scenario(cmd, e))
	}
}
