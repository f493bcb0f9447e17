package pom

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"sort"

	"github.com/golang/glog"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
	"github.com/tebeka/selenium/firefox"
	"github.com/tebeka/selenium/log"
	"github.com/tebeka/selenium/sauce"
)

// Browser names accepted by the Browser option.
const (
	Chrome  = "chrome"
	Firefox = "firefox"
)

// chromeArgs are passed to every Chrome session.
var chromeArgs = []string{"--disable-gpu", "--no-sandbox", "--disable-dev-shm-usage"}

// driverGlobs are searched, in order, when no driver path is given.
var driverGlobs = map[string][]string{
	Chrome:  {"vendor/chromedriver*", "/usr/bin/chromedriver", "/usr/local/bin/chromedriver"},
	Firefox: {"vendor/geckodriver*", "/usr/bin/geckodriver", "/usr/local/bin/geckodriver"},
}

// LaunchOption configures Launch.
type LaunchOption func(*launcher) error

type launcher struct {
	browser     string
	binary      string
	driverPath  string
	port        int
	remoteURL   string
	headless    bool
	frameBuffer bool
	output      io.Writer
	sauce       *sauce.Capabilities
	sauceAddr   string
	logLevels   map[log.Type]log.Level
	extraArgs   []string
	noMaximize  bool
	sessionOpts []SessionOption
}

// Browser selects the browser, "chrome" or "firefox".
func Browser(name string) LaunchOption {
	return func(l *launcher) error {
		if _, ok := driverGlobs[name]; !ok {
			return fmt.Errorf("unsupported browser %q", name)
		}
		l.browser = name
		return nil
	}
}

// BrowserBinary sets the path to the browser executable.
func BrowserBinary(path string) LaunchOption {
	return func(l *launcher) error {
		l.binary = path
		return nil
	}
}

// DriverPath sets the path to the ChromeDriver or GeckoDriver binary. When
// unset the binary is looked up with FindDriver.
func DriverPath(path string) LaunchOption {
	return func(l *launcher) error {
		l.driverPath = path
		return nil
	}
}

// Port sets the port of the local driver service. Zero picks a free port.
func Port(port int) LaunchOption {
	return func(l *launcher) error {
		if port < 0 || port > 65535 {
			return fmt.Errorf("invalid port %d", port)
		}
		l.port = port
		return nil
	}
}

// Remote connects to a running WebDriver endpoint instead of starting a
// local service.
func Remote(url string) LaunchOption {
	return func(l *launcher) error {
		if l.sauce != nil {
			return errors.New("remote URL conflicts with Sauce Labs")
		}
		l.remoteURL = url
		return nil
	}
}

// Headless runs the browser without a window.
func Headless() LaunchOption {
	return HeadlessIf(true)
}

// HeadlessIf runs the browser without a window when headless is true.
func HeadlessIf(headless bool) LaunchOption {
	return func(l *launcher) error {
		l.headless = headless
		return nil
	}
}

// BrowserArgs appends command-line arguments for the browser.
func BrowserArgs(args ...string) LaunchOption {
	return func(l *launcher) error {
		l.extraArgs = append(l.extraArgs, args...)
		return nil
	}
}

// FrameBuffer starts an Xvfb server for the local driver service. It is
// stopped together with the service.
func FrameBuffer() LaunchOption {
	return func(l *launcher) error {
		l.frameBuffer = true
		return nil
	}
}

// ServiceOutput sends the local driver service output to w.
func ServiceOutput(w io.Writer) LaunchOption {
	return func(l *launcher) error {
		l.output = w
		return nil
	}
}

// Sauce runs the session on Sauce Labs with the given account.
func Sauce(user, accessKey string, caps sauce.Capabilities) LaunchOption {
	return func(l *launcher) error {
		if l.remoteURL != "" {
			return errors.New("Sauce Labs conflicts with remote URL")
		}
		if user == "" || accessKey == "" {
			return errors.New("Sauce Labs needs a user name and an access key")
		}
		l.sauce = &caps
		l.sauceAddr = sauce.Addr(user, accessKey)
		return nil
	}
}

// BrowserLogLevel enables collection of a log type, readable with
// Session.Logs.
func BrowserLogLevel(typ log.Type, level log.Level) LaunchOption {
	return func(l *launcher) error {
		if l.logLevels == nil {
			l.logLevels = make(map[log.Type]log.Level)
		}
		l.logLevels[typ] = level
		return nil
	}
}

// NoMaximize keeps the initial window size.
func NoMaximize() LaunchOption {
	return func(l *launcher) error {
		l.noMaximize = true
		return nil
	}
}

// Configure passes options to the Session Launch returns.
func Configure(opts ...SessionOption) LaunchOption {
	return func(l *launcher) error {
		l.sessionOpts = append(l.sessionOpts, opts...)
		return nil
	}
}

// Launch starts a browser session. Without Remote or Sauce it starts a local
// driver service, which Session.Quit stops again.
func Launch(opts ...LaunchOption) (*Session, error) {
	l := &launcher{browser: Chrome}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	caps, err := l.capabilities()
	if err != nil {
		return nil, err
	}

	addr, service, err := l.start()
	if err != nil {
		return nil, err
	}
	wd, err := selenium.NewRemote(caps, addr)
	if err != nil {
		if service != nil {
			err = errors.Join(err, service.Stop())
		}
		return nil, fmt.Errorf("start %s session: %w", l.browser, err)
	}

	s := NewSession(wd, l.sessionOpts...)
	s.service = service
	s.logger.WithField("browser", l.browser).Infof("Started session at %s", addr)
	if !l.noMaximize {
		// Window managers under Xvfb or headless mode may refuse.
		if err := s.MaximizeWindow(); err != nil {
			s.logger.Warnf("Maximize window: %v", err)
		}
	}
	return s, nil
}

func (l *launcher) capabilities() (selenium.Capabilities, error) {
	caps := selenium.Capabilities{"browserName": l.browser}
	switch l.browser {
	case Chrome:
		args := append([]string{}, chromeArgs...)
		if l.headless {
			args = append(args, "--headless")
		}
		caps.AddChrome(chrome.Capabilities{
			Path: l.binary,
			Args: append(args, l.extraArgs...),
			W3C:  true,
		})
	case Firefox:
		var args []string
		if l.headless {
			args = append(args, "-headless")
		}
		caps.AddFirefox(firefox.Capabilities{
			Binary: l.binary,
			Args:   append(args, l.extraArgs...),
		})
	}
	for typ, level := range l.logLevels {
		caps.SetLogLevel(typ, level)
	}
	if l.sauce != nil {
		m, err := l.sauce.ToMap()
		if err != nil {
			return nil, fmt.Errorf("sauce capabilities: %w", err)
		}
		for k, v := range m {
			caps[k] = v
		}
	}
	return caps, nil
}

// start returns the WebDriver endpoint, starting a local service if needed.
func (l *launcher) start() (string, *selenium.Service, error) {
	switch {
	case l.sauce != nil:
		return l.sauceAddr, nil, nil
	case l.remoteURL != "":
		return l.remoteURL, nil, nil
	}

	path := l.driverPath
	if path == "" {
		for _, glob := range driverGlobs[l.browser] {
			if path = FindDriver(glob, true); path != "" {
				break
			}
		}
		if path == "" {
			return "", nil, fmt.Errorf("no %s driver binary found; set the driver path", l.browser)
		}
	}
	port := l.port
	if port == 0 {
		var err error
		if port, err = pickUnusedPort(); err != nil {
			return "", nil, fmt.Errorf("pick driver port: %w", err)
		}
	}

	var opts []selenium.ServiceOption
	if l.frameBuffer {
		opts = append(opts, selenium.StartFrameBuffer())
	}
	if l.output != nil {
		opts = append(opts, selenium.Output(l.output))
	}
	var (
		service *selenium.Service
		err     error
	)
	switch l.browser {
	case Firefox:
		service, err = selenium.NewGeckoDriverService(path, port, opts...)
	default:
		service, err = selenium.NewChromeDriverService(path, port, opts...)
	}
	if err != nil {
		return "", nil, fmt.Errorf("start %s driver service: %w", l.browser, err)
	}
	addr := fmt.Sprintf("http://127.0.0.1:%d/wd/hub", port)
	if l.browser == Firefox {
		addr = fmt.Sprintf("http://127.0.0.1:%d", port)
	}
	return addr, service, nil
}

// FindDriver returns the last file matching glob in lexical order, which for
// versioned names is the newest. With binary set only executable files
// count. It returns "" when nothing matches.
func FindDriver(glob string, binary bool) string {
	matches, err := filepath.Glob(glob)
	if err != nil {
		glog.Warningf("Error globbing %q: %s", glob, err)
		return ""
	}
	sort.Strings(matches)
	for i := len(matches) - 1; i >= 0; i-- {
		path := matches[i]
		fi, err := os.Stat(path)
		if err != nil {
			glog.Warningf("Error statting %q: %s", path, err)
			continue
		}
		if !fi.Mode().IsRegular() {
			continue
		}
		if binary && fi.Mode().Perm()&0111 == 0 {
			continue
		}
		return path
	}
	return ""
}

func pickUnusedPort() (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}
	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return 0, err
	}
	port := l.Addr().(*net.TCPAddr).Port
	if err := l.Close(); err != nil {
		return 0, err
	}
	return port, nil
}
