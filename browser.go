package pom

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/blang/semver"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/log"
	"github.com/tidwall/gjson"
)

// NavigateTo loads rawURL in the current window. A relative URL is resolved
// against the session base URL.
func (s *Session) NavigateTo(rawURL string) error {
	target, err := s.resolveURL(rawURL)
	if err != nil {
		return err
	}
	s.logger.Infof("Navigating to URL: %s", target)
	s.resetFrames()
	return s.wd.Get(target)
}

func (s *Session) resolveURL(rawURL string) (string, error) {
	if s.baseURL == "" {
		return rawURL, nil
	}
	base, err := url.Parse(s.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base URL %q: %w", s.baseURL, err)
	}
	ref, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse URL %q: %w", rawURL, err)
	}
	if ref.IsAbs() {
		return rawURL, nil
	}
	// Keep the base path: "/login" under "https://host/app" is "https://host/app/login".
	joined := *base
	joined.Path = strings.TrimSuffix(base.Path, "/") + "/" + strings.TrimPrefix(ref.Path, "/")
	joined.RawQuery = ref.RawQuery
	joined.Fragment = ref.Fragment
	return joined.String(), nil
}

// URL returns the current URL.
func (s *Session) URL() (string, error) {
	u, err := s.wd.CurrentURL()
	if err != nil {
		return "", err
	}
	s.logger.Debugf("Current URL: %s", u)
	return u, nil
}

// Title returns the title of the current document.
func (s *Session) Title() (string, error) {
	t, err := s.wd.Title()
	if err != nil {
		return "", err
	}
	s.logger.Debugf("Page title: %s", t)
	return t, nil
}

// Refresh reloads the current page.
func (s *Session) Refresh() error {
	s.logger.Info("Refreshing page")
	s.resetFrames()
	return s.wd.Refresh()
}

// Back navigates back in history.
func (s *Session) Back() error {
	s.logger.Info("Navigating back")
	s.resetFrames()
	return s.wd.Back()
}

// Forward navigates forward in history.
func (s *Session) Forward() error {
	s.logger.Info("Navigating forward")
	s.resetFrames()
	return s.wd.Forward()
}

// MaximizeWindow maximizes the current window.
func (s *Session) MaximizeWindow() error {
	s.logger.Info("Maximizing window")
	return s.wd.MaximizeWindow("")
}

// SetWindowSize resizes the current window.
func (s *Session) SetWindowSize(width, height int) error {
	s.logger.Infof("Setting window size to %dx%d", width, height)
	return s.wd.ResizeWindow("", width, height)
}

// WindowSize returns the outer size of the current window.
func (s *Session) WindowSize() (selenium.Size, error) {
	raw, err := s.wd.ExecuteScriptRaw("return {width: window.outerWidth, height: window.outerHeight};", nil)
	if err != nil {
		return selenium.Size{}, err
	}
	size := selenium.Size{
		Width:  int(gjson.GetBytes(raw, "value.width").Int()),
		Height: int(gjson.GetBytes(raw, "value.height").Int()),
	}
	s.logger.Debugf("Window size: %dx%d", size.Width, size.Height)
	return size, nil
}

// WindowHandles returns the handles of every open window.
func (s *Session) WindowHandles() ([]string, error) {
	handles, err := s.wd.WindowHandles()
	if err != nil {
		return nil, err
	}
	s.logger.Debugf("Total windows: %d", len(handles))
	return handles, nil
}

// CurrentWindow returns the handle of the current window.
func (s *Session) CurrentWindow() (string, error) {
	return s.wd.CurrentWindowHandle()
}

// SwitchToWindow makes the window with the given handle current.
func (s *Session) SwitchToWindow(handle string) error {
	s.logger.Infof("Switching to window: %s", handle)
	if err := s.wd.SwitchWindow(handle); err != nil {
		return err
	}
	s.resetFrames()
	return nil
}

// CloseWindow closes the current window.
func (s *Session) CloseWindow() error {
	s.logger.Info("Closing current window")
	if err := s.wd.Close(); err != nil {
		return err
	}
	s.resetFrames()
	return nil
}

// NewWindow opens a blank tab, or a separate window when kind is "window",
// and returns its handle. The current window does not change.
func (s *Session) NewWindow(kind string) (string, error) {
	if kind == "" {
		kind = "tab"
	}
	s.logger.Infof("Creating new %s", kind)
	before, err := s.wd.WindowHandles()
	if err != nil {
		return "", err
	}
	script := "window.open('about:blank', '_blank');"
	if kind == "window" {
		script = "window.open('about:blank', '_blank', 'popup');"
	}
	if _, err := s.wd.ExecuteScript(script, nil); err != nil {
		return "", fmt.Errorf("open new %s: %w", kind, err)
	}
	after, err := s.wd.WindowHandles()
	if err != nil {
		return "", err
	}
	known := make(map[string]bool, len(before))
	for _, h := range before {
		known[h] = true
	}
	for _, h := range after {
		if !known[h] {
			return h, nil
		}
	}
	return "", fmt.Errorf("new %s did not open", kind)
}

// SwitchToFrame switches into a frame of the current document. frame is a
// frame id or name, or a selenium.WebElement. The switch is recorded in the
// session frame context.
func (s *Session) SwitchToFrame(frame interface{}) error {
	s.logger.Info("Switching to frame")
	if err := s.wd.SwitchFrame(frame); err != nil {
		return err
	}
	s.pushFrame(frameEntry{
		name:  fmt.Sprint(frame),
		enter: func() error { return s.wd.SwitchFrame(frame) },
	})
	return nil
}

// SwitchToParentFrame leaves the innermost frame.
func (s *Session) SwitchToParentFrame() error {
	s.logger.Info("Switching to parent frame")
	return s.restoreDepth(len(s.frames) - 1)
}

// SwitchToDefaultContent returns to the top-level document.
func (s *Session) SwitchToDefaultContent() error {
	s.logger.Info("Switching to default content")
	return s.restoreDepth(0)
}

// Screenshot returns a PNG of the current window.
func (s *Session) Screenshot() ([]byte, error) {
	s.logger.Info("Taking screenshot")
	return s.wd.Screenshot()
}

// SaveScreenshot writes a PNG of the current window to path and returns the
// path written. An empty path picks a unique name in the screenshot
// directory.
func (s *Session) SaveScreenshot(path string) (string, error) {
	if path == "" {
		path = filepath.Join(s.screenshotDir, fmt.Sprintf("screenshot-%s.png", uuid.NewString()))
	}
	s.logger.Infof("Taking screenshot: %s", path)
	buf, err := s.wd.Screenshot()
	if err != nil {
		return "", err
	}
	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create screenshot directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, path, buf, 0644); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// Failer is the part of testing.TB CaptureOnFailure needs.
type Failer interface {
	Name() string
	Failed() bool
	Logf(format string, args ...interface{})
}

// CaptureOnFailure saves a screenshot when tb has failed. It is meant to be
// deferred, or registered with t.Cleanup, at the start of a test.
func (s *Session) CaptureOnFailure(tb Failer) {
	if !tb.Failed() {
		return
	}
	name := strings.NewReplacer("/", "_", " ", "_").Replace(tb.Name())
	path := filepath.Join(s.screenshotDir, fmt.Sprintf("%s_%d.png", name, time.Now().UnixNano()))
	if _, err := s.SaveScreenshot(path); err != nil {
		tb.Logf("Screenshot on failure: %v", err)
		return
	}
	tb.Logf("Screenshot on failure saved to %s", path)
}

// Cookies returns every cookie visible to the current document.
func (s *Session) Cookies() ([]selenium.Cookie, error) {
	cookies, err := s.wd.GetCookies()
	if err != nil {
		return nil, err
	}
	s.logger.Debugf("Total cookies: %d", len(cookies))
	return cookies, nil
}

// SetCookie adds a cookie.
func (s *Session) SetCookie(c selenium.Cookie) error {
	s.logger.Infof("Setting cookie: %s", c.Name)
	return s.wd.AddCookie(&c)
}

// DeleteCookie deletes the named cookie.
func (s *Session) DeleteCookie(name string) error {
	s.logger.Infof("Deleting cookie: %s", name)
	return s.wd.DeleteCookie(name)
}

// DeleteAllCookies clears the cookie jar.
func (s *Session) DeleteAllCookies() error {
	s.logger.Info("Deleting all cookies")
	return s.wd.DeleteAllCookies()
}

// AcceptAlert accepts the open alert.
func (s *Session) AcceptAlert() error {
	s.logger.Info("Accepting alert")
	return s.wd.AcceptAlert()
}

// DismissAlert dismisses the open alert.
func (s *Session) DismissAlert() error {
	s.logger.Info("Dismissing alert")
	return s.wd.DismissAlert()
}

// AlertText returns the text of the open alert.
func (s *Session) AlertText() (string, error) {
	text, err := s.wd.AlertText()
	if err != nil {
		return "", err
	}
	s.logger.Debugf("Alert text: %s", text)
	return text, nil
}

// SendAlertText types text into the open prompt.
func (s *Session) SendAlertText(text string) error {
	s.logger.Infof("Sending text to alert: %s", text)
	return s.wd.SetAlertText(text)
}

// Execute runs script in the current document and returns its decoded
// result.
func (s *Session) Execute(script string, args ...interface{}) (interface{}, error) {
	s.logger.Debug("Executing JavaScript in browser")
	return s.wd.ExecuteScript(script, args)
}

// ExecuteRaw runs script and returns the undecoded driver reply.
func (s *Session) ExecuteRaw(script string, args ...interface{}) ([]byte, error) {
	s.logger.Debug("Executing JavaScript in browser")
	return s.wd.ExecuteScriptRaw(script, args)
}

// Scroll scrolls the window to the given document coordinates.
func (s *Session) Scroll(x, y int) error {
	s.logger.Debugf("Scrolling to coordinates: (%d, %d)", x, y)
	_, err := s.wd.ExecuteScript("window.scrollTo(arguments[0], arguments[1]);", []interface{}{x, y})
	return err
}

// Logs fetches the logs of the given type. The type must be enabled in the
// session capabilities.
func (s *Session) Logs(typ log.Type) ([]log.Message, error) {
	s.logger.Debugf("Getting %s logs", typ)
	return s.wd.Log(typ)
}

// Pause blocks for d.
func (s *Session) Pause(d time.Duration) {
	s.logger.Debugf("Pausing for %v", d)
	time.Sleep(d)
}

// WaitUntil polls condition until it returns true. It is the building block
// for waits the wrappers do not provide. An error from condition aborts the
// wait.
func (s *Session) WaitUntil(condition func() (bool, error), opts ...WaitOption) error {
	c := newWaitConfig(s.waitTimeout, opts)
	if c.message == "" {
		c.message = "Condition was not met in time"
	}
	s.logger.Debug("Waiting until condition is met")
	return timeoutOr(poll(c, condition), "browser", "condition", c)
}

// BrowserVersion returns the version of the browser driven by the session.
func (s *Session) BrowserVersion() (semver.Version, error) {
	caps, err := s.wd.Capabilities()
	if err != nil {
		return semver.Version{}, err
	}
	raw, _ := caps["browserVersion"].(string)
	if raw == "" {
		raw, _ = caps["version"].(string)
	}
	if raw == "" {
		return semver.Version{}, fmt.Errorf("browser did not report a version")
	}
	// Browsers report four components, e.g. "120.0.6099.109".
	if parts := strings.SplitN(raw, ".", 4); len(parts) == 4 {
		raw = strings.Join(parts[:3], ".")
	}
	return semver.ParseTolerant(raw)
}
