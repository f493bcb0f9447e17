package pom

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/tebeka/selenium"

	pomlog "github.com/wanmail/pom/log"
)

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger every wrapper built on the session logs to.
func WithLogger(l logrus.FieldLogger) SessionOption {
	return func(s *Session) {
		s.logger = l
	}
}

// WithFs sets the filesystem used for screenshots and upload paths.
func WithFs(fs afero.Fs) SessionOption {
	return func(s *Session) {
		s.fs = fs
	}
}

// WithBaseURL sets the URL that relative paths passed to Open resolve
// against.
func WithBaseURL(u string) SessionOption {
	return func(s *Session) {
		s.baseURL = u
	}
}

// WithWaitTimeout sets the budget of state waits called without an explicit
// timeout.
func WithWaitTimeout(d time.Duration) SessionOption {
	return func(s *Session) {
		s.waitTimeout = d
	}
}

// WithScreenshotDir sets the directory SaveScreenshot writes to when no path
// is given.
func WithScreenshotDir(dir string) SessionOption {
	return func(s *Session) {
		s.screenshotDir = dir
	}
}

// WithLegacyPointer makes hover, double click and right click send the JSON
// Wire pointer commands instead of dispatching DOM mouse events. Those
// commands are rejected by drivers running in W3C mode.
func WithLegacyPointer() SessionOption {
	return func(s *Session) {
		s.legacyPointer = true
	}
}

// Session is a single browser session together with the state every wrapper
// shares: the logger, the filesystem and the frame context.
//
// A Session is not safe for concurrent use. The driver executes one command
// at a time and callers must wait for each call to return before issuing the
// next.
type Session struct {
	wd      selenium.WebDriver
	service *selenium.Service

	logger        logrus.FieldLogger
	fs            afero.Fs
	baseURL       string
	waitTimeout   time.Duration
	screenshotDir string
	legacyPointer bool

	// frames holds the frames entered through this session, outermost first.
	// It is the only record of the driver's browsing context; switches made
	// on the raw WebDriver bypass it.
	frames []frameEntry
}

type frameEntry struct {
	name  string
	owner *Frame
	// enter switches into this frame from its parent context.
	enter func() error
}

// NewSession wraps an already started driver session.
func NewSession(wd selenium.WebDriver, opts ...SessionOption) *Session {
	s := &Session{
		wd:            wd,
		fs:            afero.NewOsFs(),
		waitTimeout:   DefaultWaitTimeout,
		screenshotDir: "./screenshots",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = pomlog.New(pomlog.Options{Debug: os.Getenv("DEBUG") == "true"})
	}
	return s
}

// WebDriver returns the underlying driver.
func (s *Session) WebDriver() selenium.WebDriver {
	return s.wd
}

// Logger returns the session logger.
func (s *Session) Logger() logrus.FieldLogger {
	return s.logger
}

// Fs returns the session filesystem.
func (s *Session) Fs() afero.Fs {
	return s.fs
}

// BaseURL returns the configured base URL.
func (s *Session) BaseURL() string {
	return s.baseURL
}

// FrameDepth returns how many frames deep the session currently is. Zero is
// the top-level document.
func (s *Session) FrameDepth() int {
	return len(s.frames)
}

// currentFrame returns the innermost entered frame, or nil at top level.
func (s *Session) currentFrame() *frameEntry {
	if len(s.frames) == 0 {
		return nil
	}
	return &s.frames[len(s.frames)-1]
}

func (s *Session) pushFrame(e frameEntry) {
	s.frames = append(s.frames, e)
}

// restoreDepth brings the browsing context back to the given frame depth.
// The protocol has no reliable "parent frame" command, so the session goes
// back to the top-level document and re-enters each remaining frame.
func (s *Session) restoreDepth(depth int) error {
	if depth < 0 {
		depth = 0
	}
	if depth > len(s.frames) {
		return fmt.Errorf("cannot restore frame depth %d: session is %d frames deep", depth, len(s.frames))
	}
	keep := s.frames[:depth]
	s.frames = nil
	if err := s.wd.SwitchFrame(nil); err != nil {
		return fmt.Errorf("switch to top-level document: %w", err)
	}
	for _, e := range keep {
		if err := e.enter(); err != nil {
			return fmt.Errorf("re-enter frame %q: %w", e.name, err)
		}
		s.frames = append(s.frames, e)
	}
	return nil
}

// resetFrames forgets the frame stack. Window switches and top-level
// navigation put the driver back at the top-level document.
func (s *Session) resetFrames() {
	s.frames = nil
}

// Quit ends the browser session and stops the driver service, if the
// session started one.
func (s *Session) Quit() error {
	s.logger.Info("Closing browser session")
	s.resetFrames()
	err := s.wd.Quit()
	if s.service != nil {
		err = errors.Join(err, s.service.Stop())
		s.service = nil
	}
	return err
}
