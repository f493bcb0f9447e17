package pom

import "time"

const (
	// DefaultWaitTimeout is the wait budget used when no timeout is given.
	DefaultWaitTimeout = 5 * time.Second
	// DefaultWaitInterval is the default polling interval.
	DefaultWaitInterval = 500 * time.Millisecond
	// DefaultPageLoadTimeout bounds Page.IsOpened.
	DefaultPageLoadTimeout = 30 * time.Second
)

// WaitOption configures a single wait. Options are never stored on a
// wrapper.
type WaitOption func(*waitConfig)

type waitConfig struct {
	timeout  time.Duration
	interval time.Duration
	message  string
	reverse  bool
}

// WithTimeout sets the wait budget. A non-positive d keeps the default.
func WithTimeout(d time.Duration) WaitOption {
	return func(c *waitConfig) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithInterval sets the polling interval.
func WithInterval(d time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.interval = d
	}
}

// WithMessage sets the message attached to the timeout error.
func WithMessage(msg string) WaitOption {
	return func(c *waitConfig) {
		c.message = msg
	}
}

// Reverse waits for the condition to become false instead of true.
func Reverse() WaitOption {
	return func(c *waitConfig) {
		c.reverse = true
	}
}

func newWaitConfig(timeout time.Duration, opts []WaitOption) waitConfig {
	c := waitConfig{timeout: timeout, interval: DefaultWaitInterval}
	for _, opt := range opts {
		opt(&c)
	}
	if c.timeout <= 0 {
		c.timeout = DefaultWaitTimeout
	}
	if c.interval <= 0 {
		c.interval = DefaultWaitInterval
	}
	return c
}

// errTimedOut is internal; callers turn it into a *TimeoutError that names
// the waiting wrapper.
type errTimedOut struct{}

func (errTimedOut) Error() string { return "timed out" }

// poll evaluates condition until it reports the wanted value (true, or false
// when reversed) or the budget runs out. An error from condition stops the
// wait and is returned as is.
func poll(c waitConfig, condition func() (bool, error)) error {
	start := time.Now()
	for {
		done, err := condition()
		if err != nil {
			return err
		}
		if done != c.reverse {
			return nil
		}
		if time.Since(start) >= c.timeout {
			return errTimedOut{}
		}
		time.Sleep(c.interval)
	}
}

// timeoutOr converts errTimedOut into a *TimeoutError and passes any other
// error through.
func timeoutOr(err error, element, action string, c waitConfig) error {
	if _, ok := err.(errTimedOut); ok {
		if c.reverse {
			action = "not " + action
		}
		return &TimeoutError{Element: element, Action: action, Timeout: c.timeout, Message: c.message}
	}
	return err
}
