package pom

import (
	"errors"
	"time"
)

// Frame wraps an <iframe> or <frame>. Context switches go through the
// session so every wrapper sees the same frame stack.
type Frame struct {
	*Element
}

// NewFrame returns a Frame. An empty name defaults to "Frame".
func NewFrame(s *Session, selector, name string) *Frame {
	return &Frame{newTyped(s, selector, name, "Frame")}
}

// SwitchTo waits for the frame to exist in the current context and makes it
// the current context.
func (f *Frame) SwitchTo() error {
	f.log().WithField("action", "switch").Info("Switching to frame")
	if _, err := f.State().WaitForExist(); err != nil {
		return err
	}
	if err := f.enter(); err != nil {
		return err
	}
	f.session.pushFrame(frameEntry{name: f.name, owner: f, enter: f.enter})
	return nil
}

// enter resolves the frame in the current context and switches into it.
func (f *Frame) enter() error {
	we, err := f.Resolve()
	if err != nil {
		return err
	}
	return f.wrap("switch to", f.session.wd.SwitchFrame(we))
}

// SwitchToParent leaves the innermost frame.
func (f *Frame) SwitchToParent() error {
	f.log().WithField("action", "switch").Info("Switching to parent frame")
	return f.session.restoreDepth(len(f.session.frames) - 1)
}

// SwitchToDefault returns to the top-level document.
func (f *Frame) SwitchToDefault() error {
	f.log().WithField("action", "switch").Info("Switching to default content")
	return f.session.restoreDepth(0)
}

// ExecuteInFrame switches into the frame, runs fn and restores the context
// that was current before the call, also when fn fails or panics.
func (f *Frame) ExecuteInFrame(fn func() error) (err error) {
	f.log().Info("Executing action in frame")
	depth := f.session.FrameDepth()
	if err := f.SwitchTo(); err != nil {
		return err
	}
	defer func() {
		if rerr := f.session.restoreDepth(depth); rerr != nil {
			err = errors.Join(err, f.wrap("restore context after", rerr))
		}
	}()
	return fn()
}

// Src returns the src attribute.
func (f *Frame) Src() (string, error) {
	f.log().Debug("Getting src")
	return f.Attribute("src")
}

// FrameName returns the name attribute.
func (f *Frame) FrameName() (string, error) { return f.Attribute("name") }

// FrameTitle returns the title of the document loaded in the frame.
func (f *Frame) FrameTitle() (string, error) {
	var title string
	err := f.ExecuteInFrame(func() error {
		v, err := f.session.Execute("return document.title;")
		title, _ = v.(string)
		return err
	})
	return title, err
}

// IsLoaded reports whether the frame exists within the session wait timeout.
func (f *Frame) IsLoaded() bool {
	ok, _ := f.State().WaitForExist()
	return ok
}

// WaitForLoad waits up to timeout for the frame to exist, 10s when zero.
func (f *Frame) WaitForLoad(timeout time.Duration) error {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	f.log().Debug("Waiting for frame to load")
	_, err := f.State().WaitForExist(WithTimeout(timeout))
	return err
}

// ElementInFrame runs fn with an element for selector resolved inside the
// frame. The element is only valid for the duration of fn.
func (f *Frame) ElementInFrame(selector string, fn func(*Element) error) error {
	return f.ExecuteInFrame(func() error {
		return fn(NewElement(f.session, selector, ""))
	})
}

// ClickElementInFrame clicks the element matching selector inside the
// frame.
func (f *Frame) ClickElementInFrame(selector string) error {
	f.log().WithField("action", "click").Infof("Clicking element %q in frame", selector)
	return f.ElementInFrame(selector, (*Element).Click)
}

// SetValueInFrame sets the value of the input matching selector inside the
// frame.
func (f *Frame) SetValueInFrame(selector, value string) error {
	f.log().WithField("action", "set-value").Infof("Setting value in element %q in frame", selector)
	return f.ExecuteInFrame(func() error {
		return NewInput(f.session, selector, selector).SetValue(value)
	})
}

// TextInFrame returns the text of the element matching selector inside the
// frame.
func (f *Frame) TextInFrame(selector string) (string, error) {
	f.log().Debugf("Getting text from element %q in frame", selector)
	var text string
	err := f.ElementInFrame(selector, func(e *Element) error {
		var err error
		text, err = e.Text()
		return err
	})
	return text, err
}

// IsCurrentlyInFrame reports whether this frame is the innermost frame the
// session has entered.
func (f *Frame) IsCurrentlyInFrame() bool {
	cur := f.session.currentFrame()
	return cur != nil && cur.owner == f
}
