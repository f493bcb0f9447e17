package pom

import "time"

// Button wraps a clickable control.
type Button struct {
	*Element
}

// NewButton returns a Button. An empty name defaults to "Button".
func NewButton(s *Session, selector, name string) *Button {
	return &Button{newTyped(s, selector, name, "Button")}
}

// Click waits for the button to be clickable and clicks it.
func (b *Button) Click() error {
	b.log().WithField("action", "click").Info("Clicking button")
	return b.click()
}

// DoubleClick waits for the button to be clickable and double clicks it.
func (b *Button) DoubleClick() error {
	b.log().WithField("action", "double-click").Info("Double clicking button")
	if _, err := b.State().WaitForClickable(); err != nil {
		return err
	}
	we, err := b.Resolve()
	if err != nil {
		return err
	}
	return b.wrap("double click", b.doubleClick(we))
}

// IsEnabled reports whether the button is enabled now.
func (b *Button) IsEnabled() bool {
	return b.State().IsEnabled()
}

// IsDisabled is the negation of IsEnabled.
func (b *Button) IsDisabled() bool {
	return !b.IsEnabled()
}

// WaitForEnabled waits up to timeout for the button to become enabled. A
// zero timeout uses the session default.
func (b *Button) WaitForEnabled(timeout time.Duration) error {
	_, err := b.State().WaitForEnabled(WithTimeout(timeout))
	return err
}
