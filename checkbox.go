package pom

// Checkbox wraps a checkbox input. Check and Uncheck read the state first
// and do not click when it already matches.
type Checkbox struct {
	*Element
}

// NewCheckbox returns a Checkbox. An empty name defaults to "Checkbox".
func NewCheckbox(s *Session, selector, name string) *Checkbox {
	return &Checkbox{newTyped(s, selector, name, "Checkbox")}
}

// IsChecked reports whether the checkbox is checked.
func (c *Checkbox) IsChecked() (bool, error) {
	we, err := c.Resolve()
	if err != nil {
		return false, err
	}
	ok, err := we.IsSelected()
	return ok, c.wrap("read state of", err)
}

// Check checks the checkbox.
func (c *Checkbox) Check() error {
	return c.SetChecked(true)
}

// Uncheck unchecks the checkbox.
func (c *Checkbox) Uncheck() error {
	return c.SetChecked(false)
}

// SetChecked brings the checkbox into the wanted state.
func (c *Checkbox) SetChecked(want bool) error {
	checked, err := c.IsChecked()
	if err != nil {
		return err
	}
	verb, state := "Checking", "checked"
	if !want {
		verb, state = "Unchecking", "unchecked"
	}
	if checked == want {
		c.log().Debugf("Checkbox is already %s", state)
		return nil
	}
	c.log().WithField("action", "check").Infof("%s checkbox", verb)
	return c.click()
}

// Toggle clicks the checkbox regardless of its state.
func (c *Checkbox) Toggle() error {
	c.log().WithField("action", "toggle").Info("Toggling checkbox")
	return c.click()
}
