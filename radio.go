package pom

// RadioButton wraps a radio input.
type RadioButton struct {
	*Element
}

// NewRadioButton returns a RadioButton. An empty name defaults to
// "RadioButton".
func NewRadioButton(s *Session, selector, name string) *RadioButton {
	return &RadioButton{newTyped(s, selector, name, "RadioButton")}
}

// Select selects the radio button. It does nothing when the button is
// already selected.
func (r *RadioButton) Select() error {
	selected, err := r.IsSelected()
	if err != nil {
		return err
	}
	if selected {
		r.log().Debug("Radio button is already selected")
		return nil
	}
	r.log().WithField("action", "select").Info("Selecting radio button")
	return r.click()
}

// IsSelected reports whether the radio button is selected.
func (r *RadioButton) IsSelected() (bool, error) {
	we, err := r.Resolve()
	if err != nil {
		return false, err
	}
	ok, err := we.IsSelected()
	return ok, r.wrap("read state of", err)
}

// Value returns the value attribute.
func (r *RadioButton) Value() (string, error) { return r.Attribute("value") }

// GroupName returns the name attribute shared by the radio group.
func (r *RadioButton) GroupName() (string, error) { return r.Attribute("name") }
