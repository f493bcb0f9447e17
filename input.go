package pom

import (
	"time"
	"unicode/utf8"
)

// textField holds the operations Input and TextArea share.
type textField struct {
	*Element
	kind string
}

func (f textField) whenDisplayed() error {
	_, err := f.State().WaitForDisplayed()
	return err
}

// SetValue replaces the field content with value.
func (f textField) SetValue(value string) error {
	f.log().WithField("action", "set-value").Infof("Setting value %q in %s", value, f.kind)
	if err := f.whenDisplayed(); err != nil {
		return err
	}
	we, err := f.Resolve()
	if err != nil {
		return err
	}
	if err := we.Clear(); err != nil {
		return f.wrap("clear", err)
	}
	return f.wrap("type into", we.SendKeys(value))
}

// AddValue appends value to the field content.
func (f textField) AddValue(value string) error {
	f.log().WithField("action", "add-value").Infof("Adding value %q to %s", value, f.kind)
	if err := f.whenDisplayed(); err != nil {
		return err
	}
	we, err := f.Resolve()
	if err != nil {
		return err
	}
	return f.wrap("type into", we.SendKeys(value))
}

// Clear empties the field.
func (f textField) Clear() error {
	f.log().WithField("action", "clear").Infof("Clearing %s", f.kind)
	if err := f.whenDisplayed(); err != nil {
		return err
	}
	we, err := f.Resolve()
	if err != nil {
		return err
	}
	return f.wrap("clear", we.Clear())
}

// Value returns the current value of the field.
func (f textField) Value() (string, error) {
	f.log().Debugf("Getting value from %s", f.kind)
	return f.Attribute("value")
}

// TypeSlowly clears the field and types value one character at a time,
// pausing delay after each character.
func (f textField) TypeSlowly(value string, delay time.Duration) error {
	f.log().WithField("action", "type").Infof("Typing value in %s", f.kind)
	if err := f.Clear(); err != nil {
		return err
	}
	we, err := f.Resolve()
	if err != nil {
		return err
	}
	for _, r := range value {
		if err := we.SendKeys(string(r)); err != nil {
			return f.wrap("type into", err)
		}
		time.Sleep(delay)
	}
	return nil
}

// IsReadOnly reports whether the readonly attribute is present.
func (f textField) IsReadOnly() (bool, error) {
	return f.HasAttribute("readonly")
}

// Placeholder returns the placeholder text.
func (f textField) Placeholder() (string, error) {
	return f.Attribute("placeholder")
}

// Input wraps a single-line text input.
type Input struct {
	textField
}

// NewInput returns an Input. An empty name defaults to "Input".
func NewInput(s *Session, selector, name string) *Input {
	return &Input{textField{newTyped(s, selector, name, "Input"), "input"}}
}

// TextArea wraps a multi-line text control.
type TextArea struct {
	textField
}

// NewTextArea returns a TextArea. An empty name defaults to "TextArea".
func NewTextArea(s *Session, selector, name string) *TextArea {
	return &TextArea{textField{newTyped(s, selector, name, "TextArea"), "textarea"}}
}

// Rows returns the rows attribute.
func (t *TextArea) Rows() (string, error) { return t.Attribute("rows") }

// Cols returns the cols attribute.
func (t *TextArea) Cols() (string, error) { return t.Attribute("cols") }

// MaxLength returns the maxlength attribute.
func (t *TextArea) MaxLength() (string, error) { return t.Attribute("maxlength") }

// CharacterCount returns the number of characters in the current value.
func (t *TextArea) CharacterCount() (int, error) {
	v, err := t.Value()
	if err != nil {
		return 0, err
	}
	return utf8.RuneCountInString(v), nil
}
