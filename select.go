package pom

import (
	"strings"

	"github.com/tebeka/selenium"
)

// Dropdown wraps a <select> element.
type Dropdown struct {
	*Element
}

// NewDropdown returns a Dropdown. An empty name defaults to "Dropdown".
func NewDropdown(s *Session, selector, name string) *Dropdown {
	return &Dropdown{newTyped(s, selector, name, "Dropdown")}
}

func (d *Dropdown) options() ([]selenium.WebElement, error) {
	return d.findIn("option")
}

func (d *Dropdown) displayedOptions() ([]selenium.WebElement, error) {
	if _, err := d.State().WaitForDisplayed(); err != nil {
		return nil, err
	}
	return d.options()
}

// SelectByText selects the first option whose visible text matches text,
// ignoring surrounding and repeated whitespace.
func (d *Dropdown) SelectByText(text string) error {
	d.log().WithField("action", "select").Infof("Selecting option %q", text)
	opts, err := d.displayedOptions()
	if err != nil {
		return err
	}
	want := normalizeSpace(text)
	for _, o := range opts {
		t, err := o.Text()
		if err != nil {
			return d.wrap("read option of", err)
		}
		if normalizeSpace(t) == want {
			return d.setSelected(o)
		}
	}
	return &NotFoundError{Element: d.name, Kind: "option", Key: text}
}

// SelectByValue selects the first option whose value attribute is value.
func (d *Dropdown) SelectByValue(value string) error {
	d.log().WithField("action", "select").Infof("Selecting option with value %q", value)
	opts, err := d.displayedOptions()
	if err != nil {
		return err
	}
	for _, o := range opts {
		v, err := o.GetAttribute("value")
		if err != nil && !isNilValue(err) {
			return d.wrap("read option of", err)
		}
		if v == value {
			return d.setSelected(o)
		}
	}
	return &NotFoundError{Element: d.name, Kind: "option value", Key: value}
}

// SelectByIndex selects the option at position i, counting from zero.
func (d *Dropdown) SelectByIndex(i int) error {
	d.log().WithField("action", "select").Infof("Selecting option at index %d", i)
	opts, err := d.displayedOptions()
	if err != nil {
		return err
	}
	if err := checkIndex(d.name, "option", i, len(opts)); err != nil {
		return err
	}
	return d.setSelected(opts[i])
}

func (d *Dropdown) setSelected(option selenium.WebElement) error {
	sel, err := option.IsSelected()
	if err != nil {
		return d.wrap("read option of", err)
	}
	if sel {
		return nil
	}
	return d.wrap("select option of", option.Click())
}

func (d *Dropdown) selected() (selenium.WebElement, error) {
	opts, err := d.options()
	if err != nil {
		return nil, err
	}
	for _, o := range opts {
		if ok, err := o.IsSelected(); err == nil && ok {
			return o, nil
		}
	}
	return nil, &NotFoundError{Element: d.name, Kind: "option", Key: "selected"}
}

// SelectedText returns the visible text of the selected option.
func (d *Dropdown) SelectedText() (string, error) {
	d.log().Debug("Getting selected text")
	o, err := d.selected()
	if err != nil {
		return "", err
	}
	t, err := o.Text()
	return strings.TrimSpace(t), d.wrap("read option of", err)
}

// SelectedValue returns the value of the select element.
func (d *Dropdown) SelectedValue() (string, error) {
	d.log().Debug("Getting selected value")
	return d.Attribute("value")
}

// Options returns the visible text of every option, in document order.
func (d *Dropdown) Options() ([]string, error) {
	d.log().Debug("Getting all options")
	opts, err := d.options()
	if err != nil {
		return nil, err
	}
	texts := make([]string, 0, len(opts))
	for _, o := range opts {
		t, err := o.Text()
		if err != nil {
			return nil, d.wrap("read option of", err)
		}
		texts = append(texts, strings.TrimSpace(t))
	}
	return texts, nil
}

// OptionValues returns the value attribute of every option.
func (d *Dropdown) OptionValues() ([]string, error) {
	d.log().Debug("Getting all option values")
	opts, err := d.options()
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(opts))
	for _, o := range opts {
		v, err := o.GetAttribute("value")
		if err != nil && !isNilValue(err) {
			return nil, d.wrap("read option of", err)
		}
		values = append(values, v)
	}
	return values, nil
}

// HasOption reports whether an option with exactly this text exists.
func (d *Dropdown) HasOption(text string) (bool, error) {
	texts, err := d.Options()
	if err != nil {
		return false, err
	}
	for _, t := range texts {
		if t == text {
			return true, nil
		}
	}
	return false, nil
}

// IsMultiple reports whether the select accepts several selections.
func (d *Dropdown) IsMultiple() (bool, error) {
	return d.HasAttribute("multiple")
}

// normalizeSpace mirrors XPath normalize-space().
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
