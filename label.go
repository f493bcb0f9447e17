package pom

import (
	"strings"

	"github.com/tebeka/selenium"
)

// Label wraps a text element, usually a <label>.
type Label struct {
	*Element
}

// NewLabel returns a Label. An empty name defaults to "Label".
func NewLabel(s *Session, selector, name string) *Label {
	return &Label{newTyped(s, selector, name, "Label")}
}

// For returns the for attribute.
func (l *Label) For() (string, error) {
	l.log().Debug("Getting 'for' attribute")
	return l.Attribute("for")
}

// Click waits for the label to be clickable and clicks it.
func (l *Label) Click() error {
	l.log().WithField("action", "click").Info("Clicking label")
	return l.click()
}

// AssociatedInput returns the control the label describes: the element
// whose id is the for attribute, or else the input nested in the label.
func (l *Label) AssociatedInput() (selenium.WebElement, error) {
	id, err := l.For()
	if err != nil {
		return nil, err
	}
	if id != "" {
		we, err := l.session.wd.FindElement(selenium.ByXPATH, "//*[@id="+xpathLiteral(id)+"]")
		return we, l.wrap("find input of", err)
	}
	inputs, err := l.findIn("input")
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, &NotFoundError{Element: l.name, Kind: "input", Key: "input"}
	}
	return inputs[0], nil
}

// IsRequired reports whether the label text contains marker, "*" when
// marker is empty.
func (l *Label) IsRequired(marker string) (bool, error) {
	if marker == "" {
		marker = "*"
	}
	return l.ContainsText(marker)
}

// ContainsText reports whether the label text contains s.
func (l *Label) ContainsText(s string) (bool, error) {
	text, err := l.Text()
	if err != nil {
		return false, err
	}
	return strings.Contains(text, s), nil
}
