package pom

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
)

// Node is the behavior shared by every element wrapper. Page objects hold
// their unique element as a Node so any typed wrapper can identify a page.
type Node interface {
	Name() string
	Selector() string
	State() StateQueries
	Text() (string, error)
}

// Element is the base wrapper: a selector plus a display name. It holds no
// live handle; every call resolves the selector again in the session's
// current context.
type Element struct {
	session  *Session
	selector string
	name     string
}

var _ Node = (*Element)(nil)

// NewElement returns an Element for selector. An empty name defaults to the
// selector.
func NewElement(s *Session, selector, name string) *Element {
	if name == "" {
		name = selector
	}
	return &Element{session: s, selector: selector, name: name}
}

func newTyped(s *Session, selector, name, kind string) *Element {
	if name == "" {
		name = kind
	}
	return NewElement(s, selector, name)
}

// Name returns the display name used in logs and errors.
func (e *Element) Name() string { return e.name }

// Selector returns the selector the element was built from.
func (e *Element) Selector() string { return e.selector }

// Session returns the session the element resolves in.
func (e *Element) Session() *Session { return e.session }

// Child returns an element for the nodes matching selector below this one.
func (e *Element) Child(selector, name string) *Element {
	return NewElement(e.session, descendant(e.selector, selector), name)
}

func (e *Element) log() logrus.FieldLogger {
	return e.session.logger.WithField("element", e.name)
}

// wrap attaches the element name and operation to a driver error.
func (e *Element) wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %q: %w", op, e.name, err)
}

// Resolve looks the selector up in the current context.
func (e *Element) Resolve() (selenium.WebElement, error) {
	we, err := e.session.wd.FindElement(strategy(e.selector), e.selector)
	if err != nil {
		return nil, e.wrap("find", err)
	}
	return we, nil
}

// ResolveAll returns every node currently matching the selector.
func (e *Element) ResolveAll() ([]selenium.WebElement, error) {
	wes, err := e.session.wd.FindElements(strategy(e.selector), e.selector)
	if err != nil {
		return nil, e.wrap("find", err)
	}
	return wes, nil
}

// findIn returns the nodes matching a CSS selector below the element.
func (e *Element) findIn(css string) ([]selenium.WebElement, error) {
	we, err := e.Resolve()
	if err != nil {
		return nil, err
	}
	children, err := we.FindElements(selenium.ByCSSSelector, css)
	if err != nil {
		return nil, e.wrap("find "+css+" in", err)
	}
	return children, nil
}

// Count returns how many nodes currently match the selector.
func (e *Element) Count() (int, error) {
	wes, err := e.ResolveAll()
	if err != nil {
		return 0, err
	}
	return len(wes), nil
}

// Text waits for the element to be displayed and returns its trimmed visible
// text.
func (e *Element) Text() (string, error) {
	e.log().Debug("Getting text")
	if _, err := e.State().WaitForDisplayed(); err != nil {
		return "", err
	}
	return e.rawText()
}

func (e *Element) rawText() (string, error) {
	we, err := e.Resolve()
	if err != nil {
		return "", err
	}
	text, err := we.Text()
	if err != nil {
		return "", e.wrap("get text of", err)
	}
	return strings.TrimSpace(text), nil
}

// Attribute returns the value of the named attribute, or "" when it is not
// set. It does not wait.
func (e *Element) Attribute(name string) (string, error) {
	e.log().Debugf("Getting attribute %q", name)
	v, _, err := e.attribute(name)
	return v, err
}

// HasAttribute reports whether the named attribute is present, which is
// what boolean attributes like "multiple" or "readonly" need.
func (e *Element) HasAttribute(name string) (bool, error) {
	_, ok, err := e.attribute(name)
	return ok, err
}

func (e *Element) attribute(name string) (string, bool, error) {
	we, err := e.Resolve()
	if err != nil {
		return "", false, err
	}
	v, err := we.GetAttribute(name)
	if isNilValue(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, e.wrap("get attribute "+name+" of", err)
	}
	return v, true, nil
}

// CSSProperty returns the computed value of a CSS property.
func (e *Element) CSSProperty(name string) (string, error) {
	e.log().Debugf("Getting CSS property %q", name)
	we, err := e.Resolve()
	if err != nil {
		return "", err
	}
	v, err := we.CSSProperty(name)
	if err != nil {
		return "", e.wrap("get CSS property "+name+" of", err)
	}
	return v, nil
}

// TagName returns the lower-cased tag name.
func (e *Element) TagName() (string, error) {
	we, err := e.Resolve()
	if err != nil {
		return "", err
	}
	tag, err := we.TagName()
	if err != nil {
		return "", e.wrap("get tag name of", err)
	}
	return strings.ToLower(tag), nil
}

// ScrollIntoView scrolls the element to the middle of the viewport.
func (e *Element) ScrollIntoView() error {
	e.log().Debug("Scrolling into view")
	we, err := e.Resolve()
	if err != nil {
		return err
	}
	_, err = e.session.wd.ExecuteScript("arguments[0].scrollIntoView({block: 'center'});", []interface{}{we})
	return e.wrap("scroll", err)
}

// Hover moves the pointer over the element.
func (e *Element) Hover() error {
	e.log().Debug("Moving to element")
	we, err := e.Resolve()
	if err != nil {
		return err
	}
	return e.wrap("hover", e.hover(we))
}

// Click waits for the element to be clickable and clicks it.
func (e *Element) Click() error {
	e.log().WithField("action", "click").Info("Clicking")
	return e.click()
}

func (e *Element) click() error {
	if _, err := e.State().WaitForClickable(); err != nil {
		return err
	}
	we, err := e.Resolve()
	if err != nil {
		return err
	}
	return e.wrap("click", we.Click())
}

// script runs a script with the resolved element as arguments[0].
func (e *Element) script(src string, args ...interface{}) (interface{}, error) {
	we, err := e.Resolve()
	if err != nil {
		return nil, err
	}
	v, err := e.session.wd.ExecuteScript(src, append([]interface{}{we}, args...))
	if err != nil {
		return nil, e.wrap("run script on", err)
	}
	return v, nil
}

// scriptRaw is script returning the undecoded reply.
func (e *Element) scriptRaw(src string, args ...interface{}) ([]byte, error) {
	we, err := e.Resolve()
	if err != nil {
		return nil, err
	}
	raw, err := e.session.wd.ExecuteScriptRaw(src, append([]interface{}{we}, args...))
	if err != nil {
		return nil, e.wrap("run script on", err)
	}
	return raw, nil
}
