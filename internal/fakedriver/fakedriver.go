// Package fakedriver is an in-memory selenium.WebDriver for unit tests.
//
// Documents map selectors to elements verbatim: the fake does not parse CSS
// or XPath, so a test registers exactly the selectors the code under test
// sends. Methods the fake does not implement panic through the nil embedded
// interface.
package fakedriver

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/log"
)

// Errors mirror the WebDriver error codes the code under test can see.
var (
	ErrNoSuchElement = errors.New("no such element")
	ErrNoSuchFrame   = errors.New("no such frame")
	ErrNoSuchWindow  = errors.New("no such window")
	ErrNoSuchAlert   = errors.New("no such alert")
)

// nilValue is what the client returns for an attribute that is not set.
var nilValue = errors.New("nil return value")

// PNG is returned by Screenshot unless Driver.PNG is set.
var PNG = []byte("\x89PNG\r\n\x1a\nfake")

// Document is a page or the content of a frame.
type Document struct {
	Title    string
	elements map[string][]*Element
}

// NewDocument returns an empty document.
func NewDocument(title string) *Document {
	return &Document{Title: title, elements: make(map[string][]*Element)}
}

// Add registers els under selector, after any already registered.
func (d *Document) Add(selector string, els ...*Element) *Document {
	d.elements[selector] = append(d.elements[selector], els...)
	return d
}

// Remove drops the first element registered under selector.
func (d *Document) Remove(selector string) {
	if els := d.elements[selector]; len(els) > 0 {
		d.elements[selector] = els[1:]
	}
}

// Driver is the fake session. The zero value is not usable; call New.
type Driver struct {
	selenium.WebDriver

	// Top is the document loaded in the current window.
	Top *Document
	// Pages are loaded by Get when the URL matches.
	Pages map[string]*Document

	current *Document
	url     string
	history []string
	pos     int

	Handles []string
	Window  string
	nextWin int

	AlertOpen    bool
	AlertMessage string
	AlertInput   string

	Cookies      []selenium.Cookie
	Caps         selenium.Capabilities
	Logs         map[log.Type][]log.Message
	PNG          []byte
	Width        int
	Height       int
	Maximized    bool
	Quitted      bool
	Pointer      *Element
	Buttons      []int
	DoubleClicks int
	Scripts      []string

	// Script answers scripts the fake has no built-in answer for.
	Script func(script string, args []interface{}) (interface{}, error)
}

// New returns a driver showing top in a single window.
func New(top *Document) *Driver {
	return &Driver{
		Top:     top,
		Pages:   make(map[string]*Document),
		current: top,
		Handles: []string{"window-0"},
		Window:  "window-0",
		nextWin: 1,
		Caps:    selenium.Capabilities{"browserName": "chrome", "browserVersion": "120.0.6099.109"},
		Logs:    make(map[log.Type][]log.Message),
		Width:   1024,
		Height:  768,
	}
}

// Current returns the document commands currently target.
func (d *Driver) Current() *Document { return d.current }

func (d *Driver) load(url string) {
	d.url = url
	if doc, ok := d.Pages[url]; ok {
		d.Top = doc
	}
	d.current = d.Top
}

func (d *Driver) Get(url string) error {
	d.history = append(d.history[:d.pos], url)
	d.pos = len(d.history)
	d.load(url)
	return nil
}

func (d *Driver) Back() error {
	if d.pos > 1 {
		d.pos--
		d.load(d.history[d.pos-1])
	}
	return nil
}

func (d *Driver) Forward() error {
	if d.pos < len(d.history) {
		d.pos++
		d.load(d.history[d.pos-1])
	}
	return nil
}

func (d *Driver) Refresh() error {
	d.current = d.Top
	return nil
}

func (d *Driver) CurrentURL() (string, error) { return d.url, nil }

func (d *Driver) Title() (string, error) { return d.Top.Title, nil }

func (d *Driver) find(doc *Document, value string) []*Element {
	els := doc.elements[value]
	for _, e := range els {
		e.driver = d
	}
	return els
}

func (d *Driver) FindElement(by, value string) (selenium.WebElement, error) {
	els := d.find(d.current, value)
	if len(els) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchElement, value)
	}
	return els[0], nil
}

func (d *Driver) FindElements(by, value string) ([]selenium.WebElement, error) {
	return toWebElements(d.find(d.current, value)), nil
}

func (d *Driver) SwitchFrame(frame interface{}) error {
	switch f := frame.(type) {
	case nil:
		d.current = d.Top
		return nil
	case *Element:
		if f.Frame == nil {
			return fmt.Errorf("%w: element is not a frame", ErrNoSuchFrame)
		}
		d.current = f.Frame
		return nil
	case string:
		for _, els := range d.current.elements {
			for _, e := range els {
				if e.Frame != nil && (e.Attrs["id"] == f || e.Attrs["name"] == f) {
					d.current = e.Frame
					return nil
				}
			}
		}
		return fmt.Errorf("%w: %s", ErrNoSuchFrame, f)
	}
	return fmt.Errorf("%w: %v", ErrNoSuchFrame, frame)
}

func (d *Driver) WindowHandles() ([]string, error) {
	return append([]string(nil), d.Handles...), nil
}

func (d *Driver) CurrentWindowHandle() (string, error) {
	if d.Window == "" {
		return "", ErrNoSuchWindow
	}
	return d.Window, nil
}

func (d *Driver) SwitchWindow(name string) error {
	for _, h := range d.Handles {
		if h == name {
			d.Window = name
			d.current = d.Top
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNoSuchWindow, name)
}

func (d *Driver) Close() error {
	for i, h := range d.Handles {
		if h == d.Window {
			d.Handles = append(d.Handles[:i], d.Handles[i+1:]...)
			d.Window = ""
			return nil
		}
	}
	return ErrNoSuchWindow
}

func (d *Driver) MaximizeWindow(name string) error {
	d.Maximized = true
	return nil
}

func (d *Driver) ResizeWindow(name string, width, height int) error {
	d.Width, d.Height = width, height
	d.Maximized = false
	return nil
}

func (d *Driver) ExecuteScript(script string, args []interface{}) (interface{}, error) {
	d.Scripts = append(d.Scripts, script)
	switch {
	case strings.Contains(script, "window.open("):
		h := fmt.Sprintf("window-%d", d.nextWin)
		d.nextWin++
		d.Handles = append(d.Handles, h)
		return nil, nil
	case strings.Contains(script, "window.outerWidth"):
		return map[string]interface{}{"width": d.Width, "height": d.Height}, nil
	case script == "return document.title;":
		return d.current.Title, nil
	case strings.Contains(script, "scrollIntoView"):
		if e, ok := firstElement(args); ok {
			e.Scrolled++
		}
		return nil, nil
	case strings.Contains(script, "new MouseEvent("):
		if e, ok := firstElement(args); ok {
			d.dispatch(e, args[1:])
		}
		return nil, nil
	}
	if d.Script != nil {
		return d.Script(script, args)
	}
	return nil, nil
}

func (d *Driver) ExecuteScriptRaw(script string, args []interface{}) ([]byte, error) {
	v, err := d.ExecuteScript(script, args)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]interface{}{"value": v})
}

// dispatch records synthetic mouse events. args holds the button followed by
// the event types. Dispatched clicks are recorded in Events only; Clicks
// counts WebElement.Click calls.
func (d *Driver) dispatch(e *Element, args []interface{}) {
	if len(args) == 0 {
		return
	}
	if b, ok := args[0].(int); ok {
		e.Buttons = append(e.Buttons, b)
	}
	for _, a := range args[1:] {
		typ, _ := a.(string)
		e.Events = append(e.Events, typ)
		switch typ {
		case "mouseover":
			d.Pointer = e
		case "dblclick":
			e.DoubleClicks++
		case "contextmenu":
			e.ContextClicks++
		}
	}
}

func firstElement(args []interface{}) (*Element, bool) {
	if len(args) == 0 {
		return nil, false
	}
	e, ok := args[0].(*Element)
	return e, ok
}

func (d *Driver) AcceptAlert() error {
	if !d.AlertOpen {
		return ErrNoSuchAlert
	}
	d.AlertOpen = false
	return nil
}

func (d *Driver) DismissAlert() error {
	if !d.AlertOpen {
		return ErrNoSuchAlert
	}
	d.AlertOpen = false
	d.AlertInput = ""
	return nil
}

func (d *Driver) AlertText() (string, error) {
	if !d.AlertOpen {
		return "", ErrNoSuchAlert
	}
	return d.AlertMessage, nil
}

func (d *Driver) SetAlertText(text string) error {
	if !d.AlertOpen {
		return ErrNoSuchAlert
	}
	d.AlertInput = text
	return nil
}

func (d *Driver) GetCookies() ([]selenium.Cookie, error) {
	return append([]selenium.Cookie(nil), d.Cookies...), nil
}

func (d *Driver) AddCookie(c *selenium.Cookie) error {
	d.Cookies = append(d.Cookies, *c)
	return nil
}

func (d *Driver) DeleteCookie(name string) error {
	kept := d.Cookies[:0]
	for _, c := range d.Cookies {
		if c.Name != name {
			kept = append(kept, c)
		}
	}
	d.Cookies = kept
	return nil
}

func (d *Driver) DeleteAllCookies() error {
	d.Cookies = nil
	return nil
}

func (d *Driver) Screenshot() ([]byte, error) {
	if d.PNG != nil {
		return d.PNG, nil
	}
	return PNG, nil
}

func (d *Driver) Log(typ log.Type) ([]log.Message, error) {
	return d.Logs[typ], nil
}

func (d *Driver) Capabilities() (selenium.Capabilities, error) {
	return d.Caps, nil
}

func (d *Driver) Click(button int) error {
	d.Buttons = append(d.Buttons, button)
	return nil
}

func (d *Driver) DoubleClick() error {
	d.DoubleClicks++
	if d.Pointer != nil {
		d.Pointer.DoubleClicks++
	}
	return nil
}

func (d *Driver) Quit() error {
	d.Quitted = true
	return nil
}

// Element is a fake DOM node.
type Element struct {
	selenium.WebElement

	Tag      string
	Content  string
	Attrs    map[string]string
	CSS      map[string]string
	Hidden   bool
	Disabled bool
	Selected bool
	// Frame is the document of an <iframe>.
	Frame *Document
	// OnClick runs after every click.
	OnClick func()

	Clicks        int
	DoubleClicks  int
	ContextClicks int
	Scrolled      int
	// Events lists the synthetic mouse events dispatched at the element and
	// Buttons the button each dispatch carried.
	Events  []string
	Buttons []int

	children map[string][]*Element
	parent   *Element
	driver   *Driver
}

// NewElement returns a visible, enabled element.
func NewElement(tag, text string) *Element {
	return &Element{
		Tag:      tag,
		Content:  text,
		Attrs:    make(map[string]string),
		CSS:      make(map[string]string),
		children: make(map[string][]*Element),
	}
}

// Set sets an attribute and returns e.
func (e *Element) Set(name, value string) *Element {
	e.Attrs[name] = value
	return e
}

// Add registers children under a CSS selector relative to e.
func (e *Element) Add(selector string, children ...*Element) *Element {
	for _, c := range children {
		c.parent = e
	}
	e.children[selector] = append(e.children[selector], children...)
	return e
}

func (e *Element) Click() error {
	e.Clicks++
	switch {
	case e.Tag == "input" && e.Attrs["type"] == "checkbox":
		e.Selected = !e.Selected
	case e.Tag == "input" && e.Attrs["type"] == "radio":
		e.Selected = true
	case e.Tag == "option" && e.parent != nil:
		for _, o := range e.parent.children["option"] {
			o.Selected = false
		}
		e.Selected = true
		e.parent.Attrs["value"] = e.Attrs["value"]
	}
	if e.OnClick != nil {
		e.OnClick()
	}
	return nil
}

func (e *Element) SendKeys(keys string) error {
	e.Attrs["value"] += keys
	return nil
}

func (e *Element) Clear() error {
	e.Attrs["value"] = ""
	return nil
}

func (e *Element) MoveTo(x, y int) error {
	if e.driver != nil {
		e.driver.Pointer = e
	}
	return nil
}

func (e *Element) FindElement(by, value string) (selenium.WebElement, error) {
	els, _ := e.FindElements(by, value)
	if len(els) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchElement, value)
	}
	return els[0], nil
}

func (e *Element) FindElements(by, value string) ([]selenium.WebElement, error) {
	els := e.children[value]
	for _, c := range els {
		c.driver = e.driver
	}
	return toWebElements(els), nil
}

func (e *Element) TagName() (string, error) { return e.Tag, nil }

func (e *Element) Text() (string, error) {
	if e.Hidden {
		return "", nil
	}
	return e.Content, nil
}

func (e *Element) IsSelected() (bool, error)  { return e.Selected, nil }
func (e *Element) IsEnabled() (bool, error)   { return !e.Disabled, nil }
func (e *Element) IsDisplayed() (bool, error) { return !e.Hidden, nil }

func (e *Element) GetAttribute(name string) (string, error) {
	v, ok := e.Attrs[name]
	if !ok {
		return "", nilValue
	}
	return v, nil
}

func (e *Element) CSSProperty(name string) (string, error) {
	return e.CSS[name], nil
}

func toWebElements(els []*Element) []selenium.WebElement {
	out := make([]selenium.WebElement, len(els))
	for i, e := range els {
		out[i] = e
	}
	return out
}
