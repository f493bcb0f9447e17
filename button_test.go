package pom

import (
	"errors"
	"testing"

	"github.com/tebeka/selenium"

	"github.com/wanmail/pom/internal/fakedriver"
)

func TestButton(t *testing.T) {
	doc := fakedriver.NewDocument("")
	el := fakedriver.NewElement("button", "Add Element")
	doc.Add("#add", el)
	s, d := newTestSession(t, doc)
	b := NewButton(s, "#add", "Add Element Button")

	if err := b.Click(); err != nil {
		t.Fatalf("Click() returned error: %v", err)
	}
	if err := b.DoubleClick(); err != nil {
		t.Fatalf("DoubleClick() returned error: %v", err)
	}
	if el.Clicks != 1 || el.DoubleClicks != 1 || d.DoubleClicks != 0 {
		t.Errorf("clicks = %d, double clicks = %d (driver %d), want 1, 1 (0)", el.Clicks, el.DoubleClicks, d.DoubleClicks)
	}
	if !b.IsEnabled() || b.IsDisabled() {
		t.Error("enabled button reported as disabled")
	}
	if err := b.WaitForEnabled(0); err != nil {
		t.Errorf("WaitForEnabled() returned error: %v", err)
	}
}

func TestButtonDisabled(t *testing.T) {
	doc := fakedriver.NewDocument("")
	el := fakedriver.NewElement("button", "Submit")
	el.Disabled = true
	doc.Add("#submit", el)
	s, _ := newTestSession(t, doc)
	b := NewButton(s, "#submit", "Submit")

	if !b.IsDisabled() {
		t.Error("IsDisabled() = false for a disabled button")
	}
	err := b.Click()
	var te *TimeoutError
	if !errors.As(err, &te) || te.Action != "clickable" || te.Element != "Submit" {
		t.Errorf("Click() on a disabled button = %v, want clickable timeout", err)
	}
	if el.Clicks != 0 {
		t.Errorf("disabled button was clicked %d times", el.Clicks)
	}
	if err := b.WaitForEnabled(testWait); !errors.Is(err, ErrTimeout) {
		t.Errorf("WaitForEnabled() = %v, want timeout", err)
	}
}

func TestLink(t *testing.T) {
	doc := fakedriver.NewDocument("")
	el := fakedriver.NewElement("a", " Elemental Selenium ").
		Set("href", "http://elementalselenium.com/").
		Set("target", "_blank")
	doc.Add("#footer a", el)
	doc.Add("#home", fakedriver.NewElement("a", "Home").Set("href", "/"))
	s, d := newTestSession(t, doc)
	l := NewLink(s, "#footer a", "Footer Link")

	if v, _ := l.Href(); v != "http://elementalselenium.com/" {
		t.Errorf("Href() = %q", v)
	}
	if ok, _ := l.OpensInNewTab(); !ok {
		t.Error("OpensInNewTab() = false for target _blank")
	}
	if v, _ := l.LinkText(); v != "Elemental Selenium" {
		t.Errorf("LinkText() = %q", v)
	}
	if err := l.RightClick(); err != nil {
		t.Fatalf("RightClick() returned error: %v", err)
	}
	if el.ContextClicks != 1 || len(el.Buttons) != 1 || el.Buttons[0] != selenium.RightButton || len(d.Buttons) != 0 {
		t.Errorf("RightClick() opened %d context menus with buttons %v (driver %v)", el.ContextClicks, el.Buttons, d.Buttons)
	}
	if err := l.Click(); err != nil || el.Clicks != 1 {
		t.Errorf("Click() = %v, clicks = %d", err, el.Clicks)
	}

	home := NewLink(s, "#home", "")
	if ok, _ := home.OpensInNewTab(); ok {
		t.Error("OpensInNewTab() = true without a target")
	}
	if v, err := home.Target(); v != "" || err != nil {
		t.Errorf("Target() = %q, %v; want empty", v, err)
	}
}
