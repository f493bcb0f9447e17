package pom

import (
	"testing"

	"github.com/wanmail/pom/internal/fakedriver"
)

func TestCheckboxIdempotent(t *testing.T) {
	doc := fakedriver.NewDocument("")
	el := fakedriver.NewElement("input", "").Set("type", "checkbox")
	doc.Add("#terms", el)
	s, _ := newTestSession(t, doc)
	c := NewCheckbox(s, "#terms", "Terms")

	if err := c.Uncheck(); err != nil {
		t.Fatalf("Uncheck() returned error: %v", err)
	}
	if el.Clicks != 0 {
		t.Errorf("Uncheck() of an unchecked box clicked %d times", el.Clicks)
	}
	for i := 0; i < 2; i++ {
		if err := c.Check(); err != nil {
			t.Fatalf("Check() returned error: %v", err)
		}
	}
	if el.Clicks != 1 {
		t.Errorf("Check() twice clicked %d times, want 1", el.Clicks)
	}
	if ok, _ := c.IsChecked(); !ok {
		t.Error("IsChecked() = false after Check()")
	}
	if err := c.SetChecked(false); err != nil {
		t.Fatalf("SetChecked(false) returned error: %v", err)
	}
	if err := c.Toggle(); err != nil {
		t.Fatalf("Toggle() returned error: %v", err)
	}
	if ok, _ := c.IsChecked(); !ok || el.Clicks != 3 {
		t.Errorf("after SetChecked(false) and Toggle: checked=%t, clicks=%d", ok, el.Clicks)
	}
}

func TestRadioButton(t *testing.T) {
	doc := fakedriver.NewDocument("")
	el := fakedriver.NewElement("input", "").Set("type", "radio").Set("name", "color").Set("value", "red")
	doc.Add("#red", el)
	s, _ := newTestSession(t, doc)
	r := NewRadioButton(s, "#red", "Red")

	for i := 0; i < 3; i++ {
		if err := r.Select(); err != nil {
			t.Fatalf("Select() returned error: %v", err)
		}
	}
	if el.Clicks != 1 {
		t.Errorf("Select() three times clicked %d times, want 1", el.Clicks)
	}
	if ok, _ := r.IsSelected(); !ok {
		t.Error("IsSelected() = false after Select()")
	}
	v, _ := r.Value()
	g, _ := r.GroupName()
	if v != "red" || g != "color" {
		t.Errorf("Value, GroupName = %q, %q", v, g)
	}
}
