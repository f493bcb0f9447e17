package pom

import (
	"errors"
	"testing"

	"github.com/wanmail/pom/internal/fakedriver"
)

func TestLabelFor(t *testing.T) {
	email := fakedriver.NewElement("input", "").Set("id", "email")
	label := fakedriver.NewElement("label", "Email *").Set("for", "email")
	doc := fakedriver.NewDocument("").
		Add("label.email", label).
		Add(`//*[@id="email"]`, email)
	s, _ := newTestSession(t, doc)
	l := NewLabel(s, "label.email", "Email")

	if v, _ := l.For(); v != "email" {
		t.Errorf("For() = %q", v)
	}
	got, err := l.AssociatedInput()
	if err != nil {
		t.Fatalf("AssociatedInput() returned error: %v", err)
	}
	if got != email {
		t.Errorf("AssociatedInput() = %v, want the #email input", got)
	}
	if ok, _ := l.IsRequired(""); !ok {
		t.Error(`IsRequired("") = false`)
	}
	if ok, _ := l.IsRequired("(required)"); ok {
		t.Error(`IsRequired("(required)") = true`)
	}
	if err := l.Click(); err != nil || label.Clicks != 1 {
		t.Errorf("Click() = %v, clicks = %d", err, label.Clicks)
	}
}

func TestLabelNested(t *testing.T) {
	box := fakedriver.NewElement("input", "").Set("type", "checkbox")
	doc := fakedriver.NewDocument("").
		Add("label.terms", fakedriver.NewElement("label", "I agree").Add("input", box)).
		Add("label.empty", fakedriver.NewElement("label", "Nothing here"))
	s, _ := newTestSession(t, doc)

	got, err := NewLabel(s, "label.terms", "Terms").AssociatedInput()
	if err != nil || got != box {
		t.Errorf("AssociatedInput() = %v, %v; want the nested input", got, err)
	}

	_, err = NewLabel(s, "label.empty", "Empty").AssociatedInput()
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Kind != "input" || nf.Element != "Empty" {
		t.Errorf("AssociatedInput() = %v, want *NotFoundError", err)
	}
	if ok, _ := NewLabel(s, "label.terms", "").ContainsText("agree"); !ok {
		t.Error("ContainsText(agree) = false")
	}
}
