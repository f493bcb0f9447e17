package pom

import (
	"strings"

	"github.com/tebeka/selenium"
)

// ListType is the kind of HTML list.
type ListType string

const (
	OrderedList   ListType = "ordered"
	UnorderedList ListType = "unordered"
)

// List wraps a <ul> or <ol>. Lookups query the live list on every call.
type List struct {
	*Element
}

// NewList returns a List. An empty name defaults to "List".
func NewList(s *Session, selector, name string) *List {
	return &List{newTyped(s, selector, name, "List")}
}

// Items returns the <li> children.
func (l *List) Items() ([]selenium.WebElement, error) {
	l.log().Debug("Getting all items")
	return l.findIn("li")
}

// ItemCount returns the number of items.
func (l *List) ItemCount() (int, error) {
	items, err := l.Items()
	return len(items), err
}

// ItemTexts returns the trimmed text of every item.
func (l *List) ItemTexts() ([]string, error) {
	items, err := l.Items()
	if err != nil {
		return nil, err
	}
	texts := make([]string, 0, len(items))
	for _, it := range items {
		t, err := it.Text()
		if err != nil {
			return nil, l.wrap("read item of", err)
		}
		texts = append(texts, strings.TrimSpace(t))
	}
	return texts, nil
}

// Item returns the item at index i.
func (l *List) Item(i int) (selenium.WebElement, error) {
	items, err := l.Items()
	if err != nil {
		return nil, err
	}
	if err := checkIndex(l.name, "item", i, len(items)); err != nil {
		return nil, err
	}
	return items[i], nil
}

// ItemText returns the text of the item at index i.
func (l *List) ItemText(i int) (string, error) {
	it, err := l.Item(i)
	if err != nil {
		return "", err
	}
	t, err := it.Text()
	if err != nil {
		return "", l.wrap("read item of", err)
	}
	return strings.TrimSpace(t), nil
}

// ClickItem clicks the item at index i.
func (l *List) ClickItem(i int) error {
	l.log().WithField("action", "click").Infof("Clicking item at index %d", i)
	it, err := l.Item(i)
	if err != nil {
		return err
	}
	return l.wrap("click item of", it.Click())
}

// FindItemByText returns the index of the first item whose text equals text,
// or contains it when exact is false. It returns -1 when none matches.
func (l *List) FindItemByText(text string, exact bool) (int, error) {
	l.log().Debugf("Finding item with text %q", text)
	texts, err := l.ItemTexts()
	if err != nil {
		return -1, err
	}
	for i, t := range texts {
		if t == text || (!exact && strings.Contains(t, text)) {
			return i, nil
		}
	}
	return -1, nil
}

// ClickItemByText clicks the first item matching text.
func (l *List) ClickItemByText(text string, exact bool) error {
	i, err := l.FindItemByText(text, exact)
	if err != nil {
		return err
	}
	if i == -1 {
		return &NotFoundError{Element: l.name, Kind: "item", Key: text}
	}
	return l.ClickItem(i)
}

// HasItem reports whether an item matches text.
func (l *List) HasItem(text string, exact bool) (bool, error) {
	i, err := l.FindItemByText(text, exact)
	return i != -1, err
}

// ListType reports whether the list is an <ol> or not.
func (l *List) ListType() (ListType, error) {
	tag, err := l.TagName()
	if err != nil {
		return "", err
	}
	if tag == "ol" {
		return OrderedList, nil
	}
	return UnorderedList, nil
}

// FirstItem returns the first item.
func (l *List) FirstItem() (selenium.WebElement, error) {
	return l.Item(0)
}

// LastItem returns the last item.
func (l *List) LastItem() (selenium.WebElement, error) {
	items, err := l.Items()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, &IndexError{Element: l.name, Kind: "item", Index: -1, Count: 0}
	}
	return items[len(items)-1], nil
}
