package pom

// Link wraps an anchor.
type Link struct {
	*Element
}

// NewLink returns a Link. An empty name defaults to "Link".
func NewLink(s *Session, selector, name string) *Link {
	return &Link{newTyped(s, selector, name, "Link")}
}

// Click waits for the link to be clickable and clicks it.
func (l *Link) Click() error {
	l.log().WithField("action", "click").Info("Clicking link")
	return l.click()
}

// Href returns the href attribute.
func (l *Link) Href() (string, error) {
	l.log().Debug("Getting href")
	return l.Attribute("href")
}

// Target returns the target attribute.
func (l *Link) Target() (string, error) { return l.Attribute("target") }

// OpensInNewTab reports whether the link targets _blank.
func (l *Link) OpensInNewTab() (bool, error) {
	t, err := l.Target()
	return t == "_blank", err
}

// LinkText returns the visible link text.
func (l *Link) LinkText() (string, error) { return l.Text() }

// RightClick waits for the link to be clickable and opens its context menu.
func (l *Link) RightClick() error {
	l.log().WithField("action", "right-click").Info("Right clicking link")
	if _, err := l.State().WaitForClickable(); err != nil {
		return err
	}
	we, err := l.Resolve()
	if err != nil {
		return err
	}
	return l.wrap("right click", l.contextClick(we))
}
