package pom

import "github.com/sirupsen/logrus"

// Page is the base of page objects: a name and the element whose visibility
// means the page is loaded. Concrete pages embed it and add typed fields.
//
// Nothing enforces that IsOpened is called before other page actions.
type Page struct {
	session *Session
	unique  Node
	name    string
}

// NewPage returns a page identified by unique.
func NewPage(s *Session, unique Node, name string) *Page {
	return &Page{session: s, unique: unique, name: name}
}

// Name returns the page name.
func (p *Page) Name() string { return p.name }

// UniqueElement returns the element that identifies the page.
func (p *Page) UniqueElement() Node { return p.unique }

// Session returns the session the page lives in.
func (p *Page) Session() *Session { return p.session }

// Logger returns a logger tagged with the page name.
func (p *Page) Logger() logrus.FieldLogger {
	return p.session.logger.WithField("page", p.name)
}

// IsOpened waits for the unique element to be displayed, 30s by default. On
// timeout it returns false with the *TimeoutError.
func (p *Page) IsOpened(opts ...WaitOption) (bool, error) {
	p.Logger().Infof("Waiting for page %q to load", p.name)
	opts = append([]WaitOption{WithTimeout(DefaultPageLoadTimeout)}, opts...)
	opened, err := p.unique.State().WaitForDisplayed(opts...)
	p.Logger().Infof("Page %q is opened - %t", p.name, opened)
	return opened, err
}

// Open navigates to path, resolved against the session base URL.
func (p *Page) Open(path string) error {
	return p.session.NavigateTo(path)
}

// Title returns the document title.
func (p *Page) Title() (string, error) {
	return p.session.Title()
}
