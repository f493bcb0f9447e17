package pages

import (
	"github.com/wanmail/pom"
)

// MainPage is the landing page listing every example.
type MainPage struct {
	*pom.Page
}

// NewMainPage returns the landing page bound to s.
func NewMainPage(s *pom.Session) *MainPage {
	heading := pom.NewLabel(s, pom.PreciseText("Welcome to the-internet"), "The Internet Label")
	return &MainPage{pom.NewPage(s, heading, "The Internet Page")}
}

func (p *MainPage) link(name string) *pom.Label {
	return pom.NewLabel(p.Session(), pom.PreciseText(name), name+" Link")
}

// ClickLink follows the example link with the given text.
func (p *MainPage) ClickLink(name string) error {
	return p.link(name).Click()
}
