package pages

import (
	"github.com/wanmail/pom"
	pomlog "github.com/wanmail/pom/log"
)

// LoginPage is the form authentication example.
type LoginPage struct {
	*pom.Page

	Username *pom.Input
	Password *pom.Input
	Submit   *pom.Button
	Flash    *pom.Label
}

// NewLoginPage returns the page bound to s.
func NewLoginPage(s *pom.Session) *LoginPage {
	heading := pom.NewLabel(s, pom.PreciseText("Login Page"), "Login Page Label")
	return &LoginPage{
		Page:     pom.NewPage(s, heading, "Login Page"),
		Username: pom.NewInput(s, "#username", "Username Input"),
		Password: pom.NewInput(s, "#password", "Password Input"),
		Submit:   pom.NewButton(s, `button[type="submit"]`, "Login Button"),
		Flash:    pom.NewLabel(s, "#flash", "Flash Message"),
	}
}

// Login fills in the credentials and submits the form.
func (p *LoginPage) Login(username, password string) error {
	pomlog.Step(p.Logger(), "Logging in as "+username)
	if err := p.Username.SetValue(username); err != nil {
		return err
	}
	if err := p.Password.SetValue(password); err != nil {
		return err
	}
	return p.Submit.Click()
}

// FlashMessage waits for the flash message and returns its text.
func (p *LoginPage) FlashMessage() (string, error) {
	return p.Flash.Text()
}
