package pages

import (
	"github.com/wanmail/pom"
)

// AddRemoveElementsPage adds and deletes buttons on demand.
type AddRemoveElementsPage struct {
	*pom.Page

	AddElementButton *pom.Button
	DeleteButton     *pom.Button
}

// NewAddRemoveElementsPage returns the page bound to s.
func NewAddRemoveElementsPage(s *pom.Session) *AddRemoveElementsPage {
	heading := pom.NewLabel(s, pom.PreciseText("Add/Remove Elements"), "Add/Remove Elements Label")
	return &AddRemoveElementsPage{
		Page:             pom.NewPage(s, heading, "Add/Remove Elements Page"),
		AddElementButton: pom.NewButton(s, `//button[@onclick="addElement()"]`, "Add Element Button"),
		DeleteButton:     pom.NewButton(s, `//button[@onclick="deleteElement()"]`, "Delete Button"),
	}
}

// DeleteButtonCount returns how many delete buttons are on the page.
func (p *AddRemoveElementsPage) DeleteButtonCount() (int, error) {
	return p.DeleteButton.Count()
}

// IsAddButtonDisplayed waits for the add button.
func (p *AddRemoveElementsPage) IsAddButtonDisplayed() (bool, error) {
	return p.AddElementButton.State().WaitForDisplayed()
}

// ClickAddElementButton adds one delete button.
func (p *AddRemoveElementsPage) ClickAddElementButton() error {
	return p.AddElementButton.Click()
}

// IsDeleteButtonDisplayed waits for a delete button.
func (p *AddRemoveElementsPage) IsDeleteButtonDisplayed() (bool, error) {
	return p.DeleteButton.State().WaitForDisplayed()
}

// ClickDeleteButton removes the first delete button.
func (p *AddRemoveElementsPage) ClickDeleteButton() error {
	return p.DeleteButton.Click()
}

// IsDeleteButtonNotDisplayed waits for the delete buttons to disappear.
func (p *AddRemoveElementsPage) IsDeleteButtonNotDisplayed() (bool, error) {
	return p.DeleteButton.State().WaitForDisplayed(pom.Reverse())
}
