/*
Package pom provides a page-object layer on top of a Selenium WebDriver
session.

Elements are described by a selector and a display name and are resolved
again on every call, so a wrapper survives navigation and re-rendering. Every
action that changes page state first waits for the precondition that makes it
meaningful (clickable before a click, displayed before typing), which keeps
explicit waits out of test code.

A Session owns the driver, the logger and the frame context. Page objects
compose typed wrappers and expose page-level actions.

Example usage:

	package main

	import (
		"fmt"

		"github.com/wanmail/pom"
	)

	// Errors are ignored for brevity.

	func main() {
		s, _ := pom.Launch(pom.Browser("chrome"), pom.Headless())
		defer s.Quit()

		s.NavigateTo("https://the-internet.herokuapp.com/login")

		pom.NewInput(s, "#username", "Username").SetValue("tomsmith")
		pom.NewInput(s, "#password", "Password").SetValue("SuperSecretPassword!")
		pom.NewButton(s, "button[type='submit']", "Login").Click()

		msg, _ := pom.NewLabel(s, "#flash", "Flash message").Text()
		fmt.Printf("Got: %s\n", msg)
	}
*/
package pom
