package pom

import (
	"strings"

	"github.com/tebeka/selenium"
)

// strategy picks the WebDriver location strategy for a selector. Selectors
// that look like XPath expressions use XPath, everything else is CSS.
func strategy(selector string) string {
	s := strings.TrimSpace(selector)
	switch {
	case strings.HasPrefix(s, "/"),
		strings.HasPrefix(s, "./"),
		strings.HasPrefix(s, ".."),
		strings.HasPrefix(s, "("):
		return selenium.ByXPATH
	}
	return selenium.ByCSSSelector
}

// descendant builds a selector for nodes matching child below nodes matching
// parent, in the parent's dialect.
func descendant(parent, child string) string {
	if strategy(parent) == selenium.ByXPATH {
		return parent + "//" + child
	}
	return parent + " " + child
}

// isNilValue reports whether err is the client's reply to reading an
// attribute that is not set.
func isNilValue(err error) bool {
	return err != nil && err.Error() == "nil return value"
}
