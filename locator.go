package pom

import (
	"fmt"
	"strings"
)

// PreciseText returns an XPath selector matching any node whose own text is
// exactly text.
//
//	PreciseText("Login") // //*[text()='Login']
func PreciseText(text string) string {
	return fmt.Sprintf("//*[text()=%s]", textLiteral(text))
}

// PartialText returns an XPath selector matching any node whose own text
// contains text.
//
//	PartialText("Log") // //*[contains(text(),'Log')]
func PartialText(text string) string {
	return fmt.Sprintf("//*[contains(text(),%s)]", textLiteral(text))
}

// textLiteral is xpathLiteral preferring single quotes.
func textLiteral(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	return xpathLiteral(s)
}

// xpathLiteral quotes s as an XPath string literal. XPath 1.0 has no escape
// sequence, so strings holding both quote kinds are built with concat().
func xpathLiteral(s string) string {
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	parts := strings.Split(s, `"`)
	quoted := make([]string, 0, 2*len(parts)-1)
	for i, p := range parts {
		if i > 0 {
			quoted = append(quoted, `'"'`)
		}
		if p != "" {
			quoted = append(quoted, `"`+p+`"`)
		}
	}
	return "concat(" + strings.Join(quoted, ", ") + ")"
}
