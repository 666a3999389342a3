package page

import (
	"golang.org/x/net/html"

	"github.com/Zachkp/cvsite/internal/dom"
)

const errorClass = "error-msg"

// ErrorMessage is the visible text for a failed load.
func ErrorMessage(err error) string {
	return "Error loading data: " + err.Error()
}

// ShowError writes the load failure into the .error-msg element, or into
// <body> when the shell has none, and makes it visible.
func ShowError(doc *html.Node, err error) {
	target := dom.ByClass(doc, errorClass)
	if target == nil {
		target = dom.Body(doc)
	}
	if target == nil {
		return
	}
	dom.SetAttr(target, "style", "display: block")
	dom.SetText(target, ErrorMessage(err))
}
