// Package contact turns a contact-form submission into a mailto link for the
// visitor's own mail client. Nothing is sent server-side.
package contact

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrNoRecipient = errors.New("contact: no recipient address configured")

// Message holds the three form fields.
type Message struct {
	Name    string `form:"contactName"`
	Email   string `form:"contactEmail"`
	Message string `form:"contactMessage"`
}

func (m Message) Subject() string {
	return "New message from " + m.Name
}

func (m Message) Body() string {
	return fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", m.Name, m.Email, m.Message)
}

// MailtoURI builds mailto:<to>?subject=…&body=… with every parameter
// percent-encoded (spaces as %20).
func MailtoURI(to string, m Message) (string, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return "", ErrNoRecipient
	}
	return "mailto:" + to +
		"?subject=" + encodeComponent(m.Subject()) +
		"&body=" + encodeComponent(m.Body()), nil
}

// encodeComponent escapes everything but unreserved characters. QueryEscape
// already emits '+' as %2B, so the remaining '+' are spaces.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
