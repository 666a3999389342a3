package render

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Zachkp/cvsite/internal/cv"
	"github.com/Zachkp/cvsite/internal/dom"
)

// ContactInfo lists email, phone and every profile that has a URL.
func ContactInfo(b cv.Basics) []*html.Node {
	var nodes []*html.Node
	if b.Email != "" {
		nodes = append(nodes, labelledContact("Email", "mailto:"+string(b.Email), string(b.Email)))
	}
	if b.Phone != "" {
		nodes = append(nodes, labelledContact("Phone", "tel:"+string(b.Phone), string(b.Phone)))
	}
	for _, p := range b.Profiles {
		if p.URL == "" {
			continue
		}
		label := string(p.Network)
		if label == "" {
			label = "Link"
		}
		nodes = append(nodes, dom.El(atom.Div, dom.Attrs{Class: "contact-item"},
			dom.El(atom.A, dom.Attrs{Attr: map[string]string{
				"href":   string(p.URL),
				"target": "_blank",
				"rel":    "noreferrer",
			}}, dom.Text(label)),
		))
	}
	return nodes
}

func labelledContact(label, href, text string) *html.Node {
	return dom.El(atom.Div, dom.Attrs{Class: "contact-item"},
		dom.El(atom.Div, dom.Attrs{},
			dom.El(atom.Div, dom.Attrs{Class: "contact-label"}, dom.Text(label)),
			dom.El(atom.A, dom.Attrs{Attr: map[string]string{"href": href}}, dom.Text(text)),
		),
	)
}
