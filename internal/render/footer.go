package render

import (
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Zachkp/cvsite/internal/cv"
	"github.com/Zachkp/cvsite/internal/dom"
)

// Footer renders the site footer from basics: name and address, contact
// links and a copyright line for the current year.
func (r *Renderer) Footer(b cv.Basics) *html.Node {
	name := Name(b)

	address := dom.El(atom.P, dom.Attrs{})
	for i, line := range b.Location.Lines() {
		if i > 0 {
			address.AppendChild(dom.El(atom.Br, dom.Attrs{}))
		}
		address.AppendChild(dom.Text(line))
	}

	links := dom.El(atom.P, dom.Attrs{})
	addLink := func(href, text string, external bool) {
		if links.FirstChild != nil {
			links.AppendChild(dom.Text(highlightSeparator))
		}
		attrs := map[string]string{"href": href}
		if external {
			attrs["target"] = "_blank"
			attrs["rel"] = "noreferrer"
		}
		links.AppendChild(dom.El(atom.A, dom.Attrs{Class: "footer-link", Attr: attrs}, dom.Text(text)))
	}
	if b.Email != "" {
		addLink("mailto:"+string(b.Email), "Email", false)
	}
	if p, ok := b.Profile("LinkedIn"); ok && p.URL != "" {
		addLink(string(p.URL), "LinkedIn", true)
	}

	return dom.El(atom.Footer, dom.Attrs{Class: "footer"},
		dom.El(atom.Div, dom.Attrs{Class: "footer-content"},
			dom.El(atom.Div, dom.Attrs{Class: "footer-section"},
				dom.El(atom.H4, dom.Attrs{}, dom.Text(name)),
				address,
			),
			dom.El(atom.Div, dom.Attrs{Class: "footer-section"},
				dom.El(atom.H4, dom.Attrs{}, dom.Text(ConnectHeading)),
				links,
			),
		),
		dom.El(atom.Div, dom.Attrs{Class: "footer-bottom"},
			dom.Text(fmt.Sprintf("© %d %s. %s", r.now().Year(), name, RightsReserved)),
		),
	)
}
