package render

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Zachkp/cvsite/internal/cv"
	"github.com/Zachkp/cvsite/internal/dom"
)

// CertificationGallery renders the certifications it is given. Entries with
// an image get a full-size display linking to their modal; the rest become
// badges.
func CertificationGallery(certs []cv.Certification) []*html.Node {
	ids := anchors{}
	nodes := make([]*html.Node, 0, len(certs))
	for _, c := range certs {
		name := c.DisplayName()
		if name == "" {
			continue
		}
		if c.Image == "" {
			nodes = append(nodes, dom.El(atom.Span, dom.Attrs{Class: "cert-badge"}, dom.Text(name)))
			continue
		}
		img := dom.El(atom.Img, dom.Attrs{
			Class: "cert-full-image",
			Attr:  map[string]string{"src": assetPath(string(c.Image)), "alt": name},
		})
		media := img
		if id := ids.id("cert-", name); id != "" {
			media = dom.El(atom.A, dom.Attrs{Attr: map[string]string{"href": "#" + id}}, img)
		}
		section := dom.El(atom.Div, dom.Attrs{Class: "cert-display"},
			dom.El(atom.H3, dom.Attrs{Class: "cert-name"}, dom.Text(name)),
		)
		if meta := certMeta(c); meta != "" {
			section.AppendChild(dom.El(atom.P, dom.Attrs{Class: "cert-meta"}, dom.Text(meta)))
		}
		section.AppendChild(media)
		nodes = append(nodes, section)
	}
	return nodes
}

// CertificationModals renders a :target modal for each imaged certification.
// Ids line up with the links produced by CertificationGallery.
func CertificationModals(certs []cv.Certification) []*html.Node {
	ids := anchors{}
	var nodes []*html.Node
	for _, c := range certs {
		name := c.DisplayName()
		if name == "" || c.Image == "" {
			continue
		}
		id := ids.id("cert-", name)
		if id == "" {
			continue
		}
		nodes = append(nodes, dom.El(atom.Div, dom.Attrs{Class: "modal", Attr: map[string]string{"id": id}},
			dom.El(atom.Div, dom.Attrs{Class: "modal-content"},
				dom.El(atom.A, dom.Attrs{Class: "modal-close", Attr: map[string]string{"href": "#"}}, dom.Text("✕")),
				dom.El(atom.Img, dom.Attrs{Attr: map[string]string{"src": assetPath(string(c.Image)), "alt": name}}),
			),
		))
	}
	return nodes
}

func certMeta(c cv.Certification) string {
	var parts []string
	for _, p := range []cv.Text{c.Issuer, c.Date} {
		if p != "" {
			parts = append(parts, string(p))
		}
	}
	return strings.Join(parts, highlightSeparator)
}
