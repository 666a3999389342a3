package render

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Zachkp/cvsite/internal/cv"
	"github.com/Zachkp/cvsite/internal/dom"
)

// EducationCards renders the entries it is given, nothing else.
func EducationCards(entries []cv.Education) []*html.Node {
	nodes := make([]*html.Node, 0, len(entries))
	for _, edu := range entries {
		institution := string(edu.Institution)
		header := dom.El(atom.Div, dom.Attrs{Class: "edu-header"},
			dom.El(atom.H3, dom.Attrs{}, dom.Text(institution)),
		)
		if edu.Degree != "" {
			header.AppendChild(dom.El(atom.P, dom.Attrs{Class: "edu-degree"}, dom.Text(string(edu.Degree))))
		}
		if edu.Dates != "" {
			header.AppendChild(dom.El(atom.P, dom.Attrs{Class: "edu-dates"}, dom.Text(string(edu.Dates))))
		}
		if edu.Image != "" {
			header.AppendChild(dom.El(atom.Img, dom.Attrs{
				Class: "edu-image",
				Attr:  map[string]string{"src": assetPath(string(edu.Image)), "alt": institution},
			}))
		}

		card := dom.El(atom.Div, dom.Attrs{Class: "edu-card-detailed"}, header)
		if edu.Grade != "" {
			card.AppendChild(dom.El(atom.P, dom.Attrs{Class: "edu-grade"}, dom.Text("Grade: "+string(edu.Grade))))
		}
		if edu.Description != "" {
			card.AppendChild(dom.El(atom.P, dom.Attrs{Class: "edu-description"}, dom.Text(string(edu.Description))))
		}
		for _, section := range []struct {
			heading string
			items   cv.List[cv.Text]
		}{
			{"Activities & Societies", edu.Activities},
			{"Areas of Study", edu.AreasOfStudy},
			{"Highlights", edu.Highlights},
		} {
			items := cv.Strings(section.items)
			if len(items) == 0 {
				continue
			}
			card.AppendChild(dom.El(atom.Div, dom.Attrs{Class: "edu-section"},
				dom.El(atom.H4, dom.Attrs{}, dom.Text(section.heading)),
				list(items),
			))
		}
		nodes = append(nodes, card)
	}
	return nodes
}
