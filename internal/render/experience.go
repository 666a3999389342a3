package render

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Zachkp/cvsite/internal/cv"
	"github.com/Zachkp/cvsite/internal/dom"
)

// ExperienceCards renders one job card per record. The body is the
// highlights list, else the description, else nothing.
func (r *Renderer) ExperienceCards(jobs []cv.Job) []*html.Node {
	ids := anchors{}
	nodes := make([]*html.Node, 0, len(jobs))
	for _, job := range jobs {
		title := job.DisplayTitle()
		company := string(job.Company)

		attrs := dom.Attrs{Class: "job-card"}
		if id := ids.id("job-", company, title); id != "" {
			attrs.Attr = map[string]string{"id": id}
		}
		card := dom.El(atom.Div, attrs)

		if logo := r.CompanyLogo(company); logo != "" {
			card.AppendChild(dom.El(atom.Div, dom.Attrs{Class: "job-logo"},
				dom.El(atom.Img, dom.Attrs{Attr: map[string]string{"src": logo, "alt": company}}),
			))
		}

		content := dom.El(atom.Div, dom.Attrs{Class: "job-content"},
			dom.El(atom.Div, dom.Attrs{Class: "job-title"}, dom.Text(title)),
			dom.El(atom.Div, dom.Attrs{Class: "job-meta"},
				dom.El(atom.Span, dom.Attrs{}, dom.Text(company)),
				dom.El(atom.Span, dom.Attrs{}, dom.Text(string(job.Location))),
				dom.El(atom.Span, dom.Attrs{}, dom.Text(job.DisplayDates())),
			),
		)
		if highlights := cv.Strings(job.Highlights); len(highlights) > 0 {
			content.AppendChild(list(highlights))
		} else if job.Description != "" {
			content.AppendChild(dom.El(atom.P, dom.Attrs{}, dom.Text(string(job.Description))))
		}

		card.AppendChild(content)
		nodes = append(nodes, card)
	}
	return nodes
}

func list(items []string) *html.Node {
	ul := dom.El(atom.Ul, dom.Attrs{})
	for _, it := range items {
		ul.AppendChild(dom.El(atom.Li, dom.Attrs{}, dom.Text(it)))
	}
	return ul
}
