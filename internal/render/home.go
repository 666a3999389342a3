package render

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Zachkp/cvsite/internal/cv"
	"github.com/Zachkp/cvsite/internal/dom"
)

// Name falls back to DefaultName.
func Name(b cv.Basics) string {
	if b.Name != "" {
		return string(b.Name)
	}
	return DefaultName
}

// HeroButtons renders the call-to-action links of the home page.
func (r *Renderer) HeroButtons(b cv.Basics) []*html.Node {
	return []*html.Node{
		dom.El(atom.A, dom.Attrs{Class: "btn", Attr: map[string]string{"href": "./certifications.html#contact"}},
			dom.Text(ContactButton)),
		dom.El(atom.A, dom.Attrs{Class: "btn btn-secondary", Attr: map[string]string{"href": "./experience.html"}},
			dom.Text(ProjectsButton)),
		dom.El(atom.A, dom.Attrs{Class: "btn btn-secondary", Attr: map[string]string{
			"href":     "./cv.json",
			"download": r.DownloadName(string(b.Name)),
		}}, dom.Text(DownloadButton)),
	}
}

// Highlights renders the summary cards: top core skills, role count and
// certification count. Cards without data are left out.
func Highlights(doc *cv.Document) []*html.Node {
	var cards []*html.Node
	if core := cv.Strings(doc.CoreSkills); len(core) > 0 {
		cards = append(cards, highlightCard(CoreExpertiseTitle, strings.Join(head(core, 5), highlightSeparator)))
	}
	if n := len(doc.Experience); n > 0 {
		cards = append(cards, highlightCard(fmt.Sprintf("%d+ Roles", n), RolesBlurb))
	}
	if names := doc.CertificationNames(); len(names) > 0 {
		cards = append(cards, highlightCard(
			fmt.Sprintf("%d Certifications", len(names)),
			strings.Join(head(names, 3), highlightSeparator),
		))
	}
	return cards
}

func highlightCard(title, body string) *html.Node {
	return dom.El(atom.Div, dom.Attrs{Class: "highlight-card"},
		dom.El(atom.H3, dom.Attrs{}, dom.Text(title)),
		dom.El(atom.P, dom.Attrs{}, dom.Text(body)),
	)
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
