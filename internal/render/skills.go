package render

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Zachkp/cvsite/internal/dom"
)

// SkillsGrid renders one skill box per non-empty item.
func SkillsGrid(items []string) []*html.Node {
	nodes := make([]*html.Node, 0, len(items))
	for _, s := range items {
		if s == "" {
			continue
		}
		nodes = append(nodes, skillBox(s))
	}
	return nodes
}

// CategorizedSkills groups "Category: a, b" entries under a heading and
// renders entries without a colon as plain boxes. The label ends at the
// first colon.
func CategorizedSkills(items []string) []*html.Node {
	nodes := make([]*html.Node, 0, len(items))
	for _, s := range items {
		category, list, ok := strings.Cut(s, ":")
		if !ok {
			if s != "" {
				nodes = append(nodes, skillBox(s))
			}
			continue
		}
		sub := dom.El(atom.Div, dom.Attrs{Class: "skills-sub-grid"})
		for _, item := range strings.Split(list, ",") {
			if item = strings.TrimSpace(item); item != "" {
				sub.AppendChild(skillBox(item))
			}
		}
		nodes = append(nodes, dom.El(atom.Div, dom.Attrs{Class: "skill-category-group"},
			dom.El(atom.H3, dom.Attrs{Class: "skill-category"}, dom.Text(strings.TrimSpace(category))),
			sub,
		))
	}
	return nodes
}

func skillBox(s string) *html.Node {
	return dom.El(atom.Div, dom.Attrs{Class: "skill-box"}, dom.Text(s))
}
