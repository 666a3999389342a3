// Package dom builds and edits HTML node trees for the page renderers.
package dom

import (
	"bytes"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attrs are the attributes El understands. HTML is raw inner markup placed
// before the children; Attr is passed through verbatim.
type Attrs struct {
	Class string
	HTML  string
	Attr  map[string]string
}

// El creates a detached element. Children are appended in order.
func El(tag atom.Atom, attrs Attrs, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: tag, Data: tag.String()}
	if attrs.Class != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: attrs.Class})
	}
	keys := make([]string, 0, len(attrs.Attr))
	for k := range attrs.Attr {
		if k != "class" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		n.Attr = append(n.Attr, html.Attribute{Key: k, Val: attrs.Attr[k]})
	}
	if attrs.HTML != "" {
		for _, c := range parseInner(n, attrs.HTML) {
			n.AppendChild(c)
		}
	}
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

// Text creates a text node; the renderer escapes it on output.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Texts turns each string into a text node.
func Texts(items ...string) []*html.Node {
	out := make([]*html.Node, 0, len(items))
	for _, s := range items {
		out = append(out, Text(s))
	}
	return out
}

// Render serialises the nodes in order.
func Render(nodes ...*html.Node) (string, error) {
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func parseInner(context *html.Node, markup string) []*html.Node {
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return []*html.Node{Text(markup)}
	}
	return nodes
}
