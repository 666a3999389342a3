// Package render turns CV data into detached HTML subtrees. Nothing here
// touches a page; callers mount the returned nodes with dom.Mount.
package render

import (
	"strconv"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// LogoRule maps a company-name substring to a logo image.
type LogoRule struct {
	Match string `yaml:"match" validate:"required"`
	Image string `yaml:"image" validate:"required"`
}

// DefaultLogos are tried in order; the first substring match wins.
var DefaultLogos = []LogoRule{
	{Match: "Egmont", Image: "egmont.png"},
	{Match: "SAS", Image: "SAS.png"},
	{Match: "Army", Image: "army.jpeg"},
}

type Renderer struct {
	logos        []LogoRule
	now          func() time.Time
	downloadName string
}

type Option func(*Renderer)

func WithLogos(rules []LogoRule) Option {
	return func(r *Renderer) { r.logos = rules }
}

// WithClock fixes the time used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// WithDownloadName sets the file name offered by the Download CV button.
func WithDownloadName(name string) Option {
	return func(r *Renderer) { r.downloadName = name }
}

func New(opts ...Option) *Renderer {
	r := &Renderer{logos: DefaultLogos, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CompanyLogo returns the logo path for company, or "" when no rule matches.
func (r *Renderer) CompanyLogo(company string) string {
	if company == "" {
		return ""
	}
	for _, rule := range r.logos {
		if rule.Match != "" && strings.Contains(company, rule.Match) {
			return assetPath(rule.Image)
		}
	}
	return ""
}

// DownloadName is the configured name, else "<slug of name>-cv.json".
func (r *Renderer) DownloadName(name string) string {
	if r.downloadName != "" {
		return r.downloadName
	}
	if s := slug.Make(name); s != "" {
		return s + "-cv.json"
	}
	return "cv.json"
}

// assetPath makes bare relative paths explicit ("cbs.png" -> "./cbs.png").
func assetPath(p string) string {
	switch {
	case p == "",
		strings.HasPrefix(p, "./"),
		strings.HasPrefix(p, "../"),
		strings.HasPrefix(p, "/"),
		strings.Contains(p, "://"):
		return p
	}
	return "./" + p
}

// anchors hands out unique slug ids within one render.
type anchors map[string]int

func (a anchors) id(prefix string, parts ...string) string {
	base := slug.Make(strings.Join(parts, " "))
	if base == "" {
		return ""
	}
	id := prefix + base
	a[id]++
	if n := a[id]; n > 1 {
		id = id + "-" + strconv.Itoa(n)
	}
	return id
}
