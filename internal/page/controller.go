// Package page dispatches a page shell to the renderers it needs.
package page

import (
	"golang.org/x/net/html"

	"github.com/Zachkp/cvsite/internal/cv"
	"github.com/Zachkp/cvsite/internal/dom"
	"github.com/Zachkp/cvsite/internal/render"
)

// ID is the value of the data-page attribute on <body>.
type ID string

const (
	Home           ID = "home"
	Experience     ID = "experience"
	Skills         ID = "skills"
	Education      ID = "education"
	Certifications ID = "certifications"
)

// All lists the known pages in navigation order.
var All = []ID{Home, Experience, Skills, Education, Certifications}

// Mount point ids.
const (
	MountName            = "name"
	MountTagline         = "tagline"
	MountHeroButtons     = "heroButtons"
	MountHighlights      = "highlights"
	MountExperience      = "experience"
	MountCoreSkills      = "coreSkills"
	MountTechnicalSkills = "technicalSkills"
	MountEducation       = "education"
	MountCertifications  = "certifications"
	MountCertModal       = "certModal"
	MountContactForm     = "contactForm"
	MountContactInfo     = "contactInfo"
	MountFooter          = "footer"
)

// Identify reads the page identifier from the shell.
func Identify(doc *html.Node) ID {
	body := dom.Body(doc)
	if body == nil {
		return ""
	}
	return ID(dom.GetAttr(body, "data-page"))
}

// Known reports whether id selects a render branch.
func (id ID) Known() bool {
	for _, p := range All {
		if p == id {
			return true
		}
	}
	return false
}

type Controller struct {
	r *render.Renderer
}

func NewController(r *render.Renderer) *Controller {
	return &Controller{r: r}
}

// Render fills the mount points of doc for its page. Mount points missing
// from the shell are skipped, and an unknown page gets no page-specific content.
// It returns the identifier it dispatched on.
func (c *Controller) Render(doc *html.Node, data *cv.Document) ID {
	id := Identify(doc)
	mount := func(mountID string, nodes ...*html.Node) {
		if target := dom.ByID(doc, mountID); target != nil {
			dom.Mount(target, nodes...)
		}
	}
	setText := func(mountID, s string) {
		if target := dom.ByID(doc, mountID); target != nil {
			dom.SetText(target, s)
		}
	}

	switch id {
	case Home:
		setText(MountName, render.Name(data.Basics))
		setText(MountTagline, data.Tagline())
		mount(MountHeroButtons, c.r.HeroButtons(data.Basics)...)
		mount(MountHighlights, render.Highlights(data)...)
	case Experience:
		mount(MountExperience, c.r.ExperienceCards(data.Experience)...)
	case Skills:
		mount(MountCoreSkills, render.SkillsGrid(cv.Strings(data.CoreSkills))...)
		mount(MountTechnicalSkills, render.CategorizedSkills(data.TechnicalSkills.Items)...)
	case Education:
		mount(MountEducation, render.EducationCards(data.Education)...)
	case Certifications:
		mount(MountCertifications, render.CertificationGallery(data.Certifications)...)
		mount(MountCertModal, render.CertificationModals(data.Certifications)...)
		if form := dom.ByID(doc, MountContactForm); form != nil && data.Basics.Email != "" {
			dom.SetAttr(form, "data-mailto", string(data.Basics.Email))
		}
		mount(MountContactInfo, render.ContactInfo(data.Basics)...)
	default:
		return id
	}
	mount(MountFooter, c.r.Footer(data.Basics))
	return id
}
