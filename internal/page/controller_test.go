package page

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/Zachkp/cvsite/internal/cv"
	"github.com/Zachkp/cvsite/internal/dom"
	"github.com/Zachkp/cvsite/internal/render"
)

const testDoc = `{
	"basics": {"name": "Govinda Prasad", "email": "adnivog02@gmail.com", "summary": "Basics summary"},
	"coreSkills": ["Agile", "Scrum"],
	"technicalSkills": ["Analytics: Power BI, SQL", "Excel"],
	"experience": [{"title": "Product Owner", "company": "Egmont"}],
	"education": ["Copenhagen Business School"],
	"certifications": ["PRINCE2 Certification"]
}`

func parseShell(t *testing.T, page ID, body string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(
		`<!DOCTYPE html><html><head></head><body data-page="` + string(page) + `">` +
			body + `<p class="error-msg"></p><div id="footer"></div></body></html>`))
	require.NoError(t, err)
	return doc
}

func newController() *Controller {
	clock := render.WithClock(func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) })
	return NewController(render.New(clock))
}

func parseDoc(t *testing.T) *cv.Document {
	t.Helper()
	doc, err := cv.Parse([]byte(testDoc))
	require.NoError(t, err)
	return doc
}

func TestRender_Home(t *testing.T) {
	shell := parseShell(t, Home, `<h1 id="name">placeholder</h1><p id="tagline"></p><div id="heroButtons"></div><div id="highlights"></div>`)

	id := newController().Render(shell, parseDoc(t))

	assert.Equal(t, Home, id)
	assert.Equal(t, "Govinda Prasad", dom.TextContent(dom.ByID(shell, MountName)))
	assert.Equal(t, "Basics summary", dom.TextContent(dom.ByID(shell, MountTagline)))
	assert.NotNil(t, dom.ByID(shell, MountHeroButtons).FirstChild)
	assert.Contains(t, dom.TextContent(dom.ByID(shell, MountFooter)), "© 2026 Govinda Prasad.")
}

func TestRender_Skills(t *testing.T) {
	shell := parseShell(t, Skills, `<div id="coreSkills"></div><div id="technicalSkills"></div>`)

	newController().Render(shell, parseDoc(t))

	core := dom.TextContent(dom.ByID(shell, MountCoreSkills))
	assert.Contains(t, core, "Agile")
	assert.Contains(t, core, "Scrum")
	tech := dom.TextContent(dom.ByID(shell, MountTechnicalSkills))
	assert.Contains(t, tech, "Analytics")
	assert.Contains(t, tech, "Power BI")
	assert.Contains(t, tech, "Excel")
	assert.Len(t, dom.AllByClass(shell, "skill-category"), 1)
}

func TestRender_CertificationsSetsMailto(t *testing.T) {
	shell := parseShell(t, Certifications, `<div id="certifications"></div><form id="contactForm"></form><div id="contactInfo"></div>`)

	newController().Render(shell, parseDoc(t))

	assert.Equal(t, "adnivog02@gmail.com", dom.GetAttr(dom.ByID(shell, MountContactForm), "data-mailto"))
	assert.Contains(t, dom.TextContent(dom.ByID(shell, MountCertifications)), "PRINCE2 Certification")
}

func TestRender_MissingMountsAreSkipped(t *testing.T) {
	shell := parseShell(t, Education, ``)

	assert.NotPanics(t, func() { newController().Render(shell, parseDoc(t)) })
	assert.NotNil(t, dom.ByID(shell, MountFooter).FirstChild)
}

func TestRender_UnknownPage(t *testing.T) {
	shell := parseShell(t, "blog", `<div id="experience"></div>`)

	id := newController().Render(shell, parseDoc(t))

	assert.Equal(t, ID("blog"), id)
	assert.False(t, id.Known())
	assert.Nil(t, dom.ByID(shell, MountExperience).FirstChild)
	assert.Nil(t, dom.ByID(shell, MountFooter).FirstChild)
}

func TestRender_Idempotent(t *testing.T) {
	shell := parseShell(t, Experience, `<div id="experience"></div>`)
	c := newController()
	data := parseDoc(t)

	c.Render(shell, data)
	first, err := dom.Render(shell)
	require.NoError(t, err)
	c.Render(shell, data)
	second, err := dom.Render(shell)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, dom.AllByClass(shell, "job-card"), 1)
}

func TestIdentify(t *testing.T) {
	assert.Equal(t, Skills, Identify(parseShell(t, Skills, "")))

	noAttr, err := html.Parse(strings.NewReader(`<html><body></body></html>`))
	require.NoError(t, err)
	assert.Equal(t, ID(""), Identify(noAttr))
}

func TestShowError(t *testing.T) {
	shell := parseShell(t, Home, "")
	ShowError(shell, errors.New("failed to load cv.json: 404 Not Found"))

	msg := dom.ByClass(shell, "error-msg")
	assert.Equal(t, "Error loading data: failed to load cv.json: 404 Not Found", dom.TextContent(msg))
	assert.Equal(t, "display: block", dom.GetAttr(msg, "style"))
}

func TestShowError_FallsBackToBody(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><body data-page="home"><main></main></body></html>`))
	require.NoError(t, err)

	ShowError(doc, errors.New("boom"))

	body := dom.Body(doc)
	assert.Equal(t, "Error loading data: boom", dom.TextContent(body))
	assert.Equal(t, "display: block", dom.GetAttr(body, "style"))
}
