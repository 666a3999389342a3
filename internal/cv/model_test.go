package cv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EmptyDocument(t *testing.T) {
	doc, err := Parse([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, doc.Experience)
	assert.Empty(t, doc.TechnicalSkills.Items)
	assert.Equal(t, "", doc.Tagline())
}

func TestParse_RejectsNonObjectRoot(t *testing.T) {
	for _, raw := range []string{`[]`, `"cv"`, `42`, `not json`} {
		_, err := Parse([]byte(raw))
		assert.Error(t, err, raw)
	}
}

func TestParse_MalformedFieldsDegrade(t *testing.T) {
	raw := `{
		"basics": "nobody",
		"coreSkills": "Leadership",
		"experience": {"title": "Only job", "highlights": "Single highlight"},
		"certifications": ["PRINCE2", {"title": "Scrum Master", "image": "Certification/csm.png"}, 7],
		"education": ["Pune University", {"institution": "CBS", "activities": null}]
	}`
	doc, err := Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, Basics{}, doc.Basics)
	assert.Equal(t, List[Text]{"Leadership"}, doc.CoreSkills)

	require.Len(t, doc.Experience, 1)
	assert.Equal(t, List[Text]{"Single highlight"}, doc.Experience[0].Highlights)

	require.Len(t, doc.Certifications, 2)
	assert.Equal(t, "PRINCE2", doc.Certifications[0].DisplayName())
	assert.Equal(t, "Scrum Master", doc.Certifications[1].DisplayName())
	assert.Equal(t, []string{"PRINCE2", "Scrum Master"}, doc.CertificationNames())

	require.Len(t, doc.Education, 2)
	assert.Equal(t, Text("Pune University"), doc.Education[0].Institution)
	assert.Empty(t, doc.Education[1].Activities)
}

func TestJob_DisplayDates(t *testing.T) {
	assert.Equal(t, "2019 – 2021", Job{Dates: "2019 – 2021", StartDate: "x"}.DisplayDates())
	assert.Equal(t, "Jan 2020 – Present", Job{StartDate: "Jan 2020", EndDate: "Present"}.DisplayDates())
	assert.Equal(t, "Jan 2020", Job{StartDate: "Jan 2020"}.DisplayDates())
	assert.Equal(t, "", Job{}.DisplayDates())
}

func TestBasics(t *testing.T) {
	doc, err := Parse([]byte(`{
		"summary": "",
		"basics": {
			"name": "Govinda Prasad",
			"summary": "Product owner",
			"location": {"address": "Eremitageparken 215", "city": "Lyngby", "region": "Denmark"},
			"profiles": [{"network": "LinkedIn", "url": "https://linkedin.com/in/govindaprasad"}, "bad"]
		}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Product owner", doc.Tagline())
	assert.Equal(t, []string{"Eremitageparken 215", "Lyngby, Denmark"}, doc.Basics.Location.Lines())
	require.Len(t, doc.Basics.Profiles, 1)
	p, ok := doc.Basics.Profile("linkedin")
	require.True(t, ok)
	assert.Equal(t, Text("https://linkedin.com/in/govindaprasad"), p.URL)
}
