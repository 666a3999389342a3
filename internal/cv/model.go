package cv

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Document is the root of cv.json. Every field is optional and decodes
// leniently; only a root that is not a JSON object is rejected.
type Document struct {
	Basics          Basics              `json:"basics"`
	Summary         Text                `json:"summary"`
	CoreSkills      List[Text]          `json:"coreSkills"`
	TechnicalSkills TechnicalSkills     `json:"technicalSkills"`
	Experience      List[Job]           `json:"experience"`
	Education       List[Education]     `json:"education"`
	Certifications  List[Certification] `json:"certifications"`

	raw []byte
}

func (d *Document) UnmarshalJSON(data []byte) error {
	type plain Document
	var p plain
	if err := decodeObject(data, &p); err != nil {
		return err
	}
	*d = Document(p)
	return nil
}

// Raw returns the bytes the document was parsed from.
func (d *Document) Raw() []byte { return d.raw }

// Tagline prefers the root summary and falls back to basics.summary.
func (d *Document) Tagline() string {
	if d.Summary != "" {
		return string(d.Summary)
	}
	return string(d.Basics.Summary)
}

// CertificationNames lists the display names of all certifications.
func (d *Document) CertificationNames() []string {
	names := make([]string, 0, len(d.Certifications))
	for _, c := range d.Certifications {
		if n := c.DisplayName(); n != "" {
			names = append(names, n)
		}
	}
	return names
}

type Basics struct {
	Name     Text          `json:"name"`
	Label    Text          `json:"label"`
	Email    Text          `json:"email"`
	Phone    Text          `json:"phone"`
	Summary  Text          `json:"summary"`
	Location Location      `json:"location"`
	Profiles List[Profile] `json:"profiles"`
}

func (b *Basics) UnmarshalJSON(data []byte) error {
	type plain Basics
	var p plain
	if err := decodeObject(data, &p); err != nil {
		*b = Basics{}
		return nil
	}
	*b = Basics(p)
	return nil
}

// Profile finds the first profile whose network matches name, ignoring case.
func (b Basics) Profile(network string) (Profile, bool) {
	for _, p := range b.Profiles {
		if strings.EqualFold(string(p.Network), network) {
			return p, true
		}
	}
	return Profile{}, false
}

type Location struct {
	Address     Text `json:"address"`
	City        Text `json:"city"`
	Region      Text `json:"region"`
	CountryCode Text `json:"countryCode"`
}

func (l *Location) UnmarshalJSON(data []byte) error {
	type plain Location
	var p plain
	if err := decodeObject(data, &p); err != nil {
		*l = Location{}
		return nil
	}
	*l = Location(p)
	return nil
}

// Lines returns the street address and a "City, Region" line, skipping empty parts.
func (l Location) Lines() []string {
	var lines []string
	if l.Address != "" {
		lines = append(lines, string(l.Address))
	}
	var place []string
	for _, part := range []Text{l.City, l.Region} {
		if part != "" {
			place = append(place, string(part))
		}
	}
	if len(place) > 0 {
		lines = append(lines, strings.Join(place, ", "))
	}
	return lines
}

type Profile struct {
	Network  Text `json:"network"`
	Username Text `json:"username"`
	URL      Text `json:"url"`
}

func (p *Profile) UnmarshalJSON(data []byte) error {
	type plain Profile
	var v plain
	if err := decodeObject(data, &v); err != nil {
		return err
	}
	*p = Profile(v)
	return nil
}

// Job is one experience entry. Non-object entries are dropped from the list.
type Job struct {
	Title       Text       `json:"title"`
	Role        Text       `json:"role"`
	Company     Text       `json:"company"`
	Location    Text       `json:"location"`
	Dates       Text       `json:"dates"`
	StartDate   Text       `json:"startDate"`
	EndDate     Text       `json:"endDate"`
	Highlights  List[Text] `json:"highlights"`
	Description Text       `json:"description"`
}

func (j *Job) UnmarshalJSON(data []byte) error {
	type plain Job
	var v plain
	if err := decodeObject(data, &v); err != nil {
		return err
	}
	*j = Job(v)
	return nil
}

func (j Job) DisplayTitle() string {
	if j.Title != "" {
		return string(j.Title)
	}
	return string(j.Role)
}

// DisplayDates returns dates, or the non-empty start and end joined by an en dash.
func (j Job) DisplayDates() string {
	if j.Dates != "" {
		return string(j.Dates)
	}
	var parts []string
	for _, d := range []Text{j.StartDate, j.EndDate} {
		if d != "" {
			parts = append(parts, string(d))
		}
	}
	return strings.Join(parts, " – ")
}

// Education accepts a record or a bare string naming the institution.
type Education struct {
	Institution  Text       `json:"institution"`
	Degree       Text       `json:"degree"`
	Dates        Text       `json:"dates"`
	Grade        Text       `json:"grade"`
	Description  Text       `json:"description"`
	Activities   List[Text] `json:"activities"`
	AreasOfStudy List[Text] `json:"areasOfStudy"`
	Highlights   List[Text] `json:"highlights"`
	Image        Text       `json:"image"`
}

func (e *Education) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		*e = Education{Institution: Text(scalarText(data))}
		return nil
	}
	type plain Education
	var v plain
	if err := decodeObject(data, &v); err != nil {
		return err
	}
	*e = Education(v)
	return nil
}

// Certification accepts a record or a bare string naming the certificate.
type Certification struct {
	Name        Text `json:"name"`
	Title       Text `json:"title"`
	Description Text `json:"description"`
	Issuer      Text `json:"issuer"`
	Date        Text `json:"date"`
	URL         Text `json:"url"`
	Image       Text `json:"image"`
}

func (c *Certification) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		*c = Certification{Name: Text(scalarText(data))}
		return nil
	}
	type plain Certification
	var v plain
	if err := decodeObject(data, &v); err != nil {
		return err
	}
	*c = Certification(v)
	return nil
}

func (c Certification) DisplayName() string {
	switch {
	case c.Name != "":
		return string(c.Name)
	case c.Title != "":
		return string(c.Title)
	}
	return string(c.Description)
}

// Parse decodes a CV document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	doc.raw = data
	return &doc, nil
}
