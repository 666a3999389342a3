package cv

import (
	"bytes"
	"encoding/json"
	"strings"
)

// SkillsShape records which JSON shape the technical skills arrived in.
type SkillsShape int

const (
	ShapeAbsent SkillsShape = iota
	ShapeList
	ShapeDelimited
	ShapeKeyed
)

func (s SkillsShape) String() string {
	switch s {
	case ShapeList:
		return "list"
	case ShapeDelimited:
		return "delimited"
	case ShapeKeyed:
		return "keyed"
	default:
		return "absent"
	}
}

// keyedSkillFields are checked in order; the first one holding an array wins.
var keyedSkillFields = []string{"flat", "skills", "items"}

// TechnicalSkills is the technicalSkills field after shape dispatch. Items is
// always a plain sequence regardless of how the document spelled it.
type TechnicalSkills struct {
	Shape SkillsShape
	Items []string
}

func (t *TechnicalSkills) UnmarshalJSON(data []byte) error {
	t.Shape, t.Items = NormalizeTechSkills(data)
	return nil
}

// NormalizeTechSkills turns any JSON value into a list of skill strings.
//
// Arrays pass through, strings are split on commas, and objects yield the
// first of flat, skills or items that holds an array. A member that is present
// but not an array is skipped, never stringified. Anything else is empty.
func NormalizeTechSkills(raw []byte) (SkillsShape, []string) {
	raw = bytes.TrimSpace(raw)
	if isFalsy(raw) {
		return ShapeAbsent, []string{}
	}
	switch raw[0] {
	case '[':
		items, ok := arrayItems(raw)
		if !ok {
			return ShapeAbsent, []string{}
		}
		return ShapeList, items
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ShapeAbsent, []string{}
		}
		return ShapeDelimited, splitDelimited(s)
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return ShapeAbsent, []string{}
		}
		for _, name := range keyedSkillFields {
			member := bytes.TrimSpace(fields[name])
			if len(member) == 0 || member[0] != '[' {
				continue
			}
			if items, ok := arrayItems(member); ok {
				return ShapeKeyed, items
			}
		}
	}
	return ShapeAbsent, []string{}
}

func arrayItems(raw []byte) ([]string, bool) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, false
	}
	items := make([]string, 0, len(elems))
	for _, e := range elems {
		items = append(items, scalarText(bytes.TrimSpace(e)))
	}
	return items, true
}

func splitDelimited(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
