package cv

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

var errNotObject = errors.New("cv: value is not an object")

// Text is a string field that tolerates any JSON scalar. Strings decode as-is,
// numbers keep their literal form, true becomes "true" and everything else is
// the empty string.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	*t = Text(scalarText(bytes.TrimSpace(data)))
	return nil
}

func (t Text) String() string { return string(t) }

// List coerces a loosely typed JSON field into a sequence: falsy values give an
// empty list, arrays keep the elements that decode as T, and any other value
// is wrapped as a single element.
type List[T any] []T

func (l *List[T]) UnmarshalJSON(data []byte) error {
	*l = decodeList[T](bytes.TrimSpace(data))
	return nil
}

func decodeList[T any](data []byte) List[T] {
	if isFalsy(data) {
		return nil
	}
	if data[0] != '[' {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return nil
		}
		return List[T]{v}
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil
	}
	out := make(List[T], 0, len(raws))
	for _, raw := range raws {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Strings returns the non-empty entries of items in order.
func Strings(items List[Text]) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it != "" {
			out = append(out, string(it))
		}
	}
	return out
}

func scalarText(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	switch c := data[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ""
		}
		return s
	case c == '-' || (c >= '0' && c <= '9'):
		if _, err := strconv.ParseFloat(string(data), 64); err != nil {
			return ""
		}
		return string(data)
	case string(data) == "true":
		return "true"
	}
	return ""
}

// isFalsy reports whether data is empty, null, false, zero or the empty string.
func isFalsy(data []byte) bool {
	if len(data) == 0 {
		return true
	}
	switch string(data) {
	case "null", "false", `""`:
		return true
	}
	if c := data[0]; c == '-' || (c >= '0' && c <= '9') {
		f, err := strconv.ParseFloat(string(data), 64)
		return err == nil && f == 0
	}
	return false
}

func decodeObject(data []byte, dst any) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return errNotObject
	}
	return json.Unmarshal(data, dst)
}
