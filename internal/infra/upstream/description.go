package upstream

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DescriptionShape tells which form a weather description arrived in.
type DescriptionShape int

const (
	DescriptionAbsent DescriptionShape = iota
	DescriptionText
	DescriptionRecords
	DescriptionOther
)

func (s DescriptionShape) String() string {
	switch s {
	case DescriptionText:
		return "text"
	case DescriptionRecords:
		return "records"
	case DescriptionOther:
		return "other"
	default:
		return "absent"
	}
}

// WeatherDescription is the weatherDesc field, which the upstream sends as a
// plain string, as a list of {"value": ...} records, or not at all. Any other
// JSON value is kept in Raw and passed through untouched.
type WeatherDescription struct {
	Shape   DescriptionShape
	Text    string
	Records []ValueRecord
	Raw     json.RawMessage
}

// UnmarshalJSON implements json.Unmarshaler. It never fails on well-formed
// JSON: values that are neither text nor records become DescriptionOther.
func (d *WeatherDescription) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*d = WeatherDescription{Shape: DescriptionAbsent}
		return nil
	}

	switch b[0] {
	case '"':
		var text string
		if err := json.Unmarshal(b, &text); err != nil {
			return err
		}
		*d = WeatherDescription{Shape: DescriptionText, Text: text}
		return nil
	case '[':
		var records []ValueRecord
		if err := json.Unmarshal(b, &records); err == nil {
			*d = WeatherDescription{Shape: DescriptionRecords, Records: records}
			return nil
		}
	}

	if !json.Valid(b) {
		return fmt.Errorf("weatherDesc: invalid JSON %.32s", b)
	}
	*d = WeatherDescription{Shape: DescriptionOther, Raw: append(json.RawMessage(nil), b...)}
	return nil
}

// Normalize returns the single description string: the text itself, the
// first record's value, or "" when absent, empty or of another kind.
func (d WeatherDescription) Normalize() string {
	switch d.Shape {
	case DescriptionText:
		return d.Text
	case DescriptionRecords:
		if len(d.Records) == 0 {
			return ""
		}
		return d.Records[0].Value
	default:
		return ""
	}
}

// Value is what the weatherDesc field becomes in the proxied record. Text and
// records collapse to a string. Other values are kept unless they are falsy
// (0 or false), which become "" like an absent description.
func (d WeatherDescription) Value() json.RawMessage {
	if d.Shape == DescriptionOther && !isFalsy(d.Raw) {
		return d.Raw
	}
	b, _ := json.Marshal(d.Normalize())
	return b
}

func isFalsy(raw json.RawMessage) bool {
	if bytes.Equal(raw, []byte("false")) {
		return true
	}
	var f float64
	return json.Unmarshal(raw, &f) == nil && f == 0
}
