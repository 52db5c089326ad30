package upstream

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// envelope is the wrapper shared by all three upstreams. Status and Data are
// kept raw: success checks care about the JSON type of status, and data is
// proxied without a round trip through Go types.
type envelope struct {
	Status  json.RawMessage `json:"status"`
	Message string          `json:"message"`
	Warning string          `json:"warning"`
	Data    json.RawMessage `json:"data"`
}

func (e *envelope) hasData() bool {
	b := bytes.TrimSpace(e.Data)
	return len(b) > 0 && !bytes.Equal(b, []byte("null"))
}

// statusIsNumberOne reports whether status is the JSON number 1. The string
// "1" does not count.
func (e *envelope) statusIsNumberOne() bool {
	b := bytes.TrimSpace(e.Status)
	if len(b) == 0 || b[0] == '"' {
		return false
	}
	var f float64
	return json.Unmarshal(b, &f) == nil && f == 1
}

// statusIsString reports whether status is the JSON string want.
func (e *envelope) statusIsString(want string) bool {
	var s string
	return json.Unmarshal(e.Status, &s) == nil && s == want
}

// statusText renders status for errors and logs: strings unquoted, any other
// value as its JSON text.
func (e *envelope) statusText() string {
	var s string
	if err := json.Unmarshal(e.Status, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(e.Status))
}

// flexString decodes a JSON string or number into its text form.
// The upstream is not consistent about quoting numeric fields.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*s = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*s = flexString(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

// textField reads a scalar field out of a raw record. Missing fields and
// values that are not strings or numbers read as "".
func textField(record map[string]json.RawMessage, key string) string {
	raw, ok := record[key]
	if !ok {
		return ""
	}
	var s flexString
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return string(s)
}

// ValueRecord is the {"value": ...} wrapper the weather API uses for lists.
type ValueRecord struct {
	Value string `json:"value"`
}
