// Package answers is the applicant answer dictionary shared by the page
// builders and the field-position registry.
//
// Answers are a flat map from field id to a string or boolean. Field ids are
// produced by the key generators in this package so that builders, the
// registry and intake forms agree on spelling.
package answers

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the US date format used for dates rendered into fields.
const DateLayout = "01/02/2006"

// Answers maps field ids to values. Values are strings or booleans; numbers
// and dates decoded from YAML are rendered as text on access.
type Answers map[string]any

// FromMap copies m into a new Answers.
func FromMap(m map[string]any) Answers {
	a := make(Answers, len(m))
	for k, v := range m {
		a[k] = v
	}
	return a
}

// Text returns the value of k as text. Booleans read as "Yes" or "".
func (a Answers) Text(k string) string {
	switch v := a[k].(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "Yes"
		}
		return ""
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.Format(DateLayout)
	default:
		return fmt.Sprint(v)
	}
}

// Bool returns the value of k as a check box state. Strings such as "yes",
// "true", "on" and "x" count as checked.
func (a Answers) Bool(k string) bool {
	switch v := a[k].(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "y", "on", "x", "1", "checked":
			return true
		}
	case int:
		return v != 0
	}
	return false
}

// Has reports whether k has a non-blank value.
func (a Answers) Has(k string) bool {
	return strings.TrimSpace(a.Text(k)) != ""
}

// Keys returns the ids in sorted order.
func (a Answers) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Strings returns every value rendered as text, the shape form filling
// and overlay expect.
func (a Answers) Strings() map[string]string {
	out := make(map[string]string, len(a))
	for k, v := range a {
		if b, ok := v.(bool); ok {
			if b {
				out[k] = "Yes"
			} else {
				out[k] = "Off"
			}
			continue
		}
		out[k] = a.Text(k)
	}
	return out
}

// Unused returns the ids in a that are not in known, sorted. It reports
// answers that no page has a field for, such as rows past a fixed budget.
func (a Answers) Unused(known []string) []string {
	set := make(map[string]struct{}, len(known))
	for _, k := range known {
		set[k] = struct{}{}
	}
	var out []string
	for _, k := range a.Keys() {
		if _, ok := set[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}

// Parse decodes a YAML or JSON document into Answers. Nested mappings are
// flattened by joining keys with an underscore, so {emp1: {name: x}} becomes
// emp1_name.
func Parse(data []byte) (Answers, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("answers: decoding: %w", err)
	}
	a := make(Answers, len(raw))
	if err := flatten(a, "", raw); err != nil {
		return nil, err
	}
	return a, nil
}

// Load reads and parses an answers file.
func Load(path string) (Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("answers: reading %s: %w", path, err)
	}
	return Parse(data)
}

func flatten(dst Answers, prefix string, m map[string]any) error {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "_" + k
		}
		switch inner := v.(type) {
		case map[string]any:
			if err := flatten(dst, key, inner); err != nil {
				return err
			}
		case []any:
			return fmt.Errorf("answers: %q: lists are not supported, use numbered keys", key)
		default:
			if _, dup := dst[key]; dup {
				return fmt.Errorf("answers: %q given twice", key)
			}
			dst[key] = v
		}
	}
	return nil
}
