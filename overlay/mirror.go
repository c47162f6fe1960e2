package overlay

import (
	"fmt"
	"html"
	"io"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/lvillar/dqfile/answers"
	"github.com/lvillar/dqfile/registry"
)

var mirrorTemplate = pongo2.Must(pongo2.FromString(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ title }} - page {{ page }}</title>
<style>
  body { margin: 0; background: #e5e7eb; font-family: Helvetica, Arial, sans-serif; }
  .page { position: relative; width: 612px; height: 792px; margin: 24px auto; background: #fff; box-shadow: 0 1px 4px rgba(0,0,0,.25); }
  .field { position: absolute; box-sizing: border-box; border: 1px solid #9aaac8; overflow: hidden; white-space: nowrap; padding: 0 2px; }
  .field.missing { border-color: #c0392b; background: #fdecea; }
  .field.checkbox { text-align: center; font-weight: bold; }
  .field.signature { font-style: italic; }
</style>
</head>
<body>
<div class="page" data-page="{{ page }}">
{% for f in fields %}  <div class="field {{ f.Type }}{% if f.Missing %} missing{% endif %}" id="{{ f.ID }}" title="{{ f.Label }}" style="left: {{ f.X|floatformat:2 }}%; top: {{ f.Y|floatformat:2 }}%; width: {{ f.Width|floatformat:2 }}%; height: {{ f.Height|floatformat:2 }}%; font-size: {{ f.FontSize|floatformat:1 }}px;">{{ f.Value }}</div>
{% endfor %}</div>
</body>
</html>
`))

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// sanitizer strips all markup from answers before they reach the page.
func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// mirrorField is the template view of one definition.
type mirrorField struct {
	ID       string
	Label    string
	Type     string
	X, Y     float64
	Width    float64
	Height   float64
	FontSize float64
	Value    string
	Missing  bool
}

// Mirror writes an HTML rendition of page n of the template with the
// answers placed at their registry positions. Required fields without a
// value are highlighted.
func Mirror(w io.Writer, n int, in answers.Answers) error {
	defs := registry.FieldsForPage(n)
	if len(defs) == 0 {
		return fmt.Errorf("%w: no fields on page %d", ErrPageRange, n)
	}
	fields := make([]mirrorField, 0, len(defs))
	for _, d := range defs {
		f := mirrorField{
			ID:       d.ID,
			Label:    d.Label,
			Type:     string(d.Type),
			X:        d.X,
			Y:        d.Y,
			Width:    d.Width,
			Height:   d.Height,
			FontSize: d.Size(),
		}
		if d.Type == registry.TypeCheckbox {
			if in.Bool(d.ID) {
				f.Value = "X"
			}
		} else {
			// the template escapes on output, so keep the sanitized text unescaped
			f.Value = strings.TrimSpace(html.UnescapeString(sanitizer().Sanitize(in.Text(d.ID))))
		}
		f.Missing = d.Required && f.Value == ""
		fields = append(fields, f)
	}
	err := mirrorTemplate.ExecuteWriter(pongo2.Context{
		"title":  "Driver Employment Application",
		"page":   n,
		"fields": fields,
	}, w)
	if err != nil {
		return fmt.Errorf("overlay: mirror page %d: %w", n, err)
	}
	return nil
}
