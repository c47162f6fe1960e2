package mcp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lvillar/dqfile"
	"github.com/lvillar/dqfile/answers"
	"github.com/lvillar/dqfile/form"
	"github.com/lvillar/dqfile/layout"
	"github.com/lvillar/dqfile/overlay"
	"github.com/lvillar/dqfile/reader"
	"github.com/lvillar/dqfile/registry"
)

// RegisterDefaultTools adds the application tools to the server. opts are
// applied to every generation, typically the carrier's company settings.
func RegisterDefaultTools(s *Server, opts ...dqfile.Option) {
	s.AddTool(generateApplicationTool(opts))
	s.AddTool(validateAnswersTool())
	s.AddTool(listFieldsTool())
	s.AddTool(readFormFieldsTool())
	s.AddTool(fillFormTool())
	s.AddTool(flattenFormTool())
	s.AddTool(extractSectionTool())
}

var answersSchema = map[string]interface{}{
	"type":                 "object",
	"description":          "Applicant answers keyed by field id, e.g. {\"first_name\": \"Dana\", \"emp1_name\": \"Acme\", \"acc_none\": true}. Use list_fields for the ids.",
	"additionalProperties": map[string]interface{}{"type": []string{"string", "boolean", "number"}},
}

func generateApplicationTool(opts []dqfile.Option) Tool {
	return Tool{
		Name:        "generate_application",
		Description: "Generate the 25-page DOT driver employment application as a fillable PDF, prefilled with the given answers. Returns base64 unless outputPath is set.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"answers": answersSchema,
				"company": map[string]interface{}{
					"type":        "object",
					"description": "Optional carrier shown in the page banner: name, address, phone, dotNumber, mcNumber",
				},
				"outputPath": map[string]interface{}{
					"type":        "string",
					"description": "Optional file path to save the PDF. If omitted, returns base64.",
				},
			},
		},
		Handler: func(ctx context.Context, args map[string]interface{}) (ToolResult, error) {
			in := answersArg(args)
			all := append([]dqfile.Option{}, opts...)
			if co, ok := args["company"].(map[string]interface{}); ok {
				all = append(all, dqfile.WithCompany(companyArg(co)))
			}
			pdf, err := dqfile.Generate(ctx, in, all...)
			if err != nil {
				return ToolResult{}, fmt.Errorf("generating application: %w", err)
			}
			return pdfResult(args, pdf, "Application generated")
		},
	}
}

func validateAnswersTool() Tool {
	return Tool{
		Name:        "validate_answers",
		Description: "Check answers for missing required fields and malformed phone, SSN, date, ZIP and state values. Returns JSON {valid, missing, formatErrors}.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{"answers": answersSchema},
			"required":   []string{"answers"},
		},
		Handler: func(_ context.Context, args map[string]interface{}) (ToolResult, error) {
			in := answersArg(args)
			r := registry.ValidateFields(in)
			formats := registry.CheckFormats(in)
			if formats == nil {
				formats = []registry.FormatError{}
			}
			return jsonResult(map[string]interface{}{
				"valid":        r.Valid && len(formats) == 0,
				"missing":      r.Missing,
				"formatErrors": formats,
			})
		},
	}
}

func listFieldsTool() Tool {
	return Tool{
		Name:        "list_fields",
		Description: "List field definitions from the registry: id, page, percent position, type, label, required flag and format. Filter with page.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"page": map[string]interface{}{
					"type":        "number",
					"description": "Page number (1-25). Omit for every page.",
				},
				"requiredOnly": map[string]interface{}{
					"type":        "boolean",
					"description": "Only list required fields",
				},
			},
		},
		Handler: func(_ context.Context, args map[string]interface{}) (ToolResult, error) {
			defs := registry.Fields()
			if page, ok := args["page"].(float64); ok && page > 0 {
				defs = registry.FieldsForPage(int(page))
			}
			if req, _ := args["requiredOnly"].(bool); req {
				var only []registry.FieldDefinition
				for _, d := range defs {
					if d.Required {
						only = append(only, d)
					}
				}
				defs = only
			}
			if defs == nil {
				defs = []registry.FieldDefinition{}
			}
			return jsonResult(defs)
		},
	}
}

// formField is the JSON shape of a form field read from a PDF.
type formField struct {
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Value string  `json:"value,omitempty"`
	Page  int     `json:"page,omitempty"`
	Rect  []int64 `json:"rect,omitempty"`
}

func readFormFieldsTool() Tool {
	return Tool{
		Name:        "read_form_fields",
		Description: "Read the interactive form fields of a PDF file, such as a completed application: name, type, value and page.",
		InputSchema: pathSchema("Path to the PDF file"),
		Handler: func(_ context.Context, args map[string]interface{}) (ToolResult, error) {
			path, ok := args["path"].(string)
			if !ok {
				return ToolResult{}, fmt.Errorf("missing 'path' argument")
			}
			fields, err := readFormFields(path)
			if err != nil {
				return ToolResult{}, err
			}
			return jsonResult(fields)
		},
	}
}

func readFormFields(path string) ([]formField, error) {
	doc, err := reader.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	tree, err := doc.FormFields()
	if err != nil {
		return nil, fmt.Errorf("reading form fields: %w", err)
	}
	out := []formField{}
	for _, f := range reader.Leaves(tree) {
		out = append(out, formField{
			Name:  f.FullName,
			Type:  f.Type,
			Value: f.Value,
			Page:  f.Page,
			Rect:  []int64{int64(f.Rect.LLX), int64(f.Rect.LLY), int64(f.Rect.URX), int64(f.Rect.URY)},
		})
	}
	return out, nil
}

func fillFormTool() Tool {
	return Tool{
		Name:        "fill_form",
		Description: "Set form field values in an existing application PDF and save it. Check boxes take true/false or Yes/Off.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"path":       map[string]interface{}{"type": "string", "description": "Path to the input PDF"},
				"values":     answersSchema,
				"outputPath": map[string]interface{}{"type": "string", "description": "Path to save the filled PDF"},
			},
			"required": []string{"path", "values", "outputPath"},
		},
		Handler: func(_ context.Context, args map[string]interface{}) (ToolResult, error) {
			path, _ := args["path"].(string)
			out, _ := args["outputPath"].(string)
			raw, _ := args["values"].(map[string]interface{})
			if path == "" || out == "" || raw == nil {
				return ToolResult{}, fmt.Errorf("path, values and outputPath are required")
			}
			values := answers.FromMap(raw).Strings()
			if err := form.FillFile(path, out, values); err != nil {
				return ToolResult{}, fmt.Errorf("filling form: %w", err)
			}
			return textResult(fmt.Sprintf("Filled %d fields: %s", len(values), out)), nil
		},
	}
}

func flattenFormTool() Tool {
	return Tool{
		Name:        "flatten_form",
		Description: "Draw form field values into the page content and remove the interactive form, producing a print copy.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"path":       map[string]interface{}{"type": "string", "description": "Path to the input PDF"},
				"outputPath": map[string]interface{}{"type": "string", "description": "Path to save the flattened PDF"},
			},
			"required": []string{"path", "outputPath"},
		},
		Handler: func(_ context.Context, args map[string]interface{}) (ToolResult, error) {
			path, _ := args["path"].(string)
			out, _ := args["outputPath"].(string)
			if path == "" || out == "" {
				return ToolResult{}, fmt.Errorf("path and outputPath are required")
			}
			if err := form.FlattenFile(path, out); err != nil {
				return ToolResult{}, fmt.Errorf("flattening form: %w", err)
			}
			return textResult("Flattened: " + out), nil
		},
	}
}

func extractSectionTool() Tool {
	return Tool{
		Name:        "extract_section",
		Description: "Copy the pages of one section (for example authorizations or inquiries) out of a generated application into a separate flat PDF.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"path":       map[string]interface{}{"type": "string", "description": "Path to the application PDF"},
				"section":    map[string]interface{}{"type": "string", "description": "Section name, see the dq://layout resource"},
				"outputPath": map[string]interface{}{"type": "string", "description": "Optional file path. If omitted, returns base64."},
			},
			"required": []string{"path", "section"},
		},
		Handler: func(_ context.Context, args map[string]interface{}) (ToolResult, error) {
			path, _ := args["path"].(string)
			name, _ := args["section"].(string)
			var place *dqfile.Placement
			for _, p := range dqfile.Layout() {
				if p.Section == name {
					place = &p
					break
				}
			}
			if place == nil {
				return ToolResult{}, fmt.Errorf("unknown section %q", name)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return ToolResult{}, fmt.Errorf("reading PDF: %w", err)
			}
			pdf, err := overlay.Extract(data, place.First, place.Last)
			if err != nil {
				return ToolResult{}, err
			}
			return pdfResult(args, pdf, fmt.Sprintf("Extracted %s (pages %d-%d)", name, place.First, place.Last))
		},
	}
}

func answersArg(args map[string]interface{}) answers.Answers {
	raw, _ := args["answers"].(map[string]interface{})
	return answers.FromMap(raw)
}

func companyArg(m map[string]interface{}) layout.Company {
	s := func(k string) string {
		v, _ := m[k].(string)
		return v
	}
	return layout.Company{
		Name:      s("name"),
		Address:   s("address"),
		Phone:     s("phone"),
		DOTNumber: s("dotNumber"),
		MCNumber:  s("mcNumber"),
	}
}

func pathSchema(desc string) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"path": map[string]interface{}{"type": "string", "description": desc},
		},
		"required": []string{"path"},
	}
}

// pdfResult saves pdf to args["outputPath"] when given and otherwise
// returns it as base64.
func pdfResult(args map[string]interface{}, pdf []byte, summary string) (ToolResult, error) {
	if outputPath, ok := args["outputPath"].(string); ok && outputPath != "" {
		if err := os.WriteFile(outputPath, pdf, 0644); err != nil {
			return ToolResult{}, fmt.Errorf("writing file: %w", err)
		}
		return textResult(fmt.Sprintf("%s: %s (%d bytes)", summary, outputPath, len(pdf))), nil
	}
	encoded := base64.StdEncoding.EncodeToString(pdf)
	return ToolResult{
		Content: []ContentBlock{
			{Type: "text", Text: fmt.Sprintf("%s (%d bytes). Base64 data follows.", summary, len(pdf))},
			{Type: "resource", MIMEType: "application/pdf", Data: encoded},
		},
	}, nil
}

func textResult(s string) ToolResult {
	return ToolResult{Content: []ContentBlock{{Type: "text", Text: s}}}
}

func jsonResult(v interface{}) (ToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ToolResult{}, fmt.Errorf("encoding result: %w", err)
	}
	return ToolResult{Content: []ContentBlock{{Type: "text", MIMEType: "application/json", Text: string(data)}}}, nil
}
