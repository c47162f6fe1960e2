package mcp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/lvillar/dqfile"
	"github.com/lvillar/dqfile/registry"
)

// RegisterDefaultResources adds the registry and layout resources to the
// server. Resources use the dq:// scheme; parameters go in the query.
func RegisterDefaultResources(s *Server) {
	s.AddResource(Resource{
		URI:         "dq://fields",
		Name:        "Field Registry",
		Description: "Field definitions in percent coordinates. Filter by page with a query parameter: dq://fields?page=9",
		MIMEType:    "application/json",
		Handler:     handleFieldsResource,
	})

	s.AddResource(Resource{
		URI:         "dq://layout",
		Name:        "Application Layout",
		Description: "The sections of the application in order with their page ranges.",
		MIMEType:    "application/json",
		Handler:     handleLayoutResource,
	})

	s.AddResource(Resource{
		URI:         "dq://form-fields",
		Name:        "PDF Form Fields",
		Description: "List all form fields in a PDF. Pass the file path as a query parameter: dq://form-fields?path=/path/to/app.pdf",
		MIMEType:    "application/json",
		Handler:     handleFormFieldsResource,
	})
}

func queryParam(uri, key string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	return u.Query().Get(key)
}

func handleFieldsResource(uri string) ([]ResourceContent, error) {
	page := 0
	if p := queryParam(uri, "page"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid page %q", p)
		}
		page = n
	}
	var buf bytes.Buffer
	if err := registry.ExportPage(&buf, page); err != nil {
		return nil, err
	}
	return []ResourceContent{{URI: uri, MIMEType: "application/json", Text: buf.String()}}, nil
}

func handleLayoutResource(uri string) ([]ResourceContent, error) {
	data, err := json.MarshalIndent(dqfile.Layout(), "", "  ")
	if err != nil {
		return nil, err
	}
	return []ResourceContent{{URI: uri, MIMEType: "application/json", Text: string(data)}}, nil
}

func handleFormFieldsResource(uri string) ([]ResourceContent, error) {
	path := queryParam(uri, "path")
	if path == "" {
		return nil, fmt.Errorf("missing 'path' parameter in URI")
	}
	fields, err := readFormFields(path)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		return nil, err
	}
	return []ResourceContent{{URI: uri, MIMEType: "application/json", Text: string(data)}}, nil
}
