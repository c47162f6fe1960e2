package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// exchange feeds lines to a fresh server and returns the decoded
// responses in order.
func exchange(t *testing.T, setup func(*Server), lines ...string) []jsonrpcResponse {
	t.Helper()
	var out bytes.Buffer
	s := NewServerWithIO(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	if setup != nil {
		setup(s)
	}
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var resps []jsonrpcResponse
	dec := json.NewDecoder(&out)
	for dec.More() {
		var r jsonrpcResponse
		if err := dec.Decode(&r); err != nil {
			t.Fatalf("decoding response: %v\n%s", err, out.String())
		}
		resps = append(resps, r)
	}
	return resps
}

// call sends one request with id 1 and returns its response.
func call(t *testing.T, setup func(*Server), method string, params interface{}) jsonrpcResponse {
	t.Helper()
	req := map[string]interface{}{"jsonrpc": "2.0", "id": 1, "method": method}
	if params != nil {
		req["params"] = params
	}
	line, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("encoding request: %v", err)
	}
	resps := exchange(t, setup, string(line))
	if len(resps) != 1 {
		t.Fatalf("got %d responses, want 1", len(resps))
	}
	return resps[0]
}

func defaults(s *Server) {
	RegisterDefaultTools(s)
	RegisterDefaultResources(s)
}

// decodeResult re-encodes the generic result into v.
func decodeResult(t *testing.T, resp jsonrpcResponse, v interface{}) {
	t.Helper()
	if resp.Error != nil {
		t.Fatalf("unexpected error: %s %v", resp.Error.Message, resp.Error.Data)
	}
	data, err := json.Marshal(resp.Result)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("decoding result %s: %v", data, err)
	}
}

func firstText(t *testing.T, resp jsonrpcResponse) string {
	t.Helper()
	var r ToolResult
	decodeResult(t, resp, &r)
	if len(r.Content) == 0 {
		t.Fatalf("no content in %+v", r)
	}
	return r.Content[0].Text
}

func TestInitializeNegotiatesVersion(t *testing.T) {
	for _, tc := range []struct{ asked, want string }{
		{"2024-11-05", "2024-11-05"},
		{"2025-03-26", "2025-03-26"},
		{"1999-01-01", protocolVersions[0]},
	} {
		resp := call(t, nil, "initialize", map[string]interface{}{
			"protocolVersion": tc.asked,
			"capabilities":    map[string]interface{}{},
			"clientInfo":      map[string]interface{}{"name": "test", "version": "1.0"},
		})
		var got initializeResult
		decodeResult(t, resp, &got)
		if got.ProtocolVersion != tc.want {
			t.Errorf("asked %s: protocolVersion = %s, want %s", tc.asked, got.ProtocolVersion, tc.want)
		}
		if got.ServerInfo != (serverInfo{Name: ServerName, Version: Version}) {
			t.Errorf("serverInfo = %+v", got.ServerInfo)
		}
	}
}

func TestListTools(t *testing.T) {
	var got struct {
		Tools []struct {
			Name        string                 `json:"name"`
			InputSchema map[string]interface{} `json:"inputSchema"`
		} `json:"tools"`
	}
	decodeResult(t, call(t, defaults, "tools/list", nil), &got)

	var names []string
	for _, tool := range got.Tools {
		names = append(names, tool.Name)
		if tool.InputSchema["type"] != "object" {
			t.Errorf("%s: schema type = %v", tool.Name, tool.InputSchema["type"])
		}
	}
	want := []string{"extract_section", "fill_form", "flatten_form", "generate_application", "list_fields", "read_form_fields", "validate_answers"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("tools mismatch (-want +got):\n%s", diff)
	}
}

func TestListResources(t *testing.T) {
	var got struct {
		Resources []Resource `json:"resources"`
	}
	decodeResult(t, call(t, defaults, "resources/list", nil), &got)

	var uris []string
	for _, r := range got.Resources {
		uris = append(uris, r.URI)
	}
	want := []string{"dq://fields", "dq://form-fields", "dq://layout"}
	if diff := cmp.Diff(want, uris); diff != "" {
		t.Errorf("resources mismatch (-want +got):\n%s", diff)
	}
}

func TestProtocolErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		code int
	}{
		{"parse", `{"jsonrpc":"2.0","id":1,`, codeParse},
		{"version", `{"jsonrpc":"1.0","id":1,"method":"ping"}`, codeInvalidRequest},
		{"method", `{"jsonrpc":"2.0","id":1,"method":"nonexistent/method"}`, codeMethodNotFound},
		{"params", `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":[1,2]}`, codeInvalidParams},
		{"tool", `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"nope"}}`, codeInvalidParams},
		{"resource", `{"jsonrpc":"2.0","id":1,"method":"resources/read","params":{"uri":"dq://nope"}}`, codeInvalidParams},
		{"resource handler", `{"jsonrpc":"2.0","id":1,"method":"resources/read","params":{"uri":"dq://fields?page=x"}}`, codeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resps := exchange(t, defaults, tt.line)
			if len(resps) != 1 || resps[0].Error == nil {
				t.Fatalf("responses = %+v, want one error", resps)
			}
			if got := resps[0].Error.Code; got != tt.code {
				t.Errorf("code = %d, want %d", got, tt.code)
			}
		})
	}
}

func TestNotificationsGetNoReply(t *testing.T) {
	resps := exchange(t, defaults,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","method":"initialized"}`,
		`{"jsonrpc":"2.0","method":"ping"}`,
		`{"jsonrpc":"2.0","id":"last","method":"ping"}`,
	)
	if len(resps) != 1 {
		t.Fatalf("got %d responses, want 1", len(resps))
	}
	if got := string(*resps[0].ID); got != `"last"` {
		t.Errorf("id = %s, want \"last\"", got)
	}
}

func TestSession(t *testing.T) {
	resps := exchange(t, defaults,
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"1.0"}}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		`{"jsonrpc":"2.0","id":3,"method":"resources/list"}`,
		`{"jsonrpc":"2.0","id":4,"method":"ping"}`,
	)
	var ids []string
	for _, r := range resps {
		if r.Error != nil {
			t.Errorf("id %s: %s", *r.ID, r.Error.Message)
		}
		ids = append(ids, string(*r.ID))
	}
	if diff := cmp.Diff([]string{"1", "2", "3", "4"}, ids); diff != "" {
		t.Errorf("response ids (-want +got):\n%s", diff)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	s := NewServerWithIO(strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}`+"\n"), &out)
	if err := s.Serve(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Serve = %v, want context.Canceled", err)
	}
	if out.Len() != 0 {
		t.Errorf("wrote %q after cancel", out.String())
	}
}

func TestCustomTool(t *testing.T) {
	var seen interface{}
	setup := func(s *Server) {
		s.AddTool(Tool{
			Name:        "echo",
			InputSchema: map[string]interface{}{"type": "object"},
			Handler: func(ctx context.Context, args map[string]interface{}) (ToolResult, error) {
				seen = args
				say, _ := args["say"].(string)
				if args["fail"] == true {
					return ToolResult{}, errors.New("asked to fail")
				}
				return ToolResult{Content: []ContentBlock{{Type: "text", Text: "echo " + say}}}, nil
			},
		})
	}

	if got := firstText(t, call(t, setup, "tools/call", map[string]interface{}{
		"name": "echo", "arguments": map[string]interface{}{"say": "hi"},
	})); got != "echo hi" {
		t.Errorf("text = %q", got)
	}

	call(t, setup, "tools/call", map[string]interface{}{"name": "echo"})
	if diff := cmp.Diff(map[string]interface{}{}, seen); diff != "" {
		t.Errorf("missing arguments not defaulted (-want +got):\n%s", diff)
	}

	var failed ToolResult
	decodeResult(t, call(t, setup, "tools/call", map[string]interface{}{
		"name": "echo", "arguments": map[string]interface{}{"fail": true},
	}), &failed)
	want := ToolResult{Content: []ContentBlock{{Type: "text", Text: "Error: asked to fail"}}, IsError: true}
	if diff := cmp.Diff(want, failed); diff != "" {
		t.Errorf("failed tool result (-want +got):\n%s", diff)
	}
}

func TestValidateAnswersTool(t *testing.T) {
	text := firstText(t, call(t, defaults, "tools/call", map[string]interface{}{
		"name": "validate_answers",
		"arguments": map[string]interface{}{
			"answers": map[string]interface{}{
				"first_name": "Dana",
				"phone":      "not a phone",
			},
		},
	}))
	var got struct {
		Valid        bool     `json:"valid"`
		Missing      []string `json:"missing"`
		FormatErrors []struct {
			ID string `json:"id"`
		} `json:"formatErrors"`
	}
	if err := json.Unmarshal([]byte(text), &got); err != nil {
		t.Fatalf("decoding %q: %v", text, err)
	}
	if got.Valid {
		t.Fatal("expected invalid answers")
	}
	for _, m := range got.Missing {
		if m == "First Name" {
			t.Errorf("First Name reported missing although it was given")
		}
	}
	if len(got.FormatErrors) != 1 || got.FormatErrors[0].ID != "phone" {
		t.Errorf("format errors = %+v, want one for phone", got.FormatErrors)
	}
}

func TestListFieldsTool(t *testing.T) {
	var defs []map[string]interface{}
	text := firstText(t, call(t, defaults, "tools/call", map[string]interface{}{
		"name":      "list_fields",
		"arguments": map[string]interface{}{"page": 9},
	}))
	if err := json.Unmarshal([]byte(text), &defs); err != nil {
		t.Fatalf("decoding fields: %v", err)
	}
	if len(defs) == 0 {
		t.Fatal("no fields listed for page 9")
	}
	for _, d := range defs {
		if d["page"] != float64(9) {
			t.Errorf("field %v is on page %v", d["id"], d["page"])
		}
	}
}

func TestFieldsResourceQuery(t *testing.T) {
	var got struct {
		Contents []ResourceContent `json:"contents"`
	}
	decodeResult(t, call(t, defaults, "resources/read", map[string]interface{}{"uri": "dq://fields?page=2"}), &got)
	if len(got.Contents) != 1 {
		t.Fatalf("got %d contents", len(got.Contents))
	}
	text := got.Contents[0].Text
	if !strings.Contains(text, "first_name") {
		t.Errorf("page 2 fields missing first_name: %.200s", text)
	}
	if strings.Contains(text, "applicant_cert_signature") {
		t.Errorf("page 2 fields include a page 9 field")
	}
	if got.Contents[0].URI != "dq://fields?page=2" {
		t.Errorf("content uri = %q", got.Contents[0].URI)
	}
}

func TestGenerateApplicationTool(t *testing.T) {
	if testing.Short() {
		t.Skip("builds a full application")
	}
	var got ToolResult
	decodeResult(t, call(t, defaults, "tools/call", map[string]interface{}{
		"name": "generate_application",
		"arguments": map[string]interface{}{
			"answers": map[string]interface{}{"first_name": "Dana", "last_name": "Reyes"},
			"company": map[string]interface{}{"name": "Acme Freight"},
		},
	}), &got)
	if got.IsError {
		t.Fatalf("tool reported an error: %+v", got.Content)
	}
	var found bool
	for _, b := range got.Content {
		if b.MIMEType == "application/pdf" && strings.HasPrefix(b.Data, "JVBERi0") { // "%PDF-"
			found = true
		}
	}
	if !found {
		t.Errorf("no base64 PDF in result")
	}
}
