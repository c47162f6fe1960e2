// Package mcp implements a Model Context Protocol (MCP) server that exposes
// driver application generation, answer validation and the field registry
// as tools and resources for AI assistants.
//
// Messages are newline-delimited JSON-RPC 2.0 on the server's input and
// output streams. Requests without an id are notifications and get no reply.
//
// # Usage with Claude Desktop
//
// Add to your claude_desktop_config.json:
//
//	{
//	  "mcpServers": {
//	    "dqfile": {
//	      "command": "dqfile",
//	      "args": ["mcp"]
//	    }
//	  }
//	}
package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Server identity reported by initialize.
const (
	ServerName = "dqfile-mcp"
	Version    = "1.0.0"
)

// protocolVersions lists the MCP revisions the server speaks, newest first.
var protocolVersions = []string{"2025-03-26", "2024-11-05"}

// Tool defines an MCP tool that can be called by the client.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
	Handler     ToolHandler            `json:"-"`
}

// ToolHandler runs a tool. ctx is the server's context.
type ToolHandler func(ctx context.Context, args map[string]interface{}) (ToolResult, error)

// ToolResult is the result returned by a tool execution.
type ToolResult struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError,omitempty"`
}

// ContentBlock is a piece of content in a tool result.
type ContentBlock struct {
	Type     string `json:"type"` // "text" or "resource"
	Text     string `json:"text,omitempty"`
	MIMEType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"` // base64
}

// Resource defines an MCP resource. Clients may append a query to URI;
// the handler receives the full URI.
type Resource struct {
	URI         string          `json:"uri"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	MIMEType    string          `json:"mimeType,omitempty"`
	Handler     ResourceHandler `json:"-"`
}

// ResourceHandler reads a resource and returns its content.
type ResourceHandler func(uri string) ([]ResourceContent, error)

// ResourceContent is the content of a read resource.
type ResourceContent struct {
	URI      string `json:"uri"`
	MIMEType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
	Blob     string `json:"blob,omitempty"` // base64
}

// JSON-RPC error codes.
const (
	codeParse          = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternal       = -32603
)

type jsonrpcRequest struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Method  string           `json:"method"`
	Params  json.RawMessage  `json:"params,omitempty"`
}

type jsonrpcResponse struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id"`
	Result  interface{}      `json:"result,omitempty"`
	Error   *jsonrpcError    `json:"error,omitempty"`
}

type jsonrpcError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (e *jsonrpcError) Error() string { return fmt.Sprintf("%s (%d)", e.Message, e.Code) }

func rpcError(code int, msg string, data interface{}) *jsonrpcError {
	return &jsonrpcError{Code: code, Message: msg, Data: data}
}

// method handles one JSON-RPC method and returns its result or error.
type method func(s *Server, ctx context.Context, params json.RawMessage) (interface{}, *jsonrpcError)

var methods = map[string]method{
	"initialize":     (*Server).initialize,
	"ping":           (*Server).ping,
	"tools/list":     (*Server).listTools,
	"tools/call":     (*Server).callTool,
	"resources/list": (*Server).listResources,
	"resources/read": (*Server).readResource,
}

// Server is an MCP server reading requests from one stream and writing
// responses to another.
type Server struct {
	tools     map[string]Tool
	resources map[string]Resource
	input     io.Reader
	output    io.Writer
	logger    *log.Logger

	mu sync.Mutex // guards output
}

// NewServer returns a server on stdin and stdout.
func NewServer() *Server {
	return NewServerWithIO(os.Stdin, os.Stdout)
}

// NewServerWithIO returns a server on the given streams.
func NewServerWithIO(in io.Reader, out io.Writer) *Server {
	return &Server{
		tools:     make(map[string]Tool),
		resources: make(map[string]Resource),
		input:     in,
		output:    out,
		logger:    log.New(io.Discard),
	}
}

// SetLogger sets the logger for request tracing. Logs must not go to the
// server's output stream.
func (s *Server) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l
	}
}

// AddTool registers a tool, replacing any tool of the same name.
func (s *Server) AddTool(t Tool) { s.tools[t.Name] = t }

// AddResource registers a resource under its URI.
func (s *Server) AddResource(r Resource) { s.resources[r.URI] = r }

// Run serves until the input ends.
func (s *Server) Run() error {
	return s.Serve(context.Background())
}

// Serve handles one request per input line until the input ends or ctx is
// done. ctx is checked between requests and passed to tool handlers.
func (s *Server) Serve(ctx context.Context) error {
	sc := bufio.NewScanner(s.input)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var req jsonrpcRequest
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			s.reply(nil, nil, rpcError(codeParse, "Parse error", err.Error()))
			continue
		}
		s.dispatch(ctx, req)
	}
	return sc.Err()
}

func (s *Server) dispatch(ctx context.Context, req jsonrpcRequest) {
	start := time.Now()
	logger := s.logger.With("method", req.Method)
	if req.ID != nil {
		logger = logger.With("id", string(*req.ID))
	}

	var (
		result interface{}
		rerr   *jsonrpcError
	)
	switch m, ok := methods[req.Method]; {
	case req.JSONRPC != "2.0":
		rerr = rpcError(codeInvalidRequest, "Invalid request", "jsonrpc must be \"2.0\"")
	case !ok && strings.HasPrefix(req.Method, "notifications/"), !ok && req.Method == "initialized":
		logger.Debug("notification")
		return
	case !ok:
		rerr = rpcError(codeMethodNotFound, "Method not found", req.Method)
	default:
		result, rerr = m(s, ctx, req.Params)
	}

	if rerr != nil {
		logger.Debug("mcp request failed", "err", rerr, "took", time.Since(start))
	} else {
		logger.Debug("mcp request", "took", time.Since(start))
	}
	if req.ID == nil {
		return
	}
	s.reply(req.ID, result, rerr)
}

func (s *Server) reply(id *json.RawMessage, result interface{}, rerr *jsonrpcError) {
	resp := jsonrpcResponse{JSONRPC: "2.0", ID: id, Result: result, Error: rerr}
	data, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error("encoding response", "err", err)
		data, _ = json.Marshal(jsonrpcResponse{JSONRPC: "2.0", ID: id, Error: rpcError(codeInternal, "Internal error", err.Error())})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.output.Write(append(data, '\n')); err != nil {
		s.logger.Error("writing response", "err", err)
	}
}

// decodeParams unmarshals params into v. Absent params leave v untouched.
func decodeParams(params json.RawMessage, v interface{}) *jsonrpcError {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, v); err != nil {
		return rpcError(codeInvalidParams, "Invalid params", err.Error())
	}
	return nil
}

type serverInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type initializeResult struct {
	ProtocolVersion string                 `json:"protocolVersion"`
	Capabilities    map[string]interface{} `json:"capabilities"`
	ServerInfo      serverInfo             `json:"serverInfo"`
}

// initialize answers with the client's protocol version when the server
// speaks it, and with the newest one it knows otherwise.
func (s *Server) initialize(_ context.Context, params json.RawMessage) (interface{}, *jsonrpcError) {
	var p struct {
		ProtocolVersion string `json:"protocolVersion"`
		ClientInfo      struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"clientInfo"`
	}
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	version := protocolVersions[0]
	if slices.Contains(protocolVersions, p.ProtocolVersion) {
		version = p.ProtocolVersion
	}
	s.logger.Info("mcp client connected", "client", p.ClientInfo.Name, "clientVersion", p.ClientInfo.Version, "protocol", version)

	return initializeResult{
		ProtocolVersion: version,
		Capabilities: map[string]interface{}{
			"tools":     map[string]interface{}{},
			"resources": map[string]interface{}{},
		},
		ServerInfo: serverInfo{Name: ServerName, Version: Version},
	}, nil
}

func (s *Server) ping(context.Context, json.RawMessage) (interface{}, *jsonrpcError) {
	return struct{}{}, nil
}

func (s *Server) listTools(context.Context, json.RawMessage) (interface{}, *jsonrpcError) {
	tools := make([]Tool, 0, len(s.tools))
	for _, name := range sortedKeys(s.tools) {
		tools = append(tools, s.tools[name])
	}
	return struct {
		Tools []Tool `json:"tools"`
	}{tools}, nil
}

// callTool runs a tool. A failing handler is reported inside the result
// with IsError set, so the model sees the message; protocol errors are
// reserved for bad requests.
func (s *Server) callTool(ctx context.Context, params json.RawMessage) (interface{}, *jsonrpcError) {
	var p struct {
		Name      string                 `json:"name"`
		Arguments map[string]interface{} `json:"arguments"`
	}
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	tool, ok := s.tools[p.Name]
	if !ok {
		return nil, rpcError(codeInvalidParams, "Unknown tool", p.Name)
	}
	if p.Arguments == nil {
		p.Arguments = map[string]interface{}{}
	}

	result, err := tool.Handler(ctx, p.Arguments)
	if err != nil {
		s.logger.Warn("tool failed", "tool", p.Name, "err", err)
		return ToolResult{
			Content: []ContentBlock{{Type: "text", Text: "Error: " + err.Error()}},
			IsError: true,
		}, nil
	}
	return result, nil
}

func (s *Server) listResources(context.Context, json.RawMessage) (interface{}, *jsonrpcError) {
	resources := make([]Resource, 0, len(s.resources))
	for _, uri := range sortedKeys(s.resources) {
		resources = append(resources, s.resources[uri])
	}
	return struct {
		Resources []Resource `json:"resources"`
	}{resources}, nil
}

func (s *Server) readResource(_ context.Context, params json.RawMessage) (interface{}, *jsonrpcError) {
	var p struct {
		URI string `json:"uri"`
	}
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	base, _, _ := strings.Cut(p.URI, "?")
	r, ok := s.resources[base]
	if !ok {
		return nil, rpcError(codeInvalidParams, "Unknown resource", p.URI)
	}
	contents, err := r.Handler(p.URI)
	if err != nil {
		return nil, rpcError(codeInternal, "Resource error", err.Error())
	}
	return struct {
		Contents []ResourceContent `json:"contents"`
	}{contents}, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
