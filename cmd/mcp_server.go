package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/wintree/internal/model"
	"github.com/mj1618/wintree/internal/output"
	"github.com/mj1618/wintree/internal/platform"
	"github.com/mj1618/wintree/internal/version"
	"github.com/mj1618/wintree/internal/wm"
	"gopkg.in/yaml.v3"
)

// mcpServer wraps the MCP server with the platform provider and cache.
type mcpServer struct {
	provider   *platform.Provider
	cache      *mcpListCache
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// newMCPServer creates and configures an MCP server with all wintree tools.
func newMCPServer(cfg MCPConfig) (*mcpServer, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	return newMCPServerWithProvider(provider, cfg), nil
}

func newMCPServerWithProvider(provider *platform.Provider, cfg MCPConfig) *mcpServer {
	s := &mcpServer{
		provider: provider,
		cache:    newMCPListCache(cfg.CacheTTL),
	}
	s.mcp = mcpserver.NewMCPServer("wintree", version.Version)
	s.registerTools()
	return s
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	logger.Info("mcp server starting", "transport", cfg.Transport, "port", cfg.Port, "cache_ttl", cfg.CacheTTL)
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// list
	s.mcp.AddTool(
		mcp.NewTool("list",
			mcp.WithDescription("List windows in z-order, front to back. By default only top-level application windows are returned."),
			mcp.WithBoolean("all", mcp.Description("List every window, not only top-level ones")),
			mcp.WithString("parent", mcp.Description("List the children of this window handle (decimal or 0x hex)")),
			mcp.WithBoolean("no-ignore", mcp.Description("Do not skip classes on the ignore-list")),
			mcp.WithNumber("pid", mcp.Description("Filter by process ID")),
			mcp.WithString("class", mcp.Description("Filter by exact class name")),
			mcp.WithString("title", mcp.Description("Filter by title substring")),
			mcp.WithString("bbox", mcp.Description("Only windows intersecting x,y,w,h")),
			mcp.WithBoolean("refresh", mcp.Description("Bypass the listing cache")),
		),
		s.handleList,
	)

	// active
	s.mcp.AddTool(
		mcp.NewTool("active",
			mcp.WithDescription("Describe the foreground window"),
		),
		s.handleActive,
	)

	// desktop
	s.mcp.AddTool(
		mcp.NewTool("desktop",
			mcp.WithDescription("Describe the desktop root window"),
		),
		s.handleDesktop,
	)

	// linked
	s.mcp.AddTool(
		mcp.NewTool("linked",
			mcp.WithDescription("List windows owned by any thread of the process that owns a window (menus, tooltips, dialogs)"),
			mcp.WithString("hwnd", mcp.Description("Window handle; default: foreground window")),
			mcp.WithString("class", mcp.Description("Filter by exact class name")),
			mcp.WithString("title", mcp.Description("Filter by title substring")),
		),
		s.handleLinked,
	)

	// explain
	s.mcp.AddTool(
		mcp.NewTool("explain",
			mcp.WithDescription("Report whether a window is top-level and, if not, the first rule that rejected it"),
			mcp.WithString("hwnd", mcp.Description("Window handle; default: foreground window")),
			mcp.WithBoolean("no-ignore", mcp.Description("Do not apply the ignore-list")),
		),
		s.handleExplain,
	)
}

// query returns a fresh query so cached window attributes never outlive a call.
func (s *mcpServer) query() *wm.Query {
	return wm.NewQuery(s.provider, appConfig.QueryOptions(logger))
}

// toolResult serializes v to YAML for an MCP response.
func toolResult(v interface{}) *mcp.CallToolResult {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err))
	}
	return mcp.NewToolResultText(string(b))
}

func (s *mcpServer) handleList(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	opts, err := listOptionsFromParams(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if BoolParam(params, "refresh", false) {
		s.cache.invalidateAll()
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	result, err := s.cache.list(opts, func(opts platform.ListOptions) (output.ListResult, error) {
		return listWindows(s.query(), opts)
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResult(result), nil
}

func (s *mcpServer) handleActive(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	q := s.query()
	w, err := q.ActiveWindow()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if w.Handle().IsZero() {
		return mcp.NewToolResultError("no foreground window"), nil
	}
	desc, err := describeWindow(q, w)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResult(desc), nil
}

func (s *mcpServer) handleDesktop(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	q := s.query()
	w, err := q.DesktopWindow()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	desc, err := describeWindow(q, w)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResult(desc), nil
}

func (s *mcpServer) handleLinked(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	filter := model.WindowFilter{
		Class: StringParam(params, "class", ""),
		Title: StringParam(params, "title", ""),
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	q := s.query()
	w, err := resolveWindow(q, StringParam(params, "hwnd", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := linkedWindows(q, w, filter)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResult(result), nil
}

func (s *mcpServer) handleExplain(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	noIgnore := BoolParam(params, "no-ignore", false)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	q := s.query()
	w, err := resolveWindow(q, StringParam(params, "hwnd", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	verdict, err := q.Explain(w, !noIgnore)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResult(verdict), nil
}
