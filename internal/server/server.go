// Package server exposes the cycler as MCP tools over stdio or streamable HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/window-cycler/internal/cycler"
	"github.com/mj1618/window-cycler/internal/model"
)

// Cycler is the part of *cycler.Cycler the server uses.
type Cycler interface {
	CycleNext(ctx context.Context, target model.Target) (*cycler.Result, error)
	Plan(ctx context.Context, target model.Target) (*cycler.Result, error)
	Snapshot(ctx context.Context, target model.Target) (*model.Snapshot, error)
	Status(ctx context.Context, target model.Target) cycler.Status
}

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
	Target    model.Target
	Version   string
	Logger    hclog.Logger
}

// Server wraps the MCP server with the cycler and the status cache.
type Server struct {
	cycler Cycler
	target model.Target
	cache  *StatusCache
	logger hclog.Logger
	mcp    *mcpserver.MCPServer
}

// New creates and configures an MCP server with all window-cycler tools.
func New(c Cycler, cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	version := cfg.Version
	if version == "" {
		version = "dev"
	}
	s := &Server{
		cycler: c,
		target: cfg.Target,
		cache:  NewStatusCache(cfg.CacheTTL),
		logger: logger.Named("server"),
	}
	s.mcp = mcpserver.NewMCPServer(
		"window-cycler",
		version,
		mcpserver.WithToolCapabilities(false),
	)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport and stops when
// ctx is done.
func (s *Server) Serve(ctx context.Context, cfg Config) error {
	switch cfg.Transport {
	case "", "stdio":
		s.logger.Info("serving MCP over stdio")
		return s.serveStdio(ctx, os.Stdin, os.Stdout)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		addr := fmt.Sprintf(":%d", cfg.Port)
		errCh := make(chan error, 1)
		go func() {
			errCh <- httpServer.Start(addr)
		}()
		s.logger.Info("serving MCP over streamable HTTP", "addr", addr)
		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		}
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) serveStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := mcpserver.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(s.logger.StandardLogger(&hclog.StandardLoggerOptions{ForceLevel: hclog.Error}))
	err := stdio.Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("cycle",
			mcp.WithDescription("Focus the next window of the target application in round-robin order"),
			mcp.WithString("bundle_id", mcp.Description("Target bundle identifier (default: the configured target)")),
			mcp.WithBoolean("dry_run", mcp.Description("Report the window that would be focused without focusing it")),
		),
		s.handleCycle,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List the eligible windows of the target application in cycle order"),
			mcp.WithString("bundle_id", mcp.Description("Target bundle identifier (default: the configured target)")),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		s.handleListWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("status",
			mcp.WithDescription("Report accessibility permission, whether the target is running and its window count"),
			mcp.WithString("bundle_id", mcp.Description("Target bundle identifier (default: the configured target)")),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		s.handleStatus,
	)
}
