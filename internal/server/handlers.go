package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/window-cycler/internal/cycler"
	"github.com/mj1618/window-cycler/internal/model"
	"github.com/mj1618/window-cycler/internal/output"
	"gopkg.in/yaml.v3"
)

// toText serializes v to YAML for an MCP response.
func toText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

func errorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(toText(output.NewErrorResult(err)))
}

// targetFor resolves the optional bundle_id argument against the
// configured target.
func (s *Server) targetFor(request mcp.CallToolRequest) model.Target {
	bundleID := strings.TrimSpace(request.GetString("bundle_id", ""))
	if bundleID == "" || bundleID == s.target.BundleID {
		return s.target
	}
	return model.Target{BundleID: bundleID}
}

func (s *Server) handleCycle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	target := s.targetFor(request)
	dryRun := request.GetBool("dry_run", false)

	var (
		res *cycler.Result
		err error
	)
	if dryRun {
		res, err = s.cycler.Plan(ctx, target)
	} else {
		res, err = s.cycler.CycleNext(ctx, target)
		s.cache.Invalidate(target.BundleID)
	}
	if err != nil {
		s.logger.Debug("cycle tool failed", "target", target.BundleID, "error", err)
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(toText(output.NewCycleResult(res))), nil
}

func (s *Server) handleListWindows(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	target := s.targetFor(request)
	snap, err := s.cycler.Snapshot(ctx, target)
	if err != nil {
		return errorResult(err), nil
	}
	defer snap.Release()
	return mcp.NewToolResultText(toText(output.NewListResult(snap))), nil
}

func (s *Server) handleStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	target := s.targetFor(request)
	st := s.cache.Status(ctx, target, s.cycler.Status)
	return mcp.NewToolResultText(toText(st)), nil
}
