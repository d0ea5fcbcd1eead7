package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hyperpolymath/aletheia/core"
	"github.com/hyperpolymath/aletheia/internal/contract"
	"github.com/hyperpolymath/aletheia/internal/outwriter"
	"github.com/hyperpolymath/aletheia/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	version string
}

// resolveRepo applies the optional repo_path argument over the base config
// and enforces the existing-directory precondition that the CLI would
// otherwise have checked.
func (h *toolHandler) resolveRepo(request mcp.CallToolRequest) (string, error) {
	cfg := h.baseCfg.Clone()
	repoPath := cfg.RepoPath
	if p := request.GetString("repo_path", ""); p != "" {
		repoPath = p
	}

	info, err := os.Stat(repoPath)
	if err != nil {
		return "", fmt.Errorf("path %s does not exist", repoPath)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path %s is not a directory", repoPath)
	}
	return repoPath, nil
}

func (h *toolHandler) handleVerifyRepository(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repoPath, err := h.resolveRepo(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report := core.VerifyRepository(repoPath)
	jsonData, _ := json.MarshalIndent(schema.NewJSONReport(report, h.version), "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGenerateBadge(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repoPath, err := h.resolveRepo(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report := core.VerifyRepository(repoPath)
	level, achieved := report.HighestLevel()
	if !achieved {
		return mcp.NewToolResultError("repository does not meet any compliance level"), nil
	}

	return mcp.NewToolResultText(outwriter.GenerateBadge(level)), nil
}

func (h *toolHandler) handleGenerateConformity(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repoPath, err := h.resolveRepo(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report := core.VerifyRepository(repoPath)
	return mcp.NewToolResultText(outwriter.GenerateConformityDoc(report)), nil
}
