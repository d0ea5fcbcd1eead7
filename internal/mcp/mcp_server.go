// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/hyperpolymath/aletheia/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Aletheia MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"Aletheia Compliance Server",
		version,
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		version: version,
	}

	// --- 1. Tool: verify_repository ---
	s.AddTool(mcp.NewTool("verify_repository",
		mcp.WithDescription("Verify a repository against the RSR Bronze compliance checks and return the full JSON report."),
		mcp.WithString("repo_path", mcp.Description("Path to the repository (defaults to the configured repository if not specified).")),
	), h.handleVerifyRepository)

	// --- 2. Tool: generate_badge ---
	s.AddTool(mcp.NewTool("generate_badge",
		mcp.WithDescription("Generate the markdown RSR badge for the compliance level a repository achieves."),
		mcp.WithString("repo_path", mcp.Description("Path to the repository.")),
	), h.handleGenerateBadge)

	// --- 3. Tool: generate_conformity ---
	s.AddTool(mcp.NewTool("generate_conformity",
		mcp.WithDescription("Generate the markdown RSR conformity attestation for a repository."),
		mcp.WithString("repo_path", mcp.Description("Path to the repository.")),
	), h.handleGenerateConformity)

	return s
}

// StartMCPServer starts the Aletheia MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, version string) error {
	s := NewMCPServer(baseCfg, version)
	return server.ServeStdio(s)
}
