//go:build integration

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/averycrespi/ecl-mcp/internal/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MCPRequest represents a JSON-RPC 2.0 request
type MCPRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

// MCPResponse represents a JSON-RPC 2.0 response
type MCPResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *MCPError       `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC 2.0 error
type MCPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// MCPServerProcess manages the MCP server process for testing
type MCPServerProcess struct {
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	stdout  io.ReadCloser
	scanner *bufio.Scanner
	nextID  int
}

// startMCPServer starts the MCP server process
func startMCPServer(t *testing.T, workspaceRoot string) *MCPServerProcess {
	cmd := exec.Command("go", "run", ".", "--workspace-root", workspaceRoot, "--log-level", "debug")

	stdin, err := cmd.StdinPipe()
	require.NoError(t, err, "Failed to create stdin pipe")

	stdout, err := cmd.StdoutPipe()
	require.NoError(t, err, "Failed to create stdout pipe")

	stderr, err := cmd.StderrPipe()
	require.NoError(t, err, "Failed to create stderr pipe")

	require.NoError(t, cmd.Start(), "Failed to start MCP server")

	go func() {
		stderrScanner := bufio.NewScanner(stderr)
		for stderrScanner.Scan() {
			t.Logf("Server stderr: %s", stderrScanner.Text())
		}
	}()

	return &MCPServerProcess{
		cmd:     cmd,
		stdin:   stdin,
		stdout:  stdout,
		scanner: bufio.NewScanner(stdout),
		nextID:  1,
	}
}

// stop terminates the MCP server process
func (s *MCPServerProcess) stop() error {
	s.stdin.Close()
	s.stdout.Close()
	return s.cmd.Process.Kill()
}

// sendRequest sends a JSON-RPC request to the server and waits for its response
func (s *MCPServerProcess) sendRequest(t *testing.T, method string, params any) MCPResponse {
	req := MCPRequest{JSONRPC: "2.0", ID: s.nextID, Method: method, Params: params}
	s.nextID++

	reqJSON, err := json.Marshal(req)
	require.NoError(t, err, "Failed to marshal request")

	_, err = s.stdin.Write(append(reqJSON, '\n'))
	require.NoError(t, err, "Failed to write request")

	// the first request also waits for `go run` to build the binary
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	done := make(chan MCPResponse, 1)
	errChan := make(chan error, 1)

	go func() {
		if !s.scanner.Scan() {
			errChan <- fmt.Errorf("scanner stopped: %v", s.scanner.Err())
			return
		}
		var resp MCPResponse
		if err := json.Unmarshal(s.scanner.Bytes(), &resp); err != nil {
			errChan <- fmt.Errorf("failed to unmarshal response: %v", err)
			return
		}
		done <- resp
	}()

	select {
	case resp := <-done:
		return resp
	case err := <-errChan:
		require.FailNow(t, "Error reading response", err.Error())
	case <-ctx.Done():
		require.FailNow(t, "Timeout waiting for response")
	}

	return MCPResponse{}
}

// callTool calls a tool and returns the text of its first content item
func (s *MCPServerProcess) callTool(t *testing.T, name string, arguments map[string]any) string {
	resp := s.sendRequest(t, "tools/call", map[string]any{"name": name, "arguments": arguments})
	require.Nil(t, resp.Error, "Tool %s should not return a JSON-RPC error", name)

	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		IsError bool `json:"isError"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &result), "Should be able to unmarshal tool result")
	require.NotEmpty(t, result.Content, "Content should not be empty")
	require.False(t, result.IsError, "Tool %s failed: %s", name, result.Content[0].Text)

	return result.Content[0].Text
}

// initialize sends the MCP initialize request
func (s *MCPServerProcess) initialize(t *testing.T) {
	resp := s.sendRequest(t, "initialize", map[string]any{
		"protocolVersion": "2024-11-05",
		"capabilities": map[string]any{
			"tools": map[string]any{},
		},
		"clientInfo": map[string]any{
			"name":    "integration-test",
			"version": "1.0.0",
		},
	})
	require.Nil(t, resp.Error, "MCP initialize should not return an error")
}

// TestMCPServerIntegration drives the server binary against testdata/example
func TestMCPServerIntegration(t *testing.T) {
	workspaceRoot, err := filepath.Abs("../../testdata/example")
	require.NoError(t, err, "Failed to get testdata/example directory")

	_, err = os.Stat(filepath.Join(workspaceRoot, "main.ecl"))
	require.NoError(t, err, "testdata/example should contain main.ecl")

	server := startMCPServer(t, workspaceRoot)
	defer server.stop()

	server.initialize(t)

	t.Run("ListTools", func(t *testing.T) {
		resp := server.sendRequest(t, "tools/list", nil)
		require.Nil(t, resp.Error, "List tools should not return an error")

		var result struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
		}
		require.NoError(t, json.Unmarshal(resp.Result, &result), "Should be able to unmarshal tools list")

		var names []string
		for _, tool := range result.Tools {
			names = append(names, tool.Name)
		}
		assert.ElementsMatch(t, []string{
			"find_symbol_definition",
			"go_to_definition_by_anchor",
			"find_symbol_definitions_by_name",
			"find_symbol_references_by_anchor",
			"list_symbols_in_file",
			"hover_info",
			"get_completion",
		}, names)
	})

	t.Run("FindSymbolDefinition", func(t *testing.T) {
		text := server.callTool(t, "find_symbol_definition", map[string]any{
			"file_path":   "main.ecl",
			"symbol_name": "add",
		})

		var result results.FindSymbolDefinitionToolResult
		require.NoError(t, json.Unmarshal([]byte(text), &result))
		require.Len(t, result.Definitions, 1)
		assert.Equal(t, results.SymbolAnchor("ecl://math.ecl#2:6"), result.Definitions[0].Anchor)
		assert.True(t, result.Definitions[0].Anchor.IsValid())
	})

	t.Run("GoToDefinitionByAnchor", func(t *testing.T) {
		text := server.callTool(t, "go_to_definition_by_anchor", map[string]any{
			"symbol_anchor": "ecl://main.ecl#11:7",
		})

		var result results.GoToDefinitionByAnchorToolResult
		require.NoError(t, json.Unmarshal([]byte(text), &result))
		require.Len(t, result.Definitions, 1)
		assert.Equal(t, "shout", result.Definitions[0].Name)
		assert.Equal(t, "strings.ecl", result.Definitions[0].Location.File)
	})

	t.Run("FindSymbolDefinitionsByName", func(t *testing.T) {
		text := server.callTool(t, "find_symbol_definitions_by_name", map[string]any{
			"symbol_name": "add",
		})

		var result results.FindSymbolDefinitionsByNameToolResult
		require.NoError(t, json.Unmarshal([]byte(text), &result))
		assert.Equal(t, "add", result.Arguments.SymbolName)
		assert.Len(t, result.Definitions, 2)
		for _, definition := range result.Definitions {
			assert.Equal(t, results.SymbolKindFunction, definition.Kind)
			assert.True(t, definition.Anchor.IsValid())
		}
	})

	t.Run("FindSymbolReferencesByAnchor", func(t *testing.T) {
		text := server.callTool(t, "find_symbol_references_by_anchor", map[string]any{
			"symbol_anchor": "ecl://main.ecl#4:10",
		})

		var result results.FindSymbolReferencesByAnchorToolResult
		require.NoError(t, json.Unmarshal([]byte(text), &result))
		assert.Len(t, result.References, 3)
	})

	t.Run("ListSymbolsInFile", func(t *testing.T) {
		text := server.callTool(t, "list_symbols_in_file", map[string]any{
			"file_path": filepath.Join(workspaceRoot, "main.ecl"),
		})

		var result results.ListSymbolsInFileToolResult
		require.NoError(t, json.Unmarshal([]byte(text), &result))
		require.Len(t, result.FileSymbols, 2)
		assert.Equal(t, "count", result.FileSymbols[0].Name)
		assert.Equal(t, results.SymbolKindVariable, result.FileSymbols[0].Kind)
		assert.Equal(t, "greet", result.FileSymbols[1].Name)
	})

	t.Run("HoverInfo", func(t *testing.T) {
		text := server.callTool(t, "hover_info", map[string]any{
			"file_path": "main.ecl",
			"line":      12,
			"character": 9,
		})

		var result results.HoverInfoToolResult
		require.NoError(t, json.Unmarshal([]byte(text), &result))
		assert.Contains(t, result.HoverInfo, "declared in math.ecl:2")
	})

	t.Run("GetCompletion", func(t *testing.T) {
		text := server.callTool(t, "get_completion", map[string]any{
			"file_path": "main.ecl",
			"line":      4,
			"character": 6,
		})

		var result results.GetCompletionToolResult
		require.NoError(t, json.Unmarshal([]byte(text), &result))
		assert.NotEmpty(t, result.Items)
	})
}
