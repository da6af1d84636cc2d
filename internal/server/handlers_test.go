package server

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"arch-rule-checker/internal/report"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callTool(t *testing.T, handler server.ToolHandlerFunc, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

const getUserSrc = `package usecases

type GetUserUseCase struct{}

func (u *GetUserUseCase) Execute(id string) UserEntity {
	return UserEntity{}
}
`

func sampleRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "get_user_usecase.go"), []byte(getUserSrc), 0o644))
	return root
}

func TestCheckArchitectureHandler(t *testing.T) {
	root := sampleRoot(t)

	res := callTool(t, checkArchitectureHandler, map[string]any{"source_path": root})
	assert.False(t, res.IsError)
	assert.Contains(t, textOf(t, res), "UseCase 'GetUserUseCase' exposes model object 'UserEntity' in method 'Execute'")

	doc, ok := res.StructuredContent.(report.Document)
	require.True(t, ok)
	assert.Equal(t, 1, doc.Summary.Violations)
	assert.Equal(t, "Execute", doc.Violations[0].Method)
}

func TestCheckArchitectureHandler_Errors(t *testing.T) {
	res := callTool(t, checkArchitectureHandler, map[string]any{})
	assert.True(t, res.IsError)

	res = callTool(t, checkArchitectureHandler, map[string]any{"source_path": filepath.Join(t.TempDir(), "missing")})
	assert.True(t, res.IsError)
	assert.Contains(t, textOf(t, res), "Failed to check project")
}

func TestClassifyFileHandler(t *testing.T) {
	res := callTool(t, classifyFileHandler, map[string]any{"path": "internal/core/usecases/get_user.go"})
	assert.False(t, res.IsError)
	assert.JSONEq(t, `{"path": "internal/core/usecases/get_user.go", "useCase": true}`, textOf(t, res))

	res = callTool(t, classifyFileHandler, map[string]any{"path": "internal/infra/repo.go"})
	assert.JSONEq(t, `{"path": "internal/infra/repo.go", "useCase": false}`, textOf(t, res))
}

func TestEvaluateSignatureHandler(t *testing.T) {
	res := callTool(t, evaluateSignatureHandler, map[string]any{"signature": "Result[OrderEntity, error]"})
	assert.JSONEq(t, `{"signature": "Result[OrderEntity, error]", "exposes": true, "exposedType": "OrderEntity"}`, textOf(t, res))

	res = callTool(t, evaluateSignatureHandler, map[string]any{"signature": "ProductResponse"})
	assert.JSONEq(t, `{"signature": "ProductResponse", "exposes": false}`, textOf(t, res))

	res = callTool(t, evaluateSignatureHandler, map[string]any{
		"signature":         "OrderView",
		"model_types":       "Order, Item",
		"exemption_markers": "Summary",
	})
	assert.JSONEq(t, `{"signature": "OrderView", "exposes": true, "exposedType": "OrderView"}`, textOf(t, res))

	res = callTool(t, evaluateSignatureHandler, map[string]any{})
	assert.True(t, res.IsError)
}

func TestMethodSourceHandler(t *testing.T) {
	root := sampleRoot(t)
	file := filepath.Join(root, "get_user_usecase.go")

	res := callTool(t, methodSourceHandler, map[string]any{"file": file, "use_case": "GetUserUseCase", "method": "Execute"})
	assert.False(t, res.IsError)
	assert.Contains(t, textOf(t, res), "func (u *GetUserUseCase) Execute(id string) UserEntity {")

	res = callTool(t, methodSourceHandler, map[string]any{"file": file, "use_case": "GetUserUseCase", "method": "Missing"})
	assert.True(t, res.IsError)

	res = callTool(t, methodSourceHandler, map[string]any{"file": filepath.Join(root, "gone.go"), "use_case": "A", "method": "B"})
	assert.True(t, res.IsError)
	assert.Contains(t, textOf(t, res), "Failed to read file")
}

func TestDefaultConfigHandler(t *testing.T) {
	res := callTool(t, defaultConfigHandler, nil)
	assert.False(t, res.IsError)
	assert.Contains(t, textOf(t, res), `"modelTypes"`)
	assert.Contains(t, textOf(t, res), `"AggregateRoot"`)
}

func TestRegisterTools(t *testing.T) {
	s := server.NewMCPServer("test", "0.0.0", server.WithToolCapabilities(false))
	RegisterTools(s)

	msg := s.HandleMessage(context.Background(), []byte(`{"jsonrpc": "2.0", "id": 1, "method": "tools/list"}`))
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	for _, name := range []string{"check_architecture", "classify_file", "evaluate_signature", "method_source", "default_config"} {
		assert.Contains(t, string(data), `"name":"`+name+`"`)
	}
}
