package server

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"arch-rule-checker/internal/checker"
	"arch-rule-checker/internal/config"
	"arch-rule-checker/internal/report"
	"arch-rule-checker/internal/runner"
	"arch-rule-checker/internal/snippet"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// checkArchitectureHandler handles requests for the 'check_architecture' tool.
func checkArchitectureHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sourcePath, err := request.RequireString("source_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	configPath := request.GetString("config_path", "")
	includeTests := request.GetBool("include_tests", false)

	res, err := runner.Run(ctx, runner.Request{
		SourcePath:   sourcePath,
		ConfigPath:   configPath,
		IncludeTests: includeTests,
	})
	if err != nil {
		return mcp.NewToolResultError("Failed to check project: " + err.Error()), nil
	}

	doc := report.NewDocument(res.Report, uuid.New())
	var text strings.Builder
	if err := report.Text(&text, res.Report, report.TextOptions{}); err != nil {
		return mcp.NewToolResultError("Failed to render report: " + err.Error()), nil
	}
	return mcp.NewToolResultStructured(doc, text.String()), nil
}

// classifyFileHandler handles requests for the 'classify_file' tool.
func classifyFileHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result := map[string]any{
		"path":    path,
		"useCase": checker.ClassifyPath(path),
	}
	data, _ := json.Marshal(result)
	return mcp.NewToolResultStructured(result, string(data)), nil
}

// evaluateSignatureHandler handles requests for the 'evaluate_signature' tool.
func evaluateSignatureHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	signature, err := request.RequireString("signature")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cfg := config.Default()
	if models := splitList(request.GetString("model_types", "")); len(models) > 0 {
		cfg.ModelTypes = models
	}
	if markers := splitList(request.GetString("exemption_markers", "")); len(markers) > 0 {
		cfg.ExemptionMarkers = markers
	}

	exposed, ok := checker.NewRule(cfg.ModelTypes, cfg.Markers()).Evaluate(signature)
	result := map[string]any{
		"signature": signature,
		"exposes":   ok,
	}
	if ok {
		result["exposedType"] = exposed
	}
	data, _ := json.Marshal(result)
	return mcp.NewToolResultStructured(result, string(data)), nil
}

// methodSourceHandler handles requests for the 'method_source' tool.
func methodSourceHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	file, err := request.RequireString("file")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	useCase, err := request.RequireString("use_case")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	method, err := request.RequireString("method")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	src, err := os.ReadFile(file)
	if err != nil {
		return mcp.NewToolResultError("Failed to read file: " + err.Error()), nil
	}
	code, err := snippet.Method(file, src, useCase, method)
	if err != nil {
		return mcp.NewToolResultError("Failed to get method source: " + err.Error()), nil
	}
	return mcp.NewToolResultText(code), nil
}

// defaultConfigHandler handles requests for the 'default_config' tool.
func defaultConfigHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(config.Default(), "", "    ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// RegisterTools defines all tools on the server and registers their handlers.
func RegisterTools(s *server.MCPServer) {
	// Tool 1: run the full check over a source tree.
	checkTool := mcp.NewTool("check_architecture",
		mcp.WithDescription("Scan a Go source tree and report every use-case method that returns a domain model type (Entity, AggregateRoot, ValueObject, Model, Domain by default) instead of a Response or DTO type. Use-case files are recognized by a file name containing 'usecase' or a path containing both 'core' and 'usecases' directories. Returns the violations with file positions plus summary counts."),
		mcp.WithString("source_path", mcp.Required(), mcp.Description("Absolute path to the directory to scan recursively (e.g., '/home/user/myproject')")),
		mcp.WithString("config_path", mcp.Description("Optional path to an arch-config.json file. When omitted, arch-config.json, .config/arch-config.json and .arch/arch-config.json under source_path are probed, then the built-in defaults are used.")),
		mcp.WithBoolean("include_tests", mcp.Description("Also analyze _test.go files. Defaults to false.")),
	)
	s.AddTool(checkTool, checkArchitectureHandler)

	// Tool 2: tell whether a file path belongs to the use-case layer.
	classifyTool := mcp.NewTool("classify_file",
		mcp.WithDescription("Tell whether a file would be analyzed as part of the use-case layer, based only on its name and path."),
		mcp.WithString("path", mcp.Required(), mcp.Description("File path, absolute or relative (e.g., 'internal/core/usecases/get_user.go')")),
	)
	s.AddTool(classifyTool, classifyFileHandler)

	// Tool 3: evaluate a single return signature.
	evaluateTool := mcp.NewTool("evaluate_signature",
		mcp.WithDescription("Evaluate one Go return signature against the exposure rule. Generic containers such as Result[T, E], []T, *T, map[K]V and (A, B) tuples are unwrapped. Useful to check a planned method signature before writing it."),
		mcp.WithString("signature", mcp.Required(), mcp.Description("Return type text, e.g. 'Result[OrderEntity, error]' or '(*UserResponse, error)'")),
		mcp.WithString("model_types", mcp.Description("Comma-separated model type names; defaults to the built-in list")),
		mcp.WithString("exemption_markers", mcp.Description("Comma-separated exemption markers; defaults to 'Response,DTO'")),
	)
	s.AddTool(evaluateTool, evaluateSignatureHandler)

	// Tool 4: retrieve the source of an offending method.
	methodSourceTool := mcp.NewTool("method_source",
		mcp.WithDescription("Get the formatted source of a use-case method reported by 'check_architecture'. For interface methods the whole interface declaration is returned."),
		mcp.WithString("file", mcp.Required(), mcp.Description("Path to the Go file, as reported in the violation")),
		mcp.WithString("use_case", mcp.Required(), mcp.Description("Name of the use-case type (case-sensitive)")),
		mcp.WithString("method", mcp.Required(), mcp.Description("Name of the method (case-sensitive)")),
	)
	s.AddTool(methodSourceTool, methodSourceHandler)

	// Tool 5: print the default configuration.
	defaultConfigTool := mcp.NewTool("default_config",
		mcp.WithDescription("Return the built-in configuration as arch-config.json content, ready to be saved and customized."),
	)
	s.AddTool(defaultConfigTool, defaultConfigHandler)
}
