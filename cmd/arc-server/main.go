// cmd/arc-server/main.go
package main

import (
	"flag"
	"net/http"
	"os"
	"strings"

	"arch-rule-checker/internal/logger"
	handlers "arch-rule-checker/internal/server"

	"github.com/mark3labs/mcp-go/server"
)

var version = "dev"

func main() {
	mode := flag.String("mode", "stdio", "Transport mode: stdio or sse")
	addr := flag.String("addr", ":8080", "HTTP listen address for SSE")
	path := flag.String("path", "/mcp/sse", "HTTP path for SSE connections")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	// stdout carries the protocol in stdio mode; logs always go to stderr.
	log := logger.Setup(logger.Config{Debug: *debug})

	s := server.NewMCPServer(
		"Architecture Rule Checker",
		version,
		server.WithToolCapabilities(false),
	)
	handlers.RegisterTools(s)

	switch *mode {
	case "stdio":
		if err := server.ServeStdio(s); err != nil {
			log.Error("server.stdio", "err", err)
			os.Exit(1)
		}
	case "sse":
		sseServer := server.NewSSEServer(s)
		ssePath := *path
		msgPath := messagePath(ssePath)

		mux := http.NewServeMux()
		mux.Handle(ssePath, sseServer.SSEHandler())
		mux.Handle(msgPath, sseServer.MessageHandler())

		log.Info("server.sse", "addr", *addr, "sse", ssePath, "message", msgPath)
		if err := http.ListenAndServe(*addr, mux); err != nil {
			log.Error("server.sse", "err", err)
			os.Exit(1)
		}
	default:
		log.Error("unknown mode", "mode", *mode)
		os.Exit(2)
	}
}

// messagePath derives the message endpoint from the SSE path: "/mcp/sse"
// becomes "/mcp/message", anything else gets "/message" appended.
func messagePath(ssePath string) string {
	p := strings.Replace(ssePath, "/sse", "/message", 1)
	if p == ssePath {
		p = strings.TrimRight(ssePath, "/") + "/message"
	}
	return p
}
