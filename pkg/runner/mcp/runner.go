// Package mcp exposes the journal to local assistants over the Model
// Context Protocol on stdio.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/reignite/pkg/app"
)

// Runner coordinates MCP server startup.
type Runner struct {
	Service *app.Service
	Name    string
	Version string

	// In and Out default to stdin and stdout.
	In  io.Reader
	Out io.Writer
}

// NewServer registers every resource and tool over svc.
func NewServer(svc *app.Service, name, version string) *server.MCPServer {
	if name == "" {
		name = "reignite"
	}
	if version == "" {
		version = "dev"
	}
	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read and write the reignite wellness journal: mood check-ins, gratitude, thought diary, routine, worry time and crisis resources. Everything stays on this device."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)
	h := &handlers{svc: svc}
	registerResources(srv, h)
	registerTools(srv, h)
	return srv
}

// Do serves until ctx is done or the client disconnects.
func (r Runner) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("mcp runner requires a service")
	}
	in, out := r.In, r.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	srv := NewServer(r.Service, r.Name, r.Version)
	err := server.NewStdioServer(srv).Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
