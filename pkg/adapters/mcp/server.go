package mcp

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/aretw0/waterjug"
	"github.com/aretw0/waterjug/api"
	"github.com/aretw0/waterjug/pkg/domain"
	"github.com/aretw0/waterjug/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolSolve is the name of the tool exposed by the server.
const ToolSolve = "solve_water_jug"

// SpecURI identifies the OpenAPI document exposed as a resource.
const SpecURI = "waterjug://openapi"

// SolveArgs are the tool arguments. Pointers keep missing values apart from zeros.
type SolveArgs struct {
	X *float64 `json:"x_capacity"`
	Y *float64 `json:"y_capacity"`
	Z *float64 `json:"z_amount_wanted"`
}

// SolveResponse aligns with the HTTP adapter: Solution is the trace, empty when the target
// cannot be measured.
type SolveResponse struct {
	Solution domain.Trace   `json:"solution" jsonschema_description:"Ordered steps from empty jugs to the target"`
	Solved   bool           `json:"solved" jsonschema_description:"False when no sequence of actions reaches the target"`
	Outcome  domain.Outcome `json:"outcome" jsonschema_description:"solved, unsolvable or short_circuit"`
	Message  string         `json:"message,omitempty" jsonschema_description:"No solution possible, when unsolved"`
}

// Server wraps a Solver and exposes it as an MCP Server.
type Server struct {
	solver    ports.Solver
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(solver ports.Solver) *Server {
	s := &Server{
		solver:    solver,
		mcpServer: server.NewMCPServer("waterjug-mcp", strings.TrimSpace(waterjug.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	solveTool := mcp.NewTool(ToolSolve,
		mcp.WithDescription("Find the shortest sequence of fill, empty and transfer actions that leaves exactly z_amount_wanted units in one of two jugs."),
		mcp.WithNumber(domain.KeyCapacityX, mcp.Required(), mcp.Description("Capacity of jug X (positive integer)")),
		mcp.WithNumber(domain.KeyCapacityY, mcp.Required(), mcp.Description("Capacity of jug Y (positive integer)")),
		mcp.WithNumber(domain.KeyAmountWanted, mcp.Required(), mcp.Description("Amount wanted in either jug (positive integer)")),
		mcp.WithOutputSchema[SolveResponse](),
	)
	s.mcpServer.AddTool(solveTool, mcp.NewStructuredToolHandler(s.handleSolve))
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest, args SolveArgs) (SolveResponse, error) {
	p, err := args.Puzzle()
	if err != nil {
		return SolveResponse{}, err
	}

	res, err := s.solver.Solve(ctx, p)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return SolveResponse{}, errors.New(domain.InvalidInputMessage)
		}
		return SolveResponse{}, fmt.Errorf("solve failed: %w", err)
	}

	resp := SolveResponse{
		Solution: res.Trace,
		Solved:   res.Solved(),
		Outcome:  res.Outcome,
	}
	if resp.Solution == nil {
		resp.Solution = domain.Trace{}
	}
	if !resp.Solved {
		resp.Message = domain.NoSolution
	}
	return resp, nil
}

// Puzzle converts the arguments, rejecting missing, fractional and non-positive values.
func (a SolveArgs) Puzzle() (domain.Puzzle, error) {
	var out [3]int
	for i, v := range []*float64{a.X, a.Y, a.Z} {
		if v == nil || *v != math.Trunc(*v) || *v < 1 || *v > domain.MaxAmount {
			return domain.Puzzle{}, errors.New(domain.InvalidInputMessage)
		}
		out[i] = int(*v)
	}
	return domain.Puzzle{X: out[0], Y: out[1], Z: out[2]}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: waterjug://openapi
	s.mcpServer.AddResource(mcp.NewResource(SpecURI, "HTTP API Definition",
		mcp.WithMIMEType("text/yaml"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      SpecURI,
				MIMEType: "text/yaml",
				Text:     string(api.Spec),
			},
		}, nil
	})
}
