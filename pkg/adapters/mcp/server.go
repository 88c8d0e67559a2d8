// Package mcp exposes the balancing engine as a Model Context Protocol
// server, so AI agents can balance equations as a tool call.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/stoich/pkg/balance"
	"github.com/aretw0/stoich/pkg/chem"
)

// BalanceResponse is the structured result of the balance_equation tool.
type BalanceResponse struct {
	Balanced             string `json:"balanced" jsonschema_description:"The balanced equation text"`
	ReactantCoefficients []int  `json:"reactant_coefficients" jsonschema_description:"Coefficients of the reactant terms in input order"`
	ProductCoefficients  []int  `json:"product_coefficients" jsonschema_description:"Coefficients of the product terms in input order"`
}

// ElementResponse is the structured result of the lookup_element tool.
type ElementResponse struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Known  bool   `json:"known"`
}

// Server wraps the balancing engine and exposes it as an MCP Server.
type Server struct {
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(version string) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer("stoich-mcp", version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{Addr: addr, Handler: mux}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// balanceArgs carries the decoded arguments of the balancing tools.
type balanceArgs struct {
	Equation string `mapstructure:"equation"`
}

// elementArgs carries the decoded arguments of lookup_element.
type elementArgs struct {
	Symbol string `mapstructure:"symbol"`
}

func (s *Server) registerTools() {
	// TOOL: balance_equation
	balanceTool := mcp.NewTool("balance_equation",
		mcp.WithDescription(`Balance a chemical equation. Input like "H2 + O2 -> H2O"; separators "->", "→", and "=" are accepted.`),
		mcp.WithString("equation", mcp.Required(), mcp.Description("The unbalanced equation text")),
		mcp.WithOutputSchema[BalanceResponse](),
	)
	s.mcpServer.AddTool(balanceTool, mcp.NewStructuredToolHandler(s.handleBalance))

	// TOOL: show_work
	workTool := mcp.NewTool("show_work",
		mcp.WithDescription("Balance a chemical equation and return the full working as markdown: stoichiometry matrix, null-space vector, and scaling steps."),
		mcp.WithString("equation", mcp.Required(), mcp.Description("The unbalanced equation text")),
	)
	s.mcpServer.AddTool(workTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args balanceArgs
		if err := mapstructure.Decode(request.GetArguments(), &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		res, err := balance.Balance(args.Equation)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(res.Trace.Markdown()), nil
	})

	// TOOL: lookup_element
	elementTool := mcp.NewTool("lookup_element",
		mcp.WithDescription("Look up a chemical element symbol in the periodic table allow-list."),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Element symbol, e.g. Fe")),
		mcp.WithOutputSchema[ElementResponse](),
	)
	s.mcpServer.AddTool(elementTool, mcp.NewStructuredToolHandler(s.handleElement))
}

func (s *Server) handleBalance(ctx context.Context, request mcp.CallToolRequest, rawArgs map[string]interface{}) (BalanceResponse, error) {
	var args balanceArgs
	if err := mapstructure.Decode(rawArgs, &args); err != nil {
		return BalanceResponse{}, fmt.Errorf("invalid arguments: %w", err)
	}

	res, err := balance.Balance(args.Equation)
	if err != nil {
		return BalanceResponse{}, fmt.Errorf("balance failed: %w", err)
	}
	return BalanceResponse{
		Balanced:             res.String(),
		ReactantCoefficients: res.ReactantCoefficients(),
		ProductCoefficients:  res.ProductCoefficients(),
	}, nil
}

func (s *Server) handleElement(ctx context.Context, request mcp.CallToolRequest, rawArgs map[string]interface{}) (ElementResponse, error) {
	var args elementArgs
	if err := mapstructure.Decode(rawArgs, &args); err != nil {
		return ElementResponse{}, fmt.Errorf("invalid arguments: %w", err)
	}
	name, known := chem.ElementName(chem.Symbol(args.Symbol))
	return ElementResponse{Symbol: args.Symbol, Name: name, Known: known}, nil
}
