package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/claude/periodize/internal/analytics"
	"github.com/claude/periodize/internal/program"
	"github.com/claude/periodize/internal/recovery"
	"github.com/claude/periodize/internal/storage"
	"github.com/claude/periodize/internal/volume"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(db *storage.DB, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Periodize", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Periodize training server. Query the active program, weekly volume against MEV/MAV/MRV landmarks, strength progression, and recovery assessments. All data is scoped to the authenticated user."),
	)

	h := &handlers{
		db:        db,
		programs:  program.NewService(db, log),
		volume:    volume.NewService(db, log),
		recovery:  recovery.NewService(db, log),
		analytics: analytics.NewService(db, log),
		log:       log,
	}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetProgram, Handler: h.getProgram},
		server.ServerTool{Tool: toolGetCurrentWeekVolume, Handler: h.getCurrentWeekVolume},
		server.ServerTool{Tool: toolGetVolumeTrends, Handler: h.getVolumeTrends},
		server.ServerTool{Tool: toolGetProgramVolumeAnalysis, Handler: h.getProgramVolumeAnalysis},
		server.ServerTool{Tool: toolGet1RMProgression, Handler: h.get1RMProgression},
		server.ServerTool{Tool: toolGetConsistencyMetrics, Handler: h.getConsistencyMetrics},
		server.ServerTool{Tool: toolGetRecoveryAssessment, Handler: h.getRecoveryAssessment},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resCurrentProgram, Handler: h.currentProgram},
		server.ServerResource{Resource: resWeeklyVolume, Handler: h.weeklyVolume},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	db        *storage.DB
	programs  *program.Service
	volume    *volume.Service
	recovery  *recovery.Service
	analytics *analytics.Service
	log       *slog.Logger
}

// --- Resource definitions ---

var resCurrentProgram = mcp.NewResource(
	"periodize://current_program",
	"Current Program",
	mcp.WithResourceDescription("The active training program with its days, exercise slots, and mesocycle phase"),
	mcp.WithMIMEType("application/json"),
)

var resWeeklyVolume = mcp.NewResource(
	"periodize://weekly_volume",
	"Weekly Volume",
	mcp.WithResourceDescription("Current-week completed and planned sets per muscle group with zone classification"),
	mcp.WithMIMEType("application/json"),
)
