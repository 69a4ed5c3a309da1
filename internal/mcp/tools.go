package mcp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

// defaultTimeRange returns start/end defaulting to the last 90 days.
func defaultTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -90)
	}

	return start, end, nil
}

// --- Tool definitions ---

var toolGetProgram = mcp.NewTool("get_program",
	mcp.WithDescription("Retrieve the active training program: days, exercise slots with target sets/reps/RIR, and the current mesocycle phase and week."),
)

var toolGetCurrentWeekVolume = mcp.NewTool("get_current_week_volume",
	mcp.WithDescription("Completed versus planned sets per muscle group for the current Monday-to-Sunday week, with MEV/MAV/MRV zone classification and warnings."),
)

var toolGetVolumeTrends = mcp.NewTool("get_volume_trends",
	mcp.WithDescription("Completed weekly set volume per muscle group over past weeks, with landmark reference values."),
	mcp.WithNumber("weeks", mcp.Description("Number of weeks to look back (1-52). Defaults to 8.")),
	mcp.WithString("muscle_group", mcp.Description("Filter to one muscle group (e.g. 'chest', 'lats')")),
)

var toolGetProgramVolumeAnalysis = mcp.NewTool("get_program_volume_analysis",
	mcp.WithDescription("Classify the active program's planned weekly sets per muscle group against MEV/MAV/MRV. Flags groups below MEV or above MRV."),
)

var toolGet1RMProgression = mcp.NewTool("get_1rm_progression",
	mcp.WithDescription("Estimated one-rep max over time for an exercise, from logged sets using the RIR-adjusted Epley formula."),
	mcp.WithString("exercise_id", mcp.Required(), mcp.Description("Exercise UUID")),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 90 days ago.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
)

var toolGetConsistencyMetrics = mcp.NewTool("get_consistency_metrics",
	mcp.WithDescription("Workout adherence rate, average session duration, and total scheduled workouts."),
)

var toolGetRecoveryAssessment = mcp.NewTool("get_recovery_assessment",
	mcp.WithDescription("Retrieve a day's recovery assessment: subscores, total score, and the resulting volume adjustment recommendation."),
	mcp.WithString("date", mcp.Description("Assessment date (YYYY-MM-DD). Defaults to today.")),
)

// --- Tool handlers ---

func (h *handlers) getProgram(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	tree, err := h.programs.Active(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_program", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(tree)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getCurrentWeekVolume(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	report, err := h.volume.CurrentWeekVolume(ctx, uid, time.Now())
	if err != nil {
		h.log.Error("mcp get_current_week_volume", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(report)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getVolumeTrends(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)
	weeks := req.GetInt("weeks", 8)
	muscleGroup := req.GetString("muscle_group", "")

	trends, err := h.volume.History(ctx, uid, weeks, muscleGroup, time.Now())
	if err != nil {
		h.log.Error("mcp get_volume_trends", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(trends)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgramVolumeAnalysis(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	analysis, err := h.volume.ProgramAnalysis(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_program_volume_analysis", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(analysis)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) get1RMProgression(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	idStr, err := req.RequireString("exercise_id")
	if err != nil {
		return mcp.NewToolResultError("exercise_id parameter is required"), nil
	}
	exerciseID, err := uuid.Parse(idStr)
	if err != nil {
		return mcp.NewToolResultError("exercise_id must be a UUID"), nil
	}

	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	points, err := h.analytics.OneRMProgression(ctx, uid, exerciseID, start, end)
	if err != nil {
		h.log.Error("mcp get_1rm_progression", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(points)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getConsistencyMetrics(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	metrics, err := h.analytics.ConsistencyMetrics(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_consistency_metrics", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(metrics)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getRecoveryAssessment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	date := req.GetString("date", time.Now().Format("2006-01-02"))
	row, err := h.recovery.ByDate(ctx, uid, date)
	if err != nil {
		h.log.Error("mcp get_recovery_assessment", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(row)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
