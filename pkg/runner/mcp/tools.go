package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/reignite/pkg/app"
	"tableflip.dev/reignite/pkg/journal"
	"tableflip.dev/reignite/pkg/timeutil"
)

type handlers struct {
	svc *app.Service
}

func registerTools(srv *server.MCPServer, h *handlers) {
	srv.AddTool(mcp.NewTool(
		"save_mood",
		mcp.WithDescription("Record a mood check-in."),
		mcp.WithString("mood",
			mcp.Required(),
			mcp.Description("Score 1-5 or one of "+strings.Join(journal.MoodNames(), ", ")+"."),
		),
		mcp.WithString("note",
			mcp.Description("Optional note."),
		),
	), h.saveMood)

	srv.AddTool(mcp.NewTool(
		"mood_report",
		mcp.WithDescription("Summarize mood check-ins within a lookback window."),
		mcp.WithString("since",
			mcp.Description("Window such as 3d, 1w or 2 weeks. Defaults to "+timeutil.DefaultWindow+"."),
		),
	), h.moodReport)

	srv.AddTool(mcp.NewTool(
		"save_gratitude",
		mcp.WithDescription("Replace the gratitude snapshot with up to three entries."),
		mcp.WithString("first", mcp.Description("First good thing.")),
		mcp.WithString("second", mcp.Description("Second good thing.")),
		mcp.WithString("third", mcp.Description("Third good thing.")),
	), h.saveGratitude)

	srv.AddTool(mcp.NewTool(
		"save_thought",
		mcp.WithDescription("Add a thought diary entry."),
		mcp.WithString("situation", mcp.Required(), mcp.Description("What happened.")),
		mcp.WithString("thought", mcp.Required(), mcp.Description("The automatic thought.")),
		mcp.WithString("balance", mcp.Description("A balanced alternative.")),
	), h.saveThought)

	srv.AddTool(mcp.NewTool(
		"set_routine_item",
		mcp.WithDescription("Tick or untick a routine item."),
		mcp.WithNumber("item",
			mcp.Required(),
			mcp.Description("Item number, starting at 1."),
			mcp.Min(1),
		),
		mcp.WithBoolean("checked", mcp.Description("Whether the item is done. Defaults to true.")),
	), h.setRoutineItem)

	srv.AddTool(mcp.NewTool(
		"set_worry_time",
		mcp.WithDescription("Store the daily worry-time reminder."),
		mcp.WithString("time", mcp.Required(), mcp.Description("Time of day as HH:MM.")),
	), h.setWorryTime)

	srv.AddTool(mcp.NewTool(
		"bedtimes",
		mcp.WithDescription("Suggest bedtimes that end on a full sleep cycle."),
		mcp.WithString("wake", mcp.Required(), mcp.Description("Wake-up time as HH:MM.")),
	), h.bedtimes)
}

func (h *handlers) saveMood(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Mood string `json:"mood"`
		Note string `json:"note"`
	}
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	score := 0
	if strings.TrimSpace(args.Mood) != "" {
		s, ok := journal.ScoreFor(args.Mood)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown mood %q", args.Mood)), nil
		}
		score = s
	}
	e, err := h.svc.SaveMood(score, args.Note)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toJSONResult(map[string]any{"entry": e, "message": app.MoodSaved})
}

func (h *handlers) moodReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	window, label, err := timeutil.ParseWindow(request.GetString("since", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	until := h.now()
	r := h.svc.MoodReport(timeutil.Since(until, window), until)
	return toJSONResult(map[string]any{"window": label, "report": r, "total": r.Total()})
}

func (h *handlers) saveGratitude(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	g, err := h.svc.SaveGratitude(
		request.GetString("first", ""),
		request.GetString("second", ""),
		request.GetString("third", ""),
	)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toJSONResult(map[string]any{"gratitude": g, "message": app.GratitudeSaved})
}

func (h *handlers) saveThought(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	e, err := h.svc.SaveThought(
		request.GetString("situation", ""),
		request.GetString("thought", ""),
		request.GetString("balance", ""),
	)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toJSONResult(map[string]any{"entry": e, "message": app.ThoughtSaved})
}

func (h *handlers) setRoutineItem(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	item, err := request.RequireInt("item")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	items, err := h.svc.ToggleRoutineItem(item-1, request.GetBool("checked", true))
	if err != nil {
		if errors.Is(err, app.ErrNoSuchItem) {
			return mcp.NewToolResultError(fmt.Sprintf("no routine item %d", item)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toJSONResult(map[string]any{"items": items, "message": app.RoutineSaved})
}

func (h *handlers) setWorryTime(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.svc.SetWorryTime(request.GetString("time", "")); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	at := h.svc.WorryTime()
	return toJSONResult(map[string]any{"worryTime": at, "message": app.WorrySaved(at)})
}

func (h *handlers) bedtimes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	wake := request.GetString("wake", "")
	times, err := h.svc.Bedtimes(wake)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toJSONResult(map[string]any{"wake": strings.TrimSpace(wake), "bedtimes": times})
}

func (h *handlers) now() time.Time {
	if h.svc.Clock == nil {
		return time.Now()
	}
	return h.svc.Clock.Now()
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
