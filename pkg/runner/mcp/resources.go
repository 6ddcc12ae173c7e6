package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/reignite/pkg/app"
	"tableflip.dev/reignite/pkg/journal"
)

func registerResources(srv *server.MCPServer, h *handlers) {
	static := []struct {
		uri, name, desc string
		read            func() any
	}{
		{"reignite://mood", "Mood history", "The most recent mood check-ins, oldest first.", h.moodPayload},
		{"reignite://gratitude", "Gratitude", "The last gratitude snapshot.", h.gratitudePayload},
		{"reignite://thoughts", "Thought diary", "Every thought diary entry.", h.thoughtsPayload},
		{"reignite://routine", "Nightly routine", "The routine checklist and what is ticked.", h.routinePayload},
		{"reignite://worry", "Worry time", "The daily worry-time reminder, if set.", h.worryPayload},
		{"reignite://crisis", "Crisis resources", "Helplines for the chosen country.", h.crisisPayload},
	}
	for _, r := range static {
		read := r.read
		resource := mcp.NewResource(
			r.uri,
			r.name,
			mcp.WithResourceDescription(r.desc),
			mcp.WithMIMEType("application/json"),
		)
		srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			return encodeResourceJSON(request.Params.URI, read())
		})
	}

	template := mcp.NewResourceTemplate(
		"reignite://notes/{field}",
		"Notes",
		mcp.WithTemplateDescription("One free-text note: hierarchyNotes, selfPassionNotes, valuesNotes or thoughtDiaryExtra."),
		mcp.WithTemplateMIMEType("application/json"),
	)
	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		payload, err := h.notePayload(templateArg(request.Params.Arguments, "field"))
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

// templateArg reads a URI template variable, which arrives as a string or a
// one-element list depending on the matcher.
func templateArg(args map[string]any, name string) string {
	switch v := args[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func (h *handlers) moodPayload() any {
	entries := h.svc.MoodHistory(app.ChartEntries)
	return map[string]any{"entries": entries, "count": len(entries)}
}

func (h *handlers) gratitudePayload() any {
	return map[string]any{"gratitude": h.svc.LastGratitude()}
}

func (h *handlers) thoughtsPayload() any {
	entries := h.svc.Thoughts()
	return map[string]any{"entries": entries, "count": len(entries)}
}

func (h *handlers) routinePayload() any {
	return map[string]any{"items": h.svc.Routine()}
}

func (h *handlers) worryPayload() any {
	return map[string]any{"worryTime": h.svc.WorryTime()}
}

func (h *handlers) crisisPayload() any {
	return h.svc.Crisis()
}

func (h *handlers) notePayload(name string) (any, error) {
	field, ok := journal.ParseNoteField(name)
	if !ok {
		return nil, fmt.Errorf("unknown note field %q", name)
	}
	return map[string]any{"field": field, "text": h.svc.Note(field)}, nil
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
