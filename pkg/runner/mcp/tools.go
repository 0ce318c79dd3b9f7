package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/tripbook/pkg/app"
	"tableflip.dev/tripbook/pkg/trip"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListDaysTool(srv, svc)
	registerGetDayTool(srv, svc)
	registerAddActivityTool(srv, svc)
	registerRemoveActivityTool(srv, svc)
	registerSetDailyNoteTool(srv, svc)
	registerSuggestDayTool(srv, svc)
	registerWeatherTool(srv, svc)
	registerListItemsTool(srv, svc)
	registerAddItemTool(srv, svc)
	registerToggleItemTool(srv, svc)
	registerRemoveItemTool(srv, svc)
}

func registerListDaysTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_days",
		mcp.WithDescription("Summarize every day of the trip itinerary."),
	)

	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summaries, err := svc.ListDays(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(summaries)
	})
}

func registerGetDayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_day",
		mcp.WithDescription("Get one day's full plan: activities in display order, note, and total cost."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("ISO day, e.g. 2025-12-15."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.GetDay(ctx, date)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerAddActivityTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_activity",
		mcp.WithDescription("Add an activity to a day. Blank fields fall back to safe defaults."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("ISO day the activity belongs to."),
		),
		mcp.WithString("time",
			mcp.Description("Zero-padded HH:MM, defaults to 00:00."),
		),
		mcp.WithString("location",
			mcp.Description("Place name, defaults to Untitled Activity."),
		),
		mcp.WithString("description",
			mcp.Description("Short description."),
		),
		mcp.WithString("type",
			mcp.Description("Activity type."),
			mcp.Enum("TRANSPORT", "MEAL", "SITE", "OTHER"),
		),
		mcp.WithString("costTWD",
			mcp.Description("Estimated cost in New Taiwan Dollars; non-numeric input coerces to 0."),
		),
		mcp.WithString("notes",
			mcp.Description("Clothing or practical advice."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Date        string `json:"date"`
			Time        string `json:"time"`
			Location    string `json:"location"`
			Description string `json:"description"`
			Type        string `json:"type"`
			CostTWD     string `json:"costTWD"`
			Notes       string `json:"notes"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AddActivity(ctx, args.Date, trip.ActivityDraft{
			Time:        args.Time,
			Location:    args.Location,
			Description: args.Description,
			Type:        trip.ParseType(args.Type),
			Cost:        args.CostTWD,
			Notes:       args.Notes,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerRemoveActivityTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"remove_activity",
		mcp.WithDescription("Remove an activity from a day by id."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("ISO day the activity belongs to."),
		),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Activity identifier to remove."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.RemoveActivity(ctx, date, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSetDailyNoteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_daily_note",
		mcp.WithDescription("Replace the free-text note for a day."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("ISO day the note belongs to."),
		),
		mcp.WithString("note",
			mcp.Description("Note text; empty clears the note."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Date string `json:"date"`
			Note string `json:"note"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		dto, err := svc.SetDailyNote(ctx, args.Date, args.Note)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSuggestDayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"suggest_day_plan",
		mcp.WithDescription("Ask the AI service for a full day plan and merge it into the itinerary. May report that no suggestion was produced."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("ISO day to plan."),
		),
		mcp.WithString("preferences",
			mcp.Description("Free-text preferences for the day."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Date        string `json:"date"`
			Preferences string `json:"preferences"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		dto, ok, err := svc.SuggestDay(ctx, args.Date, args.Preferences)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if !ok {
			return mcp.NewToolResultText("no suggestion produced; the day is unchanged"), nil
		}
		return toJSONResult(dto)
	})
}

func registerWeatherTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"weather_advice",
		mcp.WithDescription("Get the 3-day weather advisory for the trip destination. Always returns a payload; offline fallbacks are labeled."),
	)

	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(svc.WeatherAdvice(ctx))
	})
}

func requireList(request mcp.CallToolRequest) (app.List, error) {
	raw, err := request.RequireString("list")
	if err != nil {
		return "", err
	}
	switch app.List(raw) {
	case app.Shortlist:
		return app.Shortlist, nil
	case app.Packing:
		return app.Packing, nil
	default:
		return "", fmt.Errorf("unknown list %q", raw)
	}
}

func registerListItemsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_items",
		mcp.WithDescription("List the shortlist or packing list."),
		mcp.WithString("list",
			mcp.Required(),
			mcp.Description("Which checklist to read."),
			mcp.Enum("shortlist", "packing"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list, err := requireList(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		items, err := svc.ListItems(ctx, list)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(items)
	})
}

func registerAddItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_item",
		mcp.WithDescription("Add an item to the shortlist or packing list. Blank text is ignored."),
		mcp.WithString("list",
			mcp.Required(),
			mcp.Description("Which checklist to modify."),
			mcp.Enum("shortlist", "packing"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Item text."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list, err := requireList(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if _, err := svc.App.AddItem(ctx, list, text); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		items, err := svc.ListItems(ctx, list)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(items)
	})
}

func registerToggleItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_item",
		mcp.WithDescription("Toggle the checked state of a checklist item."),
		mcp.WithString("list",
			mcp.Required(),
			mcp.Description("Which checklist to modify."),
			mcp.Enum("shortlist", "packing"),
		),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Item identifier or unique text prefix."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list, err := requireList(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if _, err := svc.App.ToggleItem(ctx, list, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		items, err := svc.ListItems(ctx, list)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(items)
	})
}

func registerRemoveItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"remove_item",
		mcp.WithDescription("Remove a checklist item."),
		mcp.WithString("list",
			mcp.Required(),
			mcp.Description("Which checklist to modify."),
			mcp.Enum("shortlist", "packing"),
		),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Item identifier or unique text prefix."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list, err := requireList(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if _, err := svc.App.RemoveItem(ctx, list, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		items, err := svc.ListItems(ctx, list)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(items)
	})
}

func toJSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
