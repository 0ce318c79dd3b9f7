package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/tripbook/pkg/app"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerItineraryResource(srv, svc)
	registerDayTemplate(srv, svc)
	registerListTemplate(srv, svc)
}

func registerItineraryResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"tripbook://itinerary",
		"Itinerary",
		mcp.WithResourceDescription("Every trip day with activity counts and cost totals."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		summaries, err := svc.ListDays(ctx)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"days":  summaries,
			"count": len(summaries),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerDayTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"tripbook://itinerary/{date}",
		"Day Plan",
		mcp.WithTemplateDescription("Activities, note and cost total for one trip day."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		date, _ := request.Params.Arguments["date"].(string)
		if date == "" {
			return nil, fmt.Errorf("date is required")
		}

		dto, err := svc.GetDay(ctx, date)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, dto)
	})
}

func registerListTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"tripbook://lists/{name}",
		"Checklist",
		mcp.WithTemplateDescription("The shortlist or packing list."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		name, _ := request.Params.Arguments["name"].(string)
		list := app.List(name)
		if list != app.Shortlist && list != app.Packing {
			return nil, fmt.Errorf("unknown list %q", name)
		}

		items, err := svc.ListItems(ctx, list)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"list":  name,
			"items": items,
			"count": len(items),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
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
