// Package mcp provides the Model Context Protocol server integration
// for tripbook.
package mcp

import (
	"context"
	"errors"

	"tableflip.dev/tripbook/pkg/app"
	"tableflip.dev/tripbook/pkg/runner/maplink"
	"tableflip.dev/tripbook/pkg/store"
	"tableflip.dev/tripbook/pkg/suggest"
	"tableflip.dev/tripbook/pkg/timeutil"
	"tableflip.dev/tripbook/pkg/trip"
)

// Service coordinates document-backed operations shared by the MCP
// server.
type Service struct {
	App    *app.Service
	Config *store.Config
	Client *suggest.Client
}

// ActivityDTO is a transport-friendly projection of an activity.
type ActivityDTO struct {
	ID          string  `json:"id"`
	Time        string  `json:"time"`
	Location    string  `json:"location"`
	Description string  `json:"description,omitempty"`
	Type        string  `json:"type"`
	CostTWD     float64 `json:"costTWD"`
	Notes       string  `json:"notes,omitempty"`
	MapURL      string  `json:"mapUrl"`
}

// DayDTO is a transport-friendly projection of one itinerary day.
type DayDTO struct {
	Date         string        `json:"date"`
	DayIndex     int           `json:"dayIndex"`
	Activities   []ActivityDTO `json:"activities"`
	DailyNote    string        `json:"dailyNote,omitempty"`
	TotalCostTWD float64       `json:"totalCostTWD"`
}

// DaySummary describes one day for itinerary listings.
type DaySummary struct {
	Date          string  `json:"date"`
	DayIndex      int     `json:"dayIndex"`
	ActivityCount int     `json:"activityCount"`
	TotalCostTWD  float64 `json:"totalCostTWD"`
	HasNote       bool    `json:"hasNote"`
}

// ItemDTO is a transport-friendly projection of a checklist item.
type ItemDTO struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// NewService builds a service wrapper for the MCP server.
func NewService(a *app.Service, cfg *store.Config, client *suggest.Client) *Service {
	return &Service{App: a, Config: cfg, Client: client}
}

func (s *Service) dayIndex(date string) int {
	t, err := timeutil.ParseDay(date)
	if err != nil {
		return 0
	}
	return timeutil.DayIndex(s.Config.Start, t)
}

func (s *Service) toDayDTO(date string, day trip.DayPlan) DayDTO {
	dto := DayDTO{
		Date:         date,
		DayIndex:     s.dayIndex(date),
		Activities:   make([]ActivityDTO, 0, len(day.Activities)),
		DailyNote:    day.DailyNote,
		TotalCostTWD: trip.DailyTotalCost(day),
	}
	for _, a := range trip.SortedActivities(day) {
		dto.Activities = append(dto.Activities, ActivityDTO{
			ID:          a.ID,
			Time:        a.Time,
			Location:    a.Location,
			Description: a.Description,
			Type:        string(a.Type),
			CostTWD:     a.CostTWD,
			Notes:       a.Notes,
			MapURL:      maplink.URL(a.Location, s.Config.Destination),
		})
	}
	return dto
}

// ListDays summarizes every itinerary day in order.
func (s *Service) ListDays(ctx context.Context) ([]DaySummary, error) {
	if s.App == nil {
		return nil, errors.New("service is not configured")
	}
	doc, err := s.App.Document(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]DaySummary, 0, len(doc.Itinerary))
	for _, date := range doc.Dates() {
		day := doc.Day(date)
		summaries = append(summaries, DaySummary{
			Date:          date,
			DayIndex:      s.dayIndex(date),
			ActivityCount: len(day.Activities),
			TotalCostTWD:  trip.DailyTotalCost(day),
			HasNote:       day.DailyNote != "",
		})
	}
	return summaries, nil
}

// GetDay returns one day's full plan.
func (s *Service) GetDay(ctx context.Context, date string) (DayDTO, error) {
	if s.App == nil {
		return DayDTO{}, errors.New("service is not configured")
	}
	if _, err := timeutil.ParseDay(date); err != nil {
		return DayDTO{}, err
	}
	doc, err := s.App.Document(ctx)
	if err != nil {
		return DayDTO{}, err
	}
	return s.toDayDTO(date, doc.Day(date)), nil
}

// AddActivity appends an activity and returns the updated day.
func (s *Service) AddActivity(ctx context.Context, date string, draft trip.ActivityDraft) (DayDTO, error) {
	if _, err := timeutil.ParseDay(date); err != nil {
		return DayDTO{}, err
	}
	doc, err := s.App.AddActivity(ctx, date, draft)
	if err != nil {
		return DayDTO{}, err
	}
	return s.toDayDTO(date, doc.Day(date)), nil
}

// RemoveActivity deletes an activity and returns the updated day.
func (s *Service) RemoveActivity(ctx context.Context, date, id string) (DayDTO, error) {
	doc, err := s.App.DeleteActivity(ctx, date, id)
	if err != nil {
		return DayDTO{}, err
	}
	return s.toDayDTO(date, doc.Day(date)), nil
}

// SetDailyNote replaces a day's note and returns the updated day.
func (s *Service) SetDailyNote(ctx context.Context, date, note string) (DayDTO, error) {
	doc, err := s.App.SetDailyNote(ctx, date, note)
	if err != nil {
		return DayDTO{}, err
	}
	return s.toDayDTO(date, doc.Day(date)), nil
}

// SuggestDay asks the AI service for a plan and merges it. The second
// return reports whether a suggestion was produced; absence is not an
// error.
func (s *Service) SuggestDay(ctx context.Context, date, preferences string) (DayDTO, bool, error) {
	if _, err := timeutil.ParseDay(date); err != nil {
		return DayDTO{}, false, err
	}
	plan := s.Client.RequestDayPlan(ctx, date, preferences)
	if plan == nil {
		return DayDTO{}, false, nil
	}
	doc, err := s.App.MergeDayPlan(ctx, date, *plan)
	if err != nil {
		return DayDTO{}, false, err
	}
	return s.toDayDTO(date, doc.Day(date)), true, nil
}

// WeatherAdvice returns the (always total) advisory.
func (s *Service) WeatherAdvice(ctx context.Context) suggest.WeatherAdvice {
	return s.Client.RequestWeatherAdvice(ctx, s.Config.Lat, s.Config.Lng)
}

// ListItems returns one checklist.
func (s *Service) ListItems(ctx context.Context, list app.List) ([]ItemDTO, error) {
	items, err := s.App.Items(ctx, list)
	if err != nil {
		return nil, err
	}
	out := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, ItemDTO{ID: item.ID, Text: item.Text, Checked: item.Checked})
	}
	return out, nil
}
