package mcp

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"tableflip.dev/tripbook/pkg/app"
	"tableflip.dev/tripbook/pkg/store"
	"tableflip.dev/tripbook/pkg/suggest"
	"tableflip.dev/tripbook/pkg/trip"
)

type memPersistence struct {
	doc trip.Document
}

func (m *memPersistence) Load(_ context.Context) trip.Document { return m.doc }

func (m *memPersistence) Save(doc trip.Document) error {
	m.doc = doc
	return nil
}

func (m *memPersistence) Watch(_ context.Context) (<-chan store.Event, error) {
	return nil, nil
}

func testService() *Service {
	start, _ := time.Parse("2006-01-02", "2025-12-15")
	end, _ := time.Parse("2006-01-02", "2025-12-17")
	cfg := &store.Config{
		Start:       start,
		End:         end,
		Destination: "Taipei, Taiwan",
		Lat:         25.0330,
		Lng:         121.5654,
	}
	p := &memPersistence{doc: trip.NewDocument([]string{"2025-12-15", "2025-12-16", "2025-12-17"})}
	client := &suggest.Client{Destination: cfg.Destination, HTTPClient: http.DefaultClient}
	return NewService(app.New(p), cfg, client)
}

func TestListDaysOrderedWithIndexes(t *testing.T) {
	s := testService()
	days, err := s.ListDays(context.Background())
	if err != nil {
		t.Fatalf("list days: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	for i, d := range days {
		if d.DayIndex != i+1 {
			t.Fatalf("expected index %d for %s, got %d", i+1, d.Date, d.DayIndex)
		}
	}
}

func TestAddActivityReturnsSortedDay(t *testing.T) {
	s := testService()
	ctx := context.Background()

	if _, err := s.AddActivity(ctx, "2025-12-15", trip.ActivityDraft{Time: "18:00", Location: "Night Market", Type: trip.TypeMeal, Cost: "300"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	day, err := s.AddActivity(ctx, "2025-12-15", trip.ActivityDraft{Time: "09:00", Location: "Longshan Temple", Type: trip.TypeSite})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if len(day.Activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(day.Activities))
	}
	if day.Activities[0].Time != "09:00" {
		t.Fatalf("expected chronological order, got %v", day.Activities[0])
	}
	if day.TotalCostTWD != 300 {
		t.Fatalf("expected total 300, got %v", day.TotalCostTWD)
	}
	if !strings.Contains(day.Activities[0].MapURL, "Longshan+Temple%2C+Taipei%2C+Taiwan") {
		t.Fatalf("expected scoped map url, got %s", day.Activities[0].MapURL)
	}
}

func TestGetDayRejectsBadDate(t *testing.T) {
	s := testService()
	if _, err := s.GetDay(context.Background(), "not-a-date"); err == nil {
		t.Fatalf("expected an error for a malformed date")
	}
}

func TestSuggestDayAbsenceIsNotAnError(t *testing.T) {
	s := testService() // client has no credential
	_, ok, err := s.SuggestDay(context.Background(), "2025-12-16", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ok {
		t.Fatalf("expected no suggestion without a credential")
	}
}

func TestWeatherAdviceIsTotal(t *testing.T) {
	s := testService()
	advice := s.WeatherAdvice(context.Background())
	if len(advice.Forecast) != 3 {
		t.Fatalf("expected 3 forecast entries, got %d", len(advice.Forecast))
	}
}

func TestChecklistRoundTrip(t *testing.T) {
	s := testService()
	ctx := context.Background()

	if _, err := s.App.AddItem(ctx, app.Shortlist, "Beitou hot springs"); err != nil {
		t.Fatalf("add item: %v", err)
	}
	items, err := s.ListItems(ctx, app.Shortlist)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(items) != 1 || items[0].Text != "Beitou hot springs" {
		t.Fatalf("unexpected items: %v", items)
	}
}
