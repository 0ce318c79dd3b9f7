package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/tripbook/pkg/trip"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	start, _ := time.Parse("2006-01-02", "2025-12-15")
	end, _ := time.Parse("2006-01-02", "2025-12-17")
	return &Config{
		Path:        t.TempDir(),
		Start:       start,
		End:         end,
		Destination: "Taipei, Taiwan",
		Lat:         25.0330,
		Lng:         121.5654,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := testConfig(t)
	p, err := Load(cfg)
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	ctx := context.Background()
	doc := p.Load(ctx)
	doc = trip.AddActivity(doc, "2025-12-15", trip.ActivityDraft{
		Time:     "09:00",
		Location: "Taipei 101",
		Type:     trip.TypeSite,
		Cost:     "600",
	})
	if err := p.Save(doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := p.Load(ctx)
	day := got.Day("2025-12-15")
	if len(day.Activities) != 1 {
		t.Fatalf("expected 1 activity after reload, got %d", len(day.Activities))
	}
	if day.Activities[0].Location != "Taipei 101" {
		t.Fatalf("unexpected activity: %v", day.Activities[0])
	}
	if day.Activities[0].CostTWD != 600 {
		t.Fatalf("expected cost 600, got %v", day.Activities[0].CostTWD)
	}
}

func TestLoadMissingSynthesizesDefault(t *testing.T) {
	cfg := testConfig(t)
	p, err := Load(cfg)
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	doc := p.Load(context.Background())
	if len(doc.Itinerary) != 3 {
		t.Fatalf("expected a day per date in range, got %d", len(doc.Itinerary))
	}
	if _, ok := doc.Itinerary["2025-12-16"]; !ok {
		t.Fatalf("expected middle day synthesized, got %v", doc.Dates())
	}
}

func TestLoadCorruptSynthesizesDefault(t *testing.T) {
	cfg := testConfig(t)
	if err := os.WriteFile(filepath.Join(cfg.Path, "trip.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt record: %v", err)
	}

	p, err := Load(cfg)
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	doc := p.Load(context.Background())
	if len(doc.Itinerary) != 3 {
		t.Fatalf("expected default document for corrupt record, got %d days", len(doc.Itinerary))
	}
}

func TestLoadBackfillsMissingLists(t *testing.T) {
	cfg := testConfig(t)
	record := `{"itinerary":{"2025-12-15":{"date":"2025-12-15","activities":[{"id":"a","time":"09:00","location":"Temple","type":"sightseeing","costTWD":0}]}}}`
	if err := os.WriteFile(filepath.Join(cfg.Path, "trip.json"), []byte(record), 0o644); err != nil {
		t.Fatalf("seed record: %v", err)
	}

	p, err := Load(cfg)
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	doc := p.Load(context.Background())
	if doc.Shortlist == nil || doc.PackingList == nil {
		t.Fatalf("expected lists backfilled")
	}
	day := doc.Day("2025-12-15")
	if len(day.Activities) != 1 || day.Activities[0].Type != trip.TypeOther {
		t.Fatalf("expected legacy type folded into OTHER, got %v", day.Activities)
	}
}
