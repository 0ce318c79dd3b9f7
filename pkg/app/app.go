// Package app provides the shared state container for the trip
// document. It wraps persistence and the pure trip operations so CLIs,
// the TUI, and the MCP server share one mutation path.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/tripbook/pkg/store"
	"tableflip.dev/tripbook/pkg/trip"
)

// Service holds the current document and persists every transition.
// All mutations flow through apply, which replaces the in-memory
// snapshot and writes it in full; write failures are logged and
// swallowed so the session continues in memory.
type Service struct {
	Persistence store.Persistence

	doc    trip.Document
	loaded bool
}

// New builds a service over the given persistence.
func New(p store.Persistence) *Service {
	return &Service{Persistence: p}
}

// Document returns the current snapshot, loading it on first use.
func (s *Service) Document(ctx context.Context) (trip.Document, error) {
	if s.Persistence == nil {
		return trip.Document{}, errors.New("app: no persistence configured")
	}
	if !s.loaded {
		s.doc = s.Persistence.Load(ctx)
		s.loaded = true
	}
	return s.doc, nil
}

// Reload discards the in-memory snapshot and reads from storage again.
func (s *Service) Reload(ctx context.Context) (trip.Document, error) {
	s.loaded = false
	return s.Document(ctx)
}

// apply installs a new snapshot and persists it. This is the single
// subscriber every state transition funnels through.
func (s *Service) apply(doc trip.Document) trip.Document {
	s.doc = doc
	s.loaded = true
	if err := s.Persistence.Save(doc); err != nil {
		fmt.Fprintf(os.Stderr, "app: save failed, continuing in memory: %v\n", err)
	}
	return doc
}

// AddActivity appends a new activity to the given date.
func (s *Service) AddActivity(ctx context.Context, date string, draft trip.ActivityDraft) (trip.Document, error) {
	doc, err := s.Document(ctx)
	if err != nil {
		return trip.Document{}, err
	}
	return s.apply(trip.AddActivity(doc, date, draft)), nil
}

// DeleteActivity removes an activity from the given date.
func (s *Service) DeleteActivity(ctx context.Context, date, id string) (trip.Document, error) {
	doc, err := s.Document(ctx)
	if err != nil {
		return trip.Document{}, err
	}
	return s.apply(trip.DeleteActivity(doc, date, id)), nil
}

// SetDailyNote replaces the note for the given date.
func (s *Service) SetDailyNote(ctx context.Context, date, note string) (trip.Document, error) {
	doc, err := s.Document(ctx)
	if err != nil {
		return trip.Document{}, err
	}
	return s.apply(trip.SetDailyNote(doc, date, note)), nil
}

// MergeDayPlan replaces a day's plan with a suggested one, preserving
// any note the user already wrote for that day.
func (s *Service) MergeDayPlan(ctx context.Context, date string, plan trip.DayPlan) (trip.Document, error) {
	doc, err := s.Document(ctx)
	if err != nil {
		return trip.Document{}, err
	}
	if existing := doc.Day(date); existing.DailyNote != "" {
		plan.DailyNote = existing.DailyNote
	}
	return s.apply(trip.SetDayPlan(doc, date, plan)), nil
}
