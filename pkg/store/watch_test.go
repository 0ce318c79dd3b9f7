package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/tripbook/pkg/trip"
)

func TestPersistenceWatchEmitsDocumentChanges(t *testing.T) {
	cfg := testConfig(t)
	p, err := Load(cfg)
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before saving.
	time.Sleep(50 * time.Millisecond)

	doc := p.Load(ctx)
	doc = trip.AddActivity(doc, "2025-12-15", trip.ActivityDraft{Location: "Taipei 101"})
	if err := p.Save(doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case _, ok := <-ch:
		if !ok {
			t.Fatal("watch channel closed unexpectedly")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for document change event")
	}
}
