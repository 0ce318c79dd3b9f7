// Package store persists the trip document to local disk.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/tripbook/pkg/timeutil"
	"tableflip.dev/tripbook/pkg/trip"
)

// documentKey names the single record holding the serialized document.
const documentKey = "trip.json"

// Persistence defines the persistence contract for the trip document.
//
// Load never fails: a missing or corrupt record yields a freshly
// synthesized default document so callers are never left without state.
type Persistence interface {
	Load(ctx context.Context) trip.Document
	Save(doc trip.Document) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg *Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:     cfg.Path,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		cfg: cfg,
	}, nil
}

type persistence struct {
	d   *diskv.Diskv
	cfg *Config
}

// Load reads the document record. Any failure is soft: the error is
// reported to stderr and a default document for the configured range is
// returned in its place.
func (p *persistence) Load(_ context.Context) trip.Document {
	data, err := p.d.Read(documentKey)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "store: read %s: %v\n", documentKey, err)
		}
		return p.defaultDocument()
	}

	var doc trip.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "store: discarding corrupt %s: %v\n", documentKey, err)
		return p.defaultDocument()
	}
	if doc.Itinerary == nil {
		// An empty itinerary is indistinguishable from a pre-schema
		// record; resynthesize rather than present a dateless trip.
		return p.defaultDocument()
	}
	return trip.Normalize(doc)
}

// Save serializes and writes the full document.
func (p *persistence) Save(doc trip.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal document: %w", err)
	}
	if err := p.d.Write(documentKey, data); err != nil {
		return fmt.Errorf("store: write %s: %w", documentKey, err)
	}
	return nil
}

func (p *persistence) defaultDocument() trip.Document {
	return trip.NewDocument(timeutil.DatesInRange(p.cfg.Start, p.cfg.End))
}
