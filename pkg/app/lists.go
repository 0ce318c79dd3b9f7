package app

import (
	"context"
	"fmt"

	"tableflip.dev/tripbook/pkg/trip"
)

// List selects one of the document's two checklists.
type List string

const (
	// Shortlist is the places-to-go wishlist.
	Shortlist List = "shortlist"
	// Packing is the packing checklist.
	Packing List = "packing"
)

func pick(doc trip.Document, list List) ([]trip.ChecklistItem, error) {
	switch list {
	case Shortlist:
		return doc.Shortlist, nil
	case Packing:
		return doc.PackingList, nil
	default:
		return nil, fmt.Errorf("app: unknown list %q", list)
	}
}

func put(doc trip.Document, list List, items []trip.ChecklistItem) trip.Document {
	switch list {
	case Shortlist:
		doc.Shortlist = items
	case Packing:
		doc.PackingList = items
	}
	return doc
}

// Items returns the selected checklist.
func (s *Service) Items(ctx context.Context, list List) ([]trip.ChecklistItem, error) {
	doc, err := s.Document(ctx)
	if err != nil {
		return nil, err
	}
	return pick(doc, list)
}

// AddItem appends a new unchecked item to the selected list.
func (s *Service) AddItem(ctx context.Context, list List, text string) (trip.Document, error) {
	doc, err := s.Document(ctx)
	if err != nil {
		return trip.Document{}, err
	}
	items, err := pick(doc, list)
	if err != nil {
		return trip.Document{}, err
	}
	return s.apply(put(doc, list, trip.AddItem(items, text))), nil
}

// ToggleItem flips the checked state of the referenced item. The
// reference may be an id or a unique text prefix.
func (s *Service) ToggleItem(ctx context.Context, list List, ref string) (trip.Document, error) {
	doc, err := s.Document(ctx)
	if err != nil {
		return trip.Document{}, err
	}
	items, err := pick(doc, list)
	if err != nil {
		return trip.Document{}, err
	}
	item, ok := trip.FindItem(items, ref)
	if !ok {
		return doc, nil
	}
	return s.apply(put(doc, list, trip.ToggleItem(items, item.ID))), nil
}

// RemoveItem drops the referenced item from the selected list.
func (s *Service) RemoveItem(ctx context.Context, list List, ref string) (trip.Document, error) {
	doc, err := s.Document(ctx)
	if err != nil {
		return trip.Document{}, err
	}
	items, err := pick(doc, list)
	if err != nil {
		return trip.Document{}, err
	}
	item, ok := trip.FindItem(items, ref)
	if !ok {
		return doc, nil
	}
	return s.apply(put(doc, list, trip.RemoveItem(items, item.ID))), nil
}
