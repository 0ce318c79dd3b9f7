package list

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tripbook/pkg/app"
	"tableflip.dev/tripbook/pkg/printers"
	"tableflip.dev/tripbook/pkg/trip"
)

// Op selects the checklist mutation to perform; OpShow just prints.
type Op string

const (
	OpShow   Op = "show"
	OpAdd    Op = "add"
	OpToggle Op = "toggle"
	OpRemove Op = "remove"
)

// List operates on one of the document's checklists.
type List struct {
	Which   app.List
	Op      Op
	Arg     string // item text for OpAdd, id or text prefix otherwise
	ShowID  bool
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}

	var doc trip.Document
	var err error
	switch n.Op {
	case OpAdd:
		doc, err = n.Service.AddItem(ctx, n.Which, n.Arg)
	case OpToggle:
		doc, err = n.Service.ToggleItem(ctx, n.Which, n.Arg)
	case OpRemove:
		doc, err = n.Service.RemoveItem(ctx, n.Which, n.Arg)
	default:
		doc, err = n.Service.Document(ctx)
	}
	if err != nil {
		return err
	}

	items, err := pickItems(doc, n.Which)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Title(title(n.Which))
	pp.Checklist(items)
	return nil
}

func pickItems(doc trip.Document, which app.List) ([]trip.ChecklistItem, error) {
	switch which {
	case app.Shortlist:
		return doc.Shortlist, nil
	case app.Packing:
		return doc.PackingList, nil
	default:
		return nil, fmt.Errorf("unknown list %q", which)
	}
}

func title(which app.List) string {
	if which == app.Packing {
		return "Packing"
	}
	return "Shortlist"
}
