package ui

import (
	"context"
	"errors"

	"tableflip.dev/tripbook/pkg/app"
	"tableflip.dev/tripbook/pkg/store"
	"tableflip.dev/tripbook/pkg/timeutil"
	"tableflip.dev/tripbook/pkg/ui"
)

// UI launches the terminal itinerary browser.
type UI struct {
	Config  *store.Config
	Service *app.Service
}

func (n *UI) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not run ui, no service")
	}

	doc, err := n.Service.Document(ctx)
	if err != nil {
		return err
	}
	return ui.Do(ctx, timeutil.FormatDay(n.Config.Start), doc)
}
