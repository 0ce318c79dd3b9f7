package note

import (
	"context"
	"errors"

	"tableflip.dev/tripbook/pkg/app"
	"tableflip.dev/tripbook/pkg/printers"
)

// Note replaces the free-text note for a day.
type Note struct {
	Date    string
	Text    string
	DayIdx  int
	Service *app.Service
}

func (n *Note) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set note, no service")
	}

	doc, err := n.Service.SetDailyNote(ctx, n.Date, n.Text)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	day := doc.Day(n.Date)
	pp.DayHeader(n.Date, n.DayIdx, day)
	pp.Note(day)
	return nil
}
