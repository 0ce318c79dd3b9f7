package add

import (
	"context"
	"errors"

	"tableflip.dev/tripbook/pkg/app"
	"tableflip.dev/tripbook/pkg/printers"
	"tableflip.dev/tripbook/pkg/trip"
)

// Add appends one activity to a day and reprints the day.
type Add struct {
	Date    string
	Draft   trip.ActivityDraft
	DayIdx  int
	ShowID  bool
	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	doc, err := n.Service.AddActivity(ctx, n.Date, n.Draft)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	day := doc.Day(n.Date)
	pp.DayHeader(n.Date, n.DayIdx, day)
	pp.Timeline(day)
	return nil
}
