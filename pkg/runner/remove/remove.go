package remove

import (
	"context"
	"errors"

	"tableflip.dev/tripbook/pkg/app"
	"tableflip.dev/tripbook/pkg/printers"
)

// Remove deletes one activity from a day by id and reprints the day.
type Remove struct {
	Date    string
	ID      string
	DayIdx  int
	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}

	doc, err := n.Service.DeleteActivity(ctx, n.Date, n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	day := doc.Day(n.Date)
	pp.DayHeader(n.Date, n.DayIdx, day)
	pp.Timeline(day)
	return nil
}
