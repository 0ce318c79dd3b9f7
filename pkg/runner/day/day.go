package day

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tripbook/pkg/app"
	"tableflip.dev/tripbook/pkg/printers"
	"tableflip.dev/tripbook/pkg/store"
	"tableflip.dev/tripbook/pkg/timeutil"
)

// Day prints one itinerary day, or the whole itinerary when All is set.
type Day struct {
	Date    string
	All     bool
	ShowID  bool
	Config  *store.Config
	Service *app.Service
}

func (n *Day) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get day, no service")
	}

	doc, err := n.Service.Document(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.All {
		for _, date := range doc.Dates() {
			day := doc.Day(date)
			pp.DayHeader(date, n.index(date), day)
			pp.Timeline(day)
			pp.Note(day)
		}
		return nil
	}

	day := doc.Day(n.Date)
	pp.DayHeader(n.Date, n.index(n.Date), day)
	pp.Timeline(day)
	pp.Note(day)
	return nil
}

func (n *Day) index(date string) int {
	t, err := timeutil.ParseDay(date)
	if err != nil {
		return 0
	}
	return timeutil.DayIndex(n.Config.Start, t)
}
