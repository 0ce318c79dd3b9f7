package suggest

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/tripbook/pkg/app"
	"tableflip.dev/tripbook/pkg/printers"
	"tableflip.dev/tripbook/pkg/store"
	"tableflip.dev/tripbook/pkg/suggest"
	"tableflip.dev/tripbook/pkg/timeutil"
)

// Suggest asks the AI service for a day plan and merges it into the
// document. An absent suggestion leaves the day untouched.
type Suggest struct {
	Date        string
	Preferences string
	ShowID      bool
	Config      *store.Config
	Client      *suggest.Client
	Service     *app.Service
}

func (n *Suggest) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not suggest, no service")
	}
	if n.Client == nil {
		return errors.New("can not suggest, no client")
	}

	plan := n.Client.RequestDayPlan(ctx, n.Date, n.Preferences)
	if plan == nil {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("no suggestion produced; your day is unchanged")
		return nil
	}

	doc, err := n.Service.MergeDayPlan(ctx, n.Date, *plan)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	day := doc.Day(n.Date)
	pp.DayHeader(n.Date, n.index(n.Date), day)
	pp.Timeline(day)
	pp.Note(day)
	return nil
}

func (n *Suggest) index(date string) int {
	t, err := timeutil.ParseDay(date)
	if err != nil {
		return 0
	}
	return timeutil.DayIndex(n.Config.Start, t)
}
