package overview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/tripbook/pkg/app"
	"tableflip.dev/tripbook/pkg/printers"
	"tableflip.dev/tripbook/pkg/store"
	"tableflip.dev/tripbook/pkg/timeutil"
)

// Overview prints the dashboard: trip phase, budget breakdown, and the
// two checklists. With Watch set it reprints whenever the stored
// document changes.
type Overview struct {
	Watch   bool
	ShowID  bool
	Config  *store.Config
	Service *app.Service
}

func (n *Overview) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get overview, no service")
	}

	if err := n.print(ctx); err != nil {
		return err
	}
	if !n.Watch {
		return nil
	}

	events, err := n.Service.Persistence.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			if _, err := n.Service.Reload(ctx); err != nil {
				return err
			}
			if err := n.print(ctx); err != nil {
				return err
			}
		}
	}
}

func (n *Overview) print(ctx context.Context) error {
	doc, err := n.Service.Document(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	pp.Title(n.Config.Destination)
	phase, days := timeutil.Countdown(time.Now(), n.Config.Start, n.Config.End)
	switch phase {
	case timeutil.PhaseUpcoming:
		fmt.Printf("%d days to go\n\n", days)
	case timeutil.PhaseOngoing:
		fmt.Printf("trip in progress, day %d\n\n", timeutil.DayIndex(n.Config.Start, today()))
	default:
		fmt.Printf("trip finished\n\n")
	}

	pp.Title("Budget")
	pp.Budget(doc)

	pp.Title("Shortlist")
	pp.Checklist(doc.Shortlist)

	pp.Title("Packing")
	pp.Checklist(doc.PackingList)
	return nil
}

func today() time.Time {
	t, _ := timeutil.ParseDay(timeutil.FormatDay(time.Now()))
	return t
}
