// Package ui provides a small terminal browser for the itinerary: a
// date index on the left, the selected day's timeline on the right.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/marcusolsson/tui-go"

	"tableflip.dev/tripbook/pkg/printers"
	"tableflip.dev/tripbook/pkg/timeutil"
	"tableflip.dev/tripbook/pkg/trip"
)

// Do runs the browser until the user quits.
func Do(_ context.Context, start string, doc trip.Document) error {
	iTable := tui.NewTable(1, 0)

	index := tui.NewVBox(
		iTable,
		tui.NewSpacer(),
	)
	index.SetBorder(true)
	index.SetSizePolicy(tui.Preferred, tui.Expanding)

	dTable := tui.NewTable(1, 0)
	dTable.SetFocused(true)
	dTable.SetSizePolicy(tui.Expanding, tui.Maximum)

	status := tui.NewStatusBar("")
	status.SetPermanentText(`Use left or right arrows to navigate, ESC or 'q' to QUIT`)

	dayView := tui.NewVBox(dTable)
	dayView.SetBorder(true)
	dayView.SetSizePolicy(tui.Expanding, tui.Maximum)

	selector := tui.NewHBox(index, dayView)

	root := tui.NewVBox(
		selector,
		tui.NewSpacer(),
		status,
	)

	u, err := tui.New(root)
	if err != nil {
		return err
	}

	d := &impl{
		doc:        doc,
		start:      start,
		indexes:    iTable,
		indexTitle: "days",
		indexView:  index,
		day:        dTable,
		dayView:    dayView,
	}
	d.populateIndex()

	iTable.OnSelectionChanged(func(*tui.Table) {
		d.populateDay()
	})

	u.SetKeybinding("Left", func() {
		d.focusIndex()
	})
	u.SetKeybinding("Right", func() {
		d.focusDay()
	})

	u.SetKeybinding("Esc", func() { u.Quit() })
	u.SetKeybinding("q", func() { u.Quit() })

	d.populateDay()
	d.focusIndex()

	return u.Run()
}

type impl struct {
	doc   trip.Document
	start string

	dirty string
	dates []string

	indexes    *tui.Table
	indexTitle string
	indexView  *tui.Box

	day      *tui.Table
	dayView  *tui.Box
	dayTitle string
}

func (d *impl) focusIndex() {
	d.indexes.SetFocused(true)
	d.indexView.SetTitle(strings.ToUpper(d.indexTitle))

	d.day.SetFocused(false)
	d.dayView.SetTitle(d.dayTitle)
}

func (d *impl) focusDay() {
	d.indexes.SetFocused(false)
	d.indexView.SetTitle(d.indexTitle)

	d.day.SetFocused(true)
	d.dayView.SetTitle(strings.ToUpper(d.dayTitle))
}

func (d *impl) populateIndex() {
	d.indexes.RemoveRows()
	d.indexes.Select(0)

	d.dates = d.doc.Dates()
	startT, err := timeutil.ParseDay(d.start)
	for _, date := range d.dates {
		label := date
		if err == nil {
			if t, perr := timeutil.ParseDay(date); perr == nil {
				label = fmt.Sprintf("Day %d  %s", timeutil.DayIndex(startT, t), date)
			}
		}
		d.indexes.AppendRow(tui.NewLabel(label))
	}
}

func (d *impl) populateDay() {
	selected := ""
	if d.indexes.Selected() >= 0 && d.indexes.Selected() < len(d.dates) {
		selected = d.dates[d.indexes.Selected()]
	}

	if d.dirty != selected {
		d.day.RemoveRows()
		d.dayTitle = selected

		day := d.doc.Day(selected)
		for _, a := range trip.SortedActivities(day) {
			d.day.AppendRow(tui.NewLabel(fmt.Sprintf("%s  %s  %s", a.Time, a.Location, printers.FormatTWD(a.CostTWD))))
		}
		if day.DailyNote != "" {
			d.day.AppendRow(tui.NewLabel("note: " + day.DailyNote))
		}
		d.dirty = selected
	}
	d.dayView.SetTitle(d.dayTitle)
}
