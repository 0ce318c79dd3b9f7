package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tripbook/pkg/trip"
)

var categoryLabels = map[trip.ActivityType]string{
	trip.TypeTransport: "Transport",
	trip.TypeMeal:      "Food",
	trip.TypeSite:      "Sites",
	trip.TypeOther:     "Other",
}

// Budget prints the per-category cost breakdown and the grand total.
// Categories with no spend are omitted.
func (pp *PrettyPrint) Budget(doc trip.Document) {
	totals := trip.CategoryTotals(doc)
	if len(totals) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no costs recorded\n\n")
		return
	}

	table := uitable.New()
	table.AddRow("CATEGORY", "TWD", "MYR")
	for _, t := range trip.AllTypes() {
		v, ok := totals[t]
		if !ok {
			continue
		}
		table.AddRow(categoryLabels[t], fmt.Sprintf("NT$%.0f", v), fmt.Sprintf("RM%.0f", v*ExchangeRateTWDToMYR))
	}
	grand := trip.TotalCost(doc)
	table.AddRow("Total", fmt.Sprintf("NT$%.0f", grand), fmt.Sprintf("RM%.0f", grand*ExchangeRateTWDToMYR))
	fmt.Println(table)
	fmt.Println("")
}
