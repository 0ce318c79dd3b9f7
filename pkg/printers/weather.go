package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tripbook/pkg/suggest"
)

// Weather prints the 3-day advisory.
func (pp *PrettyPrint) Weather(advice suggest.WeatherAdvice) {
	t := color.New(color.Bold)
	f := color.New(color.Faint)

	_, _ = t.Printf("%q\n", advice.ClothingAdvice)
	if advice.UmbrellaNeeded {
		_, _ = f.Println("☂ rain expected, pack an umbrella")
	}
	fmt.Println("")

	table := uitable.New()
	table.AddRow("DAY", "TEMP", "CONDITION", "RAIN")
	for _, day := range advice.Forecast {
		table.AddRow(day.DayName, day.Temp, day.Condition, day.RainChance)
	}
	fmt.Println(table)
	fmt.Println("")

	_, _ = f.Printf("outlook: %s\n", advice.GeneralOutlook)
}
