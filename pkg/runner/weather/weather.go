package weather

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tripbook/pkg/printers"
	"tableflip.dev/tripbook/pkg/store"
	"tableflip.dev/tripbook/pkg/suggest"
)

// Weather prints the 3-day AI advisory for the trip coordinates. The
// request is total; fallbacks are printed the same way live results
// are.
type Weather struct {
	Config *store.Config
	Client *suggest.Client
}

func (n *Weather) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not get weather, no client")
	}

	advice := n.Client.RequestWeatherAdvice(ctx, n.Config.Lat, n.Config.Lng)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(fmt.Sprintf("Forecast — %s", n.Config.Destination))
	pp.Weather(advice)
	return nil
}
