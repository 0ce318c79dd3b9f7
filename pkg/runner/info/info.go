package info

import (
	"context"
	"fmt"
	"os"

	"tableflip.dev/tripbook/pkg/store"
	"tableflip.dev/tripbook/pkg/suggest"
	"tableflip.dev/tripbook/pkg/timeutil"
)

// Info prints the resolved configuration and credential status.
type Info struct {
	Config *store.Config
}

func (n *Info) Do(_ context.Context) error {
	if override := os.Getenv("TRIPBOOK_CONFIG_PATH"); override != "" {
		fmt.Println("TRIPBOOK_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Println("TRIPBOOK_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Println("Config.path: ", n.Config.Path)
	fmt.Println("Config.destination: ", n.Config.Destination)
	fmt.Printf("Config.range: %s .. %s (%d days)\n",
		timeutil.FormatDay(n.Config.Start),
		timeutil.FormatDay(n.Config.End),
		len(timeutil.DatesInRange(n.Config.Start, n.Config.End)))
	fmt.Printf("Config.coordinates: %.4f, %.4f\n", n.Config.Lat, n.Config.Lng)

	if os.Getenv(suggest.APIKeyEnv) != "" {
		fmt.Printf("%s is set, AI suggestions enabled\n", suggest.APIKeyEnv)
	} else {
		fmt.Printf("%s is not set, AI suggestions disabled\n", suggest.APIKeyEnv)
	}
	return nil
}
