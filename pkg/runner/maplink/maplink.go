package maplink

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// searchURL is the fixed map-search template locations are opened
// against.
const searchURL = "https://www.google.com/maps/search/?api=1&query="

// MapLink prints the map deep link for a location, scoped to the trip
// destination. Nothing depends on the link's response.
type MapLink struct {
	Location    string
	Destination string
}

func (n *MapLink) Do(_ context.Context) error {
	fmt.Println(URL(n.Location, n.Destination))
	return nil
}

// URL builds the escaped deep link. A blank location resolves to the
// destination itself.
func URL(location, destination string) string {
	query := strings.TrimSpace(location)
	switch {
	case query == "":
		query = destination
	case destination != "":
		query = query + ", " + destination
	}
	return searchURL + url.QueryEscape(query)
}
