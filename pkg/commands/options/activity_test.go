package options

import (
	"testing"

	"tableflip.dev/tripbook/pkg/trip"
)

func TestDraftNormalizesType(t *testing.T) {
	o := &ActivityOptions{Time: "12:30", Type: "meal", Cost: "450"}
	d := o.Draft("Din Tai Fung")
	if d.Type != trip.TypeMeal {
		t.Fatalf("expected lower-case type folded to MEAL, got %q", d.Type)
	}
	if d.Location != "Din Tai Fung" || d.Time != "12:30" || d.Cost != "450" {
		t.Fatalf("unexpected draft: %+v", d)
	}
}

func TestDraftUnsetTypeFallsBackToOther(t *testing.T) {
	o := &ActivityOptions{}
	if got := o.Draft("Somewhere").Type; got != trip.TypeOther {
		t.Fatalf("expected OTHER for unset type, got %q", got)
	}
}
