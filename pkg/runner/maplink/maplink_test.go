package maplink

import (
	"strings"
	"testing"
)

func TestURLScopesToDestination(t *testing.T) {
	got := URL("Chiang Kai-shek Memorial Hall", "Taipei, Taiwan")
	if !strings.HasPrefix(got, "https://www.google.com/maps/search/?api=1&query=") {
		t.Fatalf("unexpected prefix: %s", got)
	}
	if !strings.Contains(got, "Chiang+Kai-shek+Memorial+Hall%2C+Taipei%2C+Taiwan") {
		t.Fatalf("expected escaped scoped query, got %s", got)
	}
}

func TestURLBlankLocationFallsBackToDestination(t *testing.T) {
	got := URL("   ", "Taipei, Taiwan")
	if !strings.HasSuffix(got, "query=Taipei%2C+Taiwan") {
		t.Fatalf("expected destination query, got %s", got)
	}
}

func TestURLNoDestination(t *testing.T) {
	got := URL("Night Market", "")
	if !strings.HasSuffix(got, "query=Night+Market") {
		t.Fatalf("expected bare location query, got %s", got)
	}
}
