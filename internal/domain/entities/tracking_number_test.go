package entities

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestNewTrackingNumber_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^DSL-\d{8}-\d{5}$`)
	today := time.Now().Format("20060102")

	for i := 0; i < 50; i++ {
		num := NewTrackingNumber()
		if !pattern.MatchString(num) {
			t.Fatalf("unexpected format: %q", num)
		}
		if !strings.HasPrefix(num, "DSL-"+today+"-") {
			t.Fatalf("expected current date %s in %q", today, num)
		}
	}
}

func TestTrackingNumberAt_Bounds(t *testing.T) {
	now := time.Date(2024, 6, 13, 12, 0, 0, 0, time.UTC)

	if got := trackingNumberAt(now, 0); got != "DSL-20240613-10000" {
		t.Fatalf("expected DSL-20240613-10000, got %q", got)
	}
	if got := trackingNumberAt(now, 89999); got != "DSL-20240613-99999" {
		t.Fatalf("expected DSL-20240613-99999, got %q", got)
	}
}
