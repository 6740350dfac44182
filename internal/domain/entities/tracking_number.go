package entities

import (
	"fmt"
	"math/rand"
	"time"
)

// TrackingNumberPrefix is the fixed carrier prefix of every tracking number.
const TrackingNumberPrefix = "DSL"

// NewTrackingNumber produces a tracking number of the form
// DSL-YYYYMMDD-NNNNN where YYYYMMDD is the current calendar date and NNNNN a
// random 5-digit number.
//
// The result is not guaranteed unique; the store enforces uniqueness and the
// booking flow regenerates on a duplicate.
func NewTrackingNumber() string {
	return trackingNumberAt(time.Now(), rand.Intn(90000))
}

func trackingNumberAt(now time.Time, n int) string {
	return fmt.Sprintf("%s-%s-%05d", TrackingNumberPrefix, now.Format("20060102"), 10000+n)
}
