// ABOUTME: Closed five-value enumeration of host-side model readiness
// ABOUTME: Flat status set; no transition rules are declared

package promptapi

import (
	"encoding/json"
	"fmt"
)

// Availability describes whether the host is ready to serve requests.
// The values form a flat set: no transitions between them are declared, and
// callers poll or react as they see fit.
type Availability string

const (
	// AvailabilityUnavailable means the host cannot serve requests at all.
	AvailabilityUnavailable Availability = "unavailable"
	// AvailabilityDownloadable means the model can be fetched; creating a
	// session will trigger the download.
	AvailabilityDownloadable Availability = "downloadable"
	// AvailabilityDownloading means a fetch is already in progress.
	AvailabilityDownloading Availability = "downloading"
	// AvailabilityAvailable means sessions can be created immediately.
	AvailabilityAvailable Availability = "available"
	// AvailabilityUnknown means the host could not determine readiness.
	AvailabilityUnknown Availability = "unknown"
)

// Valid reports whether a is one of the five defined states.
func (a Availability) Valid() bool {
	switch a {
	case AvailabilityUnavailable, AvailabilityDownloadable, AvailabilityDownloading,
		AvailabilityAvailable, AvailabilityUnknown:
		return true
	}
	return false
}

// ParseAvailability converts a string into an Availability, rejecting values
// outside the closed set.
func ParseAvailability(s string) (Availability, error) {
	a := Availability(s)
	if !a.Valid() {
		return "", fmt.Errorf("unknown availability %q", s)
	}
	return a, nil
}

// UnmarshalJSON rejects any status outside the closed set.
func (a *Availability) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("availability: %w", err)
	}
	parsed, err := ParseAvailability(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
