// ABOUTME: The one declared failure shape: quota exceeded, with requested and remaining
// ABOUTME: All other failure modes are the host's and carry no declared shape

package promptapi

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrDestroyed is returned by session methods after Destroy.
var ErrDestroyed = errors.New("prompt session destroyed")

// quotaExceededName is the wire discriminator for the quota error.
const quotaExceededName = "QuotaExceededError"

// QuotaExceededError signals that an input was too large for the session's
// remaining budget. Requested is the token count of the rejected input;
// Quota is what remained at failure time.
type QuotaExceededError struct {
	Requested float64
	Quota     float64
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota exceeded: requested %g tokens, %g available", e.Requested, e.Quota)
}

type quotaExceededWire struct {
	Name      string   `json:"name"`
	Requested *float64 `json:"requested"`
	Quota     *float64 `json:"quota"`
}

func (e *QuotaExceededError) MarshalJSON() ([]byte, error) {
	return json.Marshal(quotaExceededWire{
		Name:      quotaExceededName,
		Requested: &e.Requested,
		Quota:     &e.Quota,
	})
}

// UnmarshalJSON requires the discriminator and both numeric fields; a signal
// missing any of them does not match the declared shape.
func (e *QuotaExceededError) UnmarshalJSON(data []byte) error {
	var wire quotaExceededWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Name != quotaExceededName {
		return fmt.Errorf("quota error has name %q, want %q", wire.Name, quotaExceededName)
	}
	if wire.Requested == nil {
		return fmt.Errorf("quota error missing requested")
	}
	if wire.Quota == nil {
		return fmt.Errorf("quota error missing quota")
	}
	e.Requested = *wire.Requested
	e.Quota = *wire.Quota
	return nil
}

// IsQuotaExceeded reports whether err is (or wraps) a QuotaExceededError.
func IsQuotaExceeded(err error) bool {
	var qe *QuotaExceededError
	return errors.As(err, &qe)
}
