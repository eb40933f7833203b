package booking

import "fmt"

// SlotError reports a booking attempt that failed slot validation, carrying
// the slot's unavailability reason.
type SlotError struct {
	Reason  string
	Message string
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}
