package models

// Reasons a generated slot can be unavailable. String values are part of the
// API contract consumed by the booking UI.
const (
	SlotReasonPast       = "past"
	SlotReasonBooked     = "booked"
	SlotReasonTravelTime = "travel-time"
)

// Slot is one fixed-duration candidate appointment window with its
// availability verdict. Recomputed fresh on every request, never persisted.
type Slot struct {
	StartTime         string `json:"startTime"` // "HH:mm"
	EndTime           string `json:"endTime"`   // "HH:mm"
	IsAvailable       bool   `json:"isAvailable"`
	UnavailableReason string `json:"unavailableReason,omitempty"`
}

// DayScheduleResponse is the availability endpoint payload: the resolved
// window plus the generated slot list for the requested date.
type DayScheduleResponse struct {
	ProviderID   string                  `json:"providerId"`
	Date         string                  `json:"date"`
	Availability ResolvedDayAvailability `json:"availability"`
	Slots        []Slot                  `json:"slots"`
}
