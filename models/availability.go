package models

// Day-of-week convention across the whole system: 0 = Monday ... 6 = Sunday.

// WeeklyAvailability is one recurring opening-hours record for a provider.
// At most one active record exists per (provider, dayOfWeek); the repository
// upserts on that key.
type WeeklyAvailability struct {
	ID         string `bson:"id" json:"id"`
	ProviderID string `bson:"providerId" json:"providerId"`
	DayOfWeek  int    `bson:"dayOfWeek" json:"dayOfWeek"`
	StartTime  string `bson:"startTime" json:"startTime"` // "HH:mm", 24h
	EndTime    string `bson:"endTime" json:"endTime"`     // "HH:mm", 24h
	IsClosed   bool   `bson:"isClosed" json:"isClosed"`
	IsActive   bool   `bson:"isActive" json:"isActive"` // soft-disable without deletion
}

// AvailabilityException overrides the weekly schedule for one calendar date.
// Unique per (provider, date); deleting one reverts the date to the weekly
// schedule. Location is set on "visiting" exceptions so route discovery can
// surface providers working away from their base.
type AvailabilityException struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	Date       string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	IsClosed   bool      `bson:"isClosed" json:"isClosed"`
	StartTime  string    `bson:"startTime,omitempty" json:"startTime,omitempty"` // alternate hours when open
	EndTime    string    `bson:"endTime,omitempty" json:"endTime,omitempty"`
	Reason     string    `bson:"reason,omitempty" json:"reason,omitempty"`
	Location   *Location `bson:"location,omitempty" json:"location,omitempty"`
}

// ResolvedDayAvailability is the effective opening window for one provider on
// one date after exception precedence is applied. Field names are part of the
// API contract.
type ResolvedDayAvailability struct {
	IsClosed     bool    `json:"isClosed"`
	OpeningTime  *string `json:"openingTime"`
	ClosingTime  *string `json:"closingTime"`
	ClosedReason *string `json:"closedReason"`
}
