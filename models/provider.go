package models

import "time"

// Service types offered on the marketplace.
const (
	ServiceFarrier = "farrier"
	ServiceVet     = "vet"
	ServiceMassage = "massage"
)

// DefaultServiceDurationMin is used when a provider has not configured one
// and the request does not override it.
const DefaultServiceDurationMin = 30

// Provider is a service professional on the platform. Mobile providers visit
// customer yards and get travel-time-aware slot generation; stationary ones
// see customers at their base.
type Provider struct {
	ID                 string    `bson:"id" json:"id"`
	Name               string    `bson:"name" json:"name"`
	Email              string    `bson:"email" json:"email"`
	PhoneNumber        string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	ServiceType        string    `bson:"serviceType" json:"serviceType"`
	Mobile             bool      `bson:"mobile" json:"mobile"`
	BaseLocation       *Location `bson:"baseLocation,omitempty" json:"baseLocation,omitempty"`
	ServiceDurationMin int       `bson:"serviceDurationMin" json:"serviceDurationMin"`
	Rating             float64   `bson:"rating,omitempty" json:"rating,omitempty"`
	PasswordHash       string    `bson:"passwordHash" json:"-"`
	TokenHash          string    `bson:"tokenHash,omitempty" json:"-"`
	FCMToken           string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
}

// ProviderRegistration is the provider signup payload.
type ProviderRegistration struct {
	Name               string   `json:"name" binding:"required"`
	Email              string   `json:"email" binding:"required,email"`
	Password           string   `json:"password" binding:"required,min=8"`
	PhoneNumber        string   `json:"phoneNumber"`
	ServiceType        string   `json:"serviceType" binding:"required"`
	Mobile             bool     `json:"mobile"`
	Latitude           *float64 `json:"latitude"`
	Longitude          *float64 `json:"longitude"`
	ServiceDurationMin int      `json:"serviceDurationMin"`
}
