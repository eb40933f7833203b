package handlers

import (
	customerRepo "hoofline/database/repository/customer"
	providerRepo "hoofline/database/repository/provider"
)

// HandlerBundle groups the HTTP handlers and the repositories the auth
// middleware needs, so route registration takes a single value.
type HandlerBundle struct {
	Auth         *AuthHandler
	Availability *AvailabilityHandler
	Schedule     *ScheduleHandler
	Booking      *BookingHandler
	Route        *RouteHandler

	CustomerRepo customerRepo.CustomerRepository
	ProviderRepo providerRepo.ProviderRepository
}
