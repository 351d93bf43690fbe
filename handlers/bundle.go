package handlers

import "servana/middleware"

// HandlerBundle groups every handler plus the authenticator so route
// registration takes a single argument.
type HandlerBundle struct {
	Auth *middleware.Authenticator

	User      *UserHandler
	Provider  *ProviderHandler
	Service   *ServiceHandler
	Booking   *BookingHandler
	Review    *ReviewHandler
	Admin     *AdminHandler
	Analytics *AnalyticsHandler
	Storage   *StorageHandler
	Health    *HealthHandler
}
