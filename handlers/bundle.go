package handlers

import (
	"tinyhouse/resolvers"
	"tinyhouse/services/booking"
	"tinyhouse/services/listing"
	"tinyhouse/services/user"
)

// HandlerBundle groups all endpoint handlers and their dependencies.
type HandlerBundle struct {
	Users    *UserHandler
	Listings *ListingHandler
	Bookings *BookingHandler
}

// NewHandlerBundle builds every handler from the shared services.
func NewHandlerBundle(userSvc user.UserService, listingSvc listing.ListingService, bookingSvc booking.BookingService, resolver *resolvers.Resolver) *HandlerBundle {
	return &HandlerBundle{
		Users:    &UserHandler{Service: userSvc, Resolver: resolver},
		Listings: &ListingHandler{Service: listingSvc, Resolver: resolver},
		Bookings: &BookingHandler{Service: bookingSvc, Resolver: resolver},
	}
}
