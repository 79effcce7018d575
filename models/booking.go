package models

import "time"

// Booking is a confirmed stay.
type Booking struct {
	ID         string    `bson:"id" json:"id"`
	Listing    string    `bson:"listing" json:"listing"`       // Listing ID
	Tenant     string    `bson:"tenant" json:"tenant"`         // User ID of the guest
	CheckIn    string    `bson:"checkIn" json:"checkIn"`       // YYYY-MM-DD
	CheckOut   string    `bson:"checkOut" json:"checkOut"`     // YYYY-MM-DD, inclusive
	TotalPrice int64     `bson:"totalPrice" json:"totalPrice"` // Cents charged
	ChargeID   string    `bson:"chargeId" json:"-"`            // Stripe charge
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// CreateBookingInput is the request to book a listing.
type CreateBookingInput struct {
	ListingID string `json:"id" binding:"required"`
	Source    string `json:"source" binding:"required"` // Stripe payment source token
	CheckIn   string `json:"checkIn" binding:"required"`
	CheckOut  string `json:"checkOut" binding:"required"`
}

// BookingsPage is one page of bookings.
type BookingsPage struct {
	Total  int64     `json:"total"`
	Result []Booking `json:"result"`
}

// ListingsOwnedPage is one page of a user's listings.
type ListingsOwnedPage struct {
	Total  int64     `json:"total"`
	Result []Listing `json:"result"`
}
