package resolvers

import "tinyhouse/models"

// UserSummary is the public face of a user embedded in other objects.
type UserSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	HasWallet bool   `json:"hasWallet"`
}

// UserDTO is a user as returned to clients. Income is only set for the user themself.
type UserDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
	Contact    string `json:"contact"`
	HasWallet  bool   `json:"hasWallet"`
	Income     *int64 `json:"income"`
	Authorized bool   `json:"authorized"`
}

// ListingDTO is a listing as returned to clients. BookingsIndex is the
// serialized calendar string calendar clients decode themselves.
type ListingDTO struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Image         string             `json:"image"`
	Host          *UserSummary       `json:"host"`
	Type          models.ListingType `json:"type"`
	Address       string             `json:"address"`
	Country       string             `json:"country"`
	Admin         string             `json:"admin"`
	City          string             `json:"city"`
	BookingsIndex string             `json:"bookingsIndex"`
	Price         int64              `json:"price"`
	NumOfGuests   int                `json:"numOfGuests"`
	Authorized    bool               `json:"authorized"`
}

// BookingDTO is a booking with its listing and tenant resolved.
type BookingDTO struct {
	ID         string       `json:"id"`
	Listing    *ListingDTO  `json:"listing"`
	Tenant     *UserSummary `json:"tenant"`
	CheckIn    string       `json:"checkIn"`
	CheckOut   string       `json:"checkOut"`
	TotalPrice int64        `json:"totalPrice"`
}

type ListingsPageDTO struct {
	Region *string      `json:"region"`
	Total  int64        `json:"total"`
	Result []ListingDTO `json:"result"`
}

type BookingsPageDTO struct {
	Total  int64        `json:"total"`
	Result []BookingDTO `json:"result"`
}
