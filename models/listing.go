package models

import (
	"time"

	"tinyhouse/services/availability"
)

// ListingType enumerates the kinds of property a host can list.
type ListingType string

const (
	ListingTypeApartment ListingType = "APARTMENT"
	ListingTypeHouse     ListingType = "HOUSE"
)

// Valid reports whether t is a known listing type.
func (t ListingType) Valid() bool {
	return t == ListingTypeApartment || t == ListingTypeHouse
}

// ListingsFilter orders listing search results.
type ListingsFilter string

const (
	FilterPriceLowToHigh ListingsFilter = "PRICE_LOW_TO_HIGH"
	FilterPriceHighToLow ListingsFilter = "PRICE_HIGH_TO_LOW"
)

// Listing is a rentable property.
type Listing struct {
	ID            string              `bson:"id" json:"id"`
	Title         string              `bson:"title" json:"title"`
	Description   string              `bson:"description" json:"description"`
	Image         string              `bson:"image" json:"image"`                 // Cloudinary secure URL
	Host          string              `bson:"host" json:"host"`                   // User ID of the host
	Type          ListingType         `bson:"type" json:"type"`                   // APARTMENT or HOUSE
	Address       string              `bson:"address" json:"address"`             // Address as typed by the host
	Country       string              `bson:"country" json:"country"`             // Geocoded country
	Admin         string              `bson:"admin" json:"admin"`                 // Geocoded first-level administrative area
	City          string              `bson:"city" json:"city"`                   // Geocoded locality
	Bookings      []string            `bson:"bookings" json:"bookings"`           // Booking IDs
	BookingsIndex *availability.Index `bson:"bookingsIndex" json:"bookingsIndex"` // Booked calendar days
	Price         int64               `bson:"price" json:"price"`                 // Cents per day
	NumOfGuests   int                 `bson:"numOfGuests" json:"numOfGuests"`
	Version       int64               `bson:"version" json:"-"` // Bumped on every committed booking
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// ListingsQuery narrows a listing search to a geocoded region.
type ListingsQuery struct {
	Country string
	Admin   string
	City    string
}

// ListingsPage is one page of a listing search.
type ListingsPage struct {
	Region *string   `json:"region"`
	Total  int64     `json:"total"`
	Result []Listing `json:"result"`
}

// HostListingInput is what a host submits to create a listing.
type HostListingInput struct {
	Title       string      `json:"title" binding:"required"`
	Description string      `json:"description" binding:"required"`
	Image       string      `json:"image" binding:"required"` // base64 data URI
	Type        ListingType `json:"type" binding:"required"`
	Address     string      `json:"address" binding:"required"`
	Price       int64       `json:"price"`
	NumOfGuests int         `json:"numOfGuests"`
}
