package models

// AvailabilityReport previews whether a stay could be booked.
type AvailabilityReport struct {
	ListingID     string   `json:"listingId"`
	CheckIn       string   `json:"checkIn"`
	CheckOut      string   `json:"checkOut"`
	CheckInBooked bool     `json:"checkInBooked"`
	Available     bool     `json:"available"`
	ConflictDate  string   `json:"conflictDate,omitempty"`
	BookedDays    []string `json:"bookedDays"`
}
