package models

import "time"

type Notification struct {
	ID        string         `bson:"id" json:"id"`
	Type      string         `bson:"type" json:"type"`
	Title     string         `bson:"title" json:"title"`
	Body      string         `bson:"body" json:"body"`
	Data      map[string]any `bson:"data,omitempty" json:"data,omitempty"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
	Read      bool           `bson:"read" json:"read"`
}

// ReminderPayload is queued for delivery ahead of a stay.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	TenantID  string `json:"tenantId"`
	ListingID string `json:"listingId"`
	Title     string `json:"title"`
	CheckIn   string `json:"checkIn"`
}
