package models

import "time"

// User is anyone who has logged in; hosts and tenants share the record.
type User struct {
	ID            string         `bson:"id" json:"id"`
	Name          string         `bson:"name" json:"name"`
	Avatar        string         `bson:"avatar" json:"avatar"`
	Contact       string         `bson:"contact" json:"contact"`                     // Email address
	WalletID      string         `bson:"walletId,omitempty" json:"-"`                // Stripe connected account
	Income        int64          `bson:"income" json:"income"`                       // Cents earned as a host
	Bookings      []string       `bson:"bookings" json:"bookings"`                   // Booking IDs made as a tenant
	Listings      []string       `bson:"listings" json:"listings"`                   // Listing IDs hosted
	Notifications []Notification `bson:"notifications,omitempty" json:"notifications,omitempty"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// HasWallet reports whether the user can receive payouts.
func (u *User) HasWallet() bool {
	return u != nil && u.WalletID != ""
}

// Viewer is the identity of the caller as returned by log in/out.
type Viewer struct {
	ID         string `json:"id,omitempty"`
	Token      string `json:"token,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
	HasWallet  bool   `json:"hasWallet"`
	DidRequest bool   `json:"didRequest"`
}
