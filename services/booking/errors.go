package booking

import "errors"

var (
	ErrViewerNotFound    = errors.New("viewer cannot be found")
	ErrListingNotFound   = errors.New("listing cannot be found")
	ErrOwnListing        = errors.New("viewer can't book own listing")
	ErrInvalidDates      = errors.New("check out date can't be before check in date")
	ErrBookingInProgress = errors.New("another booking for this listing is in progress")
	ErrHostNoWallet      = errors.New("the host either can't be found or is not connected with Stripe")
)
