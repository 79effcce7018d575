package listing

import "errors"

var (
	ErrListingNotFound = errors.New("listing cannot be found")
	ErrViewerNotFound  = errors.New("viewer cannot be found")
	ErrNoCountry       = errors.New("no country found")
	ErrInvalidAddress  = errors.New("invalid address input")
	ErrInvalidListing  = errors.New("invalid listing input")
	ErrInvalidDates    = errors.New("invalid dates")
)
