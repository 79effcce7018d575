package listing

import (
	"context"
	"testing"
	"time"

	"tinyhouse/database"
	bookingRepo "tinyhouse/database/repository/booking"
	"tinyhouse/models"
	"tinyhouse/services/availability"
	"tinyhouse/services/geocode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeListings struct {
	byID        map[string]*models.Listing
	lastQuery   models.ListingsQuery
	lastFilter  models.ListingsFilter
	lastLimit   int64
	lastPage    int64
	searchTotal int64
}

func (r *fakeListings) GetByID(_ context.Context, id string) (*models.Listing, error) {
	l, ok := r.byID[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return l, nil
}

func (r *fakeListings) Create(_ context.Context, l *models.Listing) error {
	r.byID[l.ID] = l
	return nil
}

func (r *fakeListings) Search(_ context.Context, q models.ListingsQuery, f models.ListingsFilter, limit, page int64) ([]models.Listing, int64, error) {
	r.lastQuery, r.lastFilter, r.lastLimit, r.lastPage = q, f, limit, page
	return []models.Listing{}, r.searchTotal, nil
}

func (r *fakeListings) GetByIDs(context.Context, []string, int64, int64) ([]models.Listing, int64, error) {
	return nil, 0, nil
}

type fakeUsers struct {
	byID map[string]*models.User
}

func (r *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return u, nil
}
func (r *fakeUsers) Upsert(_ context.Context, u *models.User) (*models.User, error) { return u, nil }
func (r *fakeUsers) AddListing(_ context.Context, userID, listingID string) error {
	u, ok := r.byID[userID]
	if !ok {
		return database.ErrNotFound
	}
	u.Listings = append(u.Listings, listingID)
	return nil
}
func (r *fakeUsers) SetWallet(context.Context, string, string) (*models.User, error) {
	return nil, database.ErrNotFound
}
func (r *fakeUsers) AddNotification(context.Context, string, models.Notification) error { return nil }

type fakeBookings struct {
	requested []string
}

func (r *fakeBookings) GetByIDs(_ context.Context, ids []string, _, _ int64) ([]models.Booking, int64, error) {
	r.requested = ids
	out := make([]models.Booking, len(ids))
	for i, id := range ids {
		out[i] = models.Booking{ID: id}
	}
	return out, int64(len(ids)), nil
}
func (r *fakeBookings) GetByID(context.Context, string) (*models.Booking, error) {
	return nil, database.ErrNotFound
}
func (r *fakeBookings) CommitBooking(context.Context, bookingRepo.Commit) error { return nil }

type fakeGeocoder map[string]geocode.Location

func (g fakeGeocoder) Geocode(_ context.Context, address string) (geocode.Location, error) {
	loc, ok := g[address]
	if !ok {
		return geocode.Location{}, geocode.ErrNoResults
	}
	return loc, nil
}

type fakeStorage struct {
	folder string
}

func (s *fakeStorage) UploadImage(_ context.Context, _, folder string) (string, error) {
	s.folder = folder
	return "https://res.cloudinary.com/demo/image/upload/house.png", nil
}
func (s *fakeStorage) DeleteImage(context.Context, string) error { return nil }

type fixture struct {
	listings *fakeListings
	users    *fakeUsers
	bookings *fakeBookings
	storage  *fakeStorage
	svc      *DefaultListingService
}

func newFixture() *fixture {
	booked, _ := availability.New().WithRangeBooked(availability.Date(2024, time.June, 10), availability.Date(2024, time.June, 11))
	f := &fixture{
		listings: &fakeListings{byID: map[string]*models.Listing{
			"cabin": {ID: "cabin", Host: "host", Bookings: []string{"b1", "b2"}, BookingsIndex: booked},
		}},
		users:    &fakeUsers{byID: map[string]*models.User{"host": {ID: "host"}}},
		bookings: &fakeBookings{},
		storage:  &fakeStorage{},
	}
	geo := fakeGeocoder{
		"Toronto":        {Country: "Canada", Admin: "Ontario", City: "Toronto"},
		"Canada":         {Country: "Canada"},
		"Mid Atlantic":   {},
		"12 Main Street": {Country: "Canada", Admin: "Ontario", City: "Toronto"},
	}
	f.svc = NewListingService(f.listings, f.users, f.bookings, geo, f.storage, "TH_Assets/", zap.NewNop())
	return f
}

func validInput() models.HostListingInput {
	return models.HostListingInput{
		Title:       "Cozy cabin",
		Description: "Quiet place near the lake",
		Image:       "data:image/png;base64,iVBORw0KGgo=",
		Type:        models.ListingTypeHouse,
		Address:     "12 Main Street",
		Price:       12000,
		NumOfGuests: 2,
	}
}

func TestGetListing_Authorization(t *testing.T) {
	f := newFixture()

	_, authorized, err := f.svc.GetListing(context.Background(), "host", "cabin")
	require.NoError(t, err)
	assert.True(t, authorized)

	_, authorized, err = f.svc.GetListing(context.Background(), "", "cabin")
	require.NoError(t, err)
	assert.False(t, authorized)

	_, _, err = f.svc.GetListing(context.Background(), "host", "missing")
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestListListings_Region(t *testing.T) {
	f := newFixture()
	f.listings.searchTotal = 3

	page, err := f.svc.ListListings(context.Background(), "Toronto", models.FilterPriceLowToHigh, 4, 2)
	require.NoError(t, err)
	require.NotNil(t, page.Region)
	assert.Equal(t, "Toronto, Ontario, Canada", *page.Region)
	assert.EqualValues(t, 3, page.Total)
	assert.Equal(t, models.ListingsQuery{Country: "Canada", Admin: "Ontario", City: "Toronto"}, f.listings.lastQuery)
	assert.Equal(t, models.FilterPriceLowToHigh, f.listings.lastFilter)
	assert.EqualValues(t, 4, f.listings.lastLimit)
	assert.EqualValues(t, 2, f.listings.lastPage)

	page, err = f.svc.ListListings(context.Background(), "Canada", "", 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "Canada", *page.Region)
	assert.EqualValues(t, defaultPageSize, f.listings.lastLimit)
}

func TestListListings_NoLocation(t *testing.T) {
	f := newFixture()

	page, err := f.svc.ListListings(context.Background(), "", models.FilterPriceHighToLow, 500, 1)
	require.NoError(t, err)
	assert.Nil(t, page.Region)
	assert.Equal(t, models.ListingsQuery{}, f.listings.lastQuery)
	assert.EqualValues(t, maxPageSize, f.listings.lastLimit)
}

func TestListListings_NoCountry(t *testing.T) {
	f := newFixture()

	_, err := f.svc.ListListings(context.Background(), "Mid Atlantic", "", 10, 1)
	assert.ErrorIs(t, err, ErrNoCountry)

	_, err = f.svc.ListListings(context.Background(), "unknown place", "", 10, 1)
	assert.ErrorIs(t, err, ErrNoCountry)
}

func TestListingBookings_OnlyForHost(t *testing.T) {
	f := newFixture()

	page, err := f.svc.ListingBookings(context.Background(), "someone", "cabin", 10, 1)
	require.NoError(t, err)
	assert.Nil(t, page)

	page, err = f.svc.ListingBookings(context.Background(), "host", "cabin", 10, 1)
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.EqualValues(t, 2, page.Total)
	assert.Equal(t, []string{"b1", "b2"}, f.bookings.requested)
}

func TestHostListing_Success(t *testing.T) {
	f := newFixture()

	l, err := f.svc.HostListing(context.Background(), "host", validInput())
	require.NoError(t, err)

	assert.Equal(t, "host", l.Host)
	assert.Equal(t, "Canada", l.Country)
	assert.Equal(t, "Ontario", l.Admin)
	assert.Equal(t, "Toronto", l.City)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/house.png", l.Image)
	assert.Equal(t, 0, l.BookingsIndex.Len())
	assert.Equal(t, "TH_Assets/", f.storage.folder)
	assert.Same(t, l, f.listings.byID[l.ID])
	assert.Equal(t, []string{l.ID}, f.users.byID["host"].Listings)
}

func TestHostListing_Validation(t *testing.T) {
	long := make([]byte, maxDescriptionLength+1)
	for i := range long {
		long[i] = 'a'
	}
	cases := map[string]func(*models.HostListingInput){
		"title too long":       func(in *models.HostListingInput) { in.Title = string(long[:maxTitleLength+1]) },
		"description too long": func(in *models.HostListingInput) { in.Description = string(long) },
		"unknown type":         func(in *models.HostListingInput) { in.Type = "CASTLE" },
		"negative price":       func(in *models.HostListingInput) { in.Price = -1 },
		"no guests":            func(in *models.HostListingInput) { in.NumOfGuests = 0 },
		"not an image":         func(in *models.HostListingInput) { in.Image = "hello" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			in := validInput()
			mutate(&in)
			_, err := f.svc.HostListing(context.Background(), "host", in)
			assert.ErrorIs(t, err, ErrInvalidListing)
		})
	}
}

func TestHostListing_AddressAndViewer(t *testing.T) {
	f := newFixture()

	in := validInput()
	in.Address = "Canada"
	_, err := f.svc.HostListing(context.Background(), "host", in)
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = f.svc.HostListing(context.Background(), "ghost", validInput())
	assert.ErrorIs(t, err, ErrViewerNotFound)
}

func TestAvailability(t *testing.T) {
	f := newFixture()

	free, err := f.svc.Availability(context.Background(), "cabin", "2024-06-01", "2024-06-09")
	require.NoError(t, err)
	assert.True(t, free.Available)
	assert.Equal(t, []string{"2024-06-10", "2024-06-11"}, free.BookedDays)

	clash, err := f.svc.Availability(context.Background(), "cabin", "2024-06-08", "2024-06-12")
	require.NoError(t, err)
	assert.False(t, clash.Available)
	assert.False(t, clash.CheckInBooked)
	assert.Equal(t, "2024-06-10", clash.ConflictDate)

	onCheckIn, err := f.svc.Availability(context.Background(), "cabin", "2024-06-11", "2024-06-13")
	require.NoError(t, err)
	assert.True(t, onCheckIn.CheckInBooked)
	assert.False(t, onCheckIn.Available)
	assert.Equal(t, "2024-06-11", onCheckIn.ConflictDate)

	_, err = f.svc.Availability(context.Background(), "cabin", "2024-06-13", "2024-06-11")
	assert.ErrorIs(t, err, ErrInvalidDates)

	_, err = f.svc.Availability(context.Background(), "missing", "2024-06-01", "2024-06-02")
	assert.ErrorIs(t, err, ErrListingNotFound)
}
