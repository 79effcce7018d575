package user

import (
	"context"
	"errors"
	"testing"

	"tinyhouse/database"
	bookingRepo "tinyhouse/database/repository/booking"
	"tinyhouse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memUsers struct {
	byID map[string]*models.User
}

func (r *memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return u, nil
}

func (r *memUsers) Upsert(_ context.Context, u *models.User) (*models.User, error) {
	if existing, ok := r.byID[u.ID]; ok {
		existing.Name, existing.Avatar, existing.Contact = u.Name, u.Avatar, u.Contact
		return existing, nil
	}
	r.byID[u.ID] = u
	return u, nil
}

func (r *memUsers) AddListing(context.Context, string, string) error {
	return nil
}

func (r *memUsers) SetWallet(_ context.Context, id, walletID string) (*models.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	u.WalletID = walletID
	return u, nil
}

func (r *memUsers) AddNotification(context.Context, string, models.Notification) error {
	return nil
}

type memListings struct{}

func (memListings) GetByID(context.Context, string) (*models.Listing, error) {
	return nil, database.ErrNotFound
}

func (memListings) Create(context.Context, *models.Listing) error {
	return nil
}

func (memListings) Search(context.Context, models.ListingsQuery, models.ListingsFilter, int64, int64) ([]models.Listing, int64, error) {
	return nil, 0, nil
}

func (memListings) GetByIDs(_ context.Context, ids []string, _, _ int64) ([]models.Listing, int64, error) {
	out := make([]models.Listing, len(ids))
	for i, id := range ids {
		out[i] = models.Listing{ID: id}
	}
	return out, int64(len(ids)), nil
}

type memBookings struct{}

func (memBookings) GetByIDs(_ context.Context, ids []string, _, _ int64) ([]models.Booking, int64, error) {
	out := make([]models.Booking, len(ids))
	for i, id := range ids {
		out[i] = models.Booking{ID: id}
	}
	return out, int64(len(ids)), nil
}

func (memBookings) GetByID(context.Context, string) (*models.Booking, error) {
	return nil, database.ErrNotFound
}

func (memBookings) CommitBooking(context.Context, bookingRepo.Commit) error {
	return nil
}

type stubIdentity struct {
	profile *Profile
	err     error
}

func (s stubIdentity) AuthCodeURL() string {
	return "https://accounts.google.com/o/oauth2/auth?client_id=test"
}

func (s stubIdentity) Exchange(context.Context, string) (*Profile, error) {
	return s.profile, s.err
}

type stubPayments struct {
	connected    string
	disconnected []string
}

func (p *stubPayments) Charge(context.Context, int64, string, string) (string, error) {
	return "", errors.New("not used")
}

func (p *stubPayments) Refund(context.Context, string, string) error {
	return nil
}

func (p *stubPayments) Connect(context.Context, string) (string, error) {
	return p.connected, nil
}

func (p *stubPayments) Disconnect(_ context.Context, walletID string) error {
	p.disconnected = append(p.disconnected, walletID)
	return nil
}

func newService(identity IdentityProvider) (*DefaultUserService, *memUsers, *stubPayments) {
	users := &memUsers{byID: map[string]*models.User{
		"alice": {ID: "alice", Name: "Alice", Bookings: []string{"b1"}, Listings: []string{"l1", "l2"}},
	}}
	payments := &stubPayments{connected: "acct_123"}
	svc := &DefaultUserService{
		Users:    users,
		Listings: memListings{},
		Bookings: memBookings{},
		Google:   identity,
		Payments: payments,
		Issue:    func(subject string) (string, error) { return "token-" + subject, nil },
		Logger:   zap.NewNop(),
	}
	return svc, users, payments
}

func TestLogIn_CreatesUserAndIssuesToken(t *testing.T) {
	svc, users, _ := newService(stubIdentity{profile: &Profile{ID: "g-42", Name: "Bob", Avatar: "https://img/bob.png", Email: "bob@example.com"}})

	viewer, err := svc.LogIn(context.Background(), "auth-code")
	require.NoError(t, err)

	assert.Equal(t, "g-42", viewer.ID)
	assert.Equal(t, "token-g-42", viewer.Token)
	assert.True(t, viewer.DidRequest)
	assert.False(t, viewer.HasWallet)
	assert.Equal(t, "bob@example.com", users.byID["g-42"].Contact)
}

func TestLogIn_Failures(t *testing.T) {
	svc, _, _ := newService(stubIdentity{err: errors.New("bad code")})

	_, err := svc.LogIn(context.Background(), " ")
	assert.ErrorIs(t, err, ErrMissingCode)

	_, err = svc.LogIn(context.Background(), "code")
	assert.ErrorIs(t, err, ErrLoginFailed)

	svc, _, _ = newService(stubIdentity{profile: &Profile{ID: "g-1"}})
	_, err = svc.LogIn(context.Background(), "code")
	assert.ErrorIs(t, err, ErrLoginFailed)
}

func TestLogOut(t *testing.T) {
	svc, _, _ := newService(stubIdentity{})
	assert.Equal(t, &models.Viewer{DidRequest: true}, svc.LogOut())
}

func TestGetUser_Authorization(t *testing.T) {
	svc, _, _ := newService(stubIdentity{})

	_, authorized, err := svc.GetUser(context.Background(), "alice", "alice")
	require.NoError(t, err)
	assert.True(t, authorized)

	_, authorized, err = svc.GetUser(context.Background(), "", "alice")
	require.NoError(t, err)
	assert.False(t, authorized)

	_, _, err = svc.GetUser(context.Background(), "alice", "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserBookings_OnlyForSelf(t *testing.T) {
	svc, _, _ := newService(stubIdentity{})

	page, err := svc.UserBookings(context.Background(), "mallory", "alice", 10, 1)
	require.NoError(t, err)
	assert.Nil(t, page)

	page, err = svc.UserBookings(context.Background(), "alice", "alice", 10, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
}

func TestUserListings(t *testing.T) {
	svc, _, _ := newService(stubIdentity{})

	page, err := svc.UserListings(context.Background(), "alice", 0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
	assert.Equal(t, "l1", page.Result[0].ID)
}

func TestStripeConnectAndDisconnect(t *testing.T) {
	svc, users, payments := newService(stubIdentity{})

	viewer, err := svc.ConnectStripe(context.Background(), "alice", "ac_code")
	require.NoError(t, err)
	assert.True(t, viewer.HasWallet)
	assert.Equal(t, "acct_123", users.byID["alice"].WalletID)

	viewer, err = svc.DisconnectStripe(context.Background(), "alice")
	require.NoError(t, err)
	assert.False(t, viewer.HasWallet)
	assert.Equal(t, []string{"acct_123"}, payments.disconnected)

	_, err = svc.ConnectStripe(context.Background(), "", "ac_code")
	assert.ErrorIs(t, err, ErrViewerNotFound)
	_, err = svc.ConnectStripe(context.Background(), "alice", "")
	assert.ErrorIs(t, err, ErrMissingCode)
}
