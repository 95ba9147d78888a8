package devapi_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holidaze/internal/api"
	"holidaze/internal/devapi"
	"holidaze/internal/domain"
)

type tokenBox struct{ tok string }

func (b *tokenBox) Token() (string, error) { return b.tok, nil }

func newClient(t *testing.T, opts ...devapi.Option) (*api.HTTP, *tokenBox, *devapi.Server) {
	t.Helper()
	srv := devapi.New(opts...)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	box := &tokenBox{}
	return api.NewHTTP(ts.URL, ts.Client(), api.WithTokenSource(box), api.WithAPIKey("dev-key")), box, srv
}

func signUp(t *testing.T, c *api.HTTP, box *tokenBox, name string, manager bool) domain.Profile {
	t.Helper()
	ctx := context.Background()
	_, err := c.Register(ctx, domain.Registration{
		Name:         domain.ProfileName(name),
		Email:        name + "@stud.noroff.no",
		Password:     "password123",
		VenueManager: manager,
	})
	require.NoError(t, err)
	res, err := c.Login(ctx, domain.Credentials{Email: name + "@stud.noroff.no", Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	box.tok = res.AccessToken
	return res.Profile
}

var cabin = domain.VenueInput{
	Name:        "Cabin",
	Description: "Small cabin",
	Price:       100,
	MaxGuests:   3,
	Rating:      4,
}

func TestRegisterAndLogin(t *testing.T) {
	c, box, _ := newClient(t)
	p := signUp(t, c, box, "alice", false)

	assert.Equal(t, domain.ProfileName("alice"), p.Name)
	assert.Equal(t, "alice@stud.noroff.no", p.Email)

	got, err := c.GetProfile(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestRegister_Invalid(t *testing.T) {
	c, _, _ := newClient(t)
	_, err := c.Register(context.Background(), domain.Registration{
		Name: "bad name", Email: "a@gmail.com", Password: "short",
	})
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Len(t, apiErr.Messages, 3)
}

func TestRegister_Duplicate(t *testing.T) {
	c, box, _ := newClient(t)
	signUp(t, c, box, "alice", false)
	_, err := c.Register(context.Background(), domain.Registration{
		Name: "alice", Email: "other@stud.noroff.no", Password: "password123",
	})
	assert.EqualError(t, err, "400: Profile already exists")
}

func TestLogin_WrongPassword(t *testing.T) {
	c, box, _ := newClient(t)
	signUp(t, c, box, "alice", false)
	_, err := c.Login(context.Background(), domain.Credentials{Email: "alice@stud.noroff.no", Password: "nope-nope"})
	assert.Equal(t, http.StatusUnauthorized, api.StatusCode(err))
}

func TestProfile_NotFound(t *testing.T) {
	c, box, _ := newClient(t)
	signUp(t, c, box, "alice", false)
	_, err := c.GetProfile(context.Background(), "ghost")
	assert.True(t, api.IsNotFound(err))
}

func TestProfile_RequiresToken(t *testing.T) {
	c, _, _ := newClient(t)
	_, err := c.GetProfile(context.Background(), "alice")
	assert.Equal(t, http.StatusUnauthorized, api.StatusCode(err))
}

func TestUpdateProfile(t *testing.T) {
	c, box, _ := newClient(t)
	signUp(t, c, box, "alice", false)

	bio := "hello"
	manager := true
	p, err := c.UpdateProfile(context.Background(), "alice", domain.ProfileUpdate{
		Bio:          &bio,
		VenueManager: &manager,
		Avatar:       &domain.Media{URL: "https://img/a.png", Alt: "me"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", p.Bio)
	assert.True(t, p.VenueManager)
	require.NotNil(t, p.Avatar)
	assert.Equal(t, "https://img/a.png", p.Avatar.URL)

	_, err = c.UpdateProfile(context.Background(), "bob", domain.ProfileUpdate{Bio: &bio})
	assert.Equal(t, http.StatusForbidden, api.StatusCode(err))
}

func TestVenueLifecycle(t *testing.T) {
	ctx := context.Background()
	c, box, _ := newClient(t)
	signUp(t, c, box, "host", true)

	v, err := c.CreateVenue(ctx, cabin)
	require.NoError(t, err)
	require.NotEmpty(t, v.ID)
	require.NotNil(t, v.Owner)
	assert.Equal(t, domain.ProfileName("host"), v.Owner.Name)

	upd := cabin
	upd.Price = 150
	v2, err := c.UpdateVenue(ctx, v.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, 150.0, v2.Price)
	assert.Equal(t, v.Created, v2.Created)

	mine, err := c.ProfileVenues(ctx, "host")
	require.NoError(t, err)
	require.Len(t, mine, 1)

	require.NoError(t, c.DeleteVenue(ctx, v.ID))
	_, err = c.GetVenue(ctx, v.ID)
	assert.True(t, api.IsNotFound(err))
}

func TestCreateVenue_RequiresManager(t *testing.T) {
	c, box, _ := newClient(t)
	signUp(t, c, box, "alice", false)
	_, err := c.CreateVenue(context.Background(), cabin)
	assert.Equal(t, http.StatusForbidden, api.StatusCode(err))
}

func TestCreateVenue_Invalid(t *testing.T) {
	c, box, _ := newClient(t)
	signUp(t, c, box, "host", true)
	_, err := c.CreateVenue(context.Background(), domain.VenueInput{MaxGuests: 0})
	assert.Equal(t, http.StatusBadRequest, api.StatusCode(err))
}

func TestBookingLengthIsCapped(t *testing.T) {
	ctx := context.Background()
	c, box, _ := newClient(t)
	signUp(t, c, box, "host", true)
	v, err := c.CreateVenue(ctx, cabin)
	require.NoError(t, err)
	signUp(t, c, box, "guest", false)

	_, err = c.CreateBooking(ctx, domain.BookingRequest{DateFrom: "0001-01-01", DateTo: "2024-06-01", Guests: 1, VenueID: v.ID})
	assert.EqualError(t, err, "400: A booking cannot be longer than 365 nights")

	_, err = c.CreateBooking(ctx, domain.BookingRequest{DateFrom: "2024-01-01", DateTo: "2025-01-01", Guests: 1, VenueID: v.ID})
	assert.Equal(t, http.StatusBadRequest, api.StatusCode(err), "366 nights")

	_, err = c.CreateBooking(ctx, domain.BookingRequest{DateFrom: "2024-01-01", DateTo: "2024-12-31", Guests: 1, VenueID: v.ID})
	require.NoError(t, err, "365 nights")

	got, err := c.GetVenue(ctx, v.ID)
	require.NoError(t, err)
	assert.Len(t, got.Bookings, 1)
}

func TestBookingOverlapIsRefused(t *testing.T) {
	ctx := context.Background()
	c, box, _ := newClient(t)
	signUp(t, c, box, "host", true)
	v, err := c.CreateVenue(ctx, cabin)
	require.NoError(t, err)

	signUp(t, c, box, "guest", false)
	b, err := c.CreateBooking(ctx, domain.BookingRequest{DateFrom: "2024-06-01", DateTo: "2024-06-03", Guests: 2, VenueID: v.ID})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", b.DateFrom.Format("2006-01-02"))

	_, err = c.CreateBooking(ctx, domain.BookingRequest{DateFrom: "2024-06-03", DateTo: "2024-06-05", Guests: 1, VenueID: v.ID})
	assert.Equal(t, http.StatusConflict, api.StatusCode(err))

	_, err = c.CreateBooking(ctx, domain.BookingRequest{DateFrom: "2024-06-04", DateTo: "2024-06-05", Guests: 9, VenueID: v.ID})
	assert.Equal(t, http.StatusBadRequest, api.StatusCode(err))

	_, err = c.CreateBooking(ctx, domain.BookingRequest{DateFrom: "2024-06-09", DateTo: "2024-06-07", Guests: 1, VenueID: v.ID})
	assert.Equal(t, http.StatusBadRequest, api.StatusCode(err))

	got, err := c.GetVenue(ctx, v.ID)
	require.NoError(t, err)
	require.Len(t, got.Bookings, 1)
	require.NotNil(t, got.Bookings[0].Customer)
	assert.Equal(t, domain.ProfileName("guest"), got.Bookings[0].Customer.Name)

	mine, err := c.ProfileBookings(ctx, "guest")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.NotNil(t, mine[0].Venue)
	assert.Equal(t, v.ID, mine[0].Venue.ID)

	require.NoError(t, c.DeleteBooking(ctx, b.ID))
	_, err = c.GetBooking(ctx, b.ID)
	assert.True(t, api.IsNotFound(err))
}

func TestListAndSearchVenues(t *testing.T) {
	ctx := context.Background()
	c, _, srv := newClient(t)
	require.NoError(t, srv.Seed())

	page, err := c.ListVenues(ctx, domain.ListOptions{Limit: 2, Page: 1, Sort: "created", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Fjord Cabin", page.Items[0].Name)
	assert.Equal(t, 3, page.Meta.TotalCount)
	assert.Equal(t, 2, page.Meta.PageCount)
	assert.True(t, page.Meta.IsFirstPage)
	assert.False(t, page.Meta.IsLastPage)
	require.NotNil(t, page.Meta.NextPage)
	assert.Equal(t, 2, *page.Meta.NextPage)

	page, err = c.ListVenues(ctx, domain.ListOptions{Limit: 2, Page: 2, Sort: "created", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.True(t, page.Meta.IsLastPage)

	found, err := c.SearchVenues(ctx, "BEACH", domain.ListOptions{})
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Beach House", found.Items[0].Name)
}

func TestSeedIsIdempotent(t *testing.T) {
	c, _, srv := newClient(t)
	require.NoError(t, srv.Seed())
	require.NoError(t, srv.Seed())
	page, err := c.ListVenues(context.Background(), domain.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
}

func TestAPIKeyRequired(t *testing.T) {
	srv := devapi.New(devapi.WithAPIKey("secret"))
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	_, err := api.NewHTTP(ts.URL, ts.Client()).ListVenues(context.Background(), domain.ListOptions{})
	assert.EqualError(t, err, "401: No API key header was found")

	_, err = api.NewHTTP(ts.URL, ts.Client(), api.WithAPIKey("secret")).ListVenues(context.Background(), domain.ListOptions{})
	assert.NoError(t, err)
}

func TestErrorEnvelopeShape(t *testing.T) {
	ts := httptest.NewServer(devapi.New().Handler())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/auth/login", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t,
		`{"errors":[{"message":"invalid JSON body"}],"status":"Bad Request","statusCode":400}`,
		string(body))
}

func TestToken_ExpiresAndIsBoundToSecret(t *testing.T) {
	var (
		mu  sync.Mutex
		now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	advance := func(d time.Duration) {
		mu.Lock()
		now = now.Add(d)
		mu.Unlock()
	}
	c, box, _ := newClient(t, devapi.WithClock(clock), devapi.WithSecret([]byte("s3cret")))
	signUp(t, c, box, "alice", false)

	_, err := c.GetProfile(context.Background(), "alice")
	require.NoError(t, err)

	advance(25 * time.Hour)
	_, err = c.GetProfile(context.Background(), "alice")
	assert.EqualError(t, err, "401: Invalid authorization token")

	advance(-25 * time.Hour)
	stale := box.tok
	other, otherBox, _ := newClient(t, devapi.WithClock(clock), devapi.WithSecret([]byte("different")))
	signUp(t, other, otherBox, "alice", false)
	otherBox.tok = stale
	_, err = other.GetProfile(context.Background(), "alice")
	assert.EqualError(t, err, "401: Invalid authorization token")
}
