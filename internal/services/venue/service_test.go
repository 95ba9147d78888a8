package venue_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holidaze/internal/api"
	"holidaze/internal/availability"
	"holidaze/internal/devapi"
	"holidaze/internal/domain"
	"holidaze/internal/report"
	"holidaze/internal/services/auth"
	"holidaze/internal/services/venue"
	"holidaze/internal/session"
	"holidaze/internal/store"
)

type harness struct {
	svc      *venue.Service
	auth     *auth.Service
	client   *api.HTTP
	srv      *httptest.Server
	reported []string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{}
	dev := devapi.New()
	require.NoError(t, dev.Seed())
	h.srv = httptest.NewServer(dev.Handler())
	t.Cleanup(h.srv.Close)

	creds := store.NewFileStore(t.TempDir(), "")
	h.client = api.NewHTTP(h.srv.URL, h.srv.Client(), api.WithTokenSource(creds))
	rep := report.Func(func(msg string) { h.reported = append(h.reported, msg) })
	sess := session.New(creds, h.client, rep, nil)
	memo := availability.NewMemo(availability.NewMemoryCache(16), nil)
	h.svc = venue.New(h.client, sess, memo, rep, nil, 2)
	h.auth = auth.New(h.client, creds, sess, rep, nil)
	return h
}

func (h *harness) signUp(t *testing.T, name string, manager bool) {
	t.Helper()
	_, err := h.auth.SignUp(context.Background(), domain.Registration{
		Name:         domain.ProfileName(name),
		Email:        name + "@stud.noroff.no",
		Password:     "password123",
		VenueManager: manager,
	})
	require.NoError(t, err)
}

var lodge = domain.VenueInput{
	Name:        "Lodge",
	Description: "Log lodge in the woods",
	Price:       300,
	MaxGuests:   6,
	Rating:      5,
	Meta:        domain.VenueMeta{Wifi: true},
}

func TestList_OldestFirstAndPaged(t *testing.T) {
	h := newHarness(t)

	page, err := h.svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Fjord Cabin", page.Items[0].Name)
	assert.Equal(t, "City Loft", page.Items[1].Name)
	assert.Equal(t, 2, page.Meta.PageCount)

	page, err = h.svc.List(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Beach House", page.Items[0].Name)
}

func TestSearch(t *testing.T) {
	h := newHarness(t)

	page, err := h.svc.Search(context.Background(), "loft", 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "City Loft", page.Items[0].Name)

	page, err = h.svc.Search(context.Background(), "  ", 1)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2, "blank query lists")
}

func TestList_FailureIsReported(t *testing.T) {
	h := newHarness(t)
	h.srv.Close()

	_, err := h.svc.List(context.Background(), 1)

	assert.EqualError(t, err, "Error fetching venues.")
	assert.Len(t, h.reported, 1)
}

func TestGet_DerivesBookedDates(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.signUp(t, "host", true)
	v, err := h.svc.Create(ctx, lodge)
	require.NoError(t, err)

	_, err = h.client.CreateBooking(ctx, domain.BookingRequest{
		DateFrom: "2024-06-01", DateTo: "2024-06-03", Guests: 1, VenueID: v.ID,
	})
	require.NoError(t, err)

	d, err := h.svc.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lodge", d.Venue.Name)
	assert.Equal(t, []availability.Day{
		availability.Date(2024, 6, 1),
		availability.Date(2024, 6, 2),
		availability.Date(2024, 6, 3),
	}, d.Booked.Sorted())
}

func TestGet_NotFound(t *testing.T) {
	h := newHarness(t)
	_, err := h.svc.Get(context.Background(), "missing")
	assert.True(t, api.IsNotFound(err))
	assert.Equal(t, []string{"404: No venue with such ID"}, h.reported)
}

func TestManagerCRUD(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.signUp(t, "host", true)

	v, err := h.svc.Create(ctx, lodge)
	require.NoError(t, err)

	upd := lodge
	upd.Name = "Big Lodge"
	v, err = h.svc.Update(ctx, v.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, "Big Lodge", v.Name)

	mine, err := h.svc.ManagerVenues(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, v.ID, mine[0].ID)

	bookings, err := h.svc.Bookings(ctx, v.ID)
	require.NoError(t, err)
	assert.Empty(t, bookings)

	require.NoError(t, h.svc.Delete(ctx, v.ID))
	mine, err = h.svc.ManagerVenues(ctx)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestManager_Guards(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	_, err := h.svc.Create(ctx, lodge)
	assert.ErrorIs(t, err, venue.ErrSignInRequired)

	h.signUp(t, "guest", false)
	_, err = h.svc.Create(ctx, lodge)
	assert.ErrorIs(t, err, venue.ErrNotManager)
}

func TestManager_NotOwner(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.signUp(t, "host", true)

	page, err := h.svc.List(ctx, 1)
	require.NoError(t, err)
	seeded := page.Items[0].ID

	assert.ErrorIs(t, h.svc.Delete(ctx, seeded), venue.ErrNotOwner)
}

func TestCreate_Validation(t *testing.T) {
	h := newHarness(t)
	h.signUp(t, "host", true)

	_, err := h.svc.Create(context.Background(), domain.VenueInput{Price: -1, Rating: 9})

	var verrs venue.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 5)
	assert.Equal(t, "Max guests must be between 1 and 100.", verrs["maxGuests"])
	assert.Empty(t, h.reported)
}

func TestValidate_MediaNeedsURL(t *testing.T) {
	in := lodge
	in.Media = []domain.Media{{URL: "https://img/lodge.jpg"}, {Alt: "no url"}}

	assert.Equal(t, venue.ValidationErrors{"media": "Every image needs a URL."}, venue.Validate(in))
	assert.Nil(t, venue.Validate(lodge))
}
