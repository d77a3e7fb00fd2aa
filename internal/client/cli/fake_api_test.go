package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/jobtechradar/radar/internal/client/models"
)

// fakeAPI implements client.Client for handler tests.
type fakeAPI struct {
	registerErr error
	registered  models.User

	loginToken string
	loginErr   error
	loginUser  string
	loginPass  string

	currentUser models.User
	currentErr  error

	searchFilters []models.OfferFilters
	searchPage    []models.Offer
	searchErr     error

	stats    []models.TechWithStats
	statsErr error

	trends      []models.TechTrend
	trendsLimit int
	trendsErr   error

	syncCalls int
	syncErr   error
}

func (f *fakeAPI) Register(_ context.Context, email, username, password string) (models.User, error) {
	if f.registerErr != nil {
		return models.User{}, f.registerErr
	}
	f.registered = models.User{Email: email, Username: username}
	return f.registered, nil
}

func (f *fakeAPI) Login(_ context.Context, username, password string) (string, error) {
	f.loginUser, f.loginPass = username, password
	return f.loginToken, f.loginErr
}

func (f *fakeAPI) CurrentUser(_ context.Context, token string) (models.User, error) {
	return f.currentUser, f.currentErr
}

func (f *fakeAPI) SearchOffers(_ context.Context, filters models.OfferFilters) ([]models.Offer, error) {
	f.searchFilters = append(f.searchFilters, filters)
	return f.searchPage, f.searchErr
}

func (f *fakeAPI) TechStats(context.Context) ([]models.TechWithStats, error) {
	return f.stats, f.statsErr
}

func (f *fakeAPI) TechTrends(_ context.Context, limit int) ([]models.TechTrend, error) {
	f.trendsLimit = limit
	return f.trends, f.trendsErr
}

func (f *fakeAPI) SyncAllOffers(context.Context) error {
	f.syncCalls++
	return f.syncErr
}

func stubInputs(t *testing.T, text string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return text, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}
