package services

import (
	"context"
	"sync"

	"github.com/jobtechradar/radar/internal/client/models"
)

// fakeClient implements client.Client for the service tests.
type fakeClient struct {
	mu sync.Mutex

	registerUser models.User
	registerErr  error
	lastRegister [3]string // email, username, password

	loginToken string
	loginErr   error
	lastLogin  [2]string // username, password
	loginCalls int

	currentUser    models.User
	currentUserErr error
	lastToken      string

	// searchFn, when set, fully controls SearchOffers (used for the
	// stale-response test). Otherwise pages are served in order and the
	// last one repeats.
	searchFn    func(ctx context.Context, f models.OfferFilters) ([]models.Offer, error)
	searchPages [][]models.Offer
	searchErr   error
	searchCalls []models.OfferFilters

	stats      []models.TechWithStats
	statsErr   error
	statsCalls int

	trends      []models.TechTrend
	trendsErr   error
	trendsCalls int

	syncErr   error
	syncCalls int
}

func (f *fakeClient) Register(_ context.Context, email, username, password string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastRegister = [3]string{email, username, password}
	return f.registerUser, f.registerErr
}

func (f *fakeClient) Login(_ context.Context, username, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastLogin = [2]string{username, password}
	f.loginCalls++
	return f.loginToken, f.loginErr
}

func (f *fakeClient) CurrentUser(_ context.Context, token string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastToken = token
	return f.currentUser, f.currentUserErr
}

func (f *fakeClient) SearchOffers(ctx context.Context, filters models.OfferFilters) ([]models.Offer, error) {
	if f.searchFn != nil {
		return f.searchFn(ctx, filters)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls = append(f.searchCalls, filters)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if len(f.searchPages) == 0 {
		return nil, nil
	}
	page := f.searchPages[0]
	if len(f.searchPages) > 1 {
		f.searchPages = f.searchPages[1:]
	}
	return page, nil
}

func (f *fakeClient) TechStats(context.Context) ([]models.TechWithStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statsCalls++
	return f.stats, f.statsErr
}

func (f *fakeClient) TechTrends(context.Context, int) ([]models.TechTrend, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trendsCalls++
	return f.trends, f.trendsErr
}

func (f *fakeClient) SyncAllOffers(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.syncCalls++
	return f.syncErr
}

// offersOfSize builds a page of n distinct offers starting at first ID.
func offersOfSize(n, firstID int) []models.Offer {
	page := make([]models.Offer, n)
	for i := range page {
		page[i] = models.Offer{ID: firstID + i, Title: "Offre", Company: "ACME"}
	}
	return page
}
