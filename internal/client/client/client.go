// Package client talks to the JobTech Radar REST API and owns the local
// database used for the persisted session token.
package client

import (
	"context"

	"github.com/jobtechradar/radar/internal/client/models"
)

// Client is the surface of the remote API as the application sees it.
type Client interface {
	Register(ctx context.Context, email, username, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	CurrentUser(ctx context.Context, token string) (models.User, error)
	SearchOffers(ctx context.Context, filters models.OfferFilters) ([]models.Offer, error)
	TechStats(ctx context.Context) ([]models.TechWithStats, error)
	TechTrends(ctx context.Context, limit int) ([]models.TechTrend, error)
	SyncAllOffers(ctx context.Context) error
}
