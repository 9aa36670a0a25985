// Package api is the client's access layer to the managed SkillMesh
// backend: authentication, the profile and skill-offer stores, reverse
// geocoding, and a liveness probe. Form services depend on the Gateway
// interface; the gRPC implementation lives in grpc.go.
package api

import (
	"context"

	"github.com/ashish-aa/skillmesh/internal/client/models"
)

// Gateway is the remote backend as seen by the client.
//
// All methods honor context cancellation and deadlines. Errors are mapped
// to the sentinels in errors.go / internal/common so callers can match
// with errors.Is.
type Gateway interface {
	Close() error

	// Auth gateway.
	SignUp(ctx context.Context, email, password string) (models.Session, error)
	SignIn(ctx context.Context, email, password string) (models.Session, error)
	SendVerificationEmail(ctx context.Context) error
	RefreshVerificationStatus(ctx context.Context) (bool, error)

	// Profile store.
	GetProfile(ctx context.Context, accountID string) (models.Profile, bool, error)
	PutProfile(ctx context.Context, accountID string, profile models.Profile) error
	UpdateCategories(ctx context.Context, accountID string, categories []string) error

	// Skill-offer store.
	AddSkillOffer(ctx context.Context, accountID string, offer models.SkillOffer) (string, error)
	ListSkillOffers(ctx context.Context, accountID string) ([]models.SkillOffer, error)

	// ReverseGeocode resolves coordinates to a free-text address.
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error)

	Ping(ctx context.Context) error

	// SetTokens installs a previously cached token pair, e.g. when the app
	// restores a session at launch.
	SetTokens(accessToken, refreshToken string)
}
