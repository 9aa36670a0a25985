package services

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"time"

	"github.com/ashish-aa/skillmesh/internal/client/models"
	"github.com/ashish-aa/skillmesh/internal/logging"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

// fakeGateway counts calls and returns whatever is configured, optionally
// blocking on release to let tests hold a submit in flight.
type fakeGateway struct {
	mu sync.Mutex

	signUpCalls     int
	signInCalls     int
	putProfileCalls int
	categoriesCalls int
	addOfferCalls   int

	session models.Session
	err     error

	lastProfile    models.Profile
	lastCategories []string
	lastOffer      models.SkillOffer
	offerID        string
	offers         []models.SkillOffer

	release chan struct{} // if non-nil, writes block until closed
}

func (f *fakeGateway) wait() {
	if f.release != nil {
		<-f.release
	}
}

func (f *fakeGateway) Close() error { return nil }

func (f *fakeGateway) SignUp(ctx context.Context, email, password string) (models.Session, error) {
	f.mu.Lock()
	f.signUpCalls++
	f.mu.Unlock()
	f.wait()
	return f.session, f.err
}

func (f *fakeGateway) SignIn(ctx context.Context, email, password string) (models.Session, error) {
	f.mu.Lock()
	f.signInCalls++
	f.mu.Unlock()
	f.wait()
	return f.session, f.err
}

func (f *fakeGateway) SendVerificationEmail(ctx context.Context) error { return f.err }

func (f *fakeGateway) RefreshVerificationStatus(ctx context.Context) (bool, error) {
	return true, f.err
}

func (f *fakeGateway) GetProfile(ctx context.Context, accountID string) (models.Profile, bool, error) {
	return f.lastProfile, true, f.err
}

func (f *fakeGateway) PutProfile(ctx context.Context, accountID string, profile models.Profile) error {
	f.mu.Lock()
	f.putProfileCalls++
	f.lastProfile = profile
	f.mu.Unlock()
	f.wait()
	return f.err
}

func (f *fakeGateway) UpdateCategories(ctx context.Context, accountID string, categories []string) error {
	f.mu.Lock()
	f.categoriesCalls++
	f.lastCategories = categories
	f.mu.Unlock()
	f.wait()
	return f.err
}

func (f *fakeGateway) AddSkillOffer(ctx context.Context, accountID string, offer models.SkillOffer) (string, error) {
	f.mu.Lock()
	f.addOfferCalls++
	f.lastOffer = offer
	f.mu.Unlock()
	f.wait()
	return f.offerID, f.err
}

func (f *fakeGateway) ListSkillOffers(ctx context.Context, accountID string) ([]models.SkillOffer, error) {
	return f.offers, f.err
}

func (f *fakeGateway) ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error) {
	return "Berlin, Germany", f.err
}

func (f *fakeGateway) Ping(ctx context.Context) error { return f.err }

func (f *fakeGateway) SetTokens(accessToken, refreshToken string) {}

// fakeUploader returns a fixed URL or error.
type fakeUploader struct {
	url   string
	err   error
	calls int
}

func (f *fakeUploader) UploadImage(ctx context.Context, accountID string, localPath string) (string, error) {
	f.calls++
	return f.url, f.err
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
