package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ashish-aa/skillmesh/internal/client/config"
	"github.com/ashish-aa/skillmesh/internal/client/models"
	"github.com/ashish-aa/skillmesh/internal/client/navigation"
	"github.com/ashish-aa/skillmesh/internal/client/services"
	"github.com/ashish-aa/skillmesh/internal/logging"
)

// fakeGateway is a scriptable api.Gateway for command tests.
type fakeGateway struct {
	session    models.Session
	authErr    error
	verified   bool
	verifyErr  error
	profile    models.Profile
	exists     bool
	profileErr error
	offers     []models.SkillOffer
	offerID    string
	storeErr   error
	pingErr    error

	tokensCleared bool
}

func (f *fakeGateway) Close() error { return nil }

func (f *fakeGateway) SignUp(ctx context.Context, email, password string) (models.Session, error) {
	return f.session, f.authErr
}

func (f *fakeGateway) SignIn(ctx context.Context, email, password string) (models.Session, error) {
	return f.session, f.authErr
}

func (f *fakeGateway) SendVerificationEmail(ctx context.Context) error { return f.verifyErr }

func (f *fakeGateway) RefreshVerificationStatus(ctx context.Context) (bool, error) {
	return f.verified, f.verifyErr
}

func (f *fakeGateway) GetProfile(ctx context.Context, accountID string) (models.Profile, bool, error) {
	return f.profile, f.exists, f.profileErr
}

func (f *fakeGateway) PutProfile(ctx context.Context, accountID string, profile models.Profile) error {
	f.profile, f.exists = profile, true
	return f.storeErr
}

func (f *fakeGateway) UpdateCategories(ctx context.Context, accountID string, categories []string) error {
	f.profile.Categories = categories
	return f.storeErr
}

func (f *fakeGateway) AddSkillOffer(ctx context.Context, accountID string, offer models.SkillOffer) (string, error) {
	if f.storeErr != nil {
		return "", f.storeErr
	}
	f.offers = append(f.offers, offer)
	return f.offerID, nil
}

func (f *fakeGateway) ListSkillOffers(ctx context.Context, accountID string) ([]models.SkillOffer, error) {
	return f.offers, f.storeErr
}

func (f *fakeGateway) ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error) {
	return "", f.storeErr
}

func (f *fakeGateway) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeGateway) SetTokens(accessToken, refreshToken string) {
	if accessToken == "" && refreshToken == "" {
		f.tokensCleared = true
	}
}

// memStore is an in-memory session.Store.
type memStore struct {
	session models.Session
	saved   bool
	cleared bool
}

func (m *memStore) Load(ctx context.Context) (models.Session, error) { return m.session, nil }

func (m *memStore) Save(ctx context.Context, s models.Session) error {
	m.session, m.saved = s, true
	return nil
}

func (m *memStore) Clear(ctx context.Context) error {
	m.session, m.cleared = models.Session{}, true
	return nil
}

func quietLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newTestApp assembles an App over fakes, skipping NewApp's database and
// network wiring.
func newTestApp(gw *fakeGateway, store *memStore) *App {
	log := quietLogger()
	a := &App{
		config:   &config.Config{RequestTimeout: time.Second},
		gateway:  gw,
		sessions: store,
		auth:     services.NewAuthService(gw, log),
		profile:  services.NewProfileService(gw, nopUploader{}, log),
		offers:   services.NewOfferService(gw, log),
		log:      log,
		reader:   bufio.NewReader(rdr("")),
	}
	a.router = navigation.NewRouter(gw, a, log)
	a.destination = navigation.Welcome
	return a
}

type nopUploader struct{}

func (nopUploader) UploadImage(ctx context.Context, accountID, localPath string) (string, error) {
	return "", nil
}

func stubInputs(t *testing.T, text, password string) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return text, nil }
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}
