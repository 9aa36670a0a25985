package navigation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/ashish-aa/skillmesh/internal/client/models"
	"github.com/ashish-aa/skillmesh/internal/logging"
	"github.com/stretchr/testify/require"
)

type fakeProfiles struct {
	profile models.Profile
	exists  bool
	err     error

	lastAccountID string
	calls         int
}

func (f *fakeProfiles) GetProfile(ctx context.Context, accountID string) (models.Profile, bool, error) {
	f.calls++
	f.lastAccountID = accountID
	return f.profile, f.exists, f.err
}

type recordingNotifier struct {
	notices []string
}

func (n *recordingNotifier) Notify(msg string) { n.notices = append(n.notices, msg) }

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestInitialDestination(t *testing.T) {
	require.Equal(t, Welcome, InitialDestination(models.Session{}))

	authed := models.Session{
		Account:     models.Account{ID: "acc-1", Email: "a@b.com"},
		AccessToken: "tok",
	}
	require.Equal(t, MainArea, InitialDestination(authed))
}

func TestAfterSignUp_AlwaysVerifyEmail(t *testing.T) {
	require.Equal(t, VerifyEmail, AfterSignUp())
}

func TestAfterVerification_ProfileForm(t *testing.T) {
	require.Equal(t, ProfileForm, AfterVerification())
}

func TestAfterSignIn_NoProfile(t *testing.T) {
	fp := &fakeProfiles{exists: false}
	n := &recordingNotifier{}
	r := NewRouter(fp, n, discardLogger())

	dest, err := r.AfterSignIn(context.Background(), models.Account{ID: "acc-1"}, true)
	require.NoError(t, err)
	require.Equal(t, ProfileForm, dest)
	require.Equal(t, "acc-1", fp.lastAccountID)
	require.Empty(t, n.notices)
}

func TestAfterSignIn_IncompleteProfile_Notifies(t *testing.T) {
	fp := &fakeProfiles{exists: true, profile: models.Profile{Completed: false}}
	n := &recordingNotifier{}
	r := NewRouter(fp, n, discardLogger())

	dest, err := r.AfterSignIn(context.Background(), models.Account{ID: "acc-1"}, true)
	require.NoError(t, err)
	require.Equal(t, ProfileForm, dest)
	require.Equal(t, []string{NoticeCompleteProfile}, n.notices)
}

func TestAfterSignIn_CompletedNoCategories(t *testing.T) {
	fp := &fakeProfiles{exists: true, profile: models.Profile{Completed: true}}
	r := NewRouter(fp, &recordingNotifier{}, discardLogger())

	dest, err := r.AfterSignIn(context.Background(), models.Account{ID: "acc-1"}, true)
	require.NoError(t, err)
	require.Equal(t, CategorySelection, dest)
}

func TestAfterSignIn_OnboardedFirstLogin(t *testing.T) {
	fp := &fakeProfiles{exists: true, profile: models.Profile{Completed: true, Categories: []string{"Music"}}}
	r := NewRouter(fp, &recordingNotifier{}, discardLogger())

	dest, err := r.AfterSignIn(context.Background(), models.Account{ID: "acc-1"}, true)
	require.NoError(t, err)
	require.Equal(t, SkillOffer, dest)
}

func TestAfterSignIn_OnboardedRestoredSession(t *testing.T) {
	fp := &fakeProfiles{exists: true, profile: models.Profile{Completed: true, Categories: []string{"Music"}}}
	r := NewRouter(fp, &recordingNotifier{}, discardLogger())

	dest, err := r.AfterSignIn(context.Background(), models.Account{ID: "acc-1"}, false)
	require.NoError(t, err)
	require.Equal(t, MainArea, dest)
}

func TestAfterSignIn_LookupFails_NoNavigation(t *testing.T) {
	fp := &fakeProfiles{err: errors.New("connection refused")}
	n := &recordingNotifier{}
	r := NewRouter(fp, n, discardLogger())

	dest, err := r.AfterSignIn(context.Background(), models.Account{ID: "acc-1"}, true)
	require.ErrorIs(t, err, ErrProfileCheck)
	require.Empty(t, dest)
	require.Empty(t, n.notices)

	// retry is manual: a second explicit call hits the store again
	fp.err = nil
	fp.exists = false
	dest, err = r.AfterSignIn(context.Background(), models.Account{ID: "acc-1"}, true)
	require.NoError(t, err)
	require.Equal(t, ProfileForm, dest)
	require.Equal(t, 2, fp.calls)
}
