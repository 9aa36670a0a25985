package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/ashish-aa/skillmesh/internal/client/models"
	"github.com/ashish-aa/skillmesh/internal/client/navigation"
	"github.com/stretchr/testify/require"
)

func authedSession() models.Session {
	return models.Session{
		Account:      models.Account{ID: "acc-1", Email: "alice@example.org"},
		AccessToken:  "tok",
		RefreshToken: "refresh",
	}
}

func TestSignUp_RoutesToVerifyEmail(t *testing.T) {
	gw := &fakeGateway{session: authedSession()}
	store := &memStore{}
	a := newTestApp(gw, store)

	restore := stubInputs(t, "alice@example.org", "validpass123")
	defer restore()

	require.NoError(t, a.SignUp(context.Background()))
	require.Equal(t, navigation.VerifyEmail, a.destination)
	require.True(t, store.saved)
	require.Equal(t, "acc-1", store.session.Account.ID)
}

func TestSignUp_ValidationFailure_StaysOnWelcome(t *testing.T) {
	gw := &fakeGateway{}
	a := newTestApp(gw, &memStore{})

	restore := stubInputs(t, "alice@example.org", "123")
	defer restore()

	require.NoError(t, a.SignUp(context.Background()))
	require.Equal(t, navigation.Welcome, a.destination)
}

func TestSignIn_NoProfile_RoutesToProfileForm(t *testing.T) {
	gw := &fakeGateway{session: authedSession(), exists: false}
	a := newTestApp(gw, &memStore{})

	restore := stubInputs(t, "alice@example.org", "validpass123")
	defer restore()

	require.NoError(t, a.SignIn(context.Background()))
	require.Equal(t, navigation.ProfileForm, a.destination)
}

func TestSignIn_Onboarded_RoutesToSkillOffer(t *testing.T) {
	gw := &fakeGateway{
		session: authedSession(),
		exists:  true,
		profile: models.Profile{Completed: true, Categories: []string{"Music"}},
	}
	a := newTestApp(gw, &memStore{})

	restore := stubInputs(t, "alice@example.org", "validpass123")
	defer restore()

	require.NoError(t, a.SignIn(context.Background()))
	require.Equal(t, navigation.SkillOffer, a.destination)
}

func TestSignIn_ProfileCheckFails_NoNavigation(t *testing.T) {
	gw := &fakeGateway{session: authedSession(), profileErr: errors.New("network down")}
	a := newTestApp(gw, &memStore{})

	restore := stubInputs(t, "alice@example.org", "validpass123")
	defer restore()

	require.NoError(t, a.SignIn(context.Background()))
	require.Equal(t, navigation.Welcome, a.destination)
}

func TestCheckVerification_MovesToProfileForm(t *testing.T) {
	gw := &fakeGateway{verified: true}
	store := &memStore{}
	a := newTestApp(gw, store)
	a.session = authedSession()
	a.destination = navigation.VerifyEmail

	require.NoError(t, a.CheckVerification(context.Background()))
	require.Equal(t, navigation.ProfileForm, a.destination)
	require.True(t, a.session.Account.EmailVerified)
	require.True(t, store.session.Account.EmailVerified)
}

func TestCheckVerification_NotYetVerified(t *testing.T) {
	gw := &fakeGateway{verified: false}
	a := newTestApp(gw, &memStore{})
	a.destination = navigation.VerifyEmail

	require.NoError(t, a.CheckVerification(context.Background()))
	require.Equal(t, navigation.VerifyEmail, a.destination)
}

func TestLogout(t *testing.T) {
	gw := &fakeGateway{}
	store := &memStore{session: authedSession()}
	a := newTestApp(gw, store)
	a.session = authedSession()
	a.destination = navigation.MainArea

	require.NoError(t, a.Logout(context.Background()))
	require.True(t, store.cleared)
	require.True(t, gw.tokensCleared)
	require.False(t, a.session.Authenticated())
	require.Equal(t, navigation.Welcome, a.destination)
}
