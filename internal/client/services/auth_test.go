package services

import (
	"context"
	"sync"
	"testing"

	"github.com/ashish-aa/skillmesh/internal/client/models"
	"github.com/ashish-aa/skillmesh/internal/common"
	"github.com/stretchr/testify/require"
)

func TestSubmitSignUp_Validation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		message  string
	}{
		{"blank email", "", "validpass123", "email is required"},
		{"short password", "a@b.com", "12345", "password must be at least 6 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{}
			s := NewAuthService(gw, testLogger())
			s.Draft = AuthDraft{Email: tt.email, Password: tt.password}

			s.SubmitSignUp(context.Background())

			require.Equal(t, StateError, s.Result().State)
			require.Equal(t, tt.message, s.Result().Message)
			require.Zero(t, gw.signUpCalls)
			require.False(t, s.Submitting())
		})
	}
}

func TestSubmitSignUp_Success(t *testing.T) {
	gw := &fakeGateway{session: models.Session{
		Account:     models.Account{ID: "acc-1", Email: "a@b.com"},
		AccessToken: "tok",
	}}
	s := NewAuthService(gw, testLogger())
	s.Draft = AuthDraft{Email: "a@b.com", Password: "validpass123"}

	s.SubmitSignUp(context.Background())

	require.Equal(t, StateSuccess, s.Result().State)
	require.Equal(t, 1, gw.signUpCalls)
	require.Equal(t, "acc-1", s.Session().Account.ID)
	require.False(t, s.Submitting())
}

func TestSubmitSignUp_EmailTaken(t *testing.T) {
	gw := &fakeGateway{err: common.ErrEmailTaken}
	s := NewAuthService(gw, testLogger())
	s.Draft = AuthDraft{Email: "a@b.com", Password: "validpass123"}

	s.SubmitSignUp(context.Background())

	require.Equal(t, StateError, s.Result().State)
	require.Equal(t, "an account with this email already exists", s.Result().Message)
	// draft is kept for correction
	require.Equal(t, "a@b.com", s.Draft.Email)
}

func TestSubmitSignIn_Validation(t *testing.T) {
	gw := &fakeGateway{}
	s := NewAuthService(gw, testLogger())
	s.Draft = AuthDraft{Email: "a@b.com", Password: ""}

	s.SubmitSignIn(context.Background())

	require.Equal(t, StateError, s.Result().State)
	require.Equal(t, "password is required", s.Result().Message)
	require.Zero(t, gw.signInCalls)
}

func TestSubmitSignIn_InvalidCredentials(t *testing.T) {
	gw := &fakeGateway{err: common.ErrInvalidCredentials}
	s := NewAuthService(gw, testLogger())
	s.Draft = AuthDraft{Email: "a@b.com", Password: "wrongpass"}

	s.SubmitSignIn(context.Background())

	require.Equal(t, StateError, s.Result().State)
	require.Equal(t, "invalid email or password", s.Result().Message)
}

func TestSubmitSignIn_SingleFlight(t *testing.T) {
	gw := &fakeGateway{release: make(chan struct{})}
	s := NewAuthService(gw, testLogger())
	s.Draft = AuthDraft{Email: "a@b.com", Password: "validpass123"}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.SubmitSignIn(context.Background())
	}()

	// wait until the first submit holds the slot, then double-tap
	require.Eventually(t, s.Submitting, waitFor, tick)
	s.SubmitSignIn(context.Background())

	close(gw.release)
	wg.Wait()

	require.Equal(t, 1, gw.signInCalls)
	require.Equal(t, StateSuccess, s.Result().State)
}
