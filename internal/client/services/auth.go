package services

import (
	"context"
	"strings"

	"github.com/ashish-aa/skillmesh/internal/client/api"
	"github.com/ashish-aa/skillmesh/internal/client/models"
	"github.com/ashish-aa/skillmesh/internal/logging"
)

// MinPasswordLength applies to sign-up only; sign-in accepts whatever was
// registered before the rule existed.
const MinPasswordLength = 6

// AuthDraft is the credential pair under edit on the welcome screen.
type AuthDraft struct {
	Email    string
	Password string
}

// AuthService backs the sign-up and sign-in forms. A successful submit
// leaves the obtained session in Session.
type AuthService struct {
	form

	gw  api.Gateway
	log logging.Logger

	Draft AuthDraft

	session models.Session
}

// NewAuthService constructs an AuthService bound to the given gateway.
func NewAuthService(gw api.Gateway, log logging.Logger) *AuthService {
	return &AuthService{gw: gw, log: log}
}

// Session returns the session obtained by the last successful submit.
func (s *AuthService) Session() models.Session {
	return s.session
}

// SubmitSignUp registers a new account with the drafted credentials.
func (s *AuthService) SubmitSignUp(ctx context.Context) {
	email := strings.TrimSpace(s.Draft.Email)
	if email == "" {
		s.reject("email is required")
		return
	}
	if len(s.Draft.Password) < MinPasswordLength {
		s.reject("password must be at least 6 characters")
		return
	}

	if !s.begin() {
		return
	}

	sess, err := s.gw.SignUp(ctx, email, s.Draft.Password)
	if err != nil {
		s.log.Warn(ctx, "sign-up failed", "error", err)
		s.finish(Result{State: StateError, Message: errorMessage(err)})
		return
	}

	s.session = sess
	s.finish(Result{State: StateSuccess})
}

// SubmitSignIn authenticates with the drafted credentials.
func (s *AuthService) SubmitSignIn(ctx context.Context) {
	email := strings.TrimSpace(s.Draft.Email)
	if email == "" {
		s.reject("email is required")
		return
	}
	if s.Draft.Password == "" {
		s.reject("password is required")
		return
	}

	if !s.begin() {
		return
	}

	sess, err := s.gw.SignIn(ctx, email, s.Draft.Password)
	if err != nil {
		s.log.Warn(ctx, "sign-in failed", "error", err)
		s.finish(Result{State: StateError, Message: errorMessage(err)})
		return
	}

	s.session = sess
	s.finish(Result{State: StateSuccess})
}

// ResendVerification asks the backend to send another verification email
// for the signed-in account.
func (s *AuthService) ResendVerification(ctx context.Context) error {
	return s.gw.SendVerificationEmail(ctx)
}

// RefreshVerification re-checks the verification flag with the backend.
// Verification is user-triggered; nothing polls for it.
func (s *AuthService) RefreshVerification(ctx context.Context) (bool, error) {
	verified, err := s.gw.RefreshVerificationStatus(ctx)
	if err != nil {
		return false, err
	}
	if verified {
		s.session.Account.EmailVerified = true
	}
	return verified, nil
}
