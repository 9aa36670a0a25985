package navigation

import (
	"context"
	"errors"
	"fmt"

	"github.com/ashish-aa/skillmesh/internal/client/models"
	"github.com/ashish-aa/skillmesh/internal/logging"
)

// ErrProfileCheck reports that the remote profile lookup behind a routing
// decision failed. The caller must stay on the current screen; retry is an
// explicit user action.
var ErrProfileCheck = errors.New("failed to check profile")

// profileReader is the slice of the backend gateway the router needs.
type profileReader interface {
	GetProfile(ctx context.Context, accountID string) (models.Profile, bool, error)
}

// Notifier shows a short user-visible notice.
type Notifier interface {
	Notify(msg string)
}

// Router turns session and profile state into destinations. It is a thin
// orchestration over the pure gate in gate.go: fetch fresh profile state,
// decide, surface the notice.
type Router struct {
	profiles profileReader
	notifier Notifier
	log      logging.Logger
}

func NewRouter(profiles profileReader, notifier Notifier, log logging.Logger) *Router {
	return &Router{profiles: profiles, notifier: notifier, log: log}
}

// InitialDestination picks the start screen at launch. It is a pure
// function of whether a cached session exists; the token is not validated
// against the server here (that happens lazily on the first gated call).
func InitialDestination(s models.Session) Destination {
	if s.Authenticated() {
		return MainArea
	}
	return Welcome
}

// AfterSignUp routes unconditionally to the email-verification step.
func AfterSignUp() Destination {
	return VerifyEmail
}

// AfterVerification routes to the profile form once the email is verified.
func AfterVerification() Destination {
	return ProfileForm
}

// AfterSignIn fetches fresh profile state for the account and applies the
// completion gate. firstLogin marks an interactive sign-in as opposed to a
// restored session.
//
// When the lookup fails the user must not be navigated anywhere: the error
// wraps ErrProfileCheck and the caller leaves the user on the current
// screen.
func (r *Router) AfterSignIn(ctx context.Context, account models.Account, firstLogin bool) (Destination, error) {
	profile, exists, err := r.profiles.GetProfile(ctx, account.ID)
	if err != nil {
		r.log.Error(ctx, "profile lookup failed", "account", account.ID, "error", err)
		return "", fmt.Errorf("%w: %w", ErrProfileCheck, err)
	}

	decision := Decide(GateInput{
		ProfileExists:    exists,
		ProfileCompleted: profile.Completed,
		HasCategories:    profile.HasCategories(),
		FirstLogin:       firstLogin,
	})

	if decision.Notice != "" && r.notifier != nil {
		r.notifier.Notify(decision.Notice)
	}

	r.log.Debug(ctx, "routed after sign-in",
		"account", account.ID,
		"destination", string(decision.Destination))

	return decision.Destination, nil
}
