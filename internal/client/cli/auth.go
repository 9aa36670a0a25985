package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ashish-aa/skillmesh/internal/client/models"
	"github.com/ashish-aa/skillmesh/internal/client/navigation"
	"github.com/ashish-aa/skillmesh/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) readCredentials() (string, string, error) {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return "", "", err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return "", "", err
	}
	return email, password, nil
}

// storeSession caches the session locally so the next launch can restore
// it without signing in again.
func (a *App) storeSession(ctx context.Context, sess models.Session) {
	a.session = sess
	if err := a.sessions.Save(ctx, sess); err != nil {
		a.log.Warn(ctx, "failed to cache session", "error", err)
	}
}

// SignUp prompts for credentials and creates a new account. A new account
// always proceeds to email verification.
func (a *App) SignUp(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}

	a.auth.Draft = services.AuthDraft{Email: email, Password: password}

	reqCtx, cancel := a.requestCtx(ctx)
	defer cancel()
	a.auth.SubmitSignUp(reqCtx)

	res := a.auth.Result()
	if res.State != services.StateSuccess {
		fmt.Println(res.Message)
		return nil
	}

	a.storeSession(ctx, a.auth.Session())
	a.navigate(navigation.AfterSignUp())
	fmt.Println("Account created. Check your inbox for a verification email.")
	return nil
}

// SignIn prompts for credentials, authenticates, and routes by profile
// state. If the profile lookup fails the user stays where they are and can
// retry by signing in again.
func (a *App) SignIn(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}

	a.auth.Draft = services.AuthDraft{Email: email, Password: password}

	reqCtx, cancel := a.requestCtx(ctx)
	defer cancel()
	a.auth.SubmitSignIn(reqCtx)

	res := a.auth.Result()
	if res.State != services.StateSuccess {
		fmt.Println(res.Message)
		return nil
	}

	sess := a.auth.Session()
	a.storeSession(ctx, sess)

	routeCtx, cancelRoute := a.requestCtx(ctx)
	defer cancelRoute()
	dest, err := a.router.AfterSignIn(routeCtx, sess.Account, true)
	if err != nil {
		fmt.Println("Signed in, but the profile check failed. Try signing in again.")
		return nil
	}
	a.navigate(dest)
	return nil
}

// ResendVerification sends another verification email.
func (a *App) ResendVerification(ctx context.Context) error {
	reqCtx, cancel := a.requestCtx(ctx)
	defer cancel()

	if err := a.auth.ResendVerification(reqCtx); err != nil {
		fmt.Println("Could not send the verification email. Try again.")
		return nil
	}
	fmt.Println("Verification email sent.")
	return nil
}

// CheckVerification re-checks the verification flag and moves on to the
// profile form once verified. The check is manual; nothing polls for it.
func (a *App) CheckVerification(ctx context.Context) error {
	reqCtx, cancel := a.requestCtx(ctx)
	defer cancel()

	verified, err := a.auth.RefreshVerification(reqCtx)
	if err != nil {
		fmt.Println("Could not check verification status. Try again.")
		return nil
	}
	if !verified {
		fmt.Println("Email not verified yet.")
		return nil
	}

	a.session.Account.EmailVerified = true
	a.storeSession(ctx, a.session)
	a.navigate(navigation.AfterVerification())
	fmt.Println("Email verified.")
	return nil
}

// WhoAmI prints the signed-in identity.
func (a *App) WhoAmI(ctx context.Context) error {
	fmt.Printf("%s (verified: %t)\n", a.session.Account.Email, a.session.Account.EmailVerified)
	return nil
}

// Logout clears the cached session and returns to the welcome screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return err
	}
	a.session = models.Session{}
	a.gateway.SetTokens("", "")
	a.navigate(navigation.Welcome)
	return nil
}
