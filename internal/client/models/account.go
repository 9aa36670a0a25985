// Package models defines the client-side views of the entities owned by the
// SkillMesh backend. The client holds transient, request-scoped copies; the
// remote store is authoritative.
package models

// Account is an authenticated identity issued by the auth gateway.
type Account struct {
	ID            string
	Email         string
	EmailVerified bool
}

// Session is the locally cached authentication state: the account snapshot
// and the token pair issued at sign-in. A zero Session means "not signed in".
type Session struct {
	Account      Account
	AccessToken  string
	RefreshToken string
}

// Authenticated reports whether the session carries an account identity.
// It says nothing about server-side token validity; that is checked lazily
// by the first gated remote call.
func (s Session) Authenticated() bool {
	return s.Account.ID != "" && s.AccessToken != ""
}
