// Package session persists the locally cached session (account snapshot and
// token pair) between program runs. The cache only answers "does a local
// session exist"; token validity against the server is checked lazily by
// the first gated remote call.
package session

import (
	"context"

	"github.com/ashish-aa/skillmesh/internal/client/models"
)

// Store reads and writes the cached session.
//
// Load returns a zero Session (and nil error) when nothing is cached.
type Store interface {
	Load(ctx context.Context) (models.Session, error)
	Save(ctx context.Context, s models.Session) error
	Clear(ctx context.Context) error
}
