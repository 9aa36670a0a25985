package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ashish-aa/skillmesh/internal/client/api"
	"github.com/ashish-aa/skillmesh/internal/client/blob"
	"github.com/ashish-aa/skillmesh/internal/client/config"
	"github.com/ashish-aa/skillmesh/internal/client/location"
	"github.com/ashish-aa/skillmesh/internal/client/models"
	"github.com/ashish-aa/skillmesh/internal/client/navigation"
	"github.com/ashish-aa/skillmesh/internal/client/services"
	"github.com/ashish-aa/skillmesh/internal/client/session"
	"github.com/ashish-aa/skillmesh/internal/filex"
	"github.com/ashish-aa/skillmesh/internal/logging"

	_ "modernc.org/sqlite"
)

// Mode is the client's view of backend reachability, updated by the
// online-status watcher.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// App is the interactive SkillMesh client. It owns the gateway, the local
// session cache, the form services, and the current navigation state.
type App struct {
	config   *config.Config
	gateway  api.Gateway
	db       *sql.DB
	sessions session.Store
	router   *navigation.Router

	auth    *services.AuthService
	profile *services.ProfileService
	offers  *services.OfferService

	locations location.Provider

	session     models.Session
	destination navigation.Destination

	Mode   Mode
	log    logging.Logger
	reader *bufio.Reader
}

// NewApp wires the client together: opens the local session cache, dials
// the backend, and restores any cached session into the gateway.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	dataDir, err := filex.EnsureSubDir(c.DataDir)
	if err != nil {
		return nil, err
	}

	db, err := session.Open(ctx, filepath.Join(dataDir, "skillmesh.db"))
	if err != nil {
		return nil, err
	}

	gateway, err := api.NewGRPCGateway(c.ServerEndpointAddr)
	if err != nil {
		db.Close()
		return nil, err
	}

	uploader := blob.NewS3Uploader(blob.Config{
		AccessKey:    c.S3AccessKey,
		SecretKey:    c.S3SecretKey,
		Bucket:       c.S3Bucket,
		Region:       c.S3Region,
		BaseEndpoint: c.S3BaseEndpoint,
		PublicURL:    c.S3PublicURL,
	})

	a := &App{
		config:   c,
		gateway:  gateway,
		db:       db,
		sessions: session.NewSQLiteStore(db),
		auth:     services.NewAuthService(gateway, log),
		profile:  services.NewProfileService(gateway, uploader, log),
		offers:   services.NewOfferService(gateway, log),
		locations: location.StaticProvider{
			Coords:  location.Coordinates{Latitude: c.Latitude, Longitude: c.Longitude},
			Enabled: c.LocationSet,
		},
		log:    log,
		reader: bufio.NewReader(os.Stdin),
	}
	a.router = navigation.NewRouter(gateway, a, log)

	sess, err := a.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	if sess.Authenticated() && !session.TokenExpired(sess.AccessToken, time.Now()) {
		a.session = sess
		gateway.SetTokens(sess.AccessToken, sess.RefreshToken)
	}
	a.destination = navigation.InitialDestination(a.session)

	return a, nil
}

// Run starts the online-status watcher and enters the command loop. It
// returns when the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.gateway.Close()
	defer a.db.Close()

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	a.Root(ctx)
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
	}
}

// StartOnlineStatusWatcher probes the backend on the given interval and
// tracks reachability in a.Mode until ctx is cancelled.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.gateway.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

// navigate records the new destination.
func (a *App) navigate(d navigation.Destination) {
	a.destination = d
}

// requestCtx derives the per-request deadline for a remote call.
func (a *App) requestCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
