// Package location supplies the optional device-location enrichment for
// profile creation. A Provider yields the last known coordinates; denial is
// reported as common.ErrPermissionDenied and the profile flow continues
// without a location.
package location

import (
	"context"

	"github.com/ashish-aa/skillmesh/internal/common"
)

// Coordinates is a WGS84 position.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Provider yields the device's last known position.
type Provider interface {
	LastKnownCoordinates(ctx context.Context) (Coordinates, error)
}

// Geocoder resolves coordinates to a free-text address.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error)
}

// StaticProvider reports a fixed position, typically taken from
// configuration. The zero value (not enabled) behaves like a device whose
// location permission was refused.
type StaticProvider struct {
	Coords  Coordinates
	Enabled bool
}

func (p StaticProvider) LastKnownCoordinates(ctx context.Context) (Coordinates, error) {
	if !p.Enabled {
		return Coordinates{}, common.ErrPermissionDenied
	}
	return p.Coords, nil
}

// Resolve fetches the current position and reverse-geocodes it. Permission
// denial returns common.ErrPermissionDenied; geocoding failures are
// returned as-is. The empty address result means "location unknown".
func Resolve(ctx context.Context, p Provider, g Geocoder) (string, error) {
	coords, err := p.LastKnownCoordinates(ctx)
	if err != nil {
		return "", err
	}
	return g.ReverseGeocode(ctx, coords.Latitude, coords.Longitude)
}
