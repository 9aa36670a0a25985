package location

import (
	"context"
	"errors"
	"testing"

	"github.com/ashish-aa/skillmesh/internal/common"
	"github.com/stretchr/testify/require"
)

type fakeGeocoder struct {
	addr string
	err  error

	lastLat float64
	lastLon float64
}

func (f *fakeGeocoder) ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error) {
	f.lastLat = latitude
	f.lastLon = longitude
	return f.addr, f.err
}

func TestResolve_Success(t *testing.T) {
	p := StaticProvider{Coords: Coordinates{Latitude: 18.52, Longitude: 73.85}, Enabled: true}
	g := &fakeGeocoder{addr: "Pune, Maharashtra, India"}

	addr, err := Resolve(context.Background(), p, g)
	require.NoError(t, err)
	require.Equal(t, "Pune, Maharashtra, India", addr)
	require.InDelta(t, 18.52, g.lastLat, 1e-9)
	require.InDelta(t, 73.85, g.lastLon, 1e-9)
}

func TestResolve_PermissionDenied(t *testing.T) {
	g := &fakeGeocoder{addr: "should not be called"}

	addr, err := Resolve(context.Background(), StaticProvider{}, g)
	require.ErrorIs(t, err, common.ErrPermissionDenied)
	require.Empty(t, addr)
	require.Zero(t, g.lastLat)
}

func TestResolve_GeocodeError(t *testing.T) {
	p := StaticProvider{Coords: Coordinates{Latitude: 1, Longitude: 2}, Enabled: true}
	g := &fakeGeocoder{err: errors.New("geocoder down")}

	_, err := Resolve(context.Background(), p, g)
	require.Error(t, err)
	require.NotErrorIs(t, err, common.ErrPermissionDenied)
}
