package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"skillmesh"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()
	require.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
	require.Equal(t, "skillmesh-media", cfg.S3Bucket)
	require.False(t, cfg.LocationSet)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("SKILLMESH_SERVER_ADDR", "backend:9090")
	t.Setenv("SKILLMESH_S3_BUCKET", "media-test")
	t.Setenv("SKILLMESH_LATITUDE", "18.52")
	t.Setenv("SKILLMESH_LONGITUDE", "73.85")

	cfg := LoadConfig()
	require.Equal(t, "backend:9090", cfg.ServerEndpointAddr)
	require.Equal(t, "media-test", cfg.S3Bucket)
	require.True(t, cfg.LocationSet)
	require.InDelta(t, 18.52, cfg.Latitude, 1e-9)
	require.InDelta(t, 73.85, cfg.Longitude, 1e-9)
}

func TestLoadConfig_LatitudeAloneDoesNotSetLocation(t *testing.T) {
	resetArgs(t)
	t.Setenv("SKILLMESH_LATITUDE", "18.52")

	cfg := LoadConfig()
	require.False(t, cfg.LocationSet)
}

func TestLoadConfig_JsonOverridesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_endpoint_addr": "json:1234",
		"request_timeout": "7s"
	}`), 0o600))

	resetArgs(t, "-c", path)
	t.Setenv("SKILLMESH_SERVER_ADDR", "env:9090")

	cfg := LoadConfig()
	require.Equal(t, "json:1234", cfg.ServerEndpointAddr)
	require.Equal(t, 7*time.Second, cfg.RequestTimeout)
	// fields absent from the file keep earlier values
	require.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}

func TestLoadConfig_FlagsWin(t *testing.T) {
	resetArgs(t, "-a", "flag:5555", "-i", "9")
	t.Setenv("SKILLMESH_SERVER_ADDR", "env:9090")

	cfg := LoadConfig()
	require.Equal(t, "flag:5555", cfg.ServerEndpointAddr)
	require.Equal(t, 9*time.Second, cfg.OnlineCheckInterval)
}
