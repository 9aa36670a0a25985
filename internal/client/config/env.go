package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first, without overriding
// variables already exported.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SKILLMESH_SERVER_ADDR"); v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v := os.Getenv("SKILLMESH_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}

	if v := os.Getenv("SKILLMESH_S3_ACCESS_KEY"); v != "" {
		cfg.S3AccessKey = v
	}
	if v := os.Getenv("SKILLMESH_S3_SECRET_KEY"); v != "" {
		cfg.S3SecretKey = v
	}
	if v := os.Getenv("SKILLMESH_S3_BUCKET"); v != "" {
		cfg.S3Bucket = v
	}
	if v := os.Getenv("SKILLMESH_S3_REGION"); v != "" {
		cfg.S3Region = v
	}
	if v := os.Getenv("SKILLMESH_S3_ENDPOINT"); v != "" {
		cfg.S3BaseEndpoint = v
	}
	if v := os.Getenv("SKILLMESH_S3_PUBLIC_URL"); v != "" {
		cfg.S3PublicURL = v
	}

	lat, latErr := strconv.ParseFloat(os.Getenv("SKILLMESH_LATITUDE"), 64)
	lon, lonErr := strconv.ParseFloat(os.Getenv("SKILLMESH_LONGITUDE"), 64)
	if latErr == nil && lonErr == nil {
		cfg.Latitude = lat
		cfg.Longitude = lon
		cfg.LocationSet = true
	}
}
