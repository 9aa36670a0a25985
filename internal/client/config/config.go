package config

import "time"

// Config holds runtime settings for the SkillMesh CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - RequestTimeout: per-request deadline for remote calls.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - DataDir: directory for the local session cache database.
//   - S3*: object storage settings for profile image upload.
//   - Latitude/Longitude/LocationSet: optional fixed device coordinates;
//     when LocationSet is false, location enrichment is treated as
//     permission-denied and skipped.
type Config struct {
	ServerEndpointAddr  string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	DataDir             string

	S3AccessKey    string
	S3SecretKey    string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3PublicURL    string

	Latitude    float64
	Longitude   float64
	LocationSet bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.DataDir = "."
	c.S3Bucket = "skillmesh-media"
	c.S3Region = "us-east-1"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON file, and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
