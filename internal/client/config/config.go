package config

import "time"

// Config holds runtime settings for the Atelier CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - JournalPath: SQLite file holding the session and partial-failure journal.
//   - RequestTimeout: upper bound for a single RPC.
//   - ShareBaseURL: public HTTP address guests open share links on.
type Config struct {
	ServerEndpointAddr string
	JournalPath        string
	RequestTimeout     time.Duration
	ShareBaseURL       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.JournalPath = "atelier.db"
	c.RequestTimeout = 30 * time.Second
	c.ShareBaseURL = "http://127.0.0.1:8080"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
