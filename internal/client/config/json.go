package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/atelier/internal/flagx"
	"github.com/dmitrijs2005/atelier/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	JournalPath        string         `json:"journal_path"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	ShareBaseURL       string         `json:"share_base_url"`
}

// parseJson overlays Config with values from the file named by -c/-config.
// Only fields present in the file are applied. Read or decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.JournalPath != "" {
		cfg.JournalPath = jc.JournalPath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.ShareBaseURL != "" {
		cfg.ShareBaseURL = jc.ShareBaseURL
	}
}
