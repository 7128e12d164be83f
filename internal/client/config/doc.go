// Package config loads runtime configuration for the Atelier client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-j string   path of the local SQLite journal
//	-t int      per-request timeout (seconds)
//	-s string   public base URL used to print share links
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "journal_path": "atelier.db",
//	  "request_timeout": "15s",
//	  "share_base_url": "http://127.0.0.1:8080"
//	}
package config
