// Package cli provides the interactive Atelier command-line client.
//
// It wires configuration, the local journal, the API client and services,
// then runs a REPL for an owner: account, children, uploads, the gallery,
// the share link and the retry journal of partially failed uploads.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
