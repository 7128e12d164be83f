// Package client talks to the Atelier backend.
//
// Client is the transport-agnostic contract; GRPCClient implements it over
// gRPC, attaching the access token to every call and refreshing it once when
// the server reports it expired. Status codes are mapped to the sentinel
// errors of this package, and a partial upload failure surfaces as a
// *PartialFailureError carrying the stored blob path.
//
// InitDatabase opens the local SQLite journal and applies its migrations.
package client
