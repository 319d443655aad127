// Package mockserver is an in-memory gin implementation of the board REST
// api, used by tests and by "directional mock serve" for local development.
//
// Accounts log in with email and password and receive a signed token. Posts
// are scoped to the authenticated user and paginated with opaque cursors.
package mockserver
