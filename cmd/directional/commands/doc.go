// Package commands implements the directional command line.
//
// Every command wires its own client stack from the configuration, restores
// the persisted session and runs at a route-like location (/posts,
// /visualization, ...). A 401 outside /login drops the session and asks the
// user to log in again.
package commands
