// Package types holds the wire data model of the bulletin-board API: users,
// posts, list parameters and pages, delete results and the chart payloads,
// plus small helpers for pointers and time parsing.
package types
