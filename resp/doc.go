// Package resp writes JSON responses for the mock REST server.
//
// Failures carry a top-level "message", which the client passes through
// for 400 and unclassified statuses.
package resp
