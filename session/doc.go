// Package session holds the process-wide authentication state.
//
// A Session starts in Bootstrapping and moves to Authenticated or Anonymous
// once Bootstrap has read the persisted credentials. Views must not render
// content while the session is loading.
package session
