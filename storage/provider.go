package storage

import "github.com/google/wire"

// ProviderSet is the wire provider set for the storage package.
// It provides the configured Store and the Credentials view over it.
var ProviderSet = wire.NewSet(ProvideStore, NewCredentials)

// ProvideStore opens the configured store. The cleanup closes connections
// of drivers that hold one.
func ProvideStore(c *Config) (Store, func(), error) {
	s, err := NewStore(c)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {}
	if rs, ok := s.(*RedisStore); ok {
		cleanup = func() { _ = rs.Close() }
	}
	return s, cleanup, nil
}
