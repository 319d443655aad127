package query

import (
	"github.com/google/wire"
	"github.com/kyunghoonkook/directional/config"
)

// ProviderSet is the wire provider set for the query package
var ProviderSet = wire.NewSet(ProvideClient, ProvidePosts, NewCharts)

// ProvideClient creates the query client from the query section
func ProvideClient(cfg *config.Query) *Client {
	return NewClient(&Config{Retry: cfg.Retry, RetryDelay: cfg.RetryDelay})
}

// ProvidePosts creates the post facade with the configured list stale time
func ProvidePosts(c *Client, api PostsAPI, cfg *config.Query) *Posts {
	return NewPosts(c, api, cfg.ListStaleTime)
}
