package api

import (
	"github.com/google/wire"
	"github.com/kyunghoonkook/directional/client"
)

// ProviderSet is the wire provider set for the api package.
// It provides *API over a *client.Client and exposes its endpoint groups.
var ProviderSet = wire.NewSet(
	New,
	wire.Bind(new(Requester), new(*client.Client)),
	wire.FieldsOf(new(*API), "Auth", "Posts", "Charts"),
)
