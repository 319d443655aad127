package query

import (
	"strings"

	"github.com/kyunghoonkook/directional/paging"
)

// Resource and kind segments of cache keys
const (
	ResourcePosts  = "posts"
	ResourceCharts = "charts"
	KindList       = "list"
	KindDetail     = "detail"
)

// Key identifies a cache entry. Empty trailing segments are omitted from String.
type Key struct {
	Resource string
	Kind     string
	Params   string
}

func (k Key) String() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{k.Resource, k.Kind, k.Params} {
		if s == "" {
			break
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "/")
}

// Prefix matches k itself and every key below it
func (k Key) Prefix() string {
	return k.String()
}

func PostsKey() Key { return Key{Resource: ResourcePosts} }

func PostListsKey() Key { return Key{Resource: ResourcePosts, Kind: KindList} }

func PostListKey(p paging.Params) Key {
	return Key{Resource: ResourcePosts, Kind: KindList, Params: p.Key()}
}

func PostDetailKey(id string) Key {
	return Key{Resource: ResourcePosts, Kind: KindDetail, Params: id}
}

func ChartKey(name string) Key {
	return Key{Resource: ResourceCharts, Kind: name}
}

// matches reports whether key lies under prefix on a segment boundary
func matches(key, prefix string) bool {
	if prefix == "" || key == prefix {
		return true
	}
	return strings.HasPrefix(key, prefix+"/")
}
