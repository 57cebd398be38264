package resilience

import "golang.org/x/sync/singleflight"

// Group deduplicates concurrent calls for the same key.
type Group struct {
	g singleflight.Group
}

func (g *Group) Do(key string, fn func() (any, error)) (any, error, bool) {
	return g.g.Do(key, fn)
}

func (g *Group) Forget(key string) {
	g.g.Forget(key)
}
