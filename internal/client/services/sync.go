package services

import (
	"context"

	"github.com/dmitrijs2005/ideatrack/internal/client/ideas"
	"github.com/dmitrijs2005/ideatrack/internal/client/session"
	"github.com/dmitrijs2005/ideatrack/internal/logging"
)

// BindIdeaLoader subscribes the idea cache to session transitions: becoming
// authenticated triggers a load, becoming unauthenticated (including the
// initial restore outcome) clears the cache. The cache mutation always
// follows the session-state change, so no idea data is ever visible while
// unauthenticated.
//
// Call during wiring, before the session store's Restore.
func BindIdeaLoader(sess *session.Store, cache *ideas.Cache, log logging.Logger) {
	sess.OnChange(func(authenticated bool) {
		ctx := context.Background()
		if !authenticated {
			cache.Clear()
			return
		}
		if err := cache.Load(ctx); err != nil {
			log.Error(ctx, "failed to load ideas after login", "error", err)
		}
	})
}
