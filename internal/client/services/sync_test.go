package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/ideatrack/internal/client/ideas"
	"github.com/dmitrijs2005/ideatrack/internal/client/models"
	"github.com/dmitrijs2005/ideatrack/internal/client/session"
	"github.com/dmitrijs2005/ideatrack/internal/client/storage"
)

// The core invariant of the subsystem: the cache is empty whenever the
// session is unauthenticated, across the whole lifecycle.
func TestBindIdeaLoader_CacheFollowsSessionLifecycle(t *testing.T) {
	sess := newSession(t)
	ideaAPI := &fakeIdeaAPI{ideas: []models.Idea{{ID: "idea1"}, {ID: "idea2"}}}
	cache := ideas.NewCache(ideaAPI, testLogger())
	BindIdeaLoader(sess, cache, testLogger())

	ctx := context.Background()

	// initial restore lands unauthenticated: cache stays empty
	sess.Restore(ctx)
	assert.Equal(t, 0, cache.Len())

	// login triggers exactly one load
	require.NoError(t, sess.Login(ctx, "abc", &models.User{EmployeeNumber: "12345"}))
	assert.Equal(t, 1, ideaAPI.listCalls)
	assert.Equal(t, 2, cache.Len())

	// logout clears synchronously
	require.NoError(t, sess.Logout(ctx))
	assert.Equal(t, 0, cache.Len())
	assert.False(t, sess.IsAuthenticated())

	// forced invalidation behaves like logout for the cache
	require.NoError(t, sess.Login(ctx, "abc", &models.User{EmployeeNumber: "12345"}))
	require.Equal(t, 2, cache.Len())
	sess.Invalidate(ctx)
	assert.Equal(t, 0, cache.Len())
}

// A login on top of an existing session (no logout in between) must reload
// the cache, so the previous user's ideas are never visible to the next one.
func TestBindIdeaLoader_ReloginReplacesPriorUsersIdeas(t *testing.T) {
	sess := newSession(t)
	ideaAPI := &fakeIdeaAPI{ideas: []models.Idea{
		{ID: "a1", SubmittedBy: models.Submitter{EmployeeNumber: "111"}},
	}}
	cache := ideas.NewCache(ideaAPI, testLogger())
	BindIdeaLoader(sess, cache, testLogger())

	ctx := context.Background()
	sess.Restore(ctx)

	require.NoError(t, sess.Login(ctx, "tok-a", &models.User{EmployeeNumber: "111"}))
	require.Equal(t, 1, cache.Len())

	// the server now scopes the list to the new user
	ideaAPI.ideas = []models.Idea{
		{ID: "b1", SubmittedBy: models.Submitter{EmployeeNumber: "222"}},
		{ID: "b2", SubmittedBy: models.Submitter{EmployeeNumber: "222"}},
	}

	require.NoError(t, sess.Login(ctx, "tok-b", &models.User{EmployeeNumber: "222"}))
	assert.Equal(t, 2, ideaAPI.listCalls)
	assert.Equal(t, 2, cache.Len())

	_, found := cache.Get("a1")
	assert.False(t, found, "prior user's ideas must be gone after re-login")
}

func TestBindIdeaLoader_RestoredSessionLoadsImmediately(t *testing.T) {
	st := storage.NewMemoryStore()
	ctx := context.Background()

	sess := session.NewStore(st, testLogger())
	sess.Restore(ctx)
	require.NoError(t, sess.Login(ctx, "abc", &models.User{EmployeeNumber: "12345"}))

	// relaunch: a fresh session over the same storage, bound before restore
	ideaAPI := &fakeIdeaAPI{ideas: []models.Idea{{ID: "idea1"}}}
	cache := ideas.NewCache(ideaAPI, testLogger())

	sess2 := session.NewStore(st, testLogger())
	BindIdeaLoader(sess2, cache, testLogger())
	sess2.Restore(ctx)

	assert.True(t, sess2.IsAuthenticated())
	assert.Equal(t, 1, ideaAPI.listCalls)
	assert.Equal(t, 1, cache.Len())
}
