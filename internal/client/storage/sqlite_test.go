package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStore_SetAndGet(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k1", []byte{0x01, 0x02}))

	v, err := s.Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02}, v)
}

func TestSQLiteStore_Get_NotExists_ReturnsNilNil(t *testing.T) {
	s := setupStore(t)

	v, err := s.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLiteStore_Set_UpsertOverwritesValue(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("old")))
	require.NoError(t, s.Set(ctx, "k", []byte("new")))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestSQLiteStore_Delete_RemovesKey_AndIsIdempotent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "x", []byte{0x01}))
	require.NoError(t, s.Delete(ctx, "x"))
	require.NoError(t, s.Delete(ctx, "x"))

	v, err := s.Get(ctx, "x")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLiteStore_SetAll_WritesPairTogether(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetAll(ctx, map[string][]byte{
		"token": []byte("abc"),
		"user":  []byte(`{"employeeNumber":"12345"}`),
	}))

	token, err := s.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), token)

	user, err := s.Get(ctx, "user")
	require.NoError(t, err)
	assert.NotNil(t, user)
}

func TestSQLiteStore_DeleteAll_RemovesOnlyGivenKeys(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "token", []byte("abc")))
	require.NoError(t, s.Set(ctx, "user", []byte("u")))
	require.NoError(t, s.Set(ctx, "unrelated", []byte("keep")))

	require.NoError(t, s.DeleteAll(ctx, "token", "user"))

	token, err := s.Get(ctx, "token")
	require.NoError(t, err)
	assert.Nil(t, token)

	user, err := s.Get(ctx, "user")
	require.NoError(t, err)
	assert.Nil(t, user)

	// a logout must never wipe entries outside the session key set
	kept, err := s.Get(ctx, "unrelated")
	require.NoError(t, err)
	assert.Equal(t, []byte("keep"), kept)
}

func TestSQLiteStore_Open_IsIdempotentOnSameFile(t *testing.T) {
	dir := t.TempDir()
	dsn := dir + "/session.db"
	ctx := context.Background()

	s1, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, s1.Set(ctx, "token", []byte("abc")))
	require.NoError(t, s1.Close())

	// reopen: migrations already applied, data survives
	s2, err := Open(ctx, dsn)
	require.NoError(t, err)
	defer s2.Close()

	v, err := s2.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), v)
}
