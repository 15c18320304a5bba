package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pathConfig string

func (p pathConfig) Path() string { return string(p) }

func Test_OnInMemStorage_ShouldRoundTripSettings(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorage()

	_, ok, err := s.Get(ctx, "Items")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "Items", []byte(`[]`)))

	value, ok, err := s.Get(ctx, "Items")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[]`), value)
}

func Test_OnSqliteStorage_ShouldRoundTripSettings(t *testing.T) {
	ctx := context.Background()
	path := pathConfig(filepath.Join(t.TempDir(), "settings.db"))

	s, err := NewSqliteStorage(path)
	require.NoError(t, err)
	defer func() { assert.NoError(t, s.Close()) }()

	_, ok, err := s.Get(ctx, "Items")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "Items", []byte(`[{"name":"a"}]`)))
	require.NoError(t, s.Set(ctx, "Items", []byte(`[]`)))

	value, ok, err := s.Get(ctx, "Items")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[]`), value)
}

func Test_OnSqliteStorage_ShouldSurviveReopen(t *testing.T) {
	ctx := context.Background()
	path := pathConfig(filepath.Join(t.TempDir(), "settings.db"))

	s, err := NewSqliteStorage(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "Items", []byte(`[1,2,3]`)))
	require.NoError(t, s.Close())

	reopened, err := NewSqliteStorage(path)
	require.NoError(t, err)
	defer func() { assert.NoError(t, reopened.Close()) }()

	value, ok, err := reopened.Get(ctx, "Items")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[1,2,3]`), value)
}
