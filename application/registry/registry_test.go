package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"elasticonf/domain/config"
	cfgerrors "elasticonf/pkg/errors"
)

// stubCache is a minimal ports.Cache for registry tests
type stubCache struct {
	name string
}

func (s *stubCache) Name() string { return s.name }

func (s *stubCache) AllowClear() bool { return true }

func (s *stubCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (s *stubCache) Set(context.Context, string, []byte) error { return nil }

func (s *stubCache) Delete(context.Context, string) error { return nil }

func (s *stubCache) Clear(context.Context) error { return nil }

func TestRegisterManagerOnce(t *testing.T) {
	reg := NewRegistry(zap.NewNop())
	def := config.NewManagerDefinition(nil)

	require.NoError(t, reg.RegisterManager(def))

	registered, ok := reg.Manager()
	require.True(t, ok)
	assert.Same(t, def, registered)
}

func TestRegisterManagerDuplicate(t *testing.T) {
	reg := NewRegistry(zap.NewNop())
	first := config.NewManagerDefinition(nil)
	second := config.NewManagerDefinition(nil)

	require.NoError(t, reg.RegisterManager(first))

	err := reg.RegisterManager(second)
	require.Error(t, err)
	assert.True(t, cfgerrors.IsDuplicateManager(err))

	// The first registration is untouched
	registered, ok := reg.Manager()
	require.True(t, ok)
	assert.Same(t, first, registered)
}

func TestRegisterCacheAndLookup(t *testing.T) {
	reg := NewRegistry(zap.NewNop())

	require.NoError(t, reg.RegisterCache(&stubCache{name: "myCache"}))

	cache, ok := reg.Cache("myCache")
	require.True(t, ok)
	assert.Equal(t, "myCache", cache.Name())

	_, ok = reg.Cache("absent")
	assert.False(t, ok)
}

func TestRegisterCacheDuplicate(t *testing.T) {
	reg := NewRegistry(zap.NewNop())

	require.NoError(t, reg.RegisterCache(&stubCache{name: "myCache"}))
	assert.Error(t, reg.RegisterCache(&stubCache{name: "myCache"}))
}
