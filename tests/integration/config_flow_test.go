package integration

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"elasticonf/application/ports"
	"elasticonf/application/registry"
	"elasticonf/domain/config"
	"elasticonf/infrastructure/di"
	"elasticonf/infrastructure/memcached"
	"elasticonf/infrastructure/xmlconfig"
	cfgerrors "elasticonf/pkg/errors"
)

// inMemoryFactory keeps the flow test free of real memcached servers
type inMemoryFactory struct{}

func (inMemoryFactory) Create(ctx context.Context, def config.CacheDefinition, provider ports.AddressProvider) (ports.Cache, error) {
	if _, err := provider.Addresses(ctx); err != nil {
		return nil, err
	}
	return memcached.NewInMemoryCache(def), nil
}

// TestConfigurationFlow drives the whole path: parse the document, register
// the definition, build the manager, use the caches.
func TestConfigurationFlow(t *testing.T) {
	doc := `<cache-manager>
	<cache-ref ref="preWired"/>
	<cache name="sessions" address="sessions.internal:11211" expiration="300" allowClear="true"/>
	<cache name="catalog" address="catalog.internal:11211" expiration="3600" allowClear="false"/>
</cache-manager>`

	ctx := context.Background()
	logger := zap.NewNop()

	reg := registry.NewRegistry(logger)
	preWired := memcached.NewInMemoryCache(config.CacheDefinition{
		ID:         config.NewDefinitionID(),
		Name:       "preWired",
		Source:     config.SourceStatic,
		Address:    "pre.internal:11211",
		Expiration: 60,
		AllowClear: true,
	})
	if err := reg.RegisterCache(preWired); err != nil {
		t.Fatalf("registering external cache: %v", err)
	}

	parser := xmlconfig.NewParser(logger)
	def, err := parser.ParseAndRegister(strings.NewReader(doc), reg)
	if err != nil {
		t.Fatalf("parsing configuration: %v", err)
	}

	manager, err := di.BuildCacheManager(ctx, def, di.BuildDeps{
		Registry: reg,
		Factory:  inMemoryFactory{},
		Logger:   logger,
	})
	if err != nil {
		t.Fatalf("building cache manager: %v", err)
	}

	if got := manager.CacheNames(); len(got) != 3 || got[0] != "preWired" || got[1] != "sessions" || got[2] != "catalog" {
		t.Fatalf("unexpected cache order: %v", got)
	}

	sessions, err := manager.Cache("sessions")
	if err != nil {
		t.Fatalf("looking up sessions cache: %v", err)
	}
	if err := sessions.Set(ctx, "user-1", []byte("token")); err != nil {
		t.Fatalf("setting value: %v", err)
	}
	value, found, err := sessions.Get(ctx, "user-1")
	if err != nil || !found {
		t.Fatalf("getting value: found=%v err=%v", found, err)
	}
	if string(value) != "token" {
		t.Fatalf("unexpected value %q", value)
	}

	// catalog was declared allowClear=false; ClearAll must skip it while
	// clearing the others.
	catalog, err := manager.Cache("catalog")
	if err != nil {
		t.Fatalf("looking up catalog cache: %v", err)
	}
	if err := catalog.Set(ctx, "sku-1", []byte("widget")); err != nil {
		t.Fatalf("setting value: %v", err)
	}

	if err := manager.ClearAll(ctx); err != nil {
		t.Fatalf("clearing caches: %v", err)
	}

	if _, found, _ := sessions.Get(ctx, "user-1"); found {
		t.Fatal("sessions cache should have been cleared")
	}
	if _, found, _ := catalog.Get(ctx, "sku-1"); !found {
		t.Fatal("catalog cache must survive ClearAll")
	}

	// A second document in the same scope is a duplicate declaration
	if _, err := parser.ParseAndRegister(strings.NewReader(doc), reg); !cfgerrors.IsDuplicateManager(err) {
		t.Fatalf("expected duplicate manager error, got %v", err)
	}
}
