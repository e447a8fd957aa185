package xmlconfig

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"elasticonf/application/registry"
	"elasticonf/domain/config"
	cfgerrors "elasticonf/pkg/errors"
)

func newTestParser() *Parser {
	return NewParser(zap.NewNop())
}

func TestParseSingleCache(t *testing.T) {
	doc := `<cache-manager>
	<cache name="sessions" address="host:11211" expiration="300" allowClear="true"/>
</cache-manager>`

	def, err := newTestParser().Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, def.Entries, 1)

	cacheDef, ok := def.Entries[0].(config.CacheDefinition)
	require.True(t, ok)
	assert.Equal(t, "sessions", cacheDef.Name.String())
	assert.Equal(t, config.SourceStatic, cacheDef.Source)
	assert.Equal(t, "host:11211", cacheDef.Address.String())
	assert.Equal(t, int64(300), cacheDef.Expiration.Seconds())
	assert.True(t, cacheDef.AllowClear)
	assert.True(t, cacheDef.Client.ConsistentHashing)
	assert.NotEmpty(t, cacheDef.ID)
}

func TestParseCacheCluster(t *testing.T) {
	doc := `<cache-manager>
	<cache-cluster expiration="600" allowClear="false" cacheCluster="prod-sessions"/>
</cache-manager>`

	def, err := newTestParser().Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, def.Entries, 1)

	cacheDef, ok := def.Entries[0].(config.CacheDefinition)
	require.True(t, ok)
	assert.Equal(t, config.SourceCluster, cacheDef.Source)
	assert.Equal(t, "prod-sessions", cacheDef.Cluster.String())
	// The cluster id doubles as the cache name
	assert.Equal(t, "prod-sessions", cacheDef.Name.String())
	assert.Equal(t, int64(600), cacheDef.Expiration.Seconds())
	assert.False(t, cacheDef.AllowClear)
}

func TestParseCacheRef(t *testing.T) {
	doc := `<cache-manager>
	<cache-ref ref="myCache"/>
</cache-manager>`

	def, err := newTestParser().Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, def.Entries, 1)

	ref, ok := def.Entries[0].(config.CacheReference)
	require.True(t, ok, "cache-ref must yield a reference placeholder, not a definition")
	assert.Equal(t, "myCache", ref.Ref)
}

func TestParseAllowClearCaseInsensitive(t *testing.T) {
	for raw, want := range map[string]bool{
		"true": true, "TRUE": true, "True": true,
		"false": false, "yes": false, "1": false,
	} {
		doc := `<cache-manager>
	<cache name="c" address="host:11211" expiration="1" allowClear="` + raw + `"/>
</cache-manager>`

		def, err := newTestParser().Parse(strings.NewReader(doc))
		require.NoError(t, err, "allowClear=%q", raw)
		cacheDef := def.Entries[0].(config.CacheDefinition)
		assert.Equal(t, want, cacheDef.AllowClear, "allowClear=%q", raw)
	}
}

func TestParseMissingExpiration(t *testing.T) {
	doc := `<cache-manager>
	<cache-cluster allowClear="true" cacheCluster="prod-sessions"/>
</cache-manager>`

	def, err := newTestParser().Parse(strings.NewReader(doc))
	require.Error(t, err)
	assert.Nil(t, def, "no descriptor may be produced from an invalid document")

	assert.True(t, cfgerrors.IsMissingAttribute(err))
	cfgErr := cfgerrors.GetConfigError(err)
	require.NotNil(t, cfgErr)
	assert.Equal(t, "expiration", cfgErr.Attribute)
	assert.Equal(t, "cache-cluster", cfgErr.Element)
	assert.Equal(t, 2, cfgErr.Line)
}

func TestParseFailFastPerElement(t *testing.T) {
	// The element misses expiration AND carries an unparsable allowClear
	// value downstream; only the first missing attribute may be reported,
	// nothing after it is parsed.
	doc := `<cache-manager>
	<cache name="sessions" address="host:11211" allowClear="true"/>
</cache-manager>`

	_, err := newTestParser().Parse(strings.NewReader(doc))
	require.Error(t, err)

	verrs, ok := err.(*cfgerrors.ValidationErrors)
	require.True(t, ok)
	require.Len(t, verrs.Errors(), 1)
	assert.Equal(t, cfgerrors.ErrorTypeMissingAttribute, verrs.Errors()[0].Type)
}

func TestParseBlankAttributeIsMissing(t *testing.T) {
	doc := `<cache-manager>
	<cache name="  " address="host:11211" expiration="300" allowClear="true"/>
</cache-manager>`

	_, err := newTestParser().Parse(strings.NewReader(doc))
	require.Error(t, err)
	assert.True(t, cfgerrors.IsMissingAttribute(err))
}

func TestParseMalformedExpiration(t *testing.T) {
	doc := `<cache-manager>
	<cache name="sessions" address="host:11211" expiration="soon" allowClear="true"/>
</cache-manager>`

	_, err := newTestParser().Parse(strings.NewReader(doc))
	require.Error(t, err)
	assert.True(t, cfgerrors.IsMalformedNumber(err))
}

func TestParseErrorsAggregateAcrossElements(t *testing.T) {
	doc := `<cache-manager>
	<cache-cluster allowClear="true" cacheCluster="a"/>
	<cache name="b" address="host:11211" expiration="x" allowClear="true"/>
	<unknown-tag/>
</cache-manager>`

	_, err := newTestParser().Parse(strings.NewReader(doc))
	require.Error(t, err)

	verrs, ok := err.(*cfgerrors.ValidationErrors)
	require.True(t, ok)
	require.Len(t, verrs.Errors(), 3)
	assert.Equal(t, cfgerrors.ErrorTypeMissingAttribute, verrs.Errors()[0].Type)
	assert.Equal(t, cfgerrors.ErrorTypeMalformedNumber, verrs.Errors()[1].Type)
	assert.Equal(t, cfgerrors.ErrorTypeUnknownElement, verrs.Errors()[2].Type)
}

func TestParseOrderPreserved(t *testing.T) {
	doc := `<cache-manager>
	<cache-ref ref="zeta"/>
	<cache name="alpha" address="host:11211" expiration="1" allowClear="false"/>
	<cache-cluster expiration="2" allowClear="true" cacheCluster="mid-cluster"/>
</cache-manager>`

	def, err := newTestParser().Parse(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid-cluster"}, def.EntryNames())
}

func TestParseWrongRootElement(t *testing.T) {
	_, err := newTestParser().Parse(strings.NewReader(`<caches/>`))
	require.Error(t, err)
	assert.True(t, cfgerrors.IsValidation(err))
}

func TestParseMalformedXML(t *testing.T) {
	_, err := newTestParser().Parse(strings.NewReader(`<cache-manager><cache`))
	require.Error(t, err)
}

func TestParseAndRegisterDuplicateManager(t *testing.T) {
	doc := `<cache-manager>
	<cache name="sessions" address="host:11211" expiration="300" allowClear="true"/>
</cache-manager>`

	parser := newTestParser()
	reg := registry.NewRegistry(zap.NewNop())

	first, err := parser.ParseAndRegister(strings.NewReader(doc), reg)
	require.NoError(t, err)

	// The second declaration in the same scope is a validation error and
	// must not replace the first registration.
	_, err = parser.ParseAndRegister(strings.NewReader(doc), reg)
	require.Error(t, err)
	assert.True(t, cfgerrors.IsDuplicateManager(err))

	registered, ok := reg.Manager()
	require.True(t, ok)
	assert.Same(t, first, registered)
}
