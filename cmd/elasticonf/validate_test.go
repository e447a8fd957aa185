package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "caches.xml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestParseFileValid(t *testing.T) {
	path := writeConfig(t, `<cache-manager>
	<cache name="sessions" address="host:11211" expiration="300" allowClear="true"/>
</cache-manager>`)

	def, err := parseFile(path)
	require.NoError(t, err)
	assert.Len(t, def.Entries, 1)
}

func TestParseFileInvalid(t *testing.T) {
	path := writeConfig(t, `<cache-manager>
	<cache-cluster allowClear="true" cacheCluster="prod"/>
</cache-manager>`)

	_, err := parseFile(path)
	assert.Error(t, err)
}

func TestParseFileMissing(t *testing.T) {
	_, err := parseFile(filepath.Join(t.TempDir(), "absent.xml"))
	assert.Error(t, err)
}
