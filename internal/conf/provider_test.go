package conf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/require"

	"conf2env/internal/conf"
)

func TestProvider(t *testing.T) {
	r := require.New(t)

	dir := t.TempDir()
	base := filepath.Join(dir, "base.conf")
	override := filepath.Join(dir, "override.conf")
	r.NoError(os.WriteFile(base, []byte("HOST=localhost\nPORT=5432\n"), 0o644))
	r.NoError(os.WriteFile(override, []byte("PORT=5433 # forwarded\n"), 0o644))

	k := koanf.New(".")
	r.NoError(k.Load(conf.FileProvider(base), conf.Parser{}))
	r.NoError(k.Load(conf.FileProvider(override), conf.Parser{}))

	r.Equal("localhost", k.String("HOST"))
	r.Equal("5433", k.String("PORT"))
}

func TestProviderMissingFile(t *testing.T) {
	r := require.New(t)

	k := koanf.New(".")
	path := filepath.Join(t.TempDir(), "missing.conf")
	r.NoError(k.Load(conf.FileProvider(path), conf.Parser{}))
	r.Empty(k.Keys())
}
