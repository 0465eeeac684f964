package profiles_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"conf2env/internal/profiles"
)

func TestLoad(t *testing.T) {
	r := require.New(t)

	path := filepath.Join(t.TempDir(), "conf2env.yml")
	err := os.WriteFile(path, []byte(`
profiles:
  web:
    files: [base.conf, web.conf]
    only: [HOST, PORT]
    prefix: WEB_
  worker:
    files: [base.conf]
`), 0o644)
	r.NoError(err)

	c, err := profiles.Load(path)
	r.NoError(err)

	web, err := c.Get("web")
	r.NoError(err)
	r.Equal([]string{"base.conf", "web.conf"}, web.Files)
	r.Equal([]string{"HOST", "PORT"}, web.Only)
	r.Equal("WEB_", web.Prefix)

	worker, err := c.Get("worker")
	r.NoError(err)
	r.Equal([]string{"base.conf"}, worker.Files)
	r.Empty(worker.Only)

	_, err = c.Get("missing")
	r.ErrorContains(err, "unknown profile")
}

func TestLoadBadYaml(t *testing.T) {
	r := require.New(t)

	path := filepath.Join(t.TempDir(), "conf2env.yml")
	// Tab indentation is a YAML syntax error.
	r.NoError(os.WriteFile(path, []byte("profiles:\n\tweb: {}\n"), 0o644))

	_, err := profiles.Load(path)
	r.Error(err)
}

func TestFindFile(t *testing.T) {
	r := require.New(t)

	r.Equal("explicit.yml", profiles.FindFile("explicit.yml"))
}
