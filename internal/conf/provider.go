package conf

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/maps"
	"github.com/knadh/koanf/v2"
)

// FileProvider returns a koanf provider reading path if it exists. A
// missing file reads as empty, so optional files layer without error
// handling at each call site.
func FileProvider(path string) koanf.Provider {
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}
	return fileProvider{path: path}
}

type fileProvider struct {
	path string
}

func (p fileProvider) ReadBytes() ([]byte, error) {
	data, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &FileNotFoundError{Path: p.path}
	}
	slog.Debug("Found configuration file.", "path", p.path)
	return data, nil
}

func (fileProvider) Read() (map[string]interface{}, error) {
	panic("not implemented")
}

// Parser feeds the flat key=value format to koanf. Keys must not contain
// the koanf delimiter; environment-style names are safe with ".".
type Parser struct {
	Delim string
}

func (p Parser) Unmarshal(data []byte) (map[string]interface{}, error) {
	items := Parse(string(data))
	out := make(map[string]interface{}, len(items))
	for key, value := range items {
		out[key] = value
	}
	return maps.Unflatten(out, p.delim()), nil
}

func (Parser) Marshal(map[string]interface{}) ([]byte, error) {
	panic("not implemented")
}

func (p Parser) delim() string {
	if p.Delim == "" {
		return "."
	}
	return p.Delim
}
