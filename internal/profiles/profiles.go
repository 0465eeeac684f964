// Package profiles loads conf2env's own configuration: named recipes
// telling which key=value files to load and how to export their items.
package profiles

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Profile is one named load recipe.
type Profile struct {
	Files  []string
	Only   []string
	Prefix string
}

// Config holds the whole profiles file.
type Config struct {
	Profiles map[string]Profile
}

// Get returns the named profile.
func (c Config) Get(name string) (Profile, error) {
	p, ok := c.Profiles[name]
	if !ok {
		return p, fmt.Errorf("unknown profile: %s", name)
	}
	return p, nil
}

// Load reads and decodes the YAML profiles file at path.
func Load(path string) (Config, error) {
	var c Config
	values, err := readYaml(path)
	if err != nil {
		return c, err
	}
	err = decode(values, &c)
	if err != nil {
		return c, fmt.Errorf("YAML error: %w", err)
	}
	slog.Debug("Loaded profiles file.", "path", path, "count", len(c.Profiles))
	return c, nil
}

// Unmarshal YAML from file path or stdin if path is -.
func readYaml(path string) (values any, err error) {
	var fo io.ReadCloser
	if path == "-" {
		slog.Info("Reading profiles from standard input.")
		fo = os.Stdin
	} else {
		fo, err = os.Open(path)
		if err != nil {
			return
		}
	}
	defer fo.Close()
	dec := yaml.NewDecoder(fo)
	err = dec.Decode(&values)
	return
}

func decode(in any, out any) error {
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return d.Decode(in)
}

// FindFile returns userValue or the first standard location holding a
// profiles file.
func FindFile(userValue string) string {
	if userValue != "" {
		return userValue
	}

	slog.Debug("Searching profiles file in standard locations.")
	home, _ := os.UserHomeDir()
	candidates := []string{
		"./conf2env.yml",
		"./conf2env.yaml",
		filepath.Join(home, ".config/conf2env.yml"),
		filepath.Join(home, ".config/conf2env.yaml"),
		"/etc/conf2env.yml",
		"/etc/conf2env.yaml",
	}

	for _, candidate := range candidates {
		_, err := os.Stat(candidate)
		if err == nil {
			slog.Debug("Found profiles file.", "path", candidate)
			return candidate
		}
		slog.Debug("Ignoring profiles file.", "path", candidate, "error", err)
	}

	return ""
}
