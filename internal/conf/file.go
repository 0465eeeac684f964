package conf

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// FileNotFoundError reports a configuration file that cannot be read as
// text: missing, unreadable or not valid UTF-8.
type FileNotFoundError struct {
	Path string
}

func (err *FileNotFoundError) Error() string {
	return fmt.Sprintf("%s: no readable configuration file", err.Path)
}

// ReadFile reads and parses the key=value file at path. Use - for stdin.
//
// The only failure is the read itself. Parsing never fails.
func ReadFile(path string) (Items, error) {
	var data []byte
	var err error
	if path == "-" {
		slog.Info("Reading configuration from standard input.")
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		slog.Debug("Cannot read configuration file.", "path", path, "err", err)
		return nil, &FileNotFoundError{Path: path}
	}
	if !utf8.Valid(data) {
		slog.Debug("Configuration file is not text.", "path", path)
		return nil, &FileNotFoundError{Path: path}
	}
	return Parse(string(data)), nil
}

// FindFile returns userValue or the first standard location holding a
// configuration file. Returns the empty string when none exists.
func FindFile(userValue string) string {
	if userValue != "" {
		return userValue
	}

	slog.Debug("Searching configuration file in standard locations.")
	home, _ := os.UserHomeDir()
	candidates := []string{
		"./conf2env.conf",
		filepath.Join(home, ".config/conf2env.conf"),
		"/etc/conf2env.conf",
	}

	for _, candidate := range candidates {
		_, err := os.Stat(candidate)
		if err == nil {
			slog.Debug("Found configuration file.", "path", candidate)
			return candidate
		}
		slog.Debug("Ignoring configuration file.", "path", candidate, "error", err)
	}

	return ""
}
