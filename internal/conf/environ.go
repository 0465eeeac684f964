package conf

import (
	"os"
	"strings"
)

// Apply exports each item to the process environment, overwriting existing
// variables. Call it once at startup; it must not run concurrently with
// other users of the environment.
func Apply(items Items) error {
	for key, value := range items {
		err := os.Setenv(key, value)
		if err != nil {
			return err
		}
	}
	return nil
}

// Environ merges items over base, a slice of KEY=value entries as returned
// by os.Environ. Items override base entries with the same key; keys absent
// from base are appended in lexical order.
func Environ(base []string, items Items) []string {
	out := make([]string, 0, len(base)+len(items))
	seen := make(map[string]bool, len(items))
	for _, entry := range base {
		key, _, _ := strings.Cut(entry, "=")
		value, ok := items[key]
		if ok {
			out = append(out, key+"="+value)
			seen[key] = true
		} else {
			out = append(out, entry)
		}
	}
	for _, key := range items.Keys() {
		if !seen[key] {
			out = append(out, key+"="+items[key])
		}
	}
	return out
}
