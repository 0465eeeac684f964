// Package conf implements the flat key=value configuration format.
//
// The format targets small, hand-edited deployment files: one pair per line,
// # comments, insignificant whitespace. No quoting, sections or includes.
// Parsing is permissive: a malformed line is skipped, never reported, so a
// stray line does not abort startup.
package conf

import (
	"log/slog"
	"maps"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Items holds configuration pairs addressed by key. The caller owns the
// mapping and decides retention.
type Items map[string]string

// Parse reads pairs from text, one per line.
//
// A line whose first non-blank character is # is a comment. A # after
// content truncates the line. Keys and values are trimmed. Lines without =
// or with an empty key are skipped. On duplicate keys, the last line wins.
func Parse(text string) Items {
	items := make(Items)
	// Lines are split by hand rather than scanned. Values have no size
	// limit and bufio.Scanner stops at 64KiB tokens.
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		key, value, found := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			if line != "" {
				slog.Debug("Skipping configuration line.", "line", line)
			}
			continue
		}
		items[key] = strings.TrimSpace(value)
	}
	return items
}

// Format renders items as KEY=value lines, sorted by key. Format then Parse
// round-trips as long as keys and values hold no =, # or newline.
func Format(items Items) string {
	b := strings.Builder{}
	for _, key := range items.Keys() {
		b.WriteString(key)
		b.WriteString("=")
		b.WriteString(items[key])
		b.WriteString("\n")
	}
	return b.String()
}

// Keys returns keys in lexical order.
func (items Items) Keys() []string {
	return slices.Sorted(maps.Keys(items))
}

// Filter returns the subset of items whose key is in only. An empty only
// keeps every item.
func (items Items) Filter(only []string) Items {
	if len(only) == 0 {
		return items
	}
	wanted := mapset.NewSet(only...)
	out := make(Items)
	for key, value := range items {
		if wanted.Contains(key) {
			out[key] = value
		}
	}
	return out
}

// Prefixed returns a copy of items with prefix prepended to each key.
func (items Items) Prefixed(prefix string) Items {
	if prefix == "" {
		return items
	}
	out := make(Items, len(items))
	for key, value := range items {
		out[prefix+key] = value
	}
	return out
}

// Merge returns a new mapping with others applied over items in order.
// Later mappings win on common keys.
func (items Items) Merge(others ...Items) Items {
	out := make(Items, len(items))
	maps.Copy(out, items)
	for _, other := range others {
		maps.Copy(out, other)
	}
	return out
}
