package core

import "sort"

// Size describes the dimensions of a grid in cells.
type Size struct {
	W int
	H int
}

// Entry describes a game offered by the hub.
type Entry struct {
	Key         string
	Title       string
	Description string
	// Order positions the entry in the carousel; lower comes first.
	Order int
}

var games = map[string]Entry{}

// Register adds a game under the provided key. Empty keys are ignored.
func Register(key string, e Entry) {
	if key == "" {
		return
	}
	e.Key = key
	games[key] = e
}

// Lookup returns the entry registered under key.
func Lookup(key string) (Entry, bool) {
	e, ok := games[key]
	return e, ok
}

// Entries returns the registered games sorted by Order, then Key.
func Entries() []Entry {
	out := make([]Entry, 0, len(games))
	for _, e := range games {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Key < out[j].Key
	})
	return out
}
