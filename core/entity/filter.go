package entity

import (
	"sort"
	"strings"
)

// NoFilter is the discrete-filter sentinel meaning "no restriction".
const NoFilter = "All"

// Pipeline derives a display list from a collection: a free-text query
// matched case-insensitively against the searchable fields, plus discrete
// equality filters, with an optional stable sort applied last. Pure
// function of its inputs.
type Pipeline[T any] struct {
	// Searchable extracts the fields the free-text query matches against.
	Searchable func(T) []string
	// Fields maps discrete filter names to field extractors.
	Fields map[string]func(T) string
	// Less, when set, orders the filtered result.
	Less func(a, b T) bool
}

func (p Pipeline[T]) Apply(items []T, query string, filters map[string]string) []T {
	out := make([]T, 0, len(items))
	q := strings.ToLower(strings.TrimSpace(query))

	for _, item := range items {
		if !p.matchQuery(item, q) {
			continue
		}
		if !p.matchFilters(item, filters) {
			continue
		}
		out = append(out, item)
	}

	if p.Less != nil {
		sort.SliceStable(out, func(i, j int) bool { return p.Less(out[i], out[j]) })
	}
	return out
}

func (p Pipeline[T]) matchQuery(item T, q string) bool {
	if q == "" || p.Searchable == nil {
		return true
	}
	for _, field := range p.Searchable(item) {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (p Pipeline[T]) matchFilters(item T, filters map[string]string) bool {
	for name, want := range filters {
		if want == "" || want == NoFilter {
			continue
		}
		get, ok := p.Fields[name]
		if !ok {
			return false
		}
		if get(item) != want {
			return false
		}
	}
	return true
}
