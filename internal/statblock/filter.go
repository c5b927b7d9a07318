package statblock

import "strings"

// Filter reports whether a statblock belongs in a view.
type Filter func(Statblock) bool

// AcceptAll keeps every statblock.
func AcceptAll(Statblock) bool { return true }

// Apply returns the statblocks of items accepted by f, in their original
// relative order. A nil f accepts everything and nil items yield an empty,
// non-nil slice. items is never modified.
func Apply(items []Statblock, f Filter) []Statblock {
	if f == nil {
		f = AcceptAll
	}
	out := make([]Statblock, 0, len(items))
	for _, s := range items {
		if f(s) {
			out = append(out, s)
		}
	}
	return out
}

// NameContains matches names containing query, ignoring case and
// surrounding blanks. An empty query matches everything.
func NameContains(query string) Filter {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return AcceptAll
	}
	return func(s Statblock) bool {
		return strings.Contains(strings.ToLower(s.Name), q)
	}
}

// FromSource matches statblocks whose source title equals title, ignoring
// case. An empty title matches everything.
func FromSource(title string) Filter {
	t := strings.TrimSpace(title)
	if t == "" {
		return AcceptAll
	}
	return func(s Statblock) bool {
		return strings.EqualFold(strings.TrimSpace(s.Source.Title), t)
	}
}

// PageBetween matches pages in [lo, hi]. A non-positive hi leaves the range
// open above.
func PageBetween(lo, hi int) Filter {
	return func(s Statblock) bool {
		if s.Source.Page < lo {
			return false
		}
		return hi <= 0 || s.Source.Page <= hi
	}
}

// All matches when every non-nil filter matches.
func All(filters ...Filter) Filter {
	active := make([]Filter, 0, len(filters))
	for _, f := range filters {
		if f != nil {
			active = append(active, f)
		}
	}
	if len(active) == 0 {
		return AcceptAll
	}
	return func(s Statblock) bool {
		for _, f := range active {
			if !f(s) {
				return false
			}
		}
		return true
	}
}

// SourceTitles lists the distinct source titles in items in first-seen
// order, skipping blanks.
func SourceTitles(items []Statblock) []string {
	seen := make(map[string]struct{}, len(items))
	var out []string
	for _, s := range items {
		t := strings.TrimSpace(s.Source.Title)
		if t == "" {
			continue
		}
		k := strings.ToLower(t)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, t)
	}
	return out
}
