package statblock

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// SortMode names one of the orderings the browser offers.
type SortMode string

const (
	SortNone     SortMode = "none"
	SortPage     SortMode = "page"
	SortPageDesc SortMode = "page-desc"
	SortName     SortMode = "name"
	SortNameDesc SortMode = "name-desc"
)

var sortModes = []SortMode{SortNone, SortPage, SortPageDesc, SortName, SortNameDesc}

// SortModes lists the modes in cycling order.
func SortModes() []SortMode {
	return append([]SortMode(nil), sortModes...)
}

// ParseSortMode accepts a mode name, case-insensitively. Empty means
// SortNone.
func ParseSortMode(s string) (SortMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortNone, nil
	}
	for _, m := range sortModes {
		if string(m) == s {
			return m, nil
		}
	}
	return SortNone, fmt.Errorf("unknown sort mode %q", s)
}

// Next returns the mode after m, wrapping around.
func (m SortMode) Next() SortMode {
	for i, candidate := range sortModes {
		if candidate == m {
			return sortModes[(i+1)%len(sortModes)]
		}
	}
	return SortNone
}

// Comparator returns the comparator for m, or nil for SortNone. Name modes
// collate for tag using order.
func (m SortMode) Comparator(tag language.Tag, order NameOrder) Comparator {
	switch m {
	case SortPage:
		return ByPage(false)
	case SortPageDesc:
		return ByPage(true)
	case SortName:
		return NameCollator(tag, order, false)
	case SortNameDesc:
		return NameCollator(tag, order, true)
	}
	return nil
}
