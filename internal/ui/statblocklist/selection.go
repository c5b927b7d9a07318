package statblocklist

import "github.com/jennis0/pdf2vtt/internal/statblock"

type selectionMode int

const (
	selectNone selectionMode = iota
	selectIndex
	selectKey
)

// Selection is the caller's highlighted row. The zero value selects
// nothing.
//
// SelectIndex highlights a position in the filtered sequence, so the
// highlight moves with the data when the filter changes. SelectKey follows
// a statblock's identity and is resolved to a position on every render.
type Selection struct {
	mode  selectionMode
	index int
	key   statblock.Key
}

func NoSelection() Selection { return Selection{} }

func SelectIndex(i int) Selection { return Selection{mode: selectIndex, index: i} }

func SelectKey(k statblock.Key) Selection {
	if k == statblock.NilKey {
		return Selection{}
	}
	return Selection{mode: selectKey, key: k}
}

// IsNone reports whether s selects nothing.
func (s Selection) IsNone() bool { return s.mode == selectNone }

// Key returns the selected key for key selections.
func (s Selection) Key() (statblock.Key, bool) {
	return s.key, s.mode == selectKey
}

// Resolve returns the highlighted position within items, or -1 when the
// selection is empty, out of range, or names a statblock not in items.
func (s Selection) Resolve(items []statblock.Statblock) int {
	switch s.mode {
	case selectIndex:
		if s.index >= 0 && s.index < len(items) {
			return s.index
		}
	case selectKey:
		return statblock.IndexOfKey(items, s.key)
	}
	return -1
}
