package statblock

import (
	"slices"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator orders two statblocks: negative when a sorts first, positive
// when b does, zero when they tie.
type Comparator func(a, b Statblock) int

// NameOrder selects how CompareName-style comparators treat the reverse flag.
type NameOrder int

const (
	// NameCollated orders names with the locale collator and inverts the
	// result when reversed, like ComparePage does for pages.
	NameCollated NameOrder = iota
	// NameLegacy reproduces the ordering of the old web list:
	// not reversed it always answers +1, reversed it answers -1 unless the
	// names collate equal.
	NameLegacy
)

func (o NameOrder) String() string {
	if o == NameLegacy {
		return "legacy"
	}
	return "collated"
}

// nameCollator is shared by CompareName; collate.Collator is not safe for
// concurrent use.
type nameCollator struct {
	mu sync.Mutex
	c  *collate.Collator
}

func newNameCollator(tag language.Tag) *nameCollator {
	return &nameCollator{c: collate.New(tag)}
}

func (n *nameCollator) compare(a, b string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.c.CompareString(a, b)
}

var defaultCollator = newNameCollator(language.English)

// ComparePage orders by source page, lowest first. reverse puts the highest
// page first. Equal pages tie so a stable sort keeps their input order.
func ComparePage(a, b Statblock, reverse bool) int {
	switch {
	case a.Source.Page < b.Source.Page:
		if reverse {
			return 1
		}
		return -1
	case a.Source.Page > b.Source.Page:
		if reverse {
			return -1
		}
		return 1
	}
	return 0
}

// CompareName orders by name with English collation. reverse inverts the
// result.
func CompareName(a, b Statblock, reverse bool) int {
	return compareNameWith(defaultCollator, a, b, reverse)
}

// CompareNameLegacy is the old web list's alphabetic comparator, kept so
// the old behaviour can be selected and tested: the reverse flag is
// multiplied into the collation result and the product decides the sign,
// which never orders anything when not reversed.
func CompareNameLegacy(a, b Statblock, reverse bool) int {
	return legacyNameWith(defaultCollator, a, b, reverse)
}

func compareNameWith(c *nameCollator, a, b Statblock, reverse bool) int {
	r := c.compare(a.Name, b.Name)
	if reverse {
		return -r
	}
	return r
}

func legacyNameWith(c *nameCollator, a, b Statblock, reverse bool) int {
	if reverse && c.compare(a.Name, b.Name) != 0 {
		return -1
	}
	return 1
}

// ByPage returns ComparePage bound to reverse.
func ByPage(reverse bool) Comparator {
	return func(a, b Statblock) int {
		return ComparePage(a, b, reverse)
	}
}

// ByName returns an English name comparator using the given reverse
// semantics.
func ByName(order NameOrder, reverse bool) Comparator {
	return NameCollator(language.English, order, reverse)
}

// NameCollator returns a name comparator that collates for tag.
func NameCollator(tag language.Tag, order NameOrder, reverse bool) Comparator {
	c := defaultCollator
	if tag != language.English {
		c = newNameCollator(tag)
	}
	if order == NameLegacy {
		return func(a, b Statblock) int {
			return legacyNameWith(c, a, b, reverse)
		}
	}
	return func(a, b Statblock) int {
		return compareNameWith(c, a, b, reverse)
	}
}

// Then chains cmp with next, which breaks ties left by cmp.
func (cmp Comparator) Then(next Comparator) Comparator {
	if cmp == nil {
		return next
	}
	if next == nil {
		return cmp
	}
	return func(a, b Statblock) int {
		if r := cmp(a, b); r != 0 {
			return r
		}
		return next(a, b)
	}
}

// Sorted returns a stably sorted copy of items. A nil cmp keeps the input
// order.
func Sorted(items []Statblock, cmp Comparator) []Statblock {
	out := slices.Clone(items)
	if out == nil {
		out = []Statblock{}
	}
	if cmp == nil {
		return out
	}
	slices.SortStableFunc(out, cmp)
	return out
}
