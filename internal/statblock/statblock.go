// Package statblock holds the statblock record produced by pdf2vtt, the
// orderings and filters used by the list views, and the file loader.
package statblock

import (
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// keySpace namespaces statblock keys so they never collide with other
// UUID v5 values derived from the same strings.
var keySpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/jennis0/pdf2vtt/statblock"))

// Key identifies a statblock across renders independently of its position
// in any filtered or sorted view.
type Key = uuid.UUID

// NilKey is the zero Key. No loaded statblock has it.
var NilKey = uuid.Nil

type Source struct {
	Title   string   `yaml:"title"`
	Page    int      `yaml:"page"`
	URL     string   `yaml:"url,omitempty"`
	Authors []string `yaml:"authors,omitempty"`
}

type HitPoints struct {
	Average int    `yaml:"average"`
	Formula string `yaml:"formula"`
}

// Statblock is one creature entry. Name and Source.Page are the only fields
// the list views rely on; everything else feeds the detail pane.
type Statblock struct {
	Name      string
	Source    Source
	Size      string
	Type      string
	Alignment string
	CR        string
	AC        int
	HP        HitPoints
	Raw       map[string]any
	// Occurrence counts the earlier statblocks in the same loaded set with
	// the same name, source and page. See Disambiguate.
	Occurrence int
}

// Key returns the stable identity of s, derived from its name, source title,
// page and Occurrence. Names are compared exactly; titles ignore case.
func (s Statblock) Key() Key {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(s.Name))
	b.WriteByte(0)
	b.WriteString(strings.ToLower(strings.TrimSpace(s.Source.Title)))
	b.WriteByte(0)
	b.WriteString(strconv.Itoa(s.Source.Page))
	if s.Occurrence > 0 {
		b.WriteByte(0)
		b.WriteString(strconv.Itoa(s.Occurrence))
	}
	return uuid.NewSHA1(keySpace, []byte(b.String()))
}

// Disambiguate returns a copy of items where repeated statblocks (same
// name, source and page) are numbered in order, so every entry has its own
// Key. The first of each group keeps Occurrence 0.
func Disambiguate(items []Statblock) []Statblock {
	out := slices.Clone(items)
	seen := make(map[Key]int, len(out))
	for i := range out {
		out[i].Occurrence = 0
		base := out[i].Key()
		out[i].Occurrence = seen[base]
		seen[base]++
	}
	return out
}

// Reference renders the source as "Title p.N", or just the page when the
// title is unknown.
func (s Statblock) Reference() string {
	title := strings.TrimSpace(s.Source.Title)
	switch {
	case title == "" && s.Source.Page <= 0:
		return ""
	case title == "":
		return "p." + strconv.Itoa(s.Source.Page)
	case s.Source.Page <= 0:
		return title
	}
	return title + " p." + strconv.Itoa(s.Source.Page)
}

// IndexOfKey returns the position of the statblock with key k in items, or
// -1 when absent.
func IndexOfKey(items []Statblock, k Key) int {
	if k == NilKey {
		return -1
	}
	for i := range items {
		if items[i].Key() == k {
			return i
		}
	}
	return -1
}

// ParseKey parses a persisted key. An empty or malformed string yields
// NilKey.
func ParseKey(s string) Key {
	k, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return NilKey
	}
	return k
}
