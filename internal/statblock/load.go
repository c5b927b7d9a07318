package statblock

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Load reads a statblock file. YAML and JSON are both accepted; the
// document is either a list of statblocks or a mapping holding one under
// "statblocks" or "monsters", optionally with a shared "source".
func Load(path string) ([]Statblock, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, newLoadError(ErrorRead, path, -1, err)
	}
	return decode(path, b)
}

// LoadBytes decodes statblocks from an in-memory document.
func LoadBytes(b []byte) ([]Statblock, error) {
	return decode("", b)
}

// LoadAll loads every path concurrently and concatenates the results in
// argument order. The first failure cancels the remaining loads.
func LoadAll(ctx context.Context, paths ...string) ([]Statblock, error) {
	results := make([][]Statblock, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sbs, err := Load(path)
			if err != nil {
				return err
			}
			results[i] = sbs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Statblock
	for _, r := range results {
		out = append(out, r...)
	}
	return Disambiguate(out), nil
}

func decode(path string, b []byte) ([]Statblock, error) {
	var doc any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, newLoadError(ErrorDecode, path, -1, err)
	}

	entries, outer, err := splitDocument(doc)
	if err != nil {
		return nil, newLoadError(ErrorDecode, path, -1, err)
	}
	if len(entries) == 0 {
		return nil, newLoadError(ErrorEmpty, path, -1, nil)
	}

	out := make([]Statblock, 0, len(entries))
	for i, entry := range entries {
		r, ok := toRecord(entry)
		if !ok {
			return nil, newLoadError(ErrorDecode, path, i, fmt.Errorf("entry is %T, want a mapping", entry))
		}
		name := r.text("name")
		if name == "" {
			return nil, newLoadError(ErrorMissingName, path, i, nil)
		}
		out = append(out, Statblock{
			Name:      name,
			Source:    r.source(outer),
			Size:      r.text("size"),
			Type:      r.nested("type"),
			Alignment: r.text("alignment"),
			CR:        r.nested("cr"),
			AC:        r.armorClass(),
			HP:        r.hitPoints(),
			Raw:       r,
		})
	}
	return Disambiguate(out), nil
}

func splitDocument(doc any) ([]any, Source, error) {
	if doc == nil {
		return nil, Source{}, nil
	}
	if list, ok := doc.([]any); ok {
		return list, Source{}, nil
	}
	m, ok := toRecord(doc)
	if !ok {
		return nil, Source{}, fmt.Errorf("document is %T, want a list or a mapping", doc)
	}
	outer := record{"source": m["source"]}.source(Source{})
	for _, key := range []string{"statblocks", "monsters"} {
		v, present := m[key]
		if !present {
			continue
		}
		if v == nil {
			return nil, outer, nil
		}
		list, ok := v.([]any)
		if !ok {
			return nil, outer, fmt.Errorf("%q is %T, want a list", key, v)
		}
		return list, outer, nil
	}
	return nil, outer, errors.New(`mapping has neither "statblocks" nor "monsters"`)
}

// record is one decoded YAML/JSON mapping. Its accessors project loosely
// typed fields onto the Statblock model.
type record map[string]any

func toRecord(v any) (record, bool) {
	switch x := v.(type) {
	case map[string]any:
		return record(x), true
	case map[any]any:
		out := make(record, len(x))
		for k, val := range x {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}

// text returns the first of keys holding a non-blank scalar.
func (r record) text(keys ...string) string {
	for _, k := range keys {
		if s := scalarText(r[k]); s != "" {
			return s
		}
	}
	return ""
}

func (r record) number(key string) (int, bool) {
	return scalarInt(r[key])
}

// texts accepts either a list of scalars or a single scalar.
func (r record) texts(key string) []string {
	items, ok := r[key].([]any)
	if !ok {
		if s := scalarText(r[key]); s != "" {
			return []string{s}
		}
		return nil
	}
	var out []string
	for _, item := range items {
		if s := scalarText(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// nested reads fields written either as a scalar or as a mapping holding
// the value under the same key, e.g. `cr: 2` and `cr: {cr: 2}`.
func (r record) nested(key string) string {
	if s := r.text(key); s != "" {
		return s
	}
	if inner, ok := toRecord(r[key]); ok {
		return inner.text(key)
	}
	return ""
}

// source reads "source" as a title string or a mapping, falls back to a
// top-level "page", then fills the gaps from outer. Pages never go below 0.
func (r record) source(outer Source) Source {
	src := Source{Page: -1}
	if inner, ok := toRecord(r["source"]); ok {
		src.Title = inner.text("title", "name")
		if p, ok := inner.number("page"); ok {
			src.Page = p
		}
		src.URL = inner.text("url")
		src.Authors = inner.texts("authors")
	} else {
		src.Title = r.text("source")
	}
	if src.Page < 0 {
		if p, ok := r.number("page"); ok {
			src.Page = p
		}
	}

	if src.Title == "" {
		src.Title = outer.Title
	}
	if src.URL == "" {
		src.URL = outer.URL
	}
	if len(src.Authors) == 0 {
		src.Authors = outer.Authors
	}
	if src.Page < 0 {
		src.Page = max(outer.Page, 0)
	}
	return src
}

// armorClass takes the first usable value of "ac", which may be a number, a
// mapping with "ac", or a list of either.
func (r record) armorClass() int {
	values, ok := r["ac"].([]any)
	if !ok {
		values = []any{r["ac"]}
	}
	for _, v := range values {
		if inner, ok := toRecord(v); ok {
			v = inner["ac"]
		}
		if ac, ok := scalarInt(v); ok {
			return ac
		}
	}
	return 0
}

func (r record) hitPoints() HitPoints {
	if inner, ok := toRecord(r["hp"]); ok {
		avg, _ := inner.number("average")
		return HitPoints{Average: avg, Formula: inner.text("formula")}
	}
	avg, _ := r.number("hp")
	return HitPoints{Average: avg}
}

func scalarText(v any) string {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return ""
}

func scalarInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int64:
		return int(x), true
	case float64:
		return int(x), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		return n, err == nil
	}
	return 0, false
}
