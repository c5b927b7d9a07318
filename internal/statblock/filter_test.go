package statblock

import (
	"reflect"
	"testing"
)

func names(items []Statblock) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		out = append(out, s.Name)
	}
	return out
}

func TestApply(t *testing.T) {
	in := []Statblock{sb("Goblin", 3), sb("Orc", 7), sb("Goblin Boss", 4), sb("Ogre", 9)}

	if got := Apply(in, nil); len(got) != len(in) {
		t.Fatalf("nil filter: expected %d, got %d", len(in), len(got))
	}

	got := Apply(in, NameContains(" gob "))
	if !reflect.DeepEqual(names(got), []string{"Goblin", "Goblin Boss"}) {
		t.Fatalf("unexpected filtered names: %v", names(got))
	}

	got = Apply(in, func(s Statblock) bool { return s.Source.Page%2 == 1 })
	if !reflect.DeepEqual(names(got), []string{"Goblin", "Orc", "Ogre"}) {
		t.Fatalf("order not preserved: %v", names(got))
	}

	if got := Apply(nil, nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	in := []Statblock{sb("A", 1), sb("B", 2), sb("C", 3)}
	before := names(in)
	_ = Apply(in, func(s Statblock) bool { return s.Name != "B" })
	if !reflect.DeepEqual(names(in), before) {
		t.Fatalf("input changed: %v", names(in))
	}
}

func TestFilterBuilders(t *testing.T) {
	a := Statblock{Name: "Aboleth", Source: Source{Title: "Monster Manual", Page: 13}}
	b := Statblock{Name: "Bandit", Source: Source{Title: "Tome of Beasts", Page: 40}}

	if !FromSource("monster manual")(a) || FromSource("monster manual")(b) {
		t.Fatal("FromSource mismatch")
	}
	if !FromSource("")(b) {
		t.Fatal("empty source should match everything")
	}
	if !PageBetween(10, 20)(a) || PageBetween(10, 20)(b) {
		t.Fatal("PageBetween mismatch")
	}
	if !PageBetween(30, 0)(b) {
		t.Fatal("open upper bound should match")
	}
	f := All(NameContains("b"), nil, FromSource("Tome of Beasts"))
	if f(a) || !f(b) {
		t.Fatal("All mismatch")
	}
	if !All()(a) {
		t.Fatal("empty All should accept")
	}
}

func TestSourceTitles(t *testing.T) {
	in := []Statblock{
		{Name: "A", Source: Source{Title: "Tome"}},
		{Name: "B", Source: Source{Title: "Manual"}},
		{Name: "C", Source: Source{Title: "tome"}},
		{Name: "D"},
	}
	if got := SourceTitles(in); !reflect.DeepEqual(got, []string{"Tome", "Manual"}) {
		t.Fatalf("unexpected titles: %v", got)
	}
}

func TestKeyStableAndDistinct(t *testing.T) {
	a := sb("Goblin", 3)
	if a.Key() != sb("Goblin ", 3).Key() {
		t.Fatal("key should ignore surrounding blanks")
	}
	if a.Key() == sb("goblin", 3).Key() {
		t.Fatal("names differing by case should give different keys")
	}
	if a.Key() == sb("Goblin", 4).Key() {
		t.Fatal("different pages should give different keys")
	}
	if a.Key() == NilKey {
		t.Fatal("key should not be nil")
	}

	items := []Statblock{sb("Orc", 1), a}
	if got := IndexOfKey(items, a.Key()); got != 1 {
		t.Fatalf("IndexOfKey = %d, want 1", got)
	}
	if got := IndexOfKey(items, NilKey); got != -1 {
		t.Fatalf("IndexOfKey(nil) = %d, want -1", got)
	}
	if got := ParseKey(a.Key().String()); got != a.Key() {
		t.Fatalf("ParseKey round trip failed: %v", got)
	}
	if got := ParseKey("nope"); got != NilKey {
		t.Fatalf("ParseKey(bad) = %v, want nil", got)
	}
}

func TestReference(t *testing.T) {
	tests := []struct {
		src  Source
		want string
	}{
		{Source{Title: "Monster Manual", Page: 12}, "Monster Manual p.12"},
		{Source{Title: "Monster Manual"}, "Monster Manual"},
		{Source{Page: 7}, "p.7"},
		{Source{}, ""},
	}
	for _, tt := range tests {
		if got := (Statblock{Source: tt.src}).Reference(); got != tt.want {
			t.Fatalf("Reference(%+v) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestDisambiguateDuplicates(t *testing.T) {
	items := []Statblock{sb("Goblin", 166), sb("Orc", 246), sb("Goblin", 166), sb("Goblin", 166)}
	got := Disambiguate(items)

	if got[0].Occurrence != 0 || got[2].Occurrence != 1 || got[3].Occurrence != 2 {
		t.Fatalf("unexpected occurrences: %d %d %d", got[0].Occurrence, got[2].Occurrence, got[3].Occurrence)
	}
	if got[0].Key() != items[0].Key() {
		t.Fatal("first occurrence should keep its plain key")
	}
	seen := map[Key]bool{}
	for i, s := range got {
		if seen[s.Key()] {
			t.Fatalf("entry %d shares a key", i)
		}
		seen[s.Key()] = true
		if IndexOfKey(got, s.Key()) != i {
			t.Fatalf("IndexOfKey should find entry %d", i)
		}
	}
	if items[2].Occurrence != 0 {
		t.Fatal("Disambiguate modified its input")
	}
	if again := Disambiguate(got); again[2].Occurrence != 1 || again[3].Occurrence != 2 {
		t.Fatal("Disambiguate should be idempotent")
	}
}
