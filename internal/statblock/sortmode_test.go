package statblock

import (
	"testing"

	"golang.org/x/text/language"
)

func TestParseSortMode(t *testing.T) {
	cases := []struct {
		in      string
		want    SortMode
		wantErr bool
	}{
		{"", SortNone, false},
		{"page", SortPage, false},
		{" Page-Desc ", SortPageDesc, false},
		{"NAME", SortName, false},
		{"name-desc", SortNameDesc, false},
		{"alphabetical", SortNone, true},
	}
	for _, tc := range cases {
		got, err := ParseSortMode(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseSortMode(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("ParseSortMode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSortModeNextCycles(t *testing.T) {
	modes := SortModes()
	m := modes[0]
	for i := 1; i <= len(modes); i++ {
		m = m.Next()
		if want := modes[i%len(modes)]; m != want {
			t.Fatalf("step %d: got %q, want %q", i, m, want)
		}
	}
	if got := SortMode("bogus").Next(); got != SortNone {
		t.Fatalf("unknown mode should restart at none, got %q", got)
	}
}

func TestSortModeComparator(t *testing.T) {
	if SortNone.Comparator(language.English, NameCollated) != nil {
		t.Fatal("none should have no comparator")
	}
	items := []Statblock{sb("Bat", 5), sb("Ant", 9), sb("Cat", 1)}
	cases := map[SortMode][]string{
		SortPage:     {"Cat", "Bat", "Ant"},
		SortPageDesc: {"Ant", "Bat", "Cat"},
		SortName:     {"Ant", "Bat", "Cat"},
		SortNameDesc: {"Cat", "Bat", "Ant"},
	}
	for mode, want := range cases {
		got := names(Sorted(items, mode.Comparator(language.English, NameCollated)))
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%s: got %v, want %v", mode, got, want)
			}
		}
	}
}
