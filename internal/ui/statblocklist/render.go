// Package statblocklist renders a filterable list of statblocks with an
// optional title header, a divider after every row, and a caller-owned
// selection highlight.
//
// Render is a pure function of Props; the List widget draws its result
// into a tview.Table and reports activations through Props.OnClick. The
// component never changes the selection itself: the caller decides what a
// click means and passes the new selection back through SetProps.
package statblocklist

import (
	"strconv"

	"github.com/jennis0/pdf2vtt/internal/statblock"
)

type Props struct {
	Title      string
	Statblocks []statblock.Statblock
	// OnClick receives the filtered position of the activated row. It must
	// be set whenever rows can be activated.
	OnClick  func(pos int)
	Selected Selection
	Filter   statblock.Filter
	// Sort orders the filtered rows. nil keeps the input order.
	Sort statblock.Comparator
}

type RowKind int

const (
	RowHeader RowKind = iota
	RowItem
	RowDivider
)

func (k RowKind) String() string {
	switch k {
	case RowHeader:
		return "header"
	case RowItem:
		return "item"
	case RowDivider:
		return "divider"
	}
	return "RowKind(" + strconv.Itoa(int(k)) + ")"
}

// Row is one line of the rendered list. Pos is the filtered position for
// item rows and -1 for headers and dividers.
type Row struct {
	Kind     RowKind
	Text     string
	Pos      int
	Selected bool
	ID       string
}

// View is the output of Render.
type View struct {
	Rows []Row
	// Items is the filtered (and sorted, when Props.Sort is set) sequence
	// that item positions index into.
	Items []statblock.Statblock
	// SelectedPos is the highlighted position, or -1.
	SelectedPos int
}

// Render computes the rows for p.
func Render(p Props) View {
	items := statblock.Sorted(statblock.Apply(p.Statblocks, p.Filter), p.Sort)
	selected := p.Selected.Resolve(items)

	rows := make([]Row, 0, 2*len(items)+2)
	if p.Title != "" {
		rows = append(rows,
			Row{Kind: RowHeader, Text: p.Title, Pos: -1, ID: "header-" + p.Title},
			Row{Kind: RowDivider, Pos: -1, ID: "header-divider"},
		)
	}
	for i, s := range items {
		id := rowID(s.Name, i)
		rows = append(rows,
			Row{Kind: RowItem, Text: s.Name, Pos: i, Selected: i == selected, ID: id},
			Row{Kind: RowDivider, Pos: -1, ID: id + "-divider"},
		)
	}
	return View{Rows: rows, Items: items, SelectedPos: selected}
}

func rowID(name string, pos int) string {
	return name + "#" + strconv.Itoa(pos)
}

// ItemCount returns the number of item rows in v.
func (v View) ItemCount() int {
	return len(v.Items)
}

// RowOf returns the index in v.Rows of the item row at pos, or -1.
func (v View) RowOf(pos int) int {
	for i, r := range v.Rows {
		if r.Kind == RowItem && r.Pos == pos {
			return i
		}
	}
	return -1
}

// At returns the statblock shown at pos.
func (v View) At(pos int) (statblock.Statblock, bool) {
	if pos < 0 || pos >= len(v.Items) {
		return statblock.Statblock{}, false
	}
	return v.Items[pos], true
}
