package statblocklist

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/jennis0/pdf2vtt/internal/ui/theme"
)

const minDividerWidth = 20

var (
	headerStyle   = theme.Heading
	dividerStyle  = theme.Rule
	itemStyle     = theme.Plain
	selectedStyle = theme.Highlight
	cursorStyle   = theme.Heading.Attributes(tcell.AttrBold | tcell.AttrUnderline)
)

// List draws Render's rows into a single-column tview.Table. Mouse clicks
// and Enter on an item row call Props.OnClick with the row's filtered
// position.
type List struct {
	table *tview.Table
	props Props
	view  View
}

func New() *List {
	l := &List{table: tview.NewTable()}
	l.table.SetSelectable(true, false)
	l.table.SetSelectedStyle(cursorStyle)
	l.table.SetSelectedFunc(func(int, int) {
		l.ActivateCursor()
	})
	return l
}

// SetProps replaces the inputs and redraws the table contents.
func (l *List) SetProps(p Props) *List {
	cursor := l.CursorPos()
	l.props = p
	l.view = Render(p)
	l.fill(cursor)
	return l
}

func (l *List) Props() Props { return l.props }

// View returns the last rendered view.
func (l *List) View() View { return l.view }

// Table exposes the underlying table, e.g. to set a border or title.
func (l *List) Table() *tview.Table { return l.table }

// Primitive is the widget to add to a layout.
func (l *List) Primitive() tview.Primitive { return l.table }

// CursorPos returns the filtered position under the keyboard cursor, or -1.
func (l *List) CursorPos() int {
	row, _ := l.table.GetSelection()
	return l.posAt(row)
}

// MoveCursor puts the keyboard cursor on the item at pos.
func (l *List) MoveCursor(pos int) {
	if row := l.view.RowOf(pos); row >= 0 {
		l.table.Select(row, 0)
	}
}

// ActivateCursor reports the item under the keyboard cursor through
// OnClick, as if it was clicked. It does nothing when the cursor is not on
// an item.
func (l *List) ActivateCursor() {
	if pos := l.CursorPos(); pos >= 0 {
		l.activate(pos)
	}
}

func (l *List) activate(pos int) {
	l.props.OnClick(pos)
}

func (l *List) posAt(row int) int {
	if row < 0 || row >= len(l.view.Rows) {
		return -1
	}
	r := l.view.Rows[row]
	if r.Kind != RowItem {
		return -1
	}
	return r.Pos
}

// fill rebuilds the table from l.view. cursor is the position the keyboard
// cursor was on before the update.
func (l *List) fill(cursor int) {
	l.table.Clear()

	divider := strings.Repeat("─", l.dividerWidth())
	for i, r := range l.view.Rows {
		var cell *tview.TableCell
		switch r.Kind {
		case RowHeader:
			cell = tview.NewTableCell(tview.Escape(r.Text)).
				SetAlign(tview.AlignCenter).
				SetStyle(headerStyle).
				SetSelectable(false)
		case RowDivider:
			cell = tview.NewTableCell(divider).
				SetStyle(dividerStyle).
				SetSelectable(false)
		case RowItem:
			pos := r.Pos
			style := itemStyle
			if r.Selected {
				style = selectedStyle
			}
			cell = tview.NewTableCell(" " + tview.Escape(r.Text)).
				SetStyle(style).
				SetReference(pos).
				SetClickedFunc(func() bool {
					l.activate(pos)
					return false
				})
			if r.Selected {
				cell.SetSelectedStyle(selectedStyle.Attributes(tcell.AttrBold | tcell.AttrUnderline))
			}
		}
		l.table.SetCell(i, 0, cell.SetExpansion(1))
	}

	switch {
	case l.view.SelectedPos >= 0:
		l.MoveCursor(l.view.SelectedPos)
	case cursor >= 0 && cursor < l.view.ItemCount():
		l.MoveCursor(cursor)
	case l.view.ItemCount() > 0:
		l.MoveCursor(0)
	}
}

func (l *List) dividerWidth() int {
	w := minDividerWidth
	for _, r := range l.view.Rows {
		// Item text is drawn with one leading space.
		if rw := tview.TaggedStringWidth(tview.Escape(r.Text)) + 2; rw > w {
			w = rw
		}
	}
	return w
}
