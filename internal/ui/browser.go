// Package ui is the terminal browser around the statblock list: search and
// source filters, a sort selector, the list itself and a detail pane.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/vcrini/diceroll"
	"golang.org/x/text/message"

	"github.com/jennis0/pdf2vtt/internal/config"
	"github.com/jennis0/pdf2vtt/internal/observability"
	"github.com/jennis0/pdf2vtt/internal/state"
	"github.com/jennis0/pdf2vtt/internal/statblock"
	"github.com/jennis0/pdf2vtt/internal/ui/statblocklist"
	"github.com/jennis0/pdf2vtt/internal/ui/theme"
)

const helpText = " [black:gold]q[-:-] quit  [black:gold]/[-:-] search  [black:gold]tab/shift+tab[-:-] focus  [black:gold]enter/click[-:-] select  [black:gold]s[-:-] sort  [black:gold]r[-:-] roll HP  [black:gold]PgUp/PgDn[-:-] scroll details  [black:gold]esc[-:-] clear search "

const allSources = "All"

const (
	focusSearch = iota
	focusSource
	focusSort
	focusList
	focusDetail
)

// Browser owns the loaded statblocks and everything the list is rendered
// from. The selection is kept by key so it survives filtering and sorting.
type Browser struct {
	app    *tview.Application
	pages  *tview.Pages
	status *tview.TextView

	search     *tview.InputField
	sourceDrop *tview.DropDown
	sortDrop   *tview.DropDown
	list       *statblocklist.List
	detail     *tview.TextView

	focus    []tview.Primitive
	focusIdx int
	message  string

	cfg        config.Config
	log        observability.Logger
	printer    *message.Printer
	statblocks []statblock.Statblock
	sourceOpts []string
	selected   statblock.Key
	query      string
	source     string
	sortMode   statblock.SortMode
	nameOrder  statblock.NameOrder

	roll  func(expr string) (int, string, error)
	ready bool
}

// New builds the browser and restores st on top of cfg. An explicit sort in
// cfg wins over the remembered one.
func New(statblocks []statblock.Statblock, cfg config.Config, st state.State, log observability.Logger) *Browser {
	b := &Browser{
		app:        tview.NewApplication(),
		cfg:        cfg,
		log:        log.With("browser"),
		printer:    message.NewPrinter(cfg.Locale),
		statblocks: statblock.Disambiguate(statblocks),
		selected:   statblock.ParseKey(st.Selected),
		query:      st.Query,
		sortMode:   cfg.Sort,
		message:    "Ready.",
		roll:       diceroll.RollExpression,
	}
	if cfg.LegacyName {
		b.nameOrder = statblock.NameLegacy
	}
	if b.sortMode == statblock.SortNone {
		if mode, err := statblock.ParseSortMode(st.Sort); err == nil {
			b.sortMode = mode
		} else {
			b.log.Errorf("ignoring remembered sort: %v", err)
		}
	}
	b.sourceOpts = append([]string{allSources}, statblock.SourceTitles(b.statblocks)...)
	for _, opt := range b.sourceOpts[1:] {
		if opt == st.Source {
			b.source = opt
		}
	}
	if b.selected != statblock.NilKey && statblock.IndexOfKey(b.statblocks, b.selected) < 0 {
		b.log.Infof("remembered selection %s is no longer loaded", b.selected)
		b.selected = statblock.NilKey
	}

	b.build()
	b.refreshList()
	b.ready = true
	return b
}

// Run blocks until the user quits.
func (b *Browser) Run() error {
	return b.app.SetRoot(b.pages, true).EnableMouse(b.cfg.Mouse).Run()
}

// State returns what should be remembered for the next run.
func (b *Browser) State() state.State {
	st := state.State{Query: b.query, Source: b.source}
	if b.selected != statblock.NilKey {
		st.Selected = b.selected.String()
	}
	if b.sortMode != statblock.SortNone {
		st.Sort = string(b.sortMode)
	}
	return st
}

func (b *Browser) build() {
	b.search = tview.NewInputField().SetLabel(" Search ").SetFieldWidth(0).SetPlaceholder("statblock name...")
	b.search.SetText(b.query)
	b.search.SetChangedFunc(func(text string) {
		b.setQuery(text)
	})
	b.search.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			b.focusPanel(focusList)
		}
	})

	b.sourceDrop = newDropDown(" Source ")
	b.sourceDrop.SetOptions(b.sourceOpts, func(text string, _ int) {
		b.setSource(text)
	})

	modes := statblock.SortModes()
	sortOpts := make([]string, len(modes))
	for i, m := range modes {
		sortOpts[i] = string(m)
	}
	b.sortDrop = newDropDown(" Sort ")
	b.sortDrop.SetOptions(sortOpts, func(text string, _ int) {
		b.setSort(statblock.SortMode(text))
	})

	b.list = statblocklist.New()
	b.list.Table().SetBorder(true).SetTitle(" Statblocks ")

	filters := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(b.search, 0, 2, false).
		AddItem(b.sourceDrop, 0, 1, false).
		AddItem(b.sortDrop, 0, 1, false)

	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(filters, 1, 0, false).
		AddItem(b.list.Primitive(), 0, 1, true)

	b.detail = tview.NewTextView().SetDynamicColors(true).SetWrap(true)
	b.detail.SetBorder(true).SetTitle(" Details ")

	mainRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(left, 0, 1, true).
		AddItem(b.detail, 0, 1, false)

	b.status = tview.NewTextView().SetDynamicColors(true).SetText(helpText)
	b.status.SetBackgroundColor(theme.Background)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(mainRow, 0, 1, true).
		AddItem(b.status, 1, 0, false)

	b.pages = tview.NewPages().AddPage("main", root, true, true)
	b.focus = []tview.Primitive{b.search, b.sourceDrop, b.sortDrop, b.list.Primitive(), b.detail}

	// Select the restored options last: their callbacks refresh the list.
	b.sourceDrop.SetCurrentOption(indexOf(b.sourceOpts, b.source))
	b.sortDrop.SetCurrentOption(indexOf(sortOpts, string(b.sortMode)))

	b.focusIdx = focusList
	b.app.SetFocus(b.list.Primitive())
	b.app.SetInputCapture(b.handleGlobalKeys)
}

func newDropDown(label string) *tview.DropDown {
	d := tview.NewDropDown().SetLabel(label)
	d.SetFieldBackgroundColor(theme.Background)
	d.SetFieldTextColor(theme.Text)
	d.SetListStyles(theme.Plain, theme.Highlight)
	return d
}

func indexOf(opts []string, v string) int {
	for i, o := range opts {
		if o == v {
			return i
		}
	}
	return 0
}

func (b *Browser) handleGlobalKeys(ev *tcell.EventKey) *tcell.EventKey {
	focus := b.app.GetFocus()
	_, focusIsInput := focus.(*tview.InputField)

	if focusIsInput && ev.Key() == tcell.KeyEsc {
		b.search.SetText("")
		b.focusPanel(focusList)
		return nil
	}

	switch ev.Key() {
	case tcell.KeyCtrlC:
		b.app.Stop()
		return nil
	case tcell.KeyTAB:
		b.focusNext()
		return nil
	case tcell.KeyBacktab:
		b.focusPrev()
		return nil
	case tcell.KeyPgUp:
		b.scrollDetailByPage(-1)
		return nil
	case tcell.KeyPgDn:
		b.scrollDetailByPage(1)
		return nil
	}

	if focusIsInput || ev.Key() != tcell.KeyRune {
		return ev
	}
	switch ev.Rune() {
	case 'q':
		b.app.Stop()
		return nil
	case '/':
		b.focusPanel(focusSearch)
		return nil
	case 's':
		b.cycleSort()
		return nil
	case 'r':
		b.rollHP()
		return nil
	}
	return ev
}

func (b *Browser) focusNext() {
	b.focusPanel((b.currentFocus() + 1) % len(b.focus))
}

func (b *Browser) focusPrev() {
	b.focusPanel((b.currentFocus() - 1 + len(b.focus)) % len(b.focus))
}

// currentFocus returns the index in b.focus of the focused widget. The mouse
// moves focus without going through focusPanel, so the app is asked first.
func (b *Browser) currentFocus() int {
	focus := b.app.GetFocus()
	for i, p := range b.focus {
		if p == focus || p.HasFocus() {
			b.focusIdx = i
			break
		}
	}
	return b.focusIdx
}

func (b *Browser) focusPanel(idx int) {
	b.focusIdx = idx
	b.app.SetFocus(b.focus[idx])
	b.refreshStatus()
}

// detailPageLines is the scroll step before the detail pane has been laid
// out.
const detailPageLines = 12

// scrollDetailByPage moves the detail pane half a screen per step.
func (b *Browser) scrollDetailByPage(direction int) {
	step := detailPageLines
	if _, _, _, h := b.detail.GetInnerRect(); h > 0 {
		step = max(h/2, 1)
	}
	row, col := b.detail.GetScrollOffset()
	b.detail.ScrollTo(max(row+direction*step, 0), col)
}

func (b *Browser) setQuery(q string) {
	b.query = q
	b.refreshList()
	b.persist()
}

func (b *Browser) setSource(text string) {
	if text == allSources {
		text = ""
	}
	b.source = text
	b.refreshList()
	b.persist()
}

func (b *Browser) setSort(mode statblock.SortMode) {
	if _, err := statblock.ParseSortMode(string(mode)); err != nil {
		b.log.Errorf("%v", err)
		return
	}
	b.sortMode = mode
	b.log.Debugf("sort mode %s", mode)
	b.refreshList()
	b.persist()
}

// cycleSort moves the sort selector to the next mode. The selector's
// callback applies it.
func (b *Browser) cycleSort() {
	next := b.sortMode.Next()
	for i, m := range statblock.SortModes() {
		if m == next {
			b.sortDrop.SetCurrentOption(i)
			return
		}
	}
}

// handleClick is the list's OnClick. pos is a position in the list's
// current view.
func (b *Browser) handleClick(pos int) {
	s, ok := b.list.View().At(pos)
	if !ok {
		b.log.Errorf("click on position %d outside %d items", pos, b.list.View().ItemCount())
		return
	}
	b.selected = s.Key()
	b.message = "Selected " + s.Name + "."
	b.log.Debugf("selected %q at position %d", s.Name, pos)
	b.refreshList()
	b.persist()
}

func (b *Browser) currentSelection() (statblock.Statblock, bool) {
	if i := statblock.IndexOfKey(b.statblocks, b.selected); i >= 0 {
		return b.statblocks[i], true
	}
	return statblock.Statblock{}, false
}

func (b *Browser) rollHP() {
	s, ok := b.currentSelection()
	switch {
	case !ok:
		b.message = "No statblock selected."
	case s.HP.Formula == "":
		b.message = fmt.Sprintf("%s has no hit dice.", s.Name)
	default:
		total, breakdown, err := b.roll(compactFormula(s.HP.Formula))
		if err != nil {
			b.log.Errorf("roll %q for %s: %v", s.HP.Formula, s.Name, err)
			b.message = fmt.Sprintf("Cannot roll %s: %v", s.HP.Formula, err)
			break
		}
		b.message = fmt.Sprintf("%s HP %d (%s)", s.Name, total, breakdown)
	}
	b.refreshStatus()
}

func (b *Browser) props() statblocklist.Props {
	return statblocklist.Props{
		Title:      b.cfg.Title,
		Statblocks: b.statblocks,
		OnClick:    b.handleClick,
		Selected:   statblocklist.SelectKey(b.selected),
		Filter:     statblock.All(statblock.NameContains(b.query), statblock.FromSource(b.source)),
		Sort:       b.sortMode.Comparator(b.cfg.Locale, b.nameOrder),
	}
}

func (b *Browser) refreshList() {
	if b.list == nil || b.detail == nil || b.status == nil {
		return
	}
	b.list.SetProps(b.props())
	b.refreshDetail()
	b.refreshStatus()
}

func (b *Browser) refreshDetail() {
	s, ok := b.currentSelection()
	if !ok {
		b.detail.SetText("No statblock selected.")
		return
	}
	b.detail.SetText(buildDetails(s))
	b.detail.ScrollToBeginning()
}

func (b *Browser) refreshStatus() {
	if b.status == nil {
		return
	}
	msg := b.message
	if msg == "" {
		msg = "Ready."
	}
	b.status.SetText(fmt.Sprintf("%s | sort:[black:gold] %s [-:-] | %s [black:gold]msg[-:-] %s",
		b.countLine(), b.sortMode, helpText, tview.Escape(msg)))
}

func (b *Browser) countLine() string {
	return b.printer.Sprintf("%d of %d statblocks", b.list.View().ItemCount(), len(b.statblocks))
}

func (b *Browser) persist() {
	if !b.ready {
		return
	}
	if err := state.Save(b.cfg.StatePath, b.State()); err != nil {
		b.log.Errorf("save state %s: %v", b.cfg.StatePath, err)
	}
}
