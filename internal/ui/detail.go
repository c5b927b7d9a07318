package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/jennis0/pdf2vtt/internal/statblock"
)

// buildDetails renders s for the detail pane. The first line is the name,
// highlighted.
func buildDetails(s statblock.Statblock) string {
	var b strings.Builder
	b.WriteString("[yellow]" + tview.Escape(s.Name) + "[-]\n")
	if ref := s.Reference(); ref != "" {
		b.WriteString("[gray]" + tview.Escape(ref) + "[-]\n")
	}

	var kind []string
	for _, part := range []string{s.Size, s.Type} {
		if part = strings.TrimSpace(part); part != "" {
			kind = append(kind, part)
		}
	}
	line := strings.Join(kind, " ")
	if a := strings.TrimSpace(s.Alignment); a != "" {
		if line != "" {
			line += ", "
		}
		line += a
	}
	if line != "" {
		b.WriteString("[::i]" + tview.Escape(line) + "[::-]\n")
	}
	b.WriteString("\n")

	if s.AC > 0 {
		fmt.Fprintf(&b, "[gold]Armor Class[-] %d\n", s.AC)
	}
	if hp := formatHP(s.HP); hp != "" {
		fmt.Fprintf(&b, "[gold]Hit Points[-] %s\n", tview.Escape(hp))
	}
	if cr := strings.TrimSpace(s.CR); cr != "" {
		fmt.Fprintf(&b, "[gold]Challenge[-] %s\n", tview.Escape(cr))
	}

	if len(s.Source.Authors) > 0 || s.Source.URL != "" {
		b.WriteString("\n")
	}
	if len(s.Source.Authors) > 0 {
		fmt.Fprintf(&b, "[gold]Authors[-] %s\n", tview.Escape(strings.Join(s.Source.Authors, ", ")))
	}
	if s.Source.URL != "" {
		fmt.Fprintf(&b, "[gold]URL[-] %s\n", tview.Escape(s.Source.URL))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatHP(hp statblock.HitPoints) string {
	f := strings.TrimSpace(hp.Formula)
	switch {
	case hp.Average > 0 && f != "":
		return fmt.Sprintf("%d (%s)", hp.Average, f)
	case hp.Average > 0:
		return fmt.Sprintf("%d", hp.Average)
	}
	return f
}

// compactFormula drops the blanks pdf2vtt leaves around operators, e.g.
// "2d8 + 2" becomes "2d8+2".
func compactFormula(f string) string {
	return strings.Join(strings.Fields(f), "")
}
