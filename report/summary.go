package report

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
)

// Summary renders a per-class table of entry counts by check kind, with the
// class column padded to the widest name. Colors are applied only when the
// terminal supports them (gookit/color handles detection).
func (s *Store) Summary() string {
	s.mu.Lock()
	classes := s.sortedClassesLocked()
	counts := make(map[string]map[Kind]int, len(classes))
	for _, class := range classes {
		cr := s.classes[class]
		row := map[Kind]int{}
		for _, kind := range renderOrder {
			if msgs, ok := cr.kinds.Get(kind); ok {
				row[kind] = len(msgs)
			}
		}
		counts[class] = row
	}
	s.mu.Unlock()

	if len(classes) == 0 {
		return "No report entries recorded.\n"
	}

	classWidth := runewidth.StringWidth("Class")
	for _, class := range classes {
		if w := runewidth.StringWidth(class); w > classWidth {
			classWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(color.Bold.Sprint(pad("Class", classWidth)))
	for _, kind := range renderOrder {
		fmt.Fprintf(&b, "  %s", color.Bold.Sprint(pad(string(kind), kindWidth(kind))))
	}
	b.WriteString("\n")

	for _, class := range classes {
		b.WriteString(pad(class, classWidth))
		for _, kind := range renderOrder {
			n := counts[class][kind]
			cell := pad(fmt.Sprintf("%d", n), kindWidth(kind))
			if n == 0 {
				cell = color.Gray.Sprint(cell)
			} else {
				cell = color.Green.Sprint(cell)
			}
			fmt.Fprintf(&b, "  %s", cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func kindWidth(kind Kind) int {
	return runewidth.StringWidth(string(kind))
}

func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}
