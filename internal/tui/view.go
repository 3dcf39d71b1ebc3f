package tui

import (
	"fmt"

	"github.com/idilsaglam/todowidget/internal/ui"
)

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	t := ui.Current()

	header := fmt.Sprintf("%s   %s %d  %s %s",
		t.Title.Render("Todos"),
		t.Accent.Render("Total"), a.list.Len(),
		t.Pending.Render("Sort"), a.list.SortOrder(),
	)

	lines := []string{
		header,
		"",
		a.input.View(),
		"",
		a.view.Render(a.cursor, a.focus == focusList),
		"",
		a.help.View(a.keys),
	}
	return ui.Panel(lines)
}
