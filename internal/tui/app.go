// Package tui runs the widget as a Bubble Tea program: a one-line form on
// top, the rendered list below it.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todowidget/internal/config"
	"github.com/idilsaglam/todowidget/internal/todolist"
	"github.com/idilsaglam/todowidget/internal/view"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// readyMsg is the startup signal: the program is up and can render.
type readyMsg struct{}

// App is the single application context handed to the program. It owns the
// list model and its view for the lifetime of the process.
type App struct {
	list   *todolist.List
	view   *view.List
	seed   string
	logger *log.Logger

	input    textinput.Model
	help     help.Model
	keys     keyMap
	focus    focusArea
	cursor   int
	ready    bool
	quitting bool
}

func NewApp(cfg *config.Config, logger *log.Logger) (*App, error) {
	tag, err := cfg.Language()
	if err != nil {
		return nil, err
	}
	v := view.New(cfg.EmptyText)
	l := todolist.New(v,
		todolist.WithSortOrder(cfg.Sort),
		todolist.WithLocale(tag),
		todolist.WithLogger(logger),
	)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = cfg.Placeholder
	ti.CharLimit = cfg.CharLimit
	ti.Focus()

	return &App{
		list:   l,
		view:   v,
		seed:   cfg.SeedTitle,
		logger: logger,
		input:  ti,
		help:   help.New(),
		keys:   defaultKeys(),
	}, nil
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg { return readyMsg{} })
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case readyMsg:
		a.start()
		return a, nil
	case view.DeleteRequested:
		a.list.Delete(msg.ID)
		a.clampCursor()
		return a, nil
	case tea.WindowSizeMsg:
		a.help.Width = msg.Width
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.quitting = true
			return a, tea.Quit
		}
		if key.Matches(msg, a.keys.Focus) {
			return a, a.toggleFocus()
		}
		if a.focus == focusInput {
			return a.updateInput(msg)
		}
		return a.updateList(msg)
	}

	if a.focus == focusInput {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

// start seeds the default entry and draws the first frame. Repeated ready
// signals are ignored.
func (a *App) start() {
	if a.ready {
		return
	}
	a.ready = true
	if a.seed != "" {
		a.list.Add(a.seed)
	}
	a.list.Refresh()
	a.logger.Info("widget ready", "items", a.list.Len(), "order", a.list.SortOrder())
}

func (a *App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Submit) {
		a.submit()
		return a, nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submit adds the current input as a new entry and always clears the field.
func (a *App) submit() {
	a.list.Add(a.input.Value())
	a.input.Reset()
}

func (a *App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.quitting = true
		return a, tea.Quit
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cursor < a.view.Len()-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.Delete):
		if n := a.view.NodeAt(a.cursor); n != nil {
			return a, n.Activate()
		}
	case key.Matches(msg, a.keys.Sort):
		a.list.SetSortOrder(a.list.SortOrder().Next())
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	}
	return a, nil
}

func (a *App) toggleFocus() tea.Cmd {
	if a.focus == focusInput {
		a.focus = focusList
		a.input.Blur()
		a.clampCursor()
		return nil
	}
	a.focus = focusInput
	return a.input.Focus()
}

func (a *App) clampCursor() {
	if a.cursor >= a.view.Len() {
		a.cursor = a.view.Len() - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// Run starts the program in the alternate screen and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, a *App) error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
