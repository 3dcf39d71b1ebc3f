// Package view owns the visible list container and its empty-state line.
package view

import (
	"slices"
	"strings"

	"github.com/idilsaglam/todowidget/internal/ui"
)

const DefaultEmptyText = "No TODOs"

// List is the rendering container. It only tracks attached nodes in render
// order; item data lives in the todolist package.
type List struct {
	nodes     []*Node
	empty     bool
	emptyText string
}

func New(emptyText string) *List {
	if strings.TrimSpace(emptyText) == "" {
		emptyText = DefaultEmptyText
	}
	l := &List{emptyText: emptyText}
	l.refresh()
	return l
}

// AppendItem attaches n at the end of the container.
func (l *List) AppendItem(n *Node) {
	if n == nil {
		return
	}
	l.nodes = append(l.nodes, n)
	l.refresh()
}

// RemoveItem detaches n. Nodes that are not attached are ignored.
func (l *List) RemoveItem(n *Node) {
	if i := slices.Index(l.nodes, n); i >= 0 {
		l.nodes = slices.Delete(l.nodes, i, i+1)
	}
	l.refresh()
}

func (l *List) ClearAll() {
	clear(l.nodes)
	l.nodes = l.nodes[:0]
	l.refresh()
}

// Empty reports whether the empty-state line is shown.
func (l *List) Empty() bool { return l.empty }

func (l *List) Len() int { return len(l.nodes) }

// NodeAt returns the node rendered at position i, or nil when out of range.
func (l *List) NodeAt(i int) *Node {
	if i < 0 || i >= len(l.nodes) {
		return nil
	}
	return l.nodes[i]
}

// Labels returns the rendered labels in on-screen order.
func (l *List) Labels() []string {
	out := make([]string, 0, len(l.nodes))
	for _, n := range l.nodes {
		out = append(out, n.label)
	}
	return out
}

func (l *List) refresh() { l.empty = len(l.nodes) == 0 }

// Render draws the entries, marking cursor when the list has focus.
func (l *List) Render(cursor int, focused bool) string {
	t := ui.Current()
	if l.empty {
		return t.Muted.Render(l.emptyText)
	}
	lines := make([]string, 0, len(l.nodes))
	for i, n := range l.nodes {
		prefix := "  "
		if focused && i == cursor {
			prefix = t.Selected.Render("> ")
		}
		ctrl := t.Success.Render("[" + t.DeleteMark + "]")
		lines = append(lines, prefix+ctrl+" "+n.label)
	}
	return strings.Join(lines, "\n")
}
