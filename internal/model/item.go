package model

import "github.com/idilsaglam/todowidget/internal/view"

// Item is the domain model for a todo entry.
// The title is fixed at creation; rename means delete and re-add.
type Item struct {
	id    int
	title string
	node  *view.Node
}

func NewItem(id int, title string) *Item {
	return &Item{id: id, title: title, node: view.NewNode(id, title)}
}

func (it *Item) ID() int       { return it.id }
func (it *Item) Title() string { return it.title }

// Node is the item's rendering handle, built once and reused on every render.
func (it *Item) Node() *view.Node { return it.node }
