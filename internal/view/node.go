package view

import tea "github.com/charmbracelet/bubbletea"

// DeleteRequested is emitted when an entry's delete control is activated.
type DeleteRequested struct {
	ID int
}

// Node is the on-screen handle of one entry: a label plus a delete control.
// It carries no item data beyond what it needs to draw and to address the
// delete request.
type Node struct {
	target int
	label  string
}

func NewNode(target int, label string) *Node {
	return &Node{target: target, label: label}
}

func (n *Node) Label() string { return n.label }

// Activate presses the delete control. Each call yields exactly one
// DeleteRequested message.
func (n *Node) Activate() tea.Cmd {
	id := n.target
	return func() tea.Msg { return DeleteRequested{ID: id} }
}
