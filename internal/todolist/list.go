// Package todolist owns the ordered collection of items and keeps the
// rendered view in step with it.
package todolist

import (
	"cmp"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/idilsaglam/todowidget/internal/model"
	"github.com/idilsaglam/todowidget/internal/view"
)

// View is the container the list renders into.
type View interface {
	AppendItem(n *view.Node)
	RemoveItem(n *view.Node)
	ClearAll()
}

type List struct {
	nextID   int
	items    []*model.Item
	order    model.SortOrder
	view     View
	collator *collate.Collator
	logger   *log.Logger
}

type Option func(*List)

func WithSortOrder(o model.SortOrder) Option {
	return func(l *List) { l.order = o }
}

// WithLocale sets the language used for alphabetical comparison.
func WithLocale(tag language.Tag) Option {
	return func(l *List) { l.collator = collate.New(tag) }
}

func WithLogger(logger *log.Logger) Option {
	return func(l *List) { l.logger = logger }
}

func New(v View, opts ...Option) *List {
	l := &List{
		nextID:   1,
		view:     v,
		collator: collate.New(language.English),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add inserts a new item and re-renders the whole view. Blank titles are
// ignored and reported with ok == false.
func (l *List) Add(title string) (id int, ok bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, false
	}
	id = l.nextID
	l.nextID++
	l.items = append(l.items, model.NewItem(id, title))
	l.sort()
	l.render()
	l.logger.Debug("todo added", "id", id, "title", title, "order", l.order)
	return id, true
}

// Delete removes the item with the given id and detaches only its node.
// Unknown ids leave the list and view untouched.
func (l *List) Delete(id int) bool {
	i := slices.IndexFunc(l.items, func(it *model.Item) bool { return it.ID() == id })
	if i < 0 {
		l.logger.Debug("delete of unknown todo ignored", "id", id)
		return false
	}
	it := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	l.view.RemoveItem(it.Node())
	l.logger.Debug("todo deleted", "id", id, "title", it.Title())
	return true
}

func (l *List) SetSortOrder(o model.SortOrder) {
	l.order = o
	l.sort()
	l.render()
	l.logger.Debug("sort order changed", "order", o)
}

func (l *List) SortOrder() model.SortOrder { return l.order }

func (l *List) Len() int { return len(l.items) }

// Items returns a snapshot of the collection in its current order.
func (l *List) Items() []*model.Item { return slices.Clone(l.items) }

func (l *List) sort() {
	switch l.order {
	case model.Alphabetical:
		slices.SortStableFunc(l.items, func(a, b *model.Item) int {
			return l.collator.CompareString(a.Title(), b.Title())
		})
	default:
		slices.SortFunc(l.items, func(a, b *model.Item) int {
			return cmp.Compare(a.ID(), b.ID())
		})
	}
}

func (l *List) render() {
	l.view.ClearAll()
	for _, it := range l.items {
		l.view.AppendItem(it.Node())
	}
}

// Refresh re-sorts and redraws everything; used for the initial render.
func (l *List) Refresh() {
	l.sort()
	l.render()
}
