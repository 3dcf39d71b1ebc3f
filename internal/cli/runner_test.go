package cli

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todowidget/internal/config"
	"github.com/idilsaglam/todowidget/internal/model"
	"github.com/idilsaglam/todowidget/internal/todolist"
	"github.com/idilsaglam/todowidget/internal/view"
)

func testOptions() Options {
	return Options{Config: config.Default(), Logger: log.New(io.Discard)}
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"help", []string{"help"}, 0},
		{"unknown", []string{"frobnicate"}, 2},
		{"run with args", []string{"run", "extra"}, 2},
		{"print without titles", []string{"print"}, 2},
		{"print", []string{"print", "banana", "apple"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Run(context.Background(), tt.args, testOptions()); got != tt.want {
				t.Errorf("Run(%v) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}

func TestRenderPanelOrder(t *testing.T) {
	tests := []struct {
		order       model.SortOrder
		first, next string
	}{
		{model.Alphabetical, "apple", "banana"},
		{model.ByID, "banana", "apple"},
	}
	for _, tt := range tests {
		t.Run(tt.order.String(), func(t *testing.T) {
			v := view.New("")
			l := todolist.New(v, todolist.WithSortOrder(tt.order))
			l.Add("banana")
			l.Add("apple")

			out := renderPanel(l, v)
			if strings.Index(out, tt.first) > strings.Index(out, tt.next) {
				t.Errorf("%s should render before %s:\n%s", tt.first, tt.next, out)
			}
			if !strings.Contains(out, tt.order.String()) {
				t.Errorf("panel missing sort label %q", tt.order)
			}
		})
	}
}

func TestRenderPanelEmpty(t *testing.T) {
	v := view.New("")
	l := todolist.New(v)
	l.Add("   ")
	if out := renderPanel(l, v); !strings.Contains(out, view.DefaultEmptyText) {
		t.Errorf("empty panel missing %q:\n%s", view.DefaultEmptyText, out)
	}
}
