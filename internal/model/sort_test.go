package model

import "testing"

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    SortOrder
		wantErr bool
	}{
		{"id", ByID, false},
		{"by_id", ByID, false},
		{"BY-ID", ByID, false},
		{"alpha", Alphabetical, false},
		{" Alphabetical ", Alphabetical, false},
		{"random", ByID, true},
		{"", ByID, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSortOrder(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSortOrder(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSortOrder(%q): got %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSortOrderNextCycles(t *testing.T) {
	if got := ByID.Next(); got != Alphabetical {
		t.Errorf("ByID.Next(): got %v, want alphabetical", got)
	}
	if got := Alphabetical.Next(); got != ByID {
		t.Errorf("Alphabetical.Next(): got %v, want by_id", got)
	}
}

func TestSortOrderText(t *testing.T) {
	var o SortOrder
	if err := o.UnmarshalText([]byte("alpha")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	b, _ := o.MarshalText()
	if string(b) != "alphabetical" {
		t.Errorf("MarshalText: got %q, want alphabetical", b)
	}
	if err := o.UnmarshalText([]byte("nope")); err == nil {
		t.Error("UnmarshalText(nope): want error")
	}
}

func TestNewItemKeepsNode(t *testing.T) {
	it := NewItem(3, "Buy milk")
	if it.ID() != 3 || it.Title() != "Buy milk" {
		t.Fatalf("NewItem: got (%d, %q)", it.ID(), it.Title())
	}
	n := it.Node()
	if n == nil || n != it.Node() {
		t.Fatal("Node: want one stable handle")
	}
	if it.Node().Label() != "Buy milk" {
		t.Errorf("Node label: got %q, want %q", it.Node().Label(), "Buy milk")
	}
}
