package model

import (
	"fmt"
	"strings"
)

// SortOrder selects how the collection is ordered.
type SortOrder int

const (
	ByID SortOrder = iota
	Alphabetical
)

func (o SortOrder) String() string {
	switch o {
	case Alphabetical:
		return "alphabetical"
	default:
		return "by_id"
	}
}

// Next cycles to the following order.
func (o SortOrder) Next() SortOrder {
	if o == ByID {
		return Alphabetical
	}
	return ByID
}

func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "id", "by_id", "by-id":
		return ByID, nil
	case "alpha", "alphabetical":
		return Alphabetical, nil
	}
	return ByID, fmt.Errorf("unknown sort order %q (want id or alpha)", s)
}

// UnmarshalText lets the TOML decoder read sort orders directly.
func (o *SortOrder) UnmarshalText(b []byte) error {
	v, err := ParseSortOrder(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

func (o SortOrder) MarshalText() ([]byte, error) { return []byte(o.String()), nil }
