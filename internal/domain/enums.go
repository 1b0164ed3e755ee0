package domain

import (
	"fmt"
	"strings"
)

type Testament string

const (
	TestamentOld Testament = "OLD"
	TestamentNew Testament = "NEW"
)

// TestamentFilter narrows book views. TestamentAll keeps every book.
type TestamentFilter string

const (
	TestamentAll     TestamentFilter = "ALL"
	TestamentOnlyOld TestamentFilter = TestamentFilter(TestamentOld)
	TestamentOnlyNew TestamentFilter = TestamentFilter(TestamentNew)
)

// Matches reports whether a book of testament t passes the filter.
func (f TestamentFilter) Matches(t Testament) bool {
	return f == TestamentAll || f == "" || string(f) == string(t)
}

// Next cycles ALL -> OLD -> NEW -> ALL.
func (f TestamentFilter) Next() TestamentFilter {
	switch f {
	case TestamentOnlyOld:
		return TestamentOnlyNew
	case TestamentOnlyNew:
		return TestamentAll
	default:
		return TestamentOnlyOld
	}
}

// Label returns the short display form used by the CLI and TUI.
func (f TestamentFilter) Label() string {
	switch f {
	case TestamentOnlyOld:
		return "Old Testament"
	case TestamentOnlyNew:
		return "New Testament"
	default:
		return "All"
	}
}

// ParseTestamentFilter accepts all/old/new (and ot/nt) in any case.
func ParseTestamentFilter(s string) (TestamentFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return TestamentAll, nil
	case "old", "ot":
		return TestamentOnlyOld, nil
	case "new", "nt":
		return TestamentOnlyNew, nil
	}
	return "", fmt.Errorf("invalid testament %q (expected all, old or new)", s)
}

type ActivityKind string

const (
	ActivityToggleChapter ActivityKind = "toggle_chapter"
	ActivitySetBook       ActivityKind = "set_book"
	ActivityClearAll      ActivityKind = "clear_all"
	ActivityImport        ActivityKind = "import"
)

// ValidActivityKinds is the canonical set of accepted activity kind strings.
var ValidActivityKinds = map[string]bool{
	"toggle_chapter": true, "set_book": true, "clear_all": true, "import": true,
}
