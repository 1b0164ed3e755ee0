package domain

import "time"

// Activity records one mutation of the progress store.
type Activity struct {
	ID        string
	Kind      ActivityKind
	Book      string
	Chapter   int
	Completed bool
	KeyCount  int
	At        time.Time
}
