package domain

type EventKind int

const (
	EventItemAdded EventKind = iota
	EventItemRemoved
)

// Event describes one cart mutation together with the resulting state. The
// view layer interprets events into drawer transitions (open on add, close
// when the last item goes); that policy lives with the view, not here.
type Event struct {
	Kind      EventKind
	ProductID int64
	Cart      Snapshot
}
