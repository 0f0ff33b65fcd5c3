package types

// MoveItem is a single planned move. Destination is already
// collision-resolved: at plan time it neither exists on disk nor is
// claimed by an earlier item in the same plan.
type MoveItem struct {
	// Source is the absolute path of the file to move
	Source string

	// Category is the resolved category name (destination subfolder)
	Category string

	// Destination is the absolute, collision-free target path
	Destination string
}

// MovePlan is an ordered, immutable sequence of MoveItems. It is
// produced by the planner with no filesystem mutation and consumed
// exactly once by the executor.
type MovePlan struct {
	items []MoveItem
}

// NewMovePlan creates a plan from the given items. The slice is copied
// so later mutation by the caller cannot change the plan.
func NewMovePlan(items []MoveItem) MovePlan {
	copied := make([]MoveItem, len(items))
	copy(copied, items)
	return MovePlan{items: copied}
}

// Items returns a copy of the planned moves in order.
func (p MovePlan) Items() []MoveItem {
	copied := make([]MoveItem, len(p.items))
	copy(copied, p.items)
	return copied
}

// Len returns the number of planned moves.
func (p MovePlan) Len() int {
	return len(p.items)
}

// IsEmpty reports whether the plan contains no moves.
func (p MovePlan) IsEmpty() bool {
	return len(p.items) == 0
}
