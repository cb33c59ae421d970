package table

// Capacity describes the maximum size of one table dimension: either
// bounded by a fixed limit or unbounded. It is a pure value type; a table
// reports its bounds through MaxRowCapacity/MaxColumnCapacity.
type Capacity struct {
	limit   int
	bounded bool
}

// Limited returns a Capacity bounded at n.
func Limited(n int) Capacity {
	return Capacity{limit: n, bounded: true}
}

// Unlimited returns a Capacity with no bound.
func Unlimited() Capacity {
	return Capacity{}
}

// IsLimited reports whether the capacity has a maximum bound.
func (c Capacity) IsLimited() bool {
	return c.bounded
}

// IsUnlimited reports whether the capacity has no bound.
func (c Capacity) IsUnlimited() bool {
	return !c.bounded
}

// Limit returns the bound and true for a limited capacity, or 0 and false
// for an unlimited one.
func (c Capacity) Limit() (int, bool) {
	if !c.bounded {
		return 0, false
	}

	return c.limit, true
}
