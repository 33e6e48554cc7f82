// Package wip evaluates advisory work-in-progress limits on columns.
package wip

// Status is display state only; it never blocks an insertion or a move.
type Status struct {
	Limit     *int `json:"wipLimit"`
	Count     int  `json:"count"`
	AtLimit   bool `json:"atLimit"`
	OverLimit bool `json:"overLimit"`
}

// Evaluate derives the WIP status of a column holding count cards.
// A nil limit means the column is unlimited.
func Evaluate(count int, limit *int) Status {
	s := Status{Limit: limit, Count: count}
	if limit == nil {
		return s
	}
	s.AtLimit = count == *limit
	s.OverLimit = count > *limit
	return s
}
