package ordering

import "slices"

// TopPosition is where a new item inserted at the top of a scope lands.
const TopPosition = 0

// TopShift returns how much every existing sibling must move up so that an item
// written at TopPosition becomes strictly least. Positions written by this
// system are never negative, so the shift is 1; a negative sibling pushes the
// shift far enough to keep the new item first.
func TopShift(positions []int) int {
	if len(positions) == 0 {
		return 1
	}
	lowest := slices.Min(positions)
	if lowest > TopPosition {
		return 1
	}
	return TopPosition - lowest + 1
}

// EndPosition returns the position for an item appended after all siblings.
// An empty scope is treated as having a maximum of -1.
func EndPosition(positions []int) int {
	if len(positions) == 0 {
		return 0
	}
	return slices.Max(positions) + 1
}
