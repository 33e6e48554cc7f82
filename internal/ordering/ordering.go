// Package ordering defines how items are ordered inside a parent scope.
//
// A scope is a board (ordering columns) or a column (ordering cards). Items carry
// an integer position that only has meaning relative to siblings in the same
// scope: values need not be contiguous or start at zero.
package ordering

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// ScopeKind identifies what kind of container a scope is
type ScopeKind string

const (
	ScopeKindBoard  ScopeKind = "board"
	ScopeKindColumn ScopeKind = "column"
)

// Scope is an identified container of ordered items
type Scope struct {
	Kind ScopeKind `json:"kind"`
	ID   uuid.UUID `json:"id"`
}

// BoardScope returns the scope holding the columns of a board
func BoardScope(boardID uuid.UUID) Scope {
	return Scope{Kind: ScopeKindBoard, ID: boardID}
}

// ColumnScope returns the scope holding the cards of a column
func ColumnScope(columnID uuid.UUID) Scope {
	return Scope{Kind: ScopeKindColumn, ID: columnID}
}

func (s Scope) String() string {
	return fmt.Sprintf("%s:%s", s.Kind, s.ID)
}

// Positioned is anything that can be placed in a scope
type Positioned interface {
	ItemID() uuid.UUID
	ItemPosition() int
}

var (
	ErrEmptyID     = errors.New("ordered list contains an empty id")
	ErrDuplicateID = errors.New("ordered list contains a duplicate id")
)

// Compare orders two items by position only.
func Compare(a, b Positioned) int {
	return cmp.Compare(a.ItemPosition(), b.ItemPosition())
}

// Sort orders items ascending by position. Equal positions keep their input order.
func Sort[T Positioned](items []T) {
	slices.SortStableFunc(items, func(a, b T) int {
		return Compare(a, b)
	})
}

// IsSorted reports whether items are in canonical read order.
func IsSorted[T Positioned](items []T) bool {
	return slices.IsSortedFunc(items, func(a, b T) int {
		return Compare(a, b)
	})
}

// IDs returns the ids of items in their current order.
func IDs[T Positioned](items []T) []uuid.UUID {
	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = item.ItemID()
	}
	return ids
}

// IndexOf returns the index of id in ids, or -1.
func IndexOf(ids []uuid.UUID, id uuid.UUID) int {
	return slices.Index(ids, id)
}

// ValidateOrder rejects ordered lists with nil or repeated ids.
func ValidateOrder(ids []uuid.UUID) error {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			return ErrEmptyID
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// SameMembers reports whether ids and members hold exactly the same set of ids.
// Both lists are expected to be duplicate free.
func SameMembers(ids, members []uuid.UUID) bool {
	if len(ids) != len(members) {
		return false
	}
	set := make(map[uuid.UUID]struct{}, len(members))
	for _, id := range members {
		set[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}

// HasTies reports whether two items share a position.
func HasTies[T Positioned](items []T) bool {
	seen := make(map[int]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ItemPosition()]; ok {
			return true
		}
		seen[item.ItemPosition()] = struct{}{}
	}
	return false
}
