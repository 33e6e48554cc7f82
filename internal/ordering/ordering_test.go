package ordering

import (
	"testing"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	id  uuid.UUID
	pos int
}

func (i item) ItemID() uuid.UUID { return i.id }
func (i item) ItemPosition() int { return i.pos }

func TestSort_AscendingByPosition(t *testing.T) {
	a := item{uuid.New(), 5}
	b := item{uuid.New(), -2}
	c := item{uuid.New(), 0}

	items := []item{a, b, c}
	Sort(items)

	assert.Equal(t, []item{b, c, a}, items)
	assert.True(t, IsSorted(items))
}

func TestSort_TiesKeepInputOrder(t *testing.T) {
	a := item{uuid.New(), 1}
	b := item{uuid.New(), 1}
	c := item{uuid.New(), 0}

	items := []item{a, b, c}
	Sort(items)

	assert.Equal(t, []item{c, a, b}, items)
	assert.True(t, HasTies(items))
}

func TestCompare(t *testing.T) {
	assert.Negative(t, Compare(item{pos: 1}, item{pos: 2}))
	assert.Positive(t, Compare(item{pos: 10}, item{pos: -10}))
	assert.Zero(t, Compare(item{pos: 3}, item{pos: 3}))
}

func TestValidateOrder(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		ids     []uuid.UUID
		wantErr error
	}{
		{"empty list", nil, nil},
		{"unique ids", []uuid.UUID{uuid.New(), uuid.New()}, nil},
		{"duplicate id", []uuid.UUID{id, uuid.New(), id}, ErrDuplicateID},
		{"nil id", []uuid.UUID{uuid.New(), uuid.Nil}, ErrEmptyID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOrder(tt.ids)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSameMembers(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	assert.True(t, SameMembers([]uuid.UUID{b, a}, []uuid.UUID{a, b}))
	assert.True(t, SameMembers(nil, nil))
	assert.False(t, SameMembers([]uuid.UUID{a}, []uuid.UUID{a, b}))
	assert.False(t, SameMembers([]uuid.UUID{a, c}, []uuid.UUID{a, b}))
}

func TestTopShift(t *testing.T) {
	assert.Equal(t, 1, TopShift(nil))
	assert.Equal(t, 1, TopShift([]int{0, 1, 2}))
	assert.Equal(t, 1, TopShift([]int{4, 7}))
	assert.Equal(t, 4, TopShift([]int{-3, 0}))
}

func TestEndPosition(t *testing.T) {
	assert.Equal(t, 0, EndPosition(nil))
	assert.Equal(t, 6, EndPosition([]int{0, 2, 5}))
	assert.Equal(t, 3, EndPosition([]int{2, -1}))
}

func TestIndexOfAndIDs(t *testing.T) {
	a := item{uuid.New(), 0}
	b := item{uuid.New(), 1}

	ids := IDs([]item{a, b})
	require.Len(t, ids, 2)
	assert.Equal(t, 1, IndexOf(ids, b.id))
	assert.Equal(t, -1, IndexOf(ids, uuid.New()))
}

func TestProperty_TopShiftKeepsNewItemStrictlyLeast(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("shifted siblings stay above the top position and keep their order", prop.ForAll(
		func(positions []int) bool {
			delta := TopShift(positions)
			for i, p := range positions {
				if p+delta <= TopPosition {
					return false
				}
				for j := range positions {
					if (positions[i] < positions[j]) != (positions[i]+delta < positions[j]+delta) {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-50, 50)),
	))

	properties.TestingRun(t)
}

func TestProperty_EndPositionIsStrictlyGreatest(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("end position exceeds every sibling", prop.ForAll(
		func(positions []int) bool {
			end := EndPosition(positions)
			for _, p := range positions {
				if end <= p {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
	))

	properties.TestingRun(t)
}
