package domain

import "github.com/google/uuid"

// Column is an ordered member of a board and the scope that orders cards.
// WipLimit is advisory and never enforced.
type Column struct {
	BaseModel
	BoardID  uuid.UUID `gorm:"type:uuid;not null;index:idx_columns_board_position,priority:1" json:"boardId"`
	Name     string    `gorm:"type:varchar(255);not null" json:"name"`
	Position int       `gorm:"type:int;not null;default:0;index:idx_columns_board_position,priority:2" json:"position"`
	WipLimit *int      `gorm:"type:int" json:"wipLimit"`
	Board    *Board    `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"board,omitempty"`
	Cards    []Card    `gorm:"foreignKey:ColumnID;constraint:OnDelete:CASCADE" json:"cards,omitempty"`
}

// TableName specifies the table name for Column
func (Column) TableName() string {
	return "board_columns"
}

func (c Column) ItemID() uuid.UUID { return c.ID }
func (c Column) ItemPosition() int { return c.Position }
