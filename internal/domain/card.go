package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Card is an ordered member of a column
type Card struct {
	BaseModel
	ColumnID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_cards_column_position,priority:1" json:"columnId"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Position    int            `gorm:"type:int;not null;default:0;index:idx_cards_column_position,priority:2" json:"position"`
	AssigneeID  *uuid.UUID     `gorm:"type:uuid;index:idx_cards_assignee_id" json:"assigneeId"`
	DueDate     *time.Time     `gorm:"type:timestamp" json:"dueDate"`
	Labels      datatypes.JSON `gorm:"type:jsonb" json:"labels"`
	Column      *Column        `gorm:"foreignKey:ColumnID;constraint:OnDelete:CASCADE" json:"column,omitempty"`
}

// TableName specifies the table name for Card
func (Card) TableName() string {
	return "cards"
}

func (c Card) ItemID() uuid.UUID { return c.ID }
func (c Card) ItemPosition() int { return c.Position }
