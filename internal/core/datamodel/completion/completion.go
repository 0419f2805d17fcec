package completion

import "time"

// Completion rows are immutable history: created once, never updated.
type Completion struct {
	ID            string    `gorm:"primaryKey"`
	EmployeeID    string    `gorm:"column:employee_id;not null;index"`
	ToolboxID     string    `gorm:"column:toolbox_id;not null;index"`
	UserID        *string   `gorm:"column:user_id"`
	CompletedDate time.Time `gorm:"column:completed_date"`
	Score         *int      `gorm:"column:score"`
	Notes         string    `gorm:"column:notes"`
	Signature     string    `gorm:"column:signature"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}
