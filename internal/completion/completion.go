package completion

import (
	"errors"
	"time"

	completionDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/completion"
)

// Completion records that an employee finished a toolbox. Rows are immutable
// history; there is no update or delete surface.
type Completion struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employee_id"`
	ToolboxID     string    `json:"toolbox_id"`
	UserID        *string   `json:"user_id,omitempty"`
	CompletedDate time.Time `json:"completed_date"`
	Score         *int      `json:"score,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Signature     string    `json:"signature,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

var (
	ErrEmployeeMissing = errors.New("referenced employee does not exist")
	ErrToolboxMissing  = errors.New("referenced toolbox does not exist")
)

func ToDataModel(c *Completion) *completionDatamodel.Completion {
	return &completionDatamodel.Completion{
		ID:            c.ID,
		EmployeeID:    c.EmployeeID,
		ToolboxID:     c.ToolboxID,
		UserID:        c.UserID,
		CompletedDate: c.CompletedDate,
		Score:         c.Score,
		Notes:         c.Notes,
		Signature:     c.Signature,
		CreatedAt:     c.CreatedAt,
	}
}

func FromDataModel(c *completionDatamodel.Completion) *Completion {
	return &Completion{
		ID:            c.ID,
		EmployeeID:    c.EmployeeID,
		ToolboxID:     c.ToolboxID,
		UserID:        c.UserID,
		CompletedDate: c.CompletedDate,
		Score:         c.Score,
		Notes:         c.Notes,
		Signature:     c.Signature,
		CreatedAt:     c.CreatedAt,
	}
}
