package completion

import (
	apperrors "github.com/veiligwerk/toolbox-tracker/internal"
	"github.com/veiligwerk/toolbox-tracker/internal/core/common/validation"
)

type CreateCompletionDTO struct {
	EmployeeID string `json:"employee_id"`
	ToolboxID  string `json:"toolbox_id"`
	Score      *int   `json:"score,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Signature  string `json:"signature,omitempty"`
}

func (d CreateCompletionDTO) Validate() *apperrors.AppError {
	v := validation.NewValidator()
	v.Field("employee_id", d.EmployeeID).Required()
	v.Field("toolbox_id", d.ToolboxID).Required()
	v.Field("score", d.Score).IntRange(0, 100, apperrors.ErrCodeInvalidScore)
	return v.Validate()
}
