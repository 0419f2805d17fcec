package employee

import (
	"time"

	apperrors "github.com/veiligwerk/toolbox-tracker/internal"
	"github.com/veiligwerk/toolbox-tracker/internal/core/common/validation"
)

type CreateEmployeeDTO struct {
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	JobFunction  string     `json:"job_function,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	ProfileImage string     `json:"profile_image,omitempty"`
}

// UpdateEmployeeDTO uses pointers so omitted fields stay untouched.
type UpdateEmployeeDTO struct {
	Name         *string    `json:"name,omitempty"`
	Email        *string    `json:"email,omitempty"`
	JobFunction  *string    `json:"job_function,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	IsActive     *bool      `json:"is_active,omitempty"`
	ProfileImage *string    `json:"profile_image,omitempty"`
}

func (d CreateEmployeeDTO) Validate() *apperrors.AppError {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required().MaxLength(200)
	v.Field("email", d.Email).Required().Email().MaxLength(254)
	return v.Validate()
}

func (d UpdateEmployeeDTO) Validate() *apperrors.AppError {
	v := validation.NewValidator()
	if d.Email != nil {
		v.Field("email", *d.Email).Required().Email().MaxLength(254)
	}
	if d.Name != nil {
		v.Field("name", *d.Name).Required().MaxLength(200)
	}
	return v.Validate()
}
