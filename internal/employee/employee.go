package employee

import (
	"errors"
	"time"

	employeeDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/employee"
)

// Employee is a trainee record, independent of any login account.
type Employee struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	JobFunction  string     `json:"job_function,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	IsActive     bool       `json:"is_active"`
	ProfileImage string     `json:"profile_image,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

var (
	ErrNotFound       = errors.New("employee not found")
	ErrDuplicateEmail = errors.New("employee email already exists")
	ErrHasCompletions = errors.New("employee has recorded completions")
)

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		JobFunction:  e.JobFunction,
		StartDate:    e.StartDate,
		IsActive:     e.IsActive,
		ProfileImage: e.ProfileImage,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		JobFunction:  e.JobFunction,
		StartDate:    e.StartDate,
		IsActive:     e.IsActive,
		ProfileImage: e.ProfileImage,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
