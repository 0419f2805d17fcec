package user

import (
	apperrors "github.com/veiligwerk/toolbox-tracker/internal"
	"github.com/veiligwerk/toolbox-tracker/internal/core/common/validation"
)

type CreateUserDTO struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// UpdateUserDTO never carries a password; credential changes go through the
// auth flow.
type UpdateUserDTO struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Name     *string `json:"name,omitempty"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (d CreateUserDTO) Validate() *apperrors.AppError {
	v := validation.NewValidator()
	v.Field("username", d.Username).Required().MinLength(3).MaxLength(64)
	v.Field("email", d.Email).Required().Email().MaxLength(254)
	v.Field("password", d.Password).Required().MinLength(6)
	v.Field("role", d.Role).OneOf("admin", "employee")
	return v.Validate()
}

func (d UpdateUserDTO) Validate() *apperrors.AppError {
	v := validation.NewValidator()
	if d.Username != nil {
		v.Field("username", *d.Username).Required().MinLength(3).MaxLength(64)
	}
	if d.Email != nil {
		v.Field("email", *d.Email).Required().Email().MaxLength(254)
	}
	if d.Role != nil {
		v.Field("role", *d.Role).OneOf("admin", "employee")
	}
	return v.Validate()
}
