package auth

import (
	"github.com/veiligwerk/toolbox-tracker/internal/core/common/validation"

	apperrors "github.com/veiligwerk/toolbox-tracker/internal"
)

// RegisterDTO is the transport shape for account creation. InviteToken is
// optional; when present it is redeemed and its role wins over Role.
type RegisterDTO struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	InviteToken string `json:"invite_token,omitempty"`
}

// LoginDTO accepts a username or an email in the Username field.
type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (d RegisterDTO) Validate() *apperrors.AppError {
	v := validation.NewValidator()
	v.Field("username", d.Username).Required().MinLength(3).MaxLength(64)
	v.Field("email", d.Email).Required().Email().MaxLength(254)
	v.Field("password", d.Password).Required().MinLength(6)
	v.Field("role", d.Role).OneOf(RoleAdmin, RoleEmployee)
	return v.Validate()
}

func (d LoginDTO) Validate() *apperrors.AppError {
	v := validation.NewValidator()
	v.Field("username", d.Username).Required()
	v.Field("password", d.Password).Required()
	return v.Validate()
}
