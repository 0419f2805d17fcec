package invitation

import (
	"errors"
	"time"

	invitationDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/invitation"
)

// Invitation lets an admin pre-approve an account. The token travels out of
// band (the mail itself is outside this service); redeeming it during
// registration fixes the granted role.
type Invitation struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Token     string     `json:"token"`
	Role      string     `json:"role"`
	Used      bool       `json:"used"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

var (
	ErrNotFound = errors.New("invitation not found")
	ErrConsumed = errors.New("invitation already used")
)

func ToDataModel(i *Invitation) *invitationDatamodel.Invitation {
	return &invitationDatamodel.Invitation{
		ID:        i.ID,
		Email:     i.Email,
		Name:      i.Name,
		Token:     i.Token,
		Role:      i.Role,
		Used:      i.Used,
		ExpiresAt: i.ExpiresAt,
		CreatedAt: i.CreatedAt,
	}
}

func FromDataModel(i *invitationDatamodel.Invitation) *Invitation {
	return &Invitation{
		ID:        i.ID,
		Email:     i.Email,
		Name:      i.Name,
		Token:     i.Token,
		Role:      i.Role,
		Used:      i.Used,
		ExpiresAt: i.ExpiresAt,
		CreatedAt: i.CreatedAt,
	}
}
