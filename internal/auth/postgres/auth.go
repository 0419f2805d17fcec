package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/veiligwerk/toolbox-tracker/internal/auth"
	userDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByID(id string) (*auth.User, error) {
	var u userDatamodel.User
	if err := r.db.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return toAuthUser(&u), nil
}

// GetByLogin matches either the username or the email column, mirroring the
// login form where both are accepted.
func (r *Repository) GetByLogin(usernameOrEmail string) (*auth.User, error) {
	var u userDatamodel.User
	err := r.db.Where("username = ? OR email = ?", usernameOrEmail, usernameOrEmail).First(&u).Error
	if err != nil {
		return nil, err
	}
	return toAuthUser(&u), nil
}

func (r *Repository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&userDatamodel.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) Create(user *auth.User) error {
	record := &userDatamodel.User{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Name:         user.Name,
		Role:         user.Role,
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	if err := r.db.Create(record).Error; err != nil {
		// The unique indexes on username and email are the authoritative
		// guard; the service pre-check is only a fast path.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return auth.ErrDuplicateUser
		}
		return err
	}
	return nil
}

func toAuthUser(u *userDatamodel.User) *auth.User {
	return &auth.User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Name:         u.Name,
		Role:         u.Role,
		IsActive:     u.IsActive,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
