package user

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/veiligwerk/toolbox-tracker/internal"
	userDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/user"
)

type RepositoryAPI interface {
	GetAll() ([]*userDatamodel.User, error)
	GetByID(id string) (*userDatamodel.User, error)
	ExistsByUsernameOrEmail(username, email string) (bool, error)
	Create(user *userDatamodel.User) error
	Update(user *userDatamodel.User) error
	Delete(id string) error
}

// PasswordHasher is satisfied by the auth service, which owns the bcrypt
// cost setting.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

type Service struct {
	repo   RepositoryAPI
	hasher PasswordHasher
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, hasher PasswordHasher, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

func (s *Service) GetAll() ([]*User, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, apperrors.NewInternalError("failed to list users", err)
	}

	users := make([]*User, 0, len(records))
	for _, record := range records {
		users = append(users, FromDataModel(record))
	}
	return users, nil
}

func (s *Service) GetByID(id string) (*User, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		s.logger.Error("failed to get user", "user_id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to get user", err)
	}
	return FromDataModel(record), nil
}

func (s *Service) Create(dto CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByUsernameOrEmail(dto.Username, dto.Email)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to check existing users", err)
	}
	if exists {
		return nil, apperrors.ErrUserExists
	}

	hash, err := s.hasher.HashPassword(dto.Password)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}

	role := dto.Role
	if role == "" {
		role = "employee"
	}

	now := time.Now()
	u := &User{
		ID:           uuid.New().String(),
		Username:     dto.Username,
		Email:        dto.Email,
		Name:         dto.Name,
		Role:         role,
		IsActive:     true,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ToDataModel(u)); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, apperrors.ErrUserExists
		}
		s.logger.Error("failed to create user", "username", dto.Username, "error", err)
		return nil, apperrors.NewInternalError("failed to create user", err)
	}

	s.logger.Info("user created", "user_id", u.ID, "username", u.Username, "role", u.Role)
	return u, nil
}

func (s *Service) Update(id string, dto UpdateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewInternalError("failed to get user", err)
	}

	if dto.Username != nil {
		record.Username = *dto.Username
	}
	if dto.Email != nil {
		record.Email = *dto.Email
	}
	if dto.Name != nil {
		record.Name = *dto.Name
	}
	if dto.Role != nil {
		record.Role = *dto.Role
	}
	if dto.IsActive != nil {
		record.IsActive = *dto.IsActive
	}
	record.UpdatedAt = time.Now()

	if err := s.repo.Update(record); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, apperrors.ErrUserExists
		}
		s.logger.Error("failed to update user", "user_id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to update user", err)
	}

	s.logger.Info("user updated", "user_id", id)
	return FromDataModel(record), nil
}

func (s *Service) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		s.logger.Error("failed to delete user", "user_id", id, "error", err)
		return apperrors.NewInternalError("failed to delete user", err)
	}

	s.logger.Info("user deleted", "user_id", id)
	return nil
}
