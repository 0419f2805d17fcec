package invitation

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/veiligwerk/toolbox-tracker/internal"
	"github.com/veiligwerk/toolbox-tracker/internal/auth"
	"github.com/veiligwerk/toolbox-tracker/internal/core/common/validation"
	invitationDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/invitation"
)

// DefaultValidity is how long an invitation can be redeemed.
const DefaultValidity = 7 * 24 * time.Hour

type RepositoryAPI interface {
	GetAll() ([]*invitationDatamodel.Invitation, error)
	GetByToken(token string) (*invitationDatamodel.Invitation, error)
	Create(invitation *invitationDatamodel.Invitation) error
	// MarkUsed consumes the token; it fails with ErrConsumed when the row
	// was already used, atomically.
	MarkUsed(token string) error
}

type CreateInvitationDTO struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (d CreateInvitationDTO) Validate() *apperrors.AppError {
	v := validation.NewValidator()
	v.Field("email", d.Email).Required().Email().MaxLength(254)
	v.Field("name", d.Name).Required().MaxLength(200)
	v.Field("role", d.Role).OneOf(auth.RoleAdmin, auth.RoleEmployee)
	return v.Validate()
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetAll() ([]*Invitation, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list invitations", "error", err)
		return nil, apperrors.NewInternalError("failed to list invitations", err)
	}

	invitations := make([]*Invitation, 0, len(records))
	for _, record := range records {
		invitations = append(invitations, FromDataModel(record))
	}
	return invitations, nil
}

func (s *Service) Create(dto CreateInvitationDTO) (*Invitation, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	token, err := auth.GenerateRandomToken()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to generate invitation token", err)
	}

	role := dto.Role
	if role == "" {
		role = auth.RoleEmployee
	}

	now := time.Now()
	expires := now.Add(DefaultValidity)
	invitation := &Invitation{
		ID:        uuid.New().String(),
		Email:     dto.Email,
		Name:      dto.Name,
		Token:     token,
		Role:      role,
		Used:      false,
		ExpiresAt: &expires,
		CreatedAt: now,
	}

	if err := s.repo.Create(ToDataModel(invitation)); err != nil {
		s.logger.Error("failed to create invitation", "email", dto.Email, "error", err)
		return nil, apperrors.NewInternalError("failed to create invitation", err)
	}

	s.logger.Info("invitation created", "invitation_id", invitation.ID, "email", invitation.Email, "role", invitation.Role)
	return invitation, nil
}

// Redeem consumes an invitation token and returns the role it grants. It
// satisfies the auth service's InvitationRedeemer.
func (s *Service) Redeem(token string) (string, error) {
	record, err := s.repo.GetByToken(token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", apperrors.ErrInvitationNotFound
		}
		return "", apperrors.NewInternalError("failed to look up invitation", err)
	}

	if record.Used {
		return "", apperrors.ErrInvitationConsumed
	}
	if record.ExpiresAt != nil && time.Now().After(*record.ExpiresAt) {
		return "", apperrors.ErrInvitationExpired
	}

	if err := s.repo.MarkUsed(token); err != nil {
		if errors.Is(err, ErrConsumed) {
			return "", apperrors.ErrInvitationConsumed
		}
		return "", apperrors.NewInternalError("failed to consume invitation", err)
	}

	s.logger.Info("invitation redeemed", "invitation_id", record.ID, "email", record.Email)
	return record.Role, nil
}
