package postgres

import (
	"errors"

	"gorm.io/gorm"

	invitationDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/invitation"
	"github.com/veiligwerk/toolbox-tracker/internal/invitation"
)

type InvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) invitation.RepositoryAPI {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) GetAll() ([]*invitationDatamodel.Invitation, error) {
	var invitations []*invitationDatamodel.Invitation
	err := r.db.Order("created_at DESC").Find(&invitations).Error
	return invitations, err
}

func (r *InvitationRepository) GetByToken(token string) (*invitationDatamodel.Invitation, error) {
	var i invitationDatamodel.Invitation
	if err := r.db.Where("token = ?", token).First(&i).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invitation.ErrNotFound
		}
		return nil, err
	}
	return &i, nil
}

func (r *InvitationRepository) Create(i *invitationDatamodel.Invitation) error {
	return r.db.Create(i).Error
}

// MarkUsed flips the used flag guarded by the current value, so two
// concurrent redemptions cannot both succeed.
func (r *InvitationRepository) MarkUsed(token string) error {
	result := r.db.Model(&invitationDatamodel.Invitation{}).
		Where("token = ? AND used = ?", token, false).
		Update("used", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return invitation.ErrConsumed
	}
	return nil
}
