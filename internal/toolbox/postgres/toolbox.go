package postgres

import (
	"errors"

	"gorm.io/gorm"

	completionDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/completion"
	toolboxDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/toolbox"
	"github.com/veiligwerk/toolbox-tracker/internal/toolbox"
)

type ToolboxRepository struct {
	db *gorm.DB
}

func NewToolboxRepository(db *gorm.DB) toolbox.RepositoryAPI {
	return &ToolboxRepository{db: db}
}

func (r *ToolboxRepository) GetAll() ([]*toolboxDatamodel.Toolbox, error) {
	var toolboxes []*toolboxDatamodel.Toolbox
	err := r.db.Order("title ASC").Find(&toolboxes).Error
	return toolboxes, err
}

func (r *ToolboxRepository) GetByID(id string) (*toolboxDatamodel.Toolbox, error) {
	var t toolboxDatamodel.Toolbox
	if err := r.db.Where("id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, toolbox.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *ToolboxRepository) Create(t *toolboxDatamodel.Toolbox) error {
	return r.db.Create(t).Error
}

func (r *ToolboxRepository) Update(t *toolboxDatamodel.Toolbox) error {
	return r.db.Save(t).Error
}

// Delete checks for dependent completions and deletes in one transaction.
func (r *ToolboxRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var dependents int64
		if err := tx.Model(&completionDatamodel.Completion{}).
			Where("toolbox_id = ?", id).
			Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return toolbox.ErrHasCompletions
		}

		result := tx.Where("id = ?", id).Delete(&toolboxDatamodel.Toolbox{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return toolbox.ErrNotFound
		}
		return nil
	})
}
