package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/veiligwerk/toolbox-tracker/internal/completion"
	completionDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/completion"
	employeeDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/employee"
	toolboxDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/toolbox"
)

type CompletionRepository struct {
	db *gorm.DB
}

func NewCompletionRepository(db *gorm.DB) completion.RepositoryAPI {
	return &CompletionRepository{db: db}
}

func (r *CompletionRepository) GetAll() ([]*completionDatamodel.Completion, error) {
	var completions []*completionDatamodel.Completion
	err := r.db.Order("completed_date DESC").Find(&completions).Error
	return completions, err
}

func (r *CompletionRepository) GetByEmployeeID(employeeID string) ([]*completionDatamodel.Completion, error) {
	var completions []*completionDatamodel.Completion
	err := r.db.Where("employee_id = ?", employeeID).Order("completed_date DESC").Find(&completions).Error
	return completions, err
}

// Create verifies both references and inserts within one transaction; no
// row is written when either reference is missing.
func (r *CompletionRepository) Create(c *completionDatamodel.Completion) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var employee employeeDatamodel.Employee
		if err := tx.Select("id").Where("id = ?", c.EmployeeID).First(&employee).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return completion.ErrEmployeeMissing
			}
			return err
		}

		var toolbox toolboxDatamodel.Toolbox
		if err := tx.Select("id").Where("id = ?", c.ToolboxID).First(&toolbox).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return completion.ErrToolboxMissing
			}
			return err
		}

		return tx.Create(c).Error
	})
}
