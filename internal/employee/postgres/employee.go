package postgres

import (
	"errors"

	"gorm.io/gorm"

	completionDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/completion"
	employeeDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/employee"
	"github.com/veiligwerk/toolbox-tracker/internal/employee"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetAll() ([]*employeeDatamodel.Employee, error) {
	var employees []*employeeDatamodel.Employee
	err := r.db.Order("name ASC").Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepository) GetByID(id string) (*employeeDatamodel.Employee, error) {
	var e employeeDatamodel.Employee
	if err := r.db.Where("id = ?", id).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) GetByEmail(email string) (*employeeDatamodel.Employee, error) {
	var e employeeDatamodel.Employee
	if err := r.db.Where("email = ?", email).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) Create(e *employeeDatamodel.Employee) error {
	if err := r.db.Create(e).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return employee.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *EmployeeRepository) Update(e *employeeDatamodel.Employee) error {
	if err := r.db.Save(e).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return employee.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// Delete removes the row inside one transaction with the dependency check,
// so a completion recorded concurrently cannot slip between check and
// delete.
func (r *EmployeeRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var dependents int64
		if err := tx.Model(&completionDatamodel.Completion{}).
			Where("employee_id = ?", id).
			Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return employee.ErrHasCompletions
		}

		result := tx.Where("id = ?", id).Delete(&employeeDatamodel.Employee{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return employee.ErrNotFound
		}
		return nil
	})
}
