package employee

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/veiligwerk/toolbox-tracker/internal"
	employeeDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/employee"
)

type RepositoryAPI interface {
	GetAll() ([]*employeeDatamodel.Employee, error)
	GetByID(id string) (*employeeDatamodel.Employee, error)
	GetByEmail(email string) (*employeeDatamodel.Employee, error)
	Create(employee *employeeDatamodel.Employee) error
	Update(employee *employeeDatamodel.Employee) error
	Delete(id string) error
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

func (s *Service) GetAll() ([]*Employee, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, apperrors.NewInternalError("failed to list employees", err)
	}

	employees := make([]*Employee, 0, len(records))
	for _, record := range records {
		employees = append(employees, FromDataModel(record))
	}
	return employees, nil
}

func (s *Service) GetByID(id string) (*Employee, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		s.logger.Error("failed to get employee", "employee_id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to get employee", err)
	}
	return FromDataModel(record), nil
}

func (s *Service) Create(dto CreateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	// Advisory pre-check; the unique index on email is the real guard.
	if existing, err := s.repo.GetByEmail(dto.Email); err == nil && existing != nil {
		return nil, apperrors.ErrEmployeeExists
	}

	now := time.Now()
	employee := &Employee{
		ID:           uuid.New().String(),
		Name:         dto.Name,
		Email:        dto.Email,
		JobFunction:  dto.JobFunction,
		StartDate:    dto.StartDate,
		IsActive:     true,
		ProfileImage: dto.ProfileImage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ToDataModel(employee)); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, apperrors.ErrEmployeeExists
		}
		s.logger.Error("failed to create employee", "email", dto.Email, "error", err)
		return nil, apperrors.NewInternalError("failed to create employee", err)
	}

	s.logger.Info("employee created", "employee_id", employee.ID, "email", employee.Email)
	return employee, nil
}

func (s *Service) Update(id string, dto UpdateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, apperrors.NewInternalError("failed to get employee", err)
	}

	if dto.Name != nil {
		record.Name = *dto.Name
	}
	if dto.Email != nil {
		record.Email = *dto.Email
	}
	if dto.JobFunction != nil {
		record.JobFunction = *dto.JobFunction
	}
	if dto.StartDate != nil {
		record.StartDate = dto.StartDate
	}
	if dto.IsActive != nil {
		record.IsActive = *dto.IsActive
	}
	if dto.ProfileImage != nil {
		record.ProfileImage = *dto.ProfileImage
	}
	record.UpdatedAt = time.Now()

	if err := s.repo.Update(record); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, apperrors.ErrEmployeeExists
		}
		s.logger.Error("failed to update employee", "employee_id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to update employee", err)
	}

	s.logger.Info("employee updated", "employee_id", id)
	return FromDataModel(record), nil
}

// Delete removes an employee. Employees with recorded completions cannot be
// deleted; history would be orphaned.
func (s *Service) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return apperrors.ErrEmployeeNotFound
		case errors.Is(err, ErrHasCompletions):
			return apperrors.NewConflictError("Employee has recorded completions", apperrors.ErrCodeHasCompletions)
		default:
			s.logger.Error("failed to delete employee", "employee_id", id, "error", err)
			return apperrors.NewInternalError("failed to delete employee", err)
		}
	}

	s.logger.Info("employee deleted", "employee_id", id)
	return nil
}
