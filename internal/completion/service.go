package completion

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/veiligwerk/toolbox-tracker/internal"
	completionDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/completion"
	"github.com/veiligwerk/toolbox-tracker/internal/core/events"
)

// RepositoryAPI persists completions. Create must verify both referenced
// rows and insert within one transaction, so a concurrent delete of the
// employee or toolbox cannot slip between check and insert.
type RepositoryAPI interface {
	GetAll() ([]*completionDatamodel.Completion, error)
	GetByEmployeeID(employeeID string) ([]*completionDatamodel.Completion, error)
	Create(completion *completionDatamodel.Completion) error
}

type Service struct {
	repo     RepositoryAPI
	eventBus *events.EventBus
	logger   *slog.Logger
}

// NewService creates the completion recorder. eventBus may be nil.
func NewService(repo RepositoryAPI, eventBus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *Service) GetAll() ([]*Completion, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list completions", "error", err)
		return nil, apperrors.NewInternalError("failed to list completions", err)
	}

	completions := make([]*Completion, 0, len(records))
	for _, record := range records {
		completions = append(completions, FromDataModel(record))
	}
	return completions, nil
}

func (s *Service) GetByEmployeeID(employeeID string) ([]*Completion, error) {
	records, err := s.repo.GetByEmployeeID(employeeID)
	if err != nil {
		s.logger.Error("failed to list completions for employee", "employee_id", employeeID, "error", err)
		return nil, apperrors.NewInternalError("failed to list completions", err)
	}

	completions := make([]*Completion, 0, len(records))
	for _, record := range records {
		completions = append(completions, FromDataModel(record))
	}
	return completions, nil
}

// Create records a completion, stamping the acting user and the completion
// time. Repeated completions of the same toolbox by the same employee are
// valid events (annual refreshers), so there is no duplicate suppression.
func (s *Service) Create(dto CreateCompletionDTO, actorUserID string) (*Completion, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	completion := &Completion{
		ID:            uuid.New().String(),
		EmployeeID:    dto.EmployeeID,
		ToolboxID:     dto.ToolboxID,
		CompletedDate: time.Now(),
		Score:         dto.Score,
		Notes:         dto.Notes,
		Signature:     dto.Signature,
		CreatedAt:     time.Now(),
	}
	if actorUserID != "" {
		completion.UserID = &actorUserID
	}

	if err := s.repo.Create(ToDataModel(completion)); err != nil {
		switch {
		case errors.Is(err, ErrEmployeeMissing):
			return nil, apperrors.ErrEmployeeNotFound
		case errors.Is(err, ErrToolboxMissing):
			return nil, apperrors.ErrToolboxNotFound
		default:
			s.logger.Error("failed to record completion",
				"employee_id", dto.EmployeeID,
				"toolbox_id", dto.ToolboxID,
				"error", err)
			return nil, apperrors.NewInternalError("failed to record completion", err)
		}
	}

	s.logger.Info("completion recorded",
		"completion_id", completion.ID,
		"employee_id", completion.EmployeeID,
		"toolbox_id", completion.ToolboxID,
		"recorded_by", actorUserID)

	if s.eventBus != nil {
		_ = s.eventBus.Publish(context.Background(),
			events.NewCompletionRecordedEvent(completion.ID, completion.EmployeeID, completion.ToolboxID, actorUserID))
	}

	return completion, nil
}
