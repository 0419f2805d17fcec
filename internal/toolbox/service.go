package toolbox

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/veiligwerk/toolbox-tracker/internal"
	toolboxDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/toolbox"
)

type RepositoryAPI interface {
	GetAll() ([]*toolboxDatamodel.Toolbox, error)
	GetByID(id string) (*toolboxDatamodel.Toolbox, error)
	Create(toolbox *toolboxDatamodel.Toolbox) error
	Update(toolbox *toolboxDatamodel.Toolbox) error
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

// GetAll lists toolboxes without their document payloads.
func (s *Service) GetAll() ([]ListItem, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list toolboxes", "error", err)
		return nil, apperrors.NewInternalError("failed to list toolboxes", err)
	}

	items := make([]ListItem, 0, len(records))
	for _, record := range records {
		items = append(items, FromDataModel(record).ToListItem())
	}
	return items, nil
}

// GetByID returns the full toolbox, document payload included.
func (s *Service) GetByID(id string) (*Toolbox, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.ErrToolboxNotFound
		}
		s.logger.Error("failed to get toolbox", "toolbox_id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to get toolbox", err)
	}
	return FromDataModel(record), nil
}

func (s *Service) Create(dto CreateToolboxDTO) (*Toolbox, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	toolbox := &Toolbox{
		ID:          uuid.New().String(),
		Title:       dto.Title,
		Description: dto.Description,
		Category:    dto.Category,
		Required:    dto.Required,
		PDFData:     dto.PDFData,
		PDFName:     dto.PDFName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ToDataModel(toolbox)); err != nil {
		s.logger.Error("failed to create toolbox", "title", dto.Title, "error", err)
		return nil, apperrors.NewInternalError("failed to create toolbox", err)
	}

	s.logger.Info("toolbox created", "toolbox_id", toolbox.ID, "title", toolbox.Title)
	return toolbox, nil
}

func (s *Service) Update(id string, dto UpdateToolboxDTO) (*Toolbox, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.ErrToolboxNotFound
		}
		return nil, apperrors.NewInternalError("failed to get toolbox", err)
	}

	if dto.Title != nil {
		record.Title = *dto.Title
	}
	if dto.Description != nil {
		record.Description = *dto.Description
	}
	if dto.Category != nil {
		record.Category = *dto.Category
	}
	if dto.Required != nil {
		record.Required = *dto.Required
	}
	if dto.PDFData != nil {
		record.PDFData = *dto.PDFData
	}
	if dto.PDFName != nil {
		record.PDFName = *dto.PDFName
	}
	record.UpdatedAt = time.Now()

	if err := s.repo.Update(record); err != nil {
		s.logger.Error("failed to update toolbox", "toolbox_id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to update toolbox", err)
	}

	s.logger.Info("toolbox updated", "toolbox_id", id)
	return FromDataModel(record), nil
}

// Delete removes a toolbox unless completions reference it.
func (s *Service) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return apperrors.ErrToolboxNotFound
		case errors.Is(err, ErrHasCompletions):
			return apperrors.NewConflictError("Toolbox has recorded completions", apperrors.ErrCodeHasCompletions)
		default:
			s.logger.Error("failed to delete toolbox", "toolbox_id", id, "error", err)
			return apperrors.NewInternalError("failed to delete toolbox", err)
		}
	}

	s.logger.Info("toolbox deleted", "toolbox_id", id)
	return nil
}
