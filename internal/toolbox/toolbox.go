package toolbox

import (
	"errors"
	"time"

	toolboxDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/toolbox"
)

// Toolbox is one safety-training module with an optional attached document.
type Toolbox struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Required    bool      `json:"required"`
	PDFData     string    `json:"pdf_data,omitempty"`
	PDFName     string    `json:"pdf_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListItem is the listing shape: everything except the document payload,
// which can be megabytes of base64.
type ListItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Required    bool      `json:"required"`
	PDFName     string    `json:"pdf_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var (
	ErrNotFound       = errors.New("toolbox not found")
	ErrHasCompletions = errors.New("toolbox has recorded completions")
)

func (t *Toolbox) ToListItem() ListItem {
	return ListItem{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Required:    t.Required,
		PDFName:     t.PDFName,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func ToDataModel(t *Toolbox) *toolboxDatamodel.Toolbox {
	return &toolboxDatamodel.Toolbox{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Required:    t.Required,
		PDFData:     t.PDFData,
		PDFName:     t.PDFName,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromDataModel(t *toolboxDatamodel.Toolbox) *Toolbox {
	return &Toolbox{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Required:    t.Required,
		PDFData:     t.PDFData,
		PDFName:     t.PDFName,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
