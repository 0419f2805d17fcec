package toolbox

import (
	apperrors "github.com/veiligwerk/toolbox-tracker/internal"
	"github.com/veiligwerk/toolbox-tracker/internal/core/common/validation"
)

type CreateToolboxDTO struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Required    bool   `json:"required"`
	PDFData     string `json:"pdf_data,omitempty"`
	PDFName     string `json:"pdf_name,omitempty"`
}

type UpdateToolboxDTO struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Required    *bool   `json:"required,omitempty"`
	PDFData     *string `json:"pdf_data,omitempty"`
	PDFName     *string `json:"pdf_name,omitempty"`
}

func (d CreateToolboxDTO) Validate() *apperrors.AppError {
	v := validation.NewValidator()
	v.Field("title", d.Title).Required().MaxLength(200)
	return v.Validate()
}

func (d UpdateToolboxDTO) Validate() *apperrors.AppError {
	v := validation.NewValidator()
	if d.Title != nil {
		v.Field("title", *d.Title).Required().MaxLength(200)
	}
	return v.Validate()
}
