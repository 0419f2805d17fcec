package toolbox

import "time"

// Toolbox is one training module. PDFData holds the attached document
// base64-encoded, matching the format the frontend uploads.
type Toolbox struct {
	ID          string    `gorm:"primaryKey"`
	Title       string    `gorm:"column:title;not null"`
	Description string    `gorm:"column:description"`
	Category    string    `gorm:"column:category"`
	Required    bool      `gorm:"column:required;default:false"`
	PDFData     string    `gorm:"column:pdf_data"`
	PDFName     string    `gorm:"column:pdf_name"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Toolbox) TableName() string {
	return "toolboxes"
}
