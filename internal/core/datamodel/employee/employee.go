package employee

import "time"

type Employee struct {
	ID           string     `gorm:"primaryKey"`
	Name         string     `gorm:"column:name;not null"`
	Email        string     `gorm:"column:email;uniqueIndex;not null"`
	JobFunction  string     `gorm:"column:job_function"`
	StartDate    *time.Time `gorm:"column:start_date"`
	IsActive     bool       `gorm:"column:is_active;default:true"`
	ProfileImage string     `gorm:"column:profile_image"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
