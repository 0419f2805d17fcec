package invitation

import "time"

type Invitation struct {
	ID        string     `gorm:"primaryKey"`
	Email     string     `gorm:"column:email;not null"`
	Name      string     `gorm:"column:name;not null"`
	Token     string     `gorm:"column:token;uniqueIndex;not null"`
	Role      string     `gorm:"column:role;default:employee"`
	Used      bool       `gorm:"column:used;default:false"`
	ExpiresAt *time.Time `gorm:"column:expires_at"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
}
